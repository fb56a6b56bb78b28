package fake

import "errors"

// APIResponse is a canned response of a fake client call.
type APIResponse struct {
	response interface{}
	err      error
}

type Tags map[string]string

var ErrDummy = errors.New("fail")

func R(r interface{}, e error) *APIResponse {
	return &APIResponse{response: r, err: e}
}

func (r *APIResponse) result() (interface{}, error) {
	if r == nil {
		return nil, nil
	}
	return r.response, r.err
}
