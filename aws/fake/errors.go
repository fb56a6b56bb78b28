package fake

import (
	"fmt"

	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
)

// ErrNoUpdates is the error CloudFormation returns for an update without
// changes.
var ErrNoUpdates = &smithy.GenericAPIError{
	Code:    "ValidationError",
	Message: "No updates are to be performed.",
}

// ErrAlreadyExists is the error CloudFormation returns when creating a
// stack that exists.
var ErrAlreadyExists = &cftypes.AlreadyExistsException{Message: stringPtr("Stack already exists")}

// StackNotFound returns the error CloudFormation returns for a missing
// stack.
func StackNotFound(name string) error {
	return &smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: fmt.Sprintf("Stack with id %s does not exist", name),
	}
}

func stringPtr(s string) *string {
	return &s
}
