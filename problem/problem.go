package problem

import (
	"errors"
	"fmt"
	"strings"
)

// List contains a list of problems.
// Typically functions bubble up an observed error.
// A List can be used to note the error and continue
// function execution thus turning "error" into the "problem".
type List struct {
	errors []error
}

// Add adds a problem to the list using fmt.Errorf
func (p *List) Add(format string, args ...interface{}) *List {
	p.errors = append(p.errors, fmt.Errorf(format, args...))
	return p
}

// Errors returns all added problems
func (p *List) Errors() []error {
	return p.errors
}

// Len returns the number of problems noted so far.
func (p *List) Len() int {
	return len(p.errors)
}

// Err returns nil when no problem was added, otherwise a single error
// listing all of them. The result matches every added error with
// errors.Is.
func (p *List) Err() error {
	if len(p.errors) == 0 {
		return nil
	}
	return &joined{errs: p.errors}
}

type joined struct {
	errs []error
}

func (j *joined) Error() string {
	if len(j.errs) == 1 {
		return j.errs[0].Error()
	}
	msgs := make([]string, 0, len(j.errs))
	for _, err := range j.errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d problems: %s", len(j.errs), strings.Join(msgs, "; "))
}

func (j *joined) Unwrap() []error {
	return j.errs
}

// Is reports whether any noted problem matches target.
func (p *List) Is(target error) bool {
	for _, err := range p.errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
