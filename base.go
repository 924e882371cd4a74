package params

import (
	"errors"
	"strings"
)

// ConvertFunc converts a raw string into a value.
type ConvertFunc func(value string) (interface{}, error)

// BaseType wraps a plain conversion function. Errors matching one of the
// declared invalid kinds (via errors.Is) are reported as validation failures;
// any other error propagates unchanged as a programmer error.
type BaseType struct {
	name    string
	fn      ConvertFunc
	invalid []error
}

// NewBase returns a Type with the given display name backed by fn. The
// invalid list declares which error kinds fn produces for bad user input.
func NewBase(name string, fn ConvertFunc, invalid ...error) *BaseType {
	return &BaseType{
		name:    name,
		fn:      fn,
		invalid: invalid,
	}
}

func (t *BaseType) Name() string {
	return t.name
}

func (t *BaseType) Convert(value string, param *Param, ctx *Context) (interface{}, error) {
	v, err := t.fn(value)
	if err == nil {
		return v, nil
	}
	for _, kind := range t.invalid {
		if errors.Is(err, kind) {
			return nil, fail(param, ctx, "%s is not a valid %s", value, t.name)
		}
	}
	return nil, err
}

func (t *BaseType) String() string {
	return strings.ToUpper(t.name)
}

// ValidatorType wraps a boolean predicate. The raw value passes through
// unchanged when the predicate accepts it; this type validates but does not
// transform.
type ValidatorType struct {
	name     string
	callback func(value string) bool
}

// NewValidator returns a Type that accepts values for which callback returns
// true.
func NewValidator(name string, callback func(value string) bool) *ValidatorType {
	return &ValidatorType{
		name:     name,
		callback: callback,
	}
}

func (t *ValidatorType) Name() string {
	return t.name
}

func (t *ValidatorType) Convert(value string, param *Param, ctx *Context) (interface{}, error) {
	if !t.callback(value) {
		return nil, fail(param, ctx, "%s is not a valid %s", value, t.name)
	}
	return value, nil
}

func (t *ValidatorType) String() string {
	return strings.ToUpper(t.name)
}
