package params

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Setter is the conversion seam flag-style parsers expect, similar to
// flag.Value without the String method.
type Setter interface {
	Set(s string) error
}

// Value plugs a Type into a flag-style parser. It implements flag.Value: Set
// runs the conversion and keeps the converted result, and a ValidationError
// returned from Set is what makes the surrounding framework print the message
// and exit non-zero.
type Value struct {
	Type  Type
	Param *Param
	Ctx   *Context

	v        interface{}
	setCount uint
}

// NewValue returns a Value converting with t on behalf of param.
func NewValue(t Type, param *Param) *Value {
	return &Value{
		Type:  t,
		Param: param,
	}
}

func (v *Value) Set(s string) error {
	converted, err := v.Type.Convert(s, v.Param, v.Ctx)
	if err != nil {
		return err
	}
	v.v = converted
	v.setCount++
	return nil
}

// Get returns the most recently converted value, or nil if Set has not been
// called.
func (v *Value) Get() interface{} {
	return v.v
}

// SetCount reports how many times Set has succeeded.
func (v *Value) SetCount() uint {
	return v.setCount
}

func (v *Value) String() string {
	if v == nil || v.v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.v)
}

var _ flag.Value = (*Value)(nil)

// TypedValue is like Value but stores the converted result into a typed
// target. A conversion result of the wrong dynamic type indicates a
// misconfigured binding and is reported as a plain error, never as a
// validation failure.
type TypedValue[T any] struct {
	Type  Type
	Param *Param
	Ctx   *Context

	target   *T
	setCount uint
}

// Bind returns a TypedValue converting with t and storing into target.
func Bind[T any](t Type, target *T, param *Param) *TypedValue[T] {
	return &TypedValue[T]{
		Type:   t,
		Param:  param,
		target: target,
	}
}

func (v *TypedValue[T]) Set(s string) error {
	converted, err := v.Type.Convert(s, v.Param, v.Ctx)
	if err != nil {
		return err
	}
	typed, ok := converted.(T)
	if !ok {
		return errors.Errorf("cannot store %T converted by %s into %T target", converted, v.Type.Name(), *new(T))
	}
	*v.target = typed
	v.setCount++
	return nil
}

// SetCount reports how many times Set has succeeded.
func (v *TypedValue[T]) SetCount() uint {
	return v.setCount
}

func (v *TypedValue[T]) String() string {
	if v == nil || v.target == nil || v.setCount == 0 {
		return ""
	}
	return fmt.Sprintf("%v", *v.target)
}

// Placeholder returns the help metavar for a type: the Metavarer result if
// the type renders its own, the upper-cased type name otherwise.
func Placeholder(t Type, param *Param) string {
	if m, ok := t.(Metavarer); ok {
		return m.Metavar(param)
	}
	return strings.ToUpper(strings.ReplaceAll(t.Name(), " ", "_"))
}
