package params

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// RangeType wraps an inner Type whose converted values are ordered and
// enforces optional minimum/maximum bounds. With neither bound configured it
// is a pass-through of the inner conversion.
type RangeType[T cmp.Ordered] struct {
	name    string
	inner   Type
	minimum *T
	maximum *T
	clamp   bool
}

// NewRange returns a RangeType around inner. Bounds and clamping are
// configured with the Min, Max, and Clamp chain methods at CLI-definition
// time; the type must not be reconfigured once parsing has started.
func NewRange[T cmp.Ordered](name string, inner Type) *RangeType[T] {
	return &RangeType[T]{
		name:  name,
		inner: inner,
	}
}

// Min sets the inclusive lower bound.
func (t *RangeType[T]) Min(v T) *RangeType[T] {
	t.minimum = &v
	return t
}

// Max sets the inclusive upper bound.
func (t *RangeType[T]) Max(v T) *RangeType[T] {
	t.maximum = &v
	return t
}

// Clamp makes out-of-range values silently coerce to the nearest bound
// instead of failing.
func (t *RangeType[T]) Clamp() *RangeType[T] {
	t.clamp = true
	return t
}

func (t *RangeType[T]) Name() string {
	return t.name
}

func (t *RangeType[T]) Convert(value string, param *Param, ctx *Context) (interface{}, error) {
	converted, err := t.inner.Convert(value, param, ctx)
	if err != nil {
		return nil, err
	}
	v, ok := converted.(T)
	if !ok {
		return nil, errors.Errorf("range over %s: inner type produced %T, want %T", t.name, converted, *new(T))
	}

	belowMinimum := t.minimum != nil && v < *t.minimum
	aboveMaximum := t.maximum != nil && v > *t.maximum

	if t.clamp {
		if belowMinimum {
			return *t.minimum, nil
		}
		if aboveMaximum {
			return *t.maximum, nil
		}
	}

	if belowMinimum || aboveMaximum {
		// The phrasing depends on which bounds are configured, not on which
		// one was violated.
		switch {
		case t.minimum == nil:
			return nil, fail(param, ctx, "%v is bigger than the maximum valid value %v.", v, *t.maximum)
		case t.maximum == nil:
			return nil, fail(param, ctx, "%v is smaller than the minimum valid value %v.", v, *t.minimum)
		default:
			return nil, fail(param, ctx, "%v is not in the valid range of %v to %v.", v, *t.minimum, *t.maximum)
		}
	}
	return v, nil
}

func (t *RangeType[T]) String() string {
	camel := xstrings.ToCamelCase(strings.ReplaceAll(t.name, " ", "_"))
	return fmt.Sprintf("%s(%s, %s)", camel, boundString(t.minimum), boundString(t.maximum))
}

func boundString[T any](v *T) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *v)
}
