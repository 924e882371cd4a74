package params

import (
	"errors"
	"strings"
)

// UnionType tries a sequence of candidate types in order and returns the
// first successful conversion. The candidate order is part of the contract:
// an earlier match wins even if a later candidate would also accept the
// value.
type UnionType struct {
	name  string
	types []Type
}

// NewUnion returns a UnionType over the given candidates.
func NewUnion(name string, types ...Type) *UnionType {
	return &UnionType{
		name:  name,
		types: types,
	}
}

func (t *UnionType) Name() string {
	return t.name
}

func (t *UnionType) Convert(value string, param *Param, ctx *Context) (interface{}, error) {
	for _, candidate := range t.types {
		v, err := candidate.Convert(value, param, ctx)
		if err == nil {
			return v, nil
		}
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			continue
		}
		// Only validation failures move on to the next candidate; a
		// programmer error from a candidate aborts the union.
		return nil, err
	}
	return nil, fail(param, ctx, "%s is not a valid %s", value, t.name)
}

func (t *UnionType) String() string {
	return strings.ToUpper(t.name)
}
