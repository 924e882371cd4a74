package params

import (
	"errors"
	"strings"
)

// ListType converts a delimited string into a slice by running each piece
// through an inner Type. Validation is all-or-nothing: every failing piece is
// collected and reported together, and a single bad piece rejects the whole
// list.
type ListType struct {
	name      string
	inner     Type
	separator string
}

// NewList returns a ListType splitting on separator. The separator must be
// non-empty; NewList panics otherwise since that is a configuration error at
// CLI-definition time, not bad user input.
func NewList(name string, inner Type, separator string) *ListType {
	if separator == "" {
		panic("params: list separator must be a non-empty string")
	}
	return &ListType{
		name:      name,
		inner:     inner,
		separator: separator,
	}
}

func (t *ListType) Name() string {
	return t.name
}

func (t *ListType) Convert(value string, param *Param, ctx *Context) (interface{}, error) {
	// Heading and trailing separator characters are ignored, so ",1,2," is
	// the same list as "1,2".
	stripped := strings.Trim(value, t.separator)

	var failed []string
	converted := []interface{}{}
	for _, item := range strings.Split(stripped, t.separator) {
		v, err := t.inner.Convert(item, param, ctx)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				failed = append(failed, item)
				continue
			}
			return nil, err
		}
		converted = append(converted, v)
	}

	if len(failed) > 0 {
		return nil, fail(param, ctx, "These items are not %s: %v", t.name, failed)
	}
	return converted, nil
}

func (t *ListType) String() string {
	return strings.ToUpper(t.name)
}
