package params

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EnumMember is one named member of an EnumType.
type EnumMember struct {
	Name  string
	Value interface{}
}

// EnumType maps a string to a named member. Lookup is by exact member name
// after optional upper-case normalization of the raw value.
type EnumType struct {
	name           string
	members        []EnumMember
	byName         map[string]EnumMember
	transformUpper bool
}

// NewEnum returns an EnumType over the given members, in order. Raw values
// are upper-cased before lookup by default; use SetTransformUpper(false) for
// case-sensitive matching.
func NewEnum(name string, members ...EnumMember) *EnumType {
	byName := make(map[string]EnumMember, len(members))
	for _, m := range members {
		byName[m.Name] = m
	}
	return &EnumType{
		name:           name,
		members:        members,
		byName:         byName,
		transformUpper: true,
	}
}

// SetTransformUpper configures whether raw values are upper-cased before
// lookup.
func (t *EnumType) SetTransformUpper(enabled bool) *EnumType {
	t.transformUpper = enabled
	return t
}

func (t *EnumType) Name() string {
	return t.name
}

func (t *EnumType) Convert(value string, param *Param, ctx *Context) (interface{}, error) {
	if t.transformUpper {
		value = cases.Upper(language.Und).String(value)
	}
	m, ok := t.byName[value]
	if !ok {
		// The post-normalization value is reported, matching what was
		// actually looked up.
		return nil, fail(param, ctx, "Unknown %s value: %s", t.name, value)
	}
	return m.Value, nil
}

// Metavar renders the choice list for help text. Curly braces indicate a
// required positional argument; square brackets an option or optional
// argument.
func (t *EnumType) Metavar(param *Param) string {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.Name
	}
	choices := strings.Join(names, "|")

	if param != nil && param.Required && param.Positional {
		return "{" + choices + "}"
	}
	return "[" + choices + "]"
}

func (t *EnumType) String() string {
	return strings.ToUpper(t.name)
}
