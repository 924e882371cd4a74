package params

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Type converts a raw command-line token into a typed value. Implementations
// are configured once when the CLI surface is defined and must not mutate
// afterwards; Convert is a pure function of the receiver and its arguments.
//
// A Type may additionally implement fmt.Stringer for a display representation
// and Metavarer for custom help metavars.
type Type interface {
	Name() string
	Convert(value string, param *Param, ctx *Context) (interface{}, error)
}

// Metavarer is implemented by types that render their own help metavar, e.g.
// a choice list.
type Metavarer interface {
	Metavar(param *Param) string
}

// Param describes the parameter a value is being converted for. It is owned
// by the parsing framework and handed through to Convert so error reports can
// name the offending parameter.
type Param struct {
	Name       string
	Required   bool
	Positional bool
}

// Context carries the surrounding parsing context through Convert calls.
type Context struct {
	Command   string
	ErrWriter io.Writer
}

// ValidationError reports that a raw value was rejected as user input. The
// framework driving the parse is expected to render Message and abort with a
// non-zero exit status. Any other error returned from Convert indicates
// misuse of the library and must not be shown as a user input error.
type ValidationError struct {
	Message string
	Param   *Param
	Ctx     *Context
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fail(param *Param, ctx *Context, format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
		Param:   param,
		Ctx:     ctx,
	}
}

// ErrInvalid marks a conversion failure as invalid user input. Conversion
// functions whose underlying errors carry no stdlib sentinel (time.ParseDuration,
// base64 decoding, and so on) wrap this so BaseType can classify them.
var ErrInvalid = errors.New("invalid value")
