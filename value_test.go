package params

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFlagSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	count := NewValue(Int, &Param{Name: "count"})
	fs.Var(count, "count", "how many")

	require.Nil(t, fs.Parse([]string{"--count", "42"}))
	assert.Equal(t, 42, count.Get())
	assert.Equal(t, uint(1), count.SetCount())
}

func TestValueFlagSetInvalid(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	count := NewValue(Int, &Param{Name: "count"})
	fs.Var(count, "count", "how many")

	err := fs.Parse([]string{"--count", "x"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "x is not a valid integer")
}

func TestValueStringEmptyBeforeSet(t *testing.T) {
	count := NewValue(Int, nil)
	assert.Equal(t, "", count.String())

	require.Nil(t, count.Set("7"))
	assert.Equal(t, "7", count.String())
}

func TestBind(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var port int
	fs.Var(Bind(IntRange(1, 65535), &port, &Param{Name: "port"}), "port", "listen port")

	require.Nil(t, fs.Parse([]string{"--port", "8080"}))
	assert.Equal(t, 8080, port)
}

func TestBindWrongTargetType(t *testing.T) {
	var s string
	v := Bind(Int, &s, nil)

	err := v.Set("1")
	require.NotNil(t, err)

	// A mismatched binding is a programmer error, not a validation failure.
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "INTEGER", Placeholder(Int, nil))
	assert.Equal(t, "IP_ADDRESS", Placeholder(IP, nil))

	color := colorEnum()
	assert.Equal(t, "[RED|GREEN]", Placeholder(color, &Param{}))
	assert.Equal(t, "{RED|GREEN}", Placeholder(color, &Param{Required: true, Positional: true}))
}
