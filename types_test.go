package params

import (
	"net/netip"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringPassThrough(t *testing.T) {
	v, err := String.Convert("hello", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, "hello", v)
}

func TestBoolConvert(t *testing.T) {
	v, err := Bool.Convert("true", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, true, v)

	_, err = Bool.Convert("yes", nil, nil)
	require.NotNil(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "yes is not a valid boolean", vErr.Message)
}

func TestDurationConvert(t *testing.T) {
	v, err := Duration.Convert("15m", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, 15*time.Minute, v)

	_, err = Duration.Convert("15minutes", nil, nil)
	require.NotNil(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "15minutes is not a valid duration", vErr.Message)
}

func TestBase64Convert(t *testing.T) {
	v, err := Base64.Convert("SGVsbG8sIHdvcmxkIQ==", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, []byte("Hello, world!"), v)

	_, err = Base64.Convert("!!!", nil, nil)
	require.NotNil(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "!!! is not a valid base64 string", vErr.Message)
}

func TestIPConvert(t *testing.T) {
	v, err := IP.Convert("127.0.0.1", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, netip.MustParseAddr("127.0.0.1"), v)

	v, err = IP.Convert("::1", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, netip.MustParseAddr("::1"), v)

	_, err = IP.Convert("999.0.0.1", nil, nil)
	require.NotNil(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "999.0.0.1 is not a valid ip address", vErr.Message)
}

func TestURLConvert(t *testing.T) {
	v, err := URL.Convert("https://example.com/x", nil, nil)
	require.Nil(t, err)

	u, ok := v.(*url.URL)
	require.True(t, ok)
	assert.Equal(t, "example.com", u.Host)

	_, err = URL.Convert("not a url", nil, nil)
	require.NotNil(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "not a url is not a valid url", vErr.Message)
}

func TestIntRange(t *testing.T) {
	v, err := IntRange(1, 10).Convert("5", nil, nil)
	require.Nil(t, err)
	assert.Equal(t, 5, v)

	_, err = IntRange(1, 10).Convert("11", nil, nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "not in the valid range of 1 to 10")
}
