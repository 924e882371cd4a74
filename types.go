package params

import (
	"encoding/base64"
	"net/netip"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Ready-made types for the conversions a CLI commonly needs. The numeric
// types declare the strconv sentinels as their invalid kinds; conversions
// without stdlib sentinels wrap ErrInvalid instead.
var (
	String   = NewBase("text", convertString)
	Int      = NewBase("integer", convertInt, strconv.ErrSyntax, strconv.ErrRange)
	Float    = NewBase("float", convertFloat, strconv.ErrSyntax, strconv.ErrRange)
	Bool     = NewBase("boolean", convertBool, strconv.ErrSyntax)
	Duration = NewBase("duration", convertDuration, ErrInvalid)
	Base64   = NewBase("base64 string", convertBase64, ErrInvalid)
	IP       = NewBase("ip address", convertIP, ErrInvalid)
	URL      = NewBase("url", convertURL, ErrInvalid)
)

// IntRange returns an integer type bounded to [min, max].
func IntRange(min int, max int) *RangeType[int] {
	return NewRange[int]("integer range", Int).Min(min).Max(max)
}

// FloatRange returns a float type bounded to [min, max].
func FloatRange(min float64, max float64) *RangeType[float64] {
	return NewRange[float64]("float range", Float).Min(min).Max(max)
}

func convertString(value string) (interface{}, error) {
	return value, nil
}

func convertInt(value string) (interface{}, error) {
	return strconv.Atoi(value)
}

func convertFloat(value string) (interface{}, error) {
	return strconv.ParseFloat(value, 64)
}

func convertBool(value string) (interface{}, error) {
	return strconv.ParseBool(value)
}

func convertDuration(value string) (interface{}, error) {
	v, err := time.ParseDuration(value)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%v", err)
	}
	return v, nil
}

// convertBase64 decodes a standard (RFC 4648) base64-encoded string into a
// byte slice.
func convertBase64(value string) (interface{}, error) {
	v, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%v", err)
	}
	return v, nil
}

func convertIP(value string) (interface{}, error) {
	v, err := netip.ParseAddr(value)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%v", err)
	}
	return v, nil
}

func convertURL(value string) (interface{}, error) {
	v, err := url.Parse(value)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%v", err)
	}
	if v.Scheme == "" || v.Host == "" {
		return nil, errors.Wrap(ErrInvalid, "missing scheme or host")
	}
	return v, nil
}
