package dec

import (
	"time"

	jsondec "github.com/halvdan/jsondec"
	"github.com/halvdan/jsondec/i18n"
)

// Time decodes an RFC 3339 timestamp string into time.Time.
func Time() Decoder[time.Time] {
	return TimeLayout(time.RFC3339)
}

// TimeLayout decodes a timestamp string using the given layout.
func TimeLayout(layout string) Decoder[time.Time] {
	return TryMap(String(), func(s string) (time.Time, error) {
		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, jsondec.Issues{jsondec.Issue{
				Path:    "/",
				Code:    jsondec.CodeParseError,
				Message: i18n.T(jsondec.CodeParseError, nil),
				Hint:    err.Error(),
				Cause:   err,
				Offset:  -1,
			}}
		}
		return t, nil
	})
}
