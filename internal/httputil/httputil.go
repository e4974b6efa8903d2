// Package httputil classifies the HTTP strings an operation carries: status
// codes and media types.
package httputil

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// Status code bounds accepted in a responses map.
const (
	MinStatusCode = 100
	MaxStatusCode = 599
)

// DefaultResponse is the responses key that matches any status code.
const DefaultResponse = "default"

// ValidStatusCode reports whether code may key a responses map: "default", a
// range such as "4XX", or a number from 100 to 599.
func ValidStatusCode(code string) bool {
	if code == DefaultResponse {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if strings.HasSuffix(code, "XX") {
		return code[0] >= '1' && code[0] <= '5'
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= MinStatusCode && n <= MaxStatusCode
}

// IsStandardStatusCode reports whether code is a numeric status code with a
// registered reason phrase.
func IsStandardStatusCode(code string) bool {
	n, err := strconv.Atoi(code)
	return err == nil && http.StatusText(n) != ""
}

// IsValidMediaType reports whether mediaType parses as a media type or is a
// wildcard range such as "image/*".
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	if major, ok := strings.CutSuffix(mediaType, "/*"); ok {
		return major != "" && major != "*" && !strings.Contains(major, "/")
	}
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	major, _, ok := strings.Cut(base, "/")
	return ok && major != "*"
}
