package protocol

import (
	"net/http"
	"strings"

	"github.com/mcoot/wordfeud-go/internal/transport"
)

// ExtractSession returns the session token from the Set-Cookie headers, or ""
// when none is present. Every directive of every header is considered, so the
// cookie does not have to be the leading pair.
func ExtractSession(h http.Header) string {
	for _, line := range h.Values("Set-Cookie") {
		for _, directive := range strings.Split(line, ";") {
			name, value, _ := strings.Cut(directive, "=")
			if strings.TrimSpace(name) == transport.SessionCookie {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}
