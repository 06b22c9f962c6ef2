package protocol

import (
	"regexp"
	"strings"
)

const atext = "[A-Za-z0-9_!#$%&'*+\\-/=?^`{|}~]"

var (
	localPartRe = regexp.MustCompile(`^(?:` + atext + `+\.)*` + atext + `+$`)
	labelRe     = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)
	ipv4Octet   = `(?:[01]?\d{1,2}|2[0-4]\d|25[0-5])`
	addrLitRe   = regexp.MustCompile(`^\[(?:` + ipv4Octet + `\.){3}` + ipv4Octet + `\]$`)
)

// IsEmail reports whether s is a syntactically valid email address. Logins use
// it to decide between the email and username endpoints.
func IsEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || !localPartRe.MatchString(local) {
		return false
	}

	if addrLitRe.MatchString(domain) {
		return true
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !labelRe.MatchString(label) {
			return false
		}
	}
	return true
}
