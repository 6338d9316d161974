package validators

import (
	"net"
	"strings"
)

// NormalizeEmail lowercases and trims an address so lookups and uniqueness
// checks all see the same form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid checks that the address domain actually receives mail:
// an MX record, or failing that a resolvable host. Registration rejects
// addresses nothing could ever deliver to.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
