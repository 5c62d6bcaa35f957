package validator

import (
	"net/netip"
	"strings"
)

// IP checks an IPv4 or IPv6 literal, optionally restricted to one family.
func (v *Validator) IP(field, value string, opts Bag) *Validator {
	o := resolve[IPOptions](v, "ip", opts, DefaultIPOptions())
	value = strings.TrimSpace(value)
	if value == "" {
		if o.RequiredInput {
			v.record(field, required(field))
		}
		return v
	}

	if isIP(value, o.Version) {
		return v
	}
	if o.Version == 4 || o.Version == 6 {
		v.record(field, fail(field, "validation.ip.version", "invalid IP address",
			map[string]any{"version": o.Version}))
		return v
	}
	v.record(field, fail(field, "validation.ip.invalid", "invalid IP address", nil))
	return v
}

// isIP reports whether s parses as an address of the given version (0 for any).
func isIP(s string, version int) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}
	switch version {
	case 4:
		return addr.Is4()
	case 6:
		return addr.Is6()
	default:
		return true
	}
}

// isIPDomain accepts a bare or bracketed IP literal as an email domain.
func isIPDomain(domain string) bool {
	if isIP(domain, 0) {
		return true
	}
	if !strings.HasPrefix(domain, "[") || !strings.HasSuffix(domain, "]") {
		return false
	}
	inner := domain[1 : len(domain)-1]
	return inner != "" && isIP(strings.TrimPrefix(inner, "IPv6:"), 0)
}
