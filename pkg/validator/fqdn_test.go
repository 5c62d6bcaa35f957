package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestFQDN(t *testing.T) {
	tests := []struct {
		name  string
		value string
		opts  validator.Bag
		msg   string // empty means valid
	}{
		{"simple", "mon-domaine.fr", nil, ""},
		{"subdomain", "www.mon-domaine.fr", nil, ""},
		{"punycode tld", "exemple.xn--p1ai", nil, ""},
		{"unicode label", "café.fr", nil, ""},
		{"supplementary plane label", "i❤️🍕.fr", nil, ""},
		{"supplementary plane tld", "pizza.🍕🍕", nil, "The domain must end with a valid extension."},
		{"numeric tld", "domaine.123", nil, "The domain extension cannot be numeric."},
		{"numeric tld allowed", "domaine.123", validator.Bag{"allowNumericTld": true}, ""},
		{"leading hyphen", "-domaine.com", nil, "Domain parts cannot start or end with a hyphen."},
		{"trailing hyphen", "domaine-.com", nil, "Domain parts cannot start or end with a hyphen."},
		{"trailing dot", "domaine.com.", nil, "The domain must end with a valid extension."},
		{"trailing dot allowed", "domaine.com.", validator.Bag{"allowTrailingDot": true}, ""},
		{"no tld", "localhost", nil, "The domain must end with a valid extension."},
		{"no tld allowed", "localhost", validator.Bag{"requireTld": false}, ""},
		{"single letter tld", "domaine.f", nil, "The domain must end with a valid extension."},
		{"underscore", "mon_domaine.fr", nil, "The domain cannot contain underscores."},
		{"underscore allowed", "mon_domaine.fr", validator.Bag{"allowUnderscores": true}, ""},
		{"wildcard", "*.domaine.fr", nil, "The domain contains invalid characters."},
		{"wildcard allowed", "*.domaine.fr", validator.Bag{"allowWildcard": true}, ""},
		{"empty label", "domaine..fr", nil, "The domain contains invalid characters."},
		{"space", "mon domaine.fr", nil, "The domain contains invalid characters."},
		{"full width", "ｅxample.com", nil, "The domain contains full-width characters."},
		{"label too long", strings.Repeat("a", 64) + ".fr", nil, "Each part of the domain must be at most 63 characters long."},
		{"label length ignored", strings.Repeat("a", 64) + ".fr", validator.Bag{"ignoreMaxLength": true}, ""},
		{"empty", "", nil, mandatory},
		{"empty optional", "", validator.Bag{"requiredInput": false}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, store := newValidator(t)
			v.FQDN("domain", tt.value, tt.opts)
			if tt.msg == "" {
				assert.True(t, store.IsValid("domain"), store.Messages("domain"))
				return
			}
			assert.False(t, store.IsValid("domain"))
			assert.Equal(t, []string{tt.msg}, store.Messages("domain"))
		})
	}
}

func TestIP(t *testing.T) {
	tests := []struct {
		name  string
		value string
		opts  validator.Bag
		msg   string
	}{
		{"ipv4", "192.168.1.10", nil, ""},
		{"ipv6", "2001:db8::1", nil, ""},
		{"ipv6 zone", "fe80::1%eth0", nil, ""},
		{"out of range", "256.1.1.1", nil, "Please enter a valid IP address."},
		{"hostname", "exemple.fr", nil, "Please enter a valid IP address."},
		{"v4 only", "::1", validator.Bag{"version": 4}, "Please enter a valid IPv4 address."},
		{"v6 only", "::1", validator.Bag{"version": 6}, ""},
		{"v6 rejects v4", "10.0.0.1", validator.Bag{"version": "6"}, "Please enter a valid IPv6 address."},
		{"empty", " ", nil, mandatory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, store := newValidator(t)
			v.IP("ip", tt.value, tt.opts)
			if tt.msg == "" {
				assert.True(t, store.IsValid("ip"), store.Messages("ip"))
				return
			}
			assert.Equal(t, []string{tt.msg}, store.Messages("ip"))
		})
	}
}
