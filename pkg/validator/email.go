package validator

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength  = 254
	maxLocalLength  = 64
	maxDomainLength = 254
)

var (
	splitNameAddress = regexp.MustCompile(`^([^\x00-\x1F\x7F-\x9F]+)<`)
	emailUserPart    = regexp.MustCompile("(?i)^[a-z\\d!#$%&'*+\\-/=?^_`{|}~]+$")
	emailUserUTF8    = regexp.MustCompile("(?i)^[a-z\\d!#$%&'*+\\-/=?^_`{|}~\\x{00A1}-\\x{D7FF}\\x{F900}-\\x{FDCF}\\x{FDF0}-\\x{FFEF}]+$")
	quotedUser       = regexp.MustCompile(`(?i)^([\s\x01-\x08\x0b\x0c\x0e-\x1f\x7f\x21\x23-\x5b\x5d-\x7e]|(\\[\x01-\x09\x0b\x0c\x0d-\x7f]))*$`)
	quotedUserUTF8   = regexp.MustCompile(`(?i)^([\s\x01-\x08\x0b\x0c\x0e-\x1f\x7f\x21\x23-\x5b\x5d-\x7e\x{00A1}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}]|(\\[\x01-\x09\x0b\x0c\x0d-\x7f\x{00A1}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}]))*$`)
	gmailUserPart    = regexp.MustCompile(`^[a-z\d]+$`)
	displayNameChars = regexp.MustCompile(`[.";<>]`)
)

// Email runs the text checks with a lenient address pattern and, only when
// they pass, parses the address structurally. Each structural rule stops the
// pipeline with its own message.
func (v *Validator) Email(field, value string, opts Bag) *Validator {
	o := resolve[EmailOptions](v, "email", opts, DefaultEmailOptions())
	if !v.text(field, value, o.TextOptions, "validation.email.invalid") || isBlank(value) {
		return v
	}
	if e, ok := checkEmail(field, strings.TrimSpace(value), o); !ok {
		v.record(field, e)
	}
	return v
}

func checkEmail(field, addr string, o EmailOptions) (ValidationError, bool) {
	if o.AllowDisplayName || o.RequireDisplayName {
		if m := splitNameAddress.FindStringSubmatch(addr); m != nil {
			name := m[1]
			addr = strings.Replace(addr, name, "", 1)
			addr = strings.TrimSuffix(strings.TrimPrefix(addr, "<"), ">")
			name = strings.TrimSuffix(name, " ")
			if !validDisplayName(name) {
				return fail(field, "validation.email.display_name", "invalid display name", nil), false
			}
		} else if o.RequireDisplayName {
			return fail(field, "validation.email.display_name_required", "display name required", nil), false
		}
	}

	if !o.IgnoreMaxLength && len(addr) > maxEmailLength {
		return fail(field, "validation.email.too_long", "address too long", nil), false
	}

	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return fail(field, "validation.email.invalid", "invalid email address", nil), false
	}
	user, domain := addr[:at], addr[at+1:]
	lowerDomain := strings.ToLower(domain)
	hostValues := map[string]any{"domain": domain}

	if len(o.HostBlacklist) > 0 && matchHost(lowerDomain, o.HostBlacklist) {
		return fail(field, "validation.email.host_blacklisted", "domain not accepted", hostValues), false
	}
	if len(o.HostWhitelist) > 0 && !matchHost(lowerDomain, o.HostWhitelist) {
		return fail(field, "validation.email.host_not_whitelisted", "domain not accepted", hostValues), false
	}

	if o.DomainSpecificValidation && (lowerDomain == "gmail.com" || lowerDomain == "googlemail.com") {
		if !validGmailUser(user) {
			return fail(field, "validation.email.gmail", "invalid gmail address", nil), false
		}
	}

	if !o.IgnoreMaxLength {
		if len(user) > maxLocalLength {
			return fail(field, "validation.email.local_too_long", "local part too long", nil), false
		}
		if len(domain) > maxDomainLength {
			return fail(field, "validation.email.domain_too_long", "domain too long", nil), false
		}
	}

	fqdn := FQDNOptions{
		RequireTLD:       o.RequireTLD,
		IgnoreMaxLength:  o.IgnoreMaxLength,
		AllowUnderscores: o.AllowUnderscores,
	}
	if _, ok := checkFQDN(field, domain, fqdn); !ok {
		if !o.AllowIPDomain {
			return fail(field, "validation.email.fqdn", "invalid domain", hostValues), false
		}
		// Any domain that is not an FQDN is judged as an IP literal from here on.
		if !isIPDomain(domain) {
			return fail(field, "validation.email.ip", "invalid IP domain", hostValues), false
		}
	}

	if o.BlacklistedChars != "" {
		re := compile("[" + o.BlacklistedChars + "]+")
		if re.MatchString(user) {
			return fail(field, "validation.email.blacklisted_chars", "forbidden characters", nil), false
		}
	}

	if !validLocalPart(user, o.AllowUTF8LocalPart) {
		return fail(field, "validation.email.local_part", "invalid local part", nil), false
	}
	return ValidationError{}, true
}

func validDisplayName(name string) bool {
	unquoted := name
	if len(name) > 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		unquoted = name[1 : len(name)-1]
	}
	if strings.TrimSpace(unquoted) == "" {
		return false
	}
	if !displayNameChars.MatchString(unquoted) {
		return true
	}
	if unquoted == name {
		return false
	}
	// Inside quotes every double quote must be escaped.
	return strings.Count(unquoted, `"`) == strings.Count(unquoted, `\"`)
}

func validGmailUser(user string) bool {
	username, _, _ := strings.Cut(strings.ToLower(user), "+")
	n := len(strings.ReplaceAll(username, ".", ""))
	if n < 6 || n > 30 {
		return false
	}
	for part := range strings.SplitSeq(username, ".") {
		if !gmailUserPart.MatchString(part) {
			return false
		}
	}
	return true
}

func validLocalPart(user string, utf8 bool) bool {
	if len(user) >= 2 && strings.HasPrefix(user, `"`) && strings.HasSuffix(user, `"`) {
		inner := user[1 : len(user)-1]
		if utf8 {
			return quotedUserUTF8.MatchString(inner)
		}
		return quotedUser.MatchString(inner)
	}

	pattern := emailUserPart
	if utf8 {
		pattern = emailUserUTF8
	}
	for part := range strings.SplitSeq(user, ".") {
		if !pattern.MatchString(part) {
			return false
		}
	}
	return true
}

// matchHost reports whether host equals an entry or matches a /pattern/ entry.
func matchHost(host string, entries []string) bool {
	for _, entry := range entries {
		if len(entry) > 2 && strings.HasPrefix(entry, "/") && strings.HasSuffix(entry, "/") {
			if compile(entry[1 : len(entry)-1]).MatchString(host) {
				return true
			}
			continue
		}
		if host == strings.ToLower(entry) {
			return true
		}
	}
	return false
}
