package validator

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/formkit/pkg/merge"
)

// Bag is a loosely typed option set merged over a kind's defaults.
// Keys use the camelCase names of the option structs' mapstructure tags.
type Bag = merge.Bag

func wrapOptions(kind string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidOptions, kind, err)
}

// TextOptions configures the text check, which most other kinds build on.
type TextOptions struct {
	RequiredInput bool `mapstructure:"requiredInput"`
	// StripTags removes HTML and PHP markup before the pattern and length checks.
	StripTags      bool   `mapstructure:"escapestripHtmlAndPhpTags"`
	RegexValidator string `mapstructure:"regexValidator"`
	// MinLength and MaxLength count runes of the trimmed value; zero disables.
	MinLength int `mapstructure:"minLength"`
	MaxLength int `mapstructure:"maxLength"`
	// ErrorMessage replaces the pattern mismatch message.
	ErrorMessage    string `mapstructure:"errorMessage"`
	EgAwaitedString string `mapstructure:"egAwaitedString"`
	TypeInput       string `mapstructure:"typeInput"`
}

// DefaultTextOptions returns the bag Text merges user options over.
func DefaultTextOptions() Bag {
	return Bag{
		"requiredInput":             true,
		"escapestripHtmlAndPhpTags": true,
		"regexValidator":            `\p{L}`,
		"minLength":                 0,
		"maxLength":                 255,
		"errorMessage":              "",
		"egAwaitedString":           "",
		"typeInput":                 "text",
	}
}

type EmailOptions struct {
	TextOptions `mapstructure:",squash"`

	AllowDisplayName   bool `mapstructure:"allowDisplayName"`
	RequireDisplayName bool `mapstructure:"requireDisplayName"`
	AllowUTF8LocalPart bool `mapstructure:"allowUtf8LocalPart"`
	RequireTLD         bool `mapstructure:"requireTld"`
	AllowUnderscores   bool `mapstructure:"allowUnderscores"`
	IgnoreMaxLength    bool `mapstructure:"ignoreMaxLength"`
	AllowIPDomain      bool `mapstructure:"allowIpDomain"`
	// DomainSpecificValidation applies Gmail's local-part rules to gmail.com addresses.
	DomainSpecificValidation bool `mapstructure:"domainSpecificValidation"`
	// HostBlacklist and HostWhitelist entries are literal hosts or /regexp/ patterns.
	HostBlacklist []string `mapstructure:"hostBlacklist"`
	HostWhitelist []string `mapstructure:"hostWhitelist"`
	// BlacklistedChars is a character-class body rejected in the local part.
	BlacklistedChars string `mapstructure:"blacklistedChars"`
}

func DefaultEmailOptions() Bag {
	return Bag{
		"requiredInput":             true,
		"escapestripHtmlAndPhpTags": false,
		"regexValidator":            `^.+@[^@\s]+$`,
		"minLength":                 0,
		"maxLength":                 0,
		"errorMessage":              "",
		"egAwaitedString":           "jean.dupont@exemple.fr",
		"typeInput":                 "email",
		"allowDisplayName":          false,
		"requireDisplayName":        false,
		"allowUtf8LocalPart":        true,
		"requireTld":                true,
		"allowUnderscores":          false,
		"ignoreMaxLength":           false,
		"allowIpDomain":             false,
		"domainSpecificValidation":  false,
		"hostBlacklist":             []string{},
		"hostWhitelist":             []string{},
		"blacklistedChars":          "",
	}
}

type FQDNOptions struct {
	RequiredInput    bool `mapstructure:"requiredInput"`
	RequireTLD       bool `mapstructure:"requireTld"`
	AllowUnderscores bool `mapstructure:"allowUnderscores"`
	AllowTrailingDot bool `mapstructure:"allowTrailingDot"`
	AllowNumericTLD  bool `mapstructure:"allowNumericTld"`
	// AllowWildcard accepts a leading "*." label.
	AllowWildcard   bool `mapstructure:"allowWildcard"`
	IgnoreMaxLength bool `mapstructure:"ignoreMaxLength"`
}

func DefaultFQDNOptions() Bag {
	return Bag{
		"requiredInput":    true,
		"requireTld":       true,
		"allowUnderscores": false,
		"allowTrailingDot": false,
		"allowNumericTld":  false,
		"allowWildcard":    false,
		"ignoreMaxLength":  false,
	}
}

type IPOptions struct {
	RequiredInput bool `mapstructure:"requiredInput"`
	// Version restricts the family: 4, 6, or 0 for either.
	Version int `mapstructure:"version"`
}

func DefaultIPOptions() Bag {
	return Bag{
		"requiredInput": true,
		"version":       0,
	}
}

type DateOptions struct {
	RequiredInput bool `mapstructure:"requiredInput"`
	// Format is a year/month/day layout such as YYYY/MM/DD, DD-MM-YYYY or MM.DD.YY.
	Format     string   `mapstructure:"format"`
	Delimiters []string `mapstructure:"delimiters"`
	// StrictMode requires the input to have the format's exact length and delimiter.
	StrictMode  bool       `mapstructure:"strictMode"`
	MinDate     *time.Time `mapstructure:"minDate"`
	MaxDate     *time.Time `mapstructure:"maxDate"`
	AllowFuture bool       `mapstructure:"allowFuture"`
	AllowPast   bool       `mapstructure:"allowPast"`
}

func DefaultDateOptions() Bag {
	return Bag{
		"requiredInput": true,
		"format":        "YYYY/MM/DD",
		"delimiters":    []string{"/", "-", "."},
		"strictMode":    false,
		"allowFuture":   true,
		"allowPast":     true,
	}
}

type NumberOptions struct {
	RequiredInput bool     `mapstructure:"requiredInput"`
	Min           *float64 `mapstructure:"min"`
	Max           *float64 `mapstructure:"max"`
	// Step is measured from Min (or zero); zero disables the check.
	Step           float64 `mapstructure:"step"`
	RegexValidator string  `mapstructure:"regexValidator"`
}

func DefaultNumberOptions() Bag {
	return Bag{
		"requiredInput":  true,
		"step":           0,
		"regexValidator": "",
	}
}

type SelectOptions struct {
	RequiredInput  bool     `mapstructure:"requiredInput"`
	OptionsChoices []string `mapstructure:"optionsChoices"`
	// EscapeHTML also matches submitted values against choices written HTML-escaped.
	EscapeHTML bool `mapstructure:"escapeHtml"`
}

func DefaultSelectOptions() Bag {
	return Bag{
		"requiredInput":  true,
		"optionsChoices": []string{},
		"escapeHtml":     true,
	}
}

type CheckboxOptions struct {
	SelectOptions `mapstructure:",squash"`

	// Min and Max bound the number of checked boxes; zero disables.
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

func DefaultCheckboxOptions() Bag {
	return Bag{
		"requiredInput":  false,
		"optionsChoices": []string{},
		"escapeHtml":     true,
		"min":            0,
		"max":            0,
	}
}

type RadioOptions struct {
	RequiredInput  bool     `mapstructure:"requiredInput"`
	OptionsChoices []string `mapstructure:"optionsChoices"`
}

func DefaultRadioOptions() Bag {
	return Bag{
		"requiredInput":  true,
		"optionsChoices": []string{},
	}
}

type PasswordOptions struct {
	TextOptions `mapstructure:",squash"`

	RequireUppercase   bool `mapstructure:"requireUppercase"`
	RequireLowercase   bool `mapstructure:"requireLowercase"`
	RequireDigit       bool `mapstructure:"requireDigit"`
	RequireSymbol      bool `mapstructure:"requireSymbol"`
	RequirePunctuation bool `mapstructure:"requirePunctuation"`
	// RequireSpecialChar accepts either a symbol or a punctuation mark.
	RequireSpecialChar bool `mapstructure:"requireSpecialChar"`

	UppercaseRegex   string `mapstructure:"uppercaseRegex"`
	LowercaseRegex   string `mapstructure:"lowercaseRegex"`
	DigitRegex       string `mapstructure:"digitRegex"`
	SymbolRegex      string `mapstructure:"symbolRegex"`
	PunctuationRegex string `mapstructure:"punctuationRegex"`
	SpecialCharRegex string `mapstructure:"specialCharRegex"`

	AnalyzeStrength bool `mapstructure:"analyzeStrength"`
}

func DefaultPasswordOptions() Bag {
	return Bag{
		"requiredInput":             true,
		"escapestripHtmlAndPhpTags": false,
		"regexValidator":            `^.+$`,
		"minLength":                 8,
		"maxLength":                 64,
		"errorMessage":              "",
		"egAwaitedString":           "",
		"typeInput":                 "password",
		"requireUppercase":          true,
		"requireLowercase":          true,
		"requireDigit":              true,
		"requireSymbol":             false,
		"requirePunctuation":        false,
		"requireSpecialChar":        true,
		"uppercaseRegex":            `\p{Lu}`,
		"lowercaseRegex":            `\p{Ll}`,
		"digitRegex":                `\p{Nd}`,
		"symbolRegex":               `\p{S}`,
		"punctuationRegex":          `\p{P}`,
		"specialCharRegex":          `[\p{S}\p{P}]`,
		"analyzeStrength":           false,
	}
}

type TelOptions struct {
	RequiredInput bool   `mapstructure:"requiredInput"`
	DefaultRegion string `mapstructure:"defaultRegion"`
	// Format is the canonical rendering stored by Normalized: E164, INTERNATIONAL or NATIONAL.
	Format string `mapstructure:"format"`
}

func DefaultTelOptions() Bag {
	return Bag{
		"requiredInput": true,
		"defaultRegion": "FR",
		"format":        "E164",
	}
}

type FileOptions struct {
	RequiredInput bool `mapstructure:"requiredInput"`
	// MaxSize in bytes; zero disables.
	MaxSize           int64    `mapstructure:"maxSize"`
	AllowedMIMETypes  []string `mapstructure:"allowedMimeTypes"`
	AllowedExtensions []string `mapstructure:"allowedExtensions"`
	// Media restricts the sniffed family: image, video, audio or pdf.
	Media string `mapstructure:"media"`
}

func DefaultFileOptions() Bag {
	return Bag{
		"requiredInput":     true,
		"maxSize":           0,
		"allowedMimeTypes":  []string{},
		"allowedExtensions": []string{},
		"media":             "",
	}
}
