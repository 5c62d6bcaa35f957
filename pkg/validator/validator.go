package validator

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/errstore"
	"github.com/dmitrymomot/formkit/pkg/events"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/merge"
	"github.com/dmitrymomot/formkit/pkg/phone"
)

// Validator runs field checks and records failures into a Sink.
// Every check method returns the receiver so calls can be chained.
type Validator struct {
	sink       errstore.Sink
	lang       string
	translator *i18n.Translator
	logger     *slog.Logger
	strategy   merge.Strategy
	notifier   events.Broadcaster[StrengthEvent]
	analyzer   StrengthAnalyzer
	phones     phone.Parser
	now        func() time.Time

	mu         sync.RWMutex
	normalized map[string]string
}

// Option configures a Validator.
type Option func(*Validator)

// WithLanguage selects the catalog used to render messages.
func WithLanguage(lang string) Option {
	return func(v *Validator) {
		if lang != "" {
			v.lang = strings.ToLower(lang)
		}
	}
}

// WithTranslator replaces the embedded en/fr catalogs.
func WithTranslator(t *i18n.Translator) Option {
	return func(v *Validator) {
		if t != nil {
			v.translator = t
		}
	}
}

// WithLogger sets the logger failures are reported to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithArrayStrategy sets how list options are combined with their defaults.
// Replace is the default.
func WithArrayStrategy(s merge.Strategy) Option {
	return func(v *Validator) {
		v.strategy = s
	}
}

// WithStrengthNotifier receives a message every time a password is analyzed.
func WithStrengthNotifier(b events.Broadcaster[StrengthEvent]) Option {
	return func(v *Validator) {
		v.notifier = b
	}
}

// WithStrengthAnalyzer replaces AnalyzeStrength for passwords with analyzeStrength set.
func WithStrengthAnalyzer(a StrengthAnalyzer) Option {
	return func(v *Validator) {
		if a != nil {
			v.analyzer = a
		}
	}
}

// WithPhoneParser replaces the libphonenumber parser used by Tel.
func WithPhoneParser(p phone.Parser) Option {
	return func(v *Validator) {
		if p != nil {
			v.phones = p
		}
	}
}

// WithClock overrides the time source used for future/past date checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// New returns a Validator writing into sink. A nil sink gets a fresh errstore.Store.
func New(sink errstore.Sink, opts ...Option) *Validator {
	if sink == nil {
		sink = errstore.New()
	}
	v := &Validator{
		sink:       sink,
		lang:       i18n.DefaultLanguage,
		logger:     logger.Discard(),
		strategy:   merge.Replace,
		analyzer:   AnalyzeStrength,
		phones:     phone.LibPhoneNumber{},
		now:        time.Now,
		normalized: make(map[string]string),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.translator == nil {
		v.translator = DefaultTranslator()
	}
	return v
}

// Sink returns the state the validator writes into.
func (v *Validator) Sink() errstore.Sink {
	return v.sink
}

// Language returns the catalog language messages are rendered in.
func (v *Validator) Language() string {
	return v.lang
}

// Normalized returns the canonical form recorded by the last successful
// check that normalizes its input (currently tel).
func (v *Validator) Normalized(field string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s, ok := v.normalized[field]
	return s, ok
}

func (v *Validator) setNormalized(field, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if value == "" {
		delete(v.normalized, field)
		return
	}
	v.normalized[field] = value
}

// Check runs custom rules for field, stopping at the first failure.
func (v *Validator) Check(field string, rules ...Rule) *Validator {
	v.first(field, rules...)
	return v
}

// first records the first failing rule and reports whether all passed.
func (v *Validator) first(field string, rules ...Rule) bool {
	for _, rule := range rules {
		if !rule.Check() {
			v.record(field, rule.Error)
			return false
		}
	}
	return true
}

// every records each failing rule and reports whether all passed.
func (v *Validator) every(field string, rules ...Rule) bool {
	ok := true
	for _, rule := range rules {
		if !rule.Check() {
			v.record(field, rule.Error)
			ok = false
		}
	}
	return ok
}

func (v *Validator) record(field string, e ValidationError) {
	v.sink.Fail(field, v.message(e))
	v.logger.Debug("field validation failed",
		logger.Field(field),
		slog.String("rule", e.TranslationKey),
	)
}

// message renders e in the validator's language.
func (v *Validator) message(e ValidationError) string {
	if e.TranslationKey == "" {
		return e.Message
	}
	return v.translator.Td(v.lang, e.TranslationKey, e.Message, e.args()...)
}

// fail builds a failure for field.
func fail(field, key, fallback string, values map[string]any) ValidationError {
	return ValidationError{
		Field:             field,
		Message:           fallback,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// resolve merges a user bag over defaults into T, panicking on misconfiguration.
func resolve[T any](v *Validator, kind string, user, defaults Bag) T {
	out, err := merge.Resolve[T](user, defaults, v.strategy)
	if err != nil {
		panic(wrapOptions(kind, err))
	}
	return out
}

func (v *Validator) publish(ctx context.Context, event StrengthEvent) {
	if v.notifier == nil {
		return
	}
	if err := v.notifier.Broadcast(ctx, events.NewMessage(event)); err != nil {
		v.logger.Warn("failed to publish password strength",
			logger.Field(event.Field),
			logger.Error(err),
		)
	}
}
