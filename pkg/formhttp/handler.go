package formhttp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/errstore"
	"github.com/dmitrymomot/formkit/pkg/events"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/render"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Result is the JSON body of POST /validate.
type Result struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors"`
}

type handler struct {
	schema     *schema.Schema
	logger     *slog.Logger
	translator *i18n.Translator
	options    []validator.Option
	limiter    *limiter
}

// HandlerOption configures NewHandler.
type HandlerOption func(*handler)

func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTranslator replaces the embedded message catalogs, both for rendering
// and for Accept-Language negotiation.
func WithTranslator(t *i18n.Translator) HandlerOption {
	return func(h *handler) {
		if t != nil {
			h.translator = t
		}
	}
}

// WithValidatorOptions sets defaults for every validator the handler builds.
// The schema's own language and array strategy take precedence.
func WithValidatorOptions(opts ...validator.Option) HandlerOption {
	return func(h *handler) {
		h.options = append(h.options, opts...)
	}
}

// WithRateLimit throttles validation per client address: burst requests at
// once, then one more per interval. Rejected requests get 429 with Retry-After.
func WithRateLimit(burst int, interval time.Duration) HandlerOption {
	if burst <= 0 {
		panic("WithRateLimit: burst must be > 0")
	}
	if interval <= 0 {
		panic("WithRateLimit: interval must be > 0")
	}
	return func(h *handler) {
		h.limiter = newLimiter(burst, interval)
	}
}

// NewHandler serves a schema:
//
//	POST /validate          whole-form validation, JSON result, 422 when invalid
//	POST /validate/{field}  live validation of one field, rendered error block
//	GET  /healthz           liveness
func NewHandler(s *schema.Schema, opts ...HandlerOption) http.Handler {
	if s == nil {
		panic("formhttp: nil schema")
	}
	h := &handler{
		schema:     s,
		logger:     logger.Discard(),
		translator: validator.DefaultTranslator(),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware, middleware.RealIP, middleware.Recoverer)
	r.Get("/healthz", healthz)
	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(h.limiter.middleware)
		}
		r.Post("/validate", h.validateForm)
		r.Post("/validate/{field}", h.validateField)
	})
	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *handler) validateForm(w http.ResponseWriter, r *http.Request) {
	values, err := submittedValues(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	store := errstore.New()
	h.schema.Apply(h.validator(r, store), values)

	res := Result{Valid: store.IsFormValid(), Errors: store.Snapshot()}
	h.logger.InfoContext(r.Context(), "form validated",
		logger.Valid(res.Valid),
		slog.Int("invalid_fields", len(res.Errors)),
	)

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func (h *handler) validateField(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	if _, ok := h.schema.Field(field); !ok {
		http.NotFound(w, r)
		return
	}

	values, err := submittedValues(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	strength := events.NewMemoryBroadcaster[validator.StrengthEvent](1)
	defer strength.Close()
	scores := strength.Subscribe(context.WithoutCancel(r.Context()))

	store := errstore.New()
	v := h.validator(r, store, validator.WithStrengthNotifier(strength))
	if err := h.schema.ApplyField(v, field, values[field]); err != nil {
		http.NotFound(w, r)
		return
	}

	messages := store.Messages(field)
	h.logger.DebugContext(r.Context(), "field validated",
		logger.Field(field),
		logger.Valid(len(messages) == 0),
	)

	var signals map[string]any
	select {
	case msg, ok := <-scores.Receive(r.Context()):
		if ok {
			signals = map[string]any{"strength": map[string]int{field: msg.Data.Score}}
		}
	default:
	}

	if err := renderTempl(w, r, render.FieldErrors(field, messages), render.ErrorsSelector(field), signals); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render field errors", logger.Field(field), logger.Error(err))
	}
}

func (h *handler) validator(r *http.Request, store *errstore.Store, extra ...validator.Option) *validator.Validator {
	opts := make([]validator.Option, 0, len(h.options)+len(extra)+5)
	opts = append(opts, validator.WithTranslator(h.translator), validator.WithLogger(h.logger))
	opts = append(opts, h.options...)
	opts = append(opts, h.schema.ValidatorOptions()...)
	if lang := h.language(r); lang != "" {
		opts = append(opts, validator.WithLanguage(lang))
	}
	opts = append(opts, extra...)
	return validator.New(store, opts...)
}

// language picks ?lang=, then Accept-Language; empty keeps the schema's language.
func (h *handler) language(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}
	fallback := h.schema.Language
	if fallback == "" {
		fallback = h.translator.DefaultLanguage()
	}
	return i18n.Negotiate(header, h.translator.SupportedLanguages(), fallback)
}

func (h *handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WarnContext(r.Context(), "invalid submission", logger.Error(err))
	status := http.StatusBadRequest
	if errors.Is(err, ErrUnsupportedMediaType) {
		status = http.StatusUnsupportedMediaType
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
