package validator_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/events"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		value string
		opts  validator.Bag
		msgs  []string // nil means valid
	}{
		{"strong", "Passw0rd!", nil, nil},
		{"symbol counts as special", "Passw0rd$", nil, nil},
		{
			"missing classes accumulate", "password",
			nil,
			[]string{
				"The password must contain an uppercase letter.",
				"The password must contain a digit.",
				"The password must contain a special character.",
			},
		},
		{
			"classes and length together", "Pa1!",
			nil,
			[]string{"Must be at least 8 characters long."},
		},
		{
			"class failures then length", "pa1",
			nil,
			[]string{
				"The password must contain an uppercase letter.",
				"The password must contain a special character.",
				"Must be at least 8 characters long.",
			},
		},
		{"empty only reports mandatory", "", nil, []string{mandatory}},
		{
			"too long", strings.Repeat("Aa1!", 17),
			nil,
			[]string{"Must be at most 64 characters long."},
		},
		{
			"toggles off", "password",
			validator.Bag{"requireUppercase": false, "requireDigit": false, "requireSpecialChar": false},
			nil,
		},
		{
			"punctuation required", "Passw0rd$",
			validator.Bag{"requirePunctuation": true},
			[]string{"The password must contain a punctuation mark."},
		},
		{
			"symbol required", "Passw0rd!",
			validator.Bag{"requireSymbol": true},
			[]string{"The password must contain a symbol."},
		},
		{
			"custom class regex", "Passw0rd!",
			validator.Bag{"digitRegex": `[0-9]{2}`},
			[]string{"The password must contain a digit."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, store := newValidator(t)
			v.Password("password", tt.value, tt.opts)
			if tt.msgs == nil {
				assert.True(t, store.IsValid("password"), store.Messages("password"))
				return
			}
			assert.False(t, store.IsValid("password"))
			assert.Equal(t, tt.msgs, store.Messages("password"))
		})
	}
}

func TestPassword_Strength(t *testing.T) {
	receive := func(t *testing.T, sub events.Subscriber[validator.StrengthEvent]) validator.StrengthEvent {
		t.Helper()
		select {
		case msg := <-sub.Receive(context.Background()):
			return msg.Data
		case <-time.After(time.Second):
			t.Fatal("strength event not published")
			return validator.StrengthEvent{}
		}
	}

	t.Run("published without affecting validity", func(t *testing.T) {
		bus := events.NewMemoryBroadcaster[validator.StrengthEvent](4)
		defer bus.Close()
		sub := bus.Subscribe(context.Background())

		v, store := newValidator(t, validator.WithStrengthNotifier(bus))
		v.Password("password", "short", validator.Bag{"analyzeStrength": true})

		event := receive(t, sub)
		assert.Equal(t, "password", event.Field)
		assert.Equal(t, 5, event.Analysis.Length)
		assert.Equal(t, 0, event.Score)
		assert.False(t, store.IsValid("password"))
	})

	t.Run("custom analyzer", func(t *testing.T) {
		bus := events.NewMemoryBroadcaster[validator.StrengthEvent](4)
		defer bus.Close()
		sub := bus.Subscribe(context.Background())

		analyzer := func(string) (validator.Analysis, int) {
			return validator.Analysis{Entropy: 99}, 3
		}
		v, store := newValidator(t,
			validator.WithStrengthNotifier(bus),
			validator.WithStrengthAnalyzer(analyzer),
		)
		v.Password("password", "Passw0rd!", validator.Bag{"analyzeStrength": true})

		event := receive(t, sub)
		assert.Equal(t, 3, event.Score)
		assert.InDelta(t, 99, event.Analysis.Entropy, 0.001)
		assert.True(t, store.IsValid("password"))
	})

	t.Run("not analyzed by default", func(t *testing.T) {
		called := false
		v, _ := newValidator(t, validator.WithStrengthAnalyzer(func(string) (validator.Analysis, int) {
			called = true
			return validator.Analysis{}, 0
		}))
		v.Password("password", "Passw0rd!", nil)
		assert.False(t, called)
	})
}

func TestAnalyzeStrength(t *testing.T) {
	tests := []struct {
		password string
		classes  int
		score    int
	}{
		{"", 0, 0},
		{"aaaaaaaa", 1, 0},
		{"abcdefghij", 1, 1},
		{"Tr0ub4dor&3", 4, 2},
		{"correct-Horse-battery-staple-42", 4, 3},
		{"k7#Qz!pL9@wR2$xV5^mN8&bT4*hJ6(dF", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			a, score := validator.AnalyzeStrength(tt.password)
			require.Equal(t, tt.classes, a.Classes)
			assert.Equal(t, tt.score, score, "entropy %.1f", a.Entropy)
		})
	}
}
