package model

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare digits", "2125551234", "2125551234"},
		{"parenthesized", "(212) 555-1234", "2125551234"},
		{"dashed", "212-555-1234", "2125551234"},
		{"dotted", "212.555.1234", "2125551234"},
		{"mixed separators", " (212)555.12-34 ", "2125551234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digits, err := Phone(tt.input).Digits()
			require.NoError(t, err)
			assert.Equal(t, tt.want, digits)
		})
	}
}

func TestPhoneDigitsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "555123"},
		{"too long", "12125551234"},
		{"empty", ""},
		{"letters only", "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Phone(tt.input).Digits()
			assert.ErrorIs(t, err, ErrInvalidPhone)
		})
	}
}

func TestPhoneMasked(t *testing.T) {
	// Every format of the same number masks to the same representation.
	for _, input := range []string{"2125551234", "(212) 555-1234", "212-555-1234", "212.555.1234"} {
		assert.Equal(t, "***-***-1234", Phone(input).Masked(), "input %q", input)
	}

	assert.Equal(t, "***-***-****", Phone("123").Masked())
	assert.Equal(t, "***-***-****", Phone("").Masked())
}

func TestPhoneStringNeverLeaks(t *testing.T) {
	p := Phone("(212) 555-1234")
	rendered := fmt.Sprintf("%v %s", p, p)
	assert.NotContains(t, rendered, "212555")
	assert.Contains(t, rendered, "***-***-1234")
}

func TestPhoneLogValue(t *testing.T) {
	v := Phone("212-555-1234").LogValue()
	require.Equal(t, slog.KindString, v.Kind())
	assert.Equal(t, "***-***-1234", v.String())
}
