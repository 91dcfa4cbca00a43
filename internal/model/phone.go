package model

import (
	"errors"
	"log/slog"
	"strings"
)

var ErrInvalidPhone = errors.New("valid 10-digit US phone number is required")

// maskPrefix replaces the first six digits of a phone number wherever one
// is rendered outside the database dispatch path.
const maskPrefix = "***-***-"

// Phone is a caller-supplied US phone number in whatever format the caller
// typed it: bare digits, parenthesized, dashed, or dotted. The raw input is
// kept for dispatch, but String and LogValue only ever render the masked
// form, so a Phone is safe to hand to any log sink.
type Phone string

// Digits strips every non-digit character and returns the bare 10-digit
// number sent downstream. Returns ErrInvalidPhone unless exactly 10 digits
// remain; this is the only normalization applied before dispatch.
func (p Phone) Digits() (string, error) {
	digits := stripNonDigits(string(p))
	if len(digits) != 10 {
		return "", ErrInvalidPhone
	}
	return digits, nil
}

// Masked renders the number as "***-***-" plus the last four digits. Inputs
// with fewer than four digits are masked entirely.
func (p Phone) Masked() string {
	digits := stripNonDigits(string(p))
	if len(digits) < 4 {
		return maskPrefix + "****"
	}
	return maskPrefix + digits[len(digits)-4:]
}

func (p Phone) String() string {
	return p.Masked()
}

// LogValue implements slog.LogValuer so a Phone attribute is masked in
// structured log records.
func (p Phone) LogValue() slog.Value {
	return slog.StringValue(p.Masked())
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
