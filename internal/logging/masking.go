package logging

import (
	"context"
	"log/slog"

	"github.com/telswitch/isdnc/internal/model"
)

// phoneKeys names the attribute keys known to carry phone numbers. Masking
// is a structured rule keyed on these names rather than a regex over free
// text, so unrelated numeric fields are never over-masked.
var phoneKeys = map[string]bool{
	"phone":        true,
	"phone_number": true,
	"phoneNumber":  true,
}

// MaskingHandler wraps another slog.Handler and rewrites phone-bearing
// string attributes to their masked form before the record reaches the
// sink. Attributes logged as model.Phone are already masked by LogValue;
// this handler catches plain-string phone fields as well, including those
// attached via Logger.With and those nested inside groups.
type MaskingHandler struct {
	inner slog.Handler
}

// NewMaskingHandler wraps the given handler with phone-number redaction.
func NewMaskingHandler(inner slog.Handler) *MaskingHandler {
	return &MaskingHandler{inner: inner}
}

func (h *MaskingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *MaskingHandler) Handle(ctx context.Context, rec slog.Record) error {
	masked := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(maskAttr(a))
		return true
	})
	return h.inner.Handle(ctx, masked)
}

func (h *MaskingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = maskAttr(a)
	}
	return &MaskingHandler{inner: h.inner.WithAttrs(maskedAttrs)}
}

func (h *MaskingHandler) WithGroup(name string) slog.Handler {
	return &MaskingHandler{inner: h.inner.WithGroup(name)}
}

func maskAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindGroup:
		group := v.Group()
		maskedGroup := make([]any, 0, len(group))
		for _, ga := range group {
			maskedGroup = append(maskedGroup, maskAttr(ga))
		}
		return slog.Group(a.Key, maskedGroup...)
	case slog.KindString:
		if phoneKeys[a.Key] {
			return slog.String(a.Key, model.Phone(v.String()).Masked())
		}
	}
	return slog.Attr{Key: a.Key, Value: v}
}
