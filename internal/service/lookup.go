package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/telswitch/isdnc/internal/model"
)

var ErrInvalidDate = errors.New("valid lookup date is required (MM/DD/YYYY)")

// lookupDateLayout is the calendar date format the registry UI submits.
const lookupDateLayout = "01/02/2006"

// DNCStore is the decision-service contract. Satisfied by
// *repository.DNCRepository; tests substitute a call-counting fake.
type DNCStore interface {
	Check(ctx context.Context, digits string, date time.Time) ([]model.Row, error)
	History(ctx context.Context, digits string) ([]model.Row, error)
}

// LookupService validates lookup queries and relays decision-service rows
// verbatim. Malformed input never reaches the store.
type LookupService struct {
	store DNCStore
}

// NewLookupService creates a new LookupService.
func NewLookupService(store DNCStore) *LookupService {
	return &LookupService{store: store}
}

// Lookup returns the registry status of a number as of the given date.
func (s *LookupService) Lookup(ctx context.Context, req model.LookupRequest) ([]model.Row, error) {
	phone := model.Phone(req.PhoneNumber)
	digits, err := phone.Digits()
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(lookupDateLayout, req.LookupDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	rows, err := s.store.Check(ctx, digits, date)
	if err != nil {
		return nil, err
	}

	slog.Info("dnc lookup", "phone", phone, "lookup_date", req.LookupDate, "rows", len(rows))
	return rows, nil
}

// History returns the full registration history of a number.
func (s *LookupService) History(ctx context.Context, req model.HistoryRequest) ([]model.Row, error) {
	phone := model.Phone(req.PhoneNumber)
	digits, err := phone.Digits()
	if err != nil {
		return nil, err
	}

	rows, err := s.store.History(ctx, digits)
	if err != nil {
		return nil, err
	}

	slog.Info("dnc history", "phone", phone, "rows", len(rows))
	return rows, nil
}
