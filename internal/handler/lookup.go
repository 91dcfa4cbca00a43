package handler

import (
	"errors"
	"net/http"

	"github.com/telswitch/isdnc/internal/middleware"
	"github.com/telswitch/isdnc/internal/model"
	"github.com/telswitch/isdnc/internal/service"
)

// LookupHandler handles HTTP requests for DNC lookups.
type LookupHandler struct {
	service *service.LookupService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(svc *service.LookupService) *LookupHandler {
	return &LookupHandler{service: svc}
}

// HandleLookup handles POST /api/v1/dnc/lookup requests.
func (h *LookupHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	// The route guard already ran; re-checking here keeps a mis-wired
	// route from exposing the operation.
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.LookupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rows, err := h.service.Lookup(r.Context(), req)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeData(w, http.StatusOK, rowsOrEmpty(rows))
}

// HandleHistory handles POST /api/v1/dnc/history requests.
func (h *LookupHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.HistoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rows, err := h.service.History(r.Context(), req)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeData(w, http.StatusOK, rowsOrEmpty(rows))
}

func writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidPhone), errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, genericServerError)
	}
}

// rowsOrEmpty keeps the success payload an array even when the decision
// service returns nothing.
func rowsOrEmpty(rows []model.Row) []model.Row {
	if rows == nil {
		return []model.Row{}
	}
	return rows
}
