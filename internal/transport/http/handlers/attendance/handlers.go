package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"backoffice/internal/domain/attendance"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Store *attendance.Store
}

func NewHandler(store *attendance.Store) *Handler {
	return &Handler{Store: store}
}

type checkInPayload struct {
	StaffID string `json:"staffId" validate:"required,uuid"`
	Method  string `json:"method" validate:"omitempty,oneof=manual card mobile"`
}

type checkOutPayload struct {
	StaffID string `json:"staffId" validate:"required,uuid"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/{staffID}", h.handleList)
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload checkInPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if issues := shared.Validate(payload); issues != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", issues[0].Field+" "+issues[0].Reason, reqID)
		return
	}
	method := payload.Method
	if method == "" {
		method = attendance.MethodManual
	}

	record, err := h.Store.CheckIn(r.Context(), payload.StaffID, method, time.Now().UTC())
	if err != nil {
		if errors.Is(err, attendance.ErrShiftAlreadyOpen) {
			api.Fail(w, http.StatusConflict, "shift_open", "staff member already has an open shift", reqID)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			api.Fail(w, http.StatusNotFound, "staff_not_found", "staff member not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "check_in_failed", "failed to check in", reqID)
		return
	}
	api.Created(w, record, reqID)
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload checkOutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if issues := shared.Validate(payload); issues != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", issues[0].Field+" "+issues[0].Reason, reqID)
		return
	}

	record, err := h.Store.CheckOut(r.Context(), payload.StaffID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenShift) {
			api.Fail(w, http.StatusConflict, "no_open_shift", "staff member has no open shift", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "check_out_failed", "failed to check out", reqID)
		return
	}
	api.Success(w, record, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	staffID := chi.URLParam(r, "staffID")
	limit, offset := shared.ParsePagination(r)

	records, err := h.Store.ListForStaff(r.Context(), staffID, limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", reqID)
		return
	}
	api.Success(w, records, reqID)
}
