package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/payroll"
	"backoffice/internal/domain/staff"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Service   *payroll.Service
	Collector *metrics.Collector
}

func NewHandler(service *payroll.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Collector: collector}
}

type runPayload struct {
	StaffID string `json:"staffId" validate:"required,uuid"`
	Period  string `json:"period" validate:"required"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/run", h.handleRun)
		r.Get("/history/{staffID}", h.handleHistory)
		r.Get("/payslips/{staffID}", h.handlePayslips)
	})
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload runPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if issues := shared.Validate(payload); issues != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", issues[0].Field+" "+issues[0].Reason, reqID)
		return
	}

	result, err := h.Service.Run(r.Context(), payload.StaffID, payload.Period)
	if err != nil {
		h.failRun(w, err, reqID)
		return
	}
	if h.Collector != nil {
		h.Collector.RecordPayrollRun()
	}
	api.Success(w, result, reqID)
}

func (h *Handler) failRun(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, staff.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "staff_not_found", err.Error(), reqID)
	case errors.Is(err, payroll.ErrRecordNotFound):
		api.Fail(w, http.StatusNotFound, "payroll_record_not_found", err.Error(), reqID)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "failed to run payroll", reqID)
	}
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	staffID := chi.URLParam(r, "staffID")

	records, err := h.Service.History(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "staff_not_found", err.Error(), reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payroll_history_failed", "failed to list payroll history", reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handlePayslips(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	staffID := chi.URLParam(r, "staffID")
	limit, offset := shared.ParsePagination(r)

	slips, err := h.Service.Payslips(r.Context(), staffID, limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_list_failed", "failed to list payslips", reqID)
		return
	}
	api.Success(w, slips, reqID)
}
