package staffhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"backoffice/internal/domain/staff"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Store *staff.Store
}

func NewHandler(store *staff.Store) *Handler {
	return &Handler{Store: store}
}

type createStaffPayload struct {
	FirstName  string   `json:"firstName" validate:"required"`
	LastName   string   `json:"lastName" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Position   string   `json:"position"`
	HourlyRate *float64 `json:"hourlyRate" validate:"omitempty,gt=0"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{staffID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	members, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_list_failed", "failed to list staff", reqID)
		return
	}
	api.Success(w, members, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload createStaffPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if issues := shared.Validate(payload); issues != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", issues[0].Field+" "+issues[0].Reason, reqID)
		return
	}

	id, err := h.Store.Create(r.Context(), staff.Staff{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Position:   payload.Position,
		HourlyRate: payload.HourlyRate,
		Status:     staff.StatusActive,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			api.Fail(w, http.StatusConflict, "email_taken", "a staff member with this email already exists", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_create_failed", "failed to create staff member", reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	staffID := chi.URLParam(r, "staffID")

	member, err := h.Store.GetByID(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "staff_not_found", "staff member not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_get_failed", "failed to load staff member", reqID)
		return
	}
	api.Success(w, member, reqID)
}
