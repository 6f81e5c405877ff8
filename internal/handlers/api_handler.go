package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/export"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// APIHandler serves the read-only JSON API and the schedule exports
type APIHandler struct {
	service contract.DutyService
	loc     *time.Location
	now     func() time.Time
	log     *zap.Logger
}

func NewAPIHandler(service contract.DutyService, loc *time.Location, log *zap.Logger) *APIHandler {
	if loc == nil {
		loc = time.Local
	}
	return &APIHandler{
		service: service,
		loc:     loc,
		now:     time.Now,
		log:     log.Named("api"),
	}
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *APIHandler) GetDuty(w http.ResponseWriter, r *http.Request) {
	duty, err := h.service.CurrentDuty(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, duty)
}

func (h *APIHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	weeks, err := queryWeeks(r, 0)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var from time.Time
	if value := r.URL.Query().Get("from"); value != "" {
		from, err = time.ParseInLocation(domain.DateLayout, value, h.loc)
		if err != nil {
			h.writeError(w, usageError(fmt.Sprintf("from must be a YYYY-MM-DD date, got %q", value)))
			return
		}
	}

	assignments, err := h.service.Upcoming(r.Context(), from, weeks)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, assignments)
}

func (h *APIHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	weeks, err := queryWeeks(r, 0)
	if err != nil {
		h.writeError(w, err)
		return
	}

	summaries, err := h.service.History(r.Context(), weeks)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaries)
}

func (h *APIHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Week(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, record)
}

func (h *APIHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	weeks, err := queryWeeks(r, domain.DefaultScheduleWeeks)
	if err != nil {
		h.writeError(w, err)
		return
	}

	assignments, err := h.service.Upcoming(r.Context(), time.Time{}, weeks)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cleaning-schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(export.ICS(assignments, h.now()))); err != nil {
		h.log.Warn("failed to write calendar", zap.Error(err))
	}
}

func (h *APIHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	weeks, err := queryWeeks(r, domain.DefaultScheduleWeeks)
	if err != nil {
		h.writeError(w, err)
		return
	}

	assignments, err := h.service.Upcoming(r.Context(), time.Time{}, weeks)
	if err != nil {
		h.writeError(w, err)
		return
	}

	buf, err := export.XLSX(assignments)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="cleaning-schedule.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("failed to write spreadsheet", zap.Error(err))
	}
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, err error) {
	var usage usageError
	var cfgErr *domain.ConfigError

	switch {
	case errors.As(err, &usage):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: usage.Error()})
	case errors.As(err, &cfgErr):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: cfgErr.Error(), Field: cfgErr.Field})
	case errors.Is(err, domain.ErrInvalidWeekKey):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		h.log.Error("failed to handle request", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func queryWeeks(r *http.Request, fallback int) (int, error) {
	value := r.URL.Query().Get("weeks")
	if value == "" {
		return fallback, nil
	}

	weeks, err := strconv.Atoi(value)
	if err != nil || weeks < 1 {
		return 0, usageError(fmt.Sprintf("weeks must be a positive number, got %q", value))
	}
	return weeks, nil
}
