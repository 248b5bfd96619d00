package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/task"
	"github.com/limbo/wakeup/pkg/httputil"
)

type RingEventRequest struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type SnoozeRequest struct {
	Minutes int `json:"minutes"`
}

func (s *Server) GetRinging(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	snap := s.sched.Snapshot()
	httputil.WriteJSONResponse(w, http.StatusOK, snap)
	logger.Info("ring state provided", slog.String("state", string(snap.State)))
}

func (s *Server) SimulateAlarm(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("simulate alarm error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid alarm id in path value", nil)
		return
	}
	err = s.sched.Simulate(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlarmNotFound):
			logger.Error("simulate alarm error: unexist alarm")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "alarm doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyRinging):
			logger.Error("simulate alarm error: session already active")
			httputil.WriteErrorResponse(w, http.StatusConflict, "a ringing session is already active", nil)
		default:
			logger.Error("simulate alarm error: scheduler error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while simulating alarm", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.sched.Snapshot())
	logger.Info("alarm simulation started", slog.String("alarm_id", id.String()))
}

func (s *Server) RingEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RingEventRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("ring event error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	stats, satisfied, err := s.sched.HandleTaskEvent(r.Context(), task.Event{
		Type:  task.EventType(req.Type),
		Value: req.Value,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotRinging):
			logger.Error("ring event error: no active session")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no ringing session is active", nil)
		case errors.Is(err, errorvalues.ErrTaskEventMismatch):
			logger.Error("ring event error: event doesn't apply to task")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "event doesn't apply to the active task", nil)
		default:
			logger.Error("ring event error: scheduler error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while handling event", nil)
		}
		return
	}
	resp := map[string]any{
		"satisfied": satisfied,
		"session":   s.sched.Snapshot(),
	}
	if stats != nil {
		resp["stats"] = stats
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	if satisfied {
		logger.Info("verification task solved, alarm dismissed")
	}
}

func (s *Server) SnoozeAlarm(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SnoozeRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("snooze error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	err = s.sched.Snooze(r.Context(), req.Minutes)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotRinging):
			logger.Error("snooze error: no active session")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no ringing session is active", nil)
		case errors.Is(err, errorvalues.ErrBadSnoozeDuration):
			logger.Error("snooze error: bad duration")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "snooze duration must be at least one minute", nil)
		case errors.Is(err, errorvalues.ErrSnoozeDisabled):
			logger.Error("snooze error: emergency dismiss is turned off")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "snooze is disabled in settings", nil)
		default:
			logger.Error("snooze error: scheduler error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while snoozing", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.sched.Snapshot())
	logger.Info("alarm snoozed", slog.Int("minutes", req.Minutes))
}
