package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/service"
	"github.com/limbo/wakeup/pkg/entity"
	"github.com/limbo/wakeup/pkg/httputil"
	"golang.org/x/crypto/bcrypt"
)

type PairRequest struct {
	AccessCode string `json:"access_code"`
	DeviceName string `json:"device_name"`
}

type AlarmRequest struct {
	Time       string `json:"time"`
	Period     string `json:"period"`
	Label      string `json:"label"`
	Days       []int  `json:"days"`
	Date       string `json:"date,omitempty"`
	Active     bool   `json:"active"`
	Task       string `json:"task"`
	Difficulty string `json:"difficulty"`
	Sound      string `json:"sound"`
}

type ToggleAllRequest struct {
	Active bool `json:"active"`
}

type UpdateSettingsRequest struct {
	DefaultSound       *string  `json:"default_sound"`
	DefaultVolume      *float64 `json:"default_volume"`
	EmergencyDismiss   *bool    `json:"emergency_dismiss"`
	CautionAccepted    *bool    `json:"caution_accepted"`
	SameDayKeepsStreak *bool    `json:"same_day_keeps_streak"`
}

type UploadSoundRequest struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

func (s *Server) Pair(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req PairRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("pairing error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword(s.accessCodeHash, []byte(req.AccessCode)); err != nil {
		logger.Error("pairing error: wrong access code")
		httputil.WriteErrorResponse(w, http.StatusForbidden, errorvalues.ErrWrongAccessCode.Error(), nil)
		return
	}
	deviceID := uuid.New()
	token, err := s.jwtService.GenerateToken(deviceID.String(), req.DeviceName)
	if err != nil {
		logger.Error("pairing error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"device_id": deviceID.String(),
		"token":     token,
	})
	logger.Info("device paired", slog.String("device_name", req.DeviceName))
}

func (s *Server) ListAlarms(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	alarms, err := s.alarmsService.ListAlarms(ctx)
	if err != nil {
		logger.Error("getting alarms list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting alarms list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"alarms": alarms})
	logger.Info("alarms provided")
}

func (s *Server) CreateAlarm(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AlarmRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create alarm error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	alarm, err := s.alarmsService.CreateAlarm(ctx, alarmServiceRequest(&req))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRecurrenceConflict):
			logger.Error("create alarm error: both date and weekdays set")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "alarm cannot have both a date and weekdays", nil)
		case errors.Is(err, errorvalues.ErrInvalidData):
			logger.Error("create alarm error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid alarm fields", nil)
		default:
			logger.Error("create alarm error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating alarm", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, alarm)
	logger.Info("alarm created", slog.String("alarm_id", alarm.ID.String()))
}

func (s *Server) UpdateAlarm(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update alarm error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid alarm id in path value", nil)
		return
	}
	var req AlarmRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update alarm error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	alarm, err := s.alarmsService.UpdateAlarm(ctx, id, alarmServiceRequest(&req))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlarmNotFound):
			logger.Error("update alarm error: unexist alarm")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "alarm doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrRecurrenceConflict):
			logger.Error("update alarm error: both date and weekdays set")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "alarm cannot have both a date and weekdays", nil)
		case errors.Is(err, errorvalues.ErrInvalidData):
			logger.Error("update alarm error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid alarm fields", nil)
		default:
			logger.Error("update alarm error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating alarm", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, alarm)
	logger.Info("alarm updated")
}

func (s *Server) ToggleAlarm(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("toggle alarm error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid alarm id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	alarm, err := s.alarmsService.ToggleAlarm(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlarmNotFound):
			logger.Error("toggle alarm error: unexist alarm")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "alarm doesn't exist", nil)
		default:
			logger.Error("toggle alarm error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling alarm", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, alarm)
	logger.Info("alarm toggled", slog.Bool("active", alarm.Active))
}

func (s *Server) ToggleAllAlarms(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ToggleAllRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("toggle all alarms error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.alarmsService.ToggleAll(ctx, req.Active)
	if err != nil {
		logger.Error("toggle all alarms error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling alarms", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"active": req.Active})
	logger.Info("all alarms toggled", slog.Bool("active", req.Active))
}

func (s *Server) DeleteAlarm(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("alarm deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid alarm id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.alarmsService.DeleteAlarm(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlarmNotFound):
			logger.Error("alarm deletion error: unexist alarm")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "alarm doesn't exist", nil)
		default:
			logger.Error("alarm deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting alarm", nil)
		}
		return
	}
	logger.Info("alarm deleted")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx)
	if err != nil {
		logger.Error("getting stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.Settings(ctx)
	if err != nil {
		logger.Error("getting settings error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings provided")
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdateSettingsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update settings error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.UpdateSettings(ctx, &service.UpdateSettingsRequest{
		DefaultSound:       req.DefaultSound,
		DefaultVolume:      req.DefaultVolume,
		EmergencyDismiss:   req.EmergencyDismiss,
		CautionAccepted:    req.CautionAccepted,
		SameDayKeepsStreak: req.SameDayKeepsStreak,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidData):
			logger.Error("update settings error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid settings fields", nil)
		default:
			logger.Error("update settings error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating settings", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings updated")
}

func (s *Server) UploadSound(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UploadSoundRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upload sound error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	sound, err := s.settingsService.AddCustomSound(ctx, req.Name, req.Data)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidData):
			logger.Error("upload sound error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "sound name and data are required", nil)
		default:
			logger.Error("upload sound error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while uploading sound", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sound)
	logger.Info("custom sound uploaded", slog.String("sound_id", sound.ID.String()))
}

func (s *Server) ListSounds(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	sounds, err := s.settingsService.ListCustomSounds(ctx)
	if err != nil {
		logger.Error("getting sounds list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting sounds list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"sounds": sounds})
	logger.Info("custom sounds provided")
}

func (s *Server) DeleteSound(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("sound deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid sound id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.settingsService.DeleteCustomSound(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSoundNotFound):
			logger.Error("sound deletion error: unexist sound")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "custom sound doesn't exist", nil)
		default:
			logger.Error("sound deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting sound", nil)
		}
		return
	}
	logger.Info("custom sound deleted")
}

func alarmServiceRequest(req *AlarmRequest) *service.CreateAlarmRequest {
	return &service.CreateAlarmRequest{
		Time:       req.Time,
		Period:     req.Period,
		Label:      req.Label,
		Days:       req.Days,
		Date:       req.Date,
		Active:     req.Active,
		Task:       entity.TaskKind(req.Task),
		Difficulty: entity.Difficulty(req.Difficulty),
		Sound:      req.Sound,
	}
}
