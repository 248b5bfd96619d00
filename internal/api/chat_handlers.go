package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/wakeup/internal/assistant"
	"github.com/limbo/wakeup/pkg/httputil"
)

type ChatRequest struct {
	Message string              `json:"message"`
	History []assistant.Message `json:"history"`
}

// Chat always answers 200; connectivity problems surface as the assistant's
// fallback phrase rather than an HTTP error.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ChatRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("chat error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*35)
	defer cancel()
	alarms, err := s.alarmsService.ListAlarms(ctx)
	if err != nil {
		logger.Error("chat error: getting alarms for context", slog.String("error", err.Error()))
		alarms = nil
	}
	stats, err := s.statsService.GetStats(ctx)
	if err != nil {
		logger.Error("chat error: getting stats for context", slog.String("error", err.Error()))
		stats = nil
	}
	reply := s.assistant.Reply(ctx, alarms, stats, req.History, req.Message)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"reply": reply})
	logger.Info("assistant replied")
}
