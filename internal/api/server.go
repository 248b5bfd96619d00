package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/limbo/wakeup/internal/assistant"
	"github.com/limbo/wakeup/internal/scheduler"
	"github.com/limbo/wakeup/internal/service"
	"github.com/limbo/wakeup/internal/task"
	"github.com/limbo/wakeup/pkg/entity"
)

// SchedulerI is the slice of the trigger scheduler the handlers drive.
type SchedulerI interface {
	Snapshot() scheduler.Snapshot
	Simulate(ctx context.Context, alarmID uuid.UUID) error
	Snooze(ctx context.Context, minutes int) error
	HandleTaskEvent(ctx context.Context, ev task.Event) (*entity.UserStats, bool, error)
}

type AssistantI interface {
	Reply(ctx context.Context, alarms []*entity.Alarm, stats *entity.UserStats, history []assistant.Message, userMessage string) string
}

type Server struct {
	mx              *chi.Mux
	alarmsService   service.AlarmsServiceI
	statsService    service.StatsServiceI
	settingsService service.SettingsServiceI
	sched           SchedulerI
	assistant       AssistantI
	jwtService      JWTServiceI
	accessCodeHash  []byte
}

type ServicesList struct {
	AlarmsService   service.AlarmsServiceI
	StatsService    service.StatsServiceI
	SettingsService service.SettingsServiceI
	Scheduler       SchedulerI
	Assistant       AssistantI
	JwtService      JWTServiceI
	AccessCodeHash  string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		alarmsService:   servicesOptions.AlarmsService,
		statsService:    servicesOptions.StatsService,
		settingsService: servicesOptions.SettingsService,
		sched:           servicesOptions.Scheduler,
		assistant:       servicesOptions.Assistant,
		jwtService:      servicesOptions.JwtService,
		accessCodeHash:  []byte(servicesOptions.AccessCodeHash),
	}
	s.mountRoutes()
	return s
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

func (s *Server) mountRoutes() {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
		r.Post("/auth/pair", s.Pair)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/alarms", s.ListAlarms)
			r.Post("/alarms", s.CreateAlarm)
			r.Put("/alarms/{id}", s.UpdateAlarm)
			r.Patch("/alarms/{id}/toggle", s.ToggleAlarm)
			r.Post("/alarms/toggle-all", s.ToggleAllAlarms)
			r.Delete("/alarms/{id}", s.DeleteAlarm)
			r.Get("/stats", s.GetStats)
			r.Get("/settings", s.GetSettings)
			r.Put("/settings", s.UpdateSettings)
			r.Post("/sounds", s.UploadSound)
			r.Get("/sounds", s.ListSounds)
			r.Delete("/sounds/{id}", s.DeleteSound)
			r.Get("/ring", s.GetRinging)
			r.Post("/ring/simulate/{id}", s.SimulateAlarm)
			r.Post("/ring/event", s.RingEvent)
			r.Post("/ring/snooze", s.SnoozeAlarm)
			r.Post("/chat", s.Chat)
		})
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
