// @title Wake-up API
// @description API for the forced-wake alarm clock "WakeUp"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/wakeup/internal/api"
	"github.com/limbo/wakeup/internal/assistant"
	"github.com/limbo/wakeup/internal/audio"
	"github.com/limbo/wakeup/internal/repository"
	"github.com/limbo/wakeup/internal/scheduler"
	"github.com/limbo/wakeup/internal/service"
	"github.com/limbo/wakeup/pkg/cleanup"
	"github.com/limbo/wakeup/pkg/config"
	jwtservice "github.com/limbo/wakeup/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	alarmsService := service.NewAlarmsService(repository.NewAlarmsRepo(&dbCfg))
	settingsService := service.NewSettingsService(repository.NewSettingsRepo(&dbCfg), repository.NewSoundsRepo(&dbCfg))
	statsService := service.NewStatsService(repository.NewStatsRepo(&dbCfg), settingsService)

	engine := audio.NewEngine(audio.NewLogOutput(slog.Default()), repository.NewSoundsRepo(&dbCfg), slog.Default())
	cleanup.Register(&cleanup.Job{
		Name: "suspend audio output",
		F: func() error {
			engine.Suspend()
			return nil
		},
	})
	sched := scheduler.New(scheduler.Deps{
		Alarms:         alarmsService,
		Stats:          statsService,
		Settings:       settingsService,
		Audio:          engine,
		FallbackVolume: cfg.GetFloat("AUDIO_FALLBACK_VOLUME", 0.7),
	})
	ctx, cancel := context.WithCancel(context.Background())
	cleanup.Register(&cleanup.Job{
		Name: "stop trigger scheduler",
		F: func() error {
			cancel()
			return nil
		},
	})
	go sched.Run(ctx)

	assistantClient := assistant.New(
		cfg.GetString("ASSISTANT_ENDPOINT"),
		cfg.GetString("ASSISTANT_API_KEY"),
		cfg.GetString("ASSISTANT_MODEL"),
		time.Duration(cfg.GetInt("ASSISTANT_TIMEOUT_SECONDS", 30))*time.Second,
		slog.Default(),
	)
	serv := api.New(&api.ServicesList{
		AlarmsService:   alarmsService,
		StatsService:    statsService,
		SettingsService: settingsService,
		Scheduler:       sched,
		Assistant:       assistantClient,
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET")),
		AccessCodeHash:  cfg.GetString("ACCESS_CODE_HASH"),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
