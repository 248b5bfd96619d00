package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/limbo/wakeup/internal/repository"
	"github.com/limbo/wakeup/pkg/entity"
)

// SettingsSource is the slice of SettingsServiceI the stats service needs.
type SettingsSource interface {
	Settings(ctx context.Context) (*entity.Settings, error)
}

type StatsService struct {
	repo     repository.StatsRepositoryI
	settings SettingsSource
}

func NewStatsService(statsRepo repository.StatsRepositoryI, settings SettingsSource) *StatsService {
	if statsRepo == nil || settings == nil {
		log.Fatal("on stats service provided nil dependencies")
	}
	return &StatsService{
		repo:     statsRepo,
		settings: settings,
	}
}

func (ss *StatsService) GetStats(ctx context.Context) (*entity.UserStats, error) {
	stats, err := ss.repo.Get(ctx)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

// RecordCompletion applies the streak continuity rules: a completion exactly
// one whole day after the previous one extends the streak, a gap of more than
// a day restarts it at 1. What a second completion on the same day does is
// governed by the SameDayKeepsStreak setting; the default keeps the streak.
func (ss *StatsService) RecordCompletion(ctx context.Context, task entity.TaskKind, label string, now time.Time) (*entity.UserStats, error) {
	stats, err := ss.repo.Get(ctx)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	sameDayKeeps := true
	if settings, err := ss.settings.Settings(ctx); err == nil {
		sameDayKeeps = settings.SameDayKeepsStreak
	}

	newStreak := stats.CurrentStreak
	if stats.LastWakeDate != nil {
		diff := wholeDaysBetween(*stats.LastWakeDate, now)
		switch {
		case diff == 1:
			newStreak++
		case diff > 1:
			newStreak = 1
		default:
			if !sameDayKeeps {
				newStreak = 1
			}
		}
	} else {
		newStreak = 1
	}

	if label == "" {
		label = "Alarm"
	}
	wake := now
	stats.CurrentStreak = newStreak
	stats.BestStreak = max(stats.BestStreak, newStreak)
	stats.TotalWakes++
	stats.LastWakeDate = &wake
	stats.History = append(stats.History, entity.CompletionRecord{
		Date:  now.Format(time.RFC3339),
		Task:  task,
		Label: label,
	})

	if err := ss.repo.Save(ctx, stats); err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

func wholeDaysBetween(last, now time.Time) int {
	return int(math.Floor(now.Sub(last).Hours() / 24))
}
