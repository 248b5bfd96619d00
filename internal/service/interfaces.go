package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/wakeup/pkg/entity"
)

type CreateAlarmRequest struct {
	Time       string            `validate:"required,clock_time"`
	Period     string            `validate:"required,oneof=AM PM"`
	Label      string            `validate:"max=100"`
	Days       []int             `validate:"weekday_set"`
	Date       string            `validate:"omitempty,iso_date"`
	Active     bool              `validate:"-"`
	Task       entity.TaskKind   `validate:"required,oneof=Math Shake QR Memory Sequence"`
	Difficulty entity.Difficulty `validate:"required,oneof=Easy Medium Hard"`
	Sound      string            `validate:"required"`
}

type UpdateSettingsRequest struct {
	DefaultSound       *string  `validate:"omitempty,min=1"`
	DefaultVolume      *float64 `validate:"omitempty,gte=0,lte=1"`
	EmergencyDismiss   *bool
	CautionAccepted    *bool
	SameDayKeepsStreak *bool
}

type AlarmsServiceI interface {
	// Validates the request, enforces the date-xor-days invariant and stores the alarm
	CreateAlarm(ctx context.Context, req *CreateAlarmRequest) (*entity.Alarm, error)
	GetAlarm(ctx context.Context, id uuid.UUID) (*entity.Alarm, error)
	// Lists alarms in their stable repository order
	ListAlarms(ctx context.Context) ([]*entity.Alarm, error)
	UpdateAlarm(ctx context.Context, id uuid.UUID, req *CreateAlarmRequest) (*entity.Alarm, error)
	ToggleAlarm(ctx context.Context, id uuid.UUID) (*entity.Alarm, error)
	ToggleAll(ctx context.Context, active bool) error
	DeleteAlarm(ctx context.Context, id uuid.UUID) error
}

type StatsServiceI interface {
	GetStats(ctx context.Context) (*entity.UserStats, error)
	// Applies the streak rules and appends a completion record. Called exactly
	// once per successful verification
	RecordCompletion(ctx context.Context, task entity.TaskKind, label string, now time.Time) (*entity.UserStats, error)
}

type SettingsServiceI interface {
	Settings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*entity.Settings, error)
	AddCustomSound(ctx context.Context, name, data string) (*entity.CustomSound, error)
	ListCustomSounds(ctx context.Context) ([]*entity.CustomSound, error)
	DeleteCustomSound(ctx context.Context, id uuid.UUID) error
}
