package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/wakeup/pkg/entity"
)

type AlarmsRepositoryI interface {
	// Creates new alarm. ID, CreatedAt and UpdatedAt are assigned by the database
	Create(ctx context.Context, alarm *entity.Alarm) (uuid.UUID, error)
	// Searches alarm with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Alarm, error)
	// Lists every alarm ordered by creation time. The order is a contract:
	// when several alarms match the same minute the first listed one fires
	List(ctx context.Context) ([]*entity.Alarm, error)
	// Updates alarm by ID (ID in alarm is necessary)
	Update(ctx context.Context, alarm *entity.Alarm) error
	// Flips the active flag of a single alarm
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	// Sets the active flag on every alarm at once
	SetAllActive(ctx context.Context, active bool) error
	// Deletes alarm with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsRepositoryI interface {
	// Reads the single stats row. Legacy bare-string history entries are
	// upgraded to full completion records before being returned
	Get(ctx context.Context) (*entity.UserStats, error)
	// Overwrites the stats row with the given snapshot
	Save(ctx context.Context, stats *entity.UserStats) error
}

type SettingsRepositoryI interface {
	// Reads raw setting value by key
	Get(ctx context.Context, key string) (string, error)
	// Upserts setting value
	Set(ctx context.Context, key, value string) error
}

type SoundsRepositoryI interface {
	// Stores an uploaded sound. Data carries the base64 audio payload
	Create(ctx context.Context, name, data string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomSound, error)
	List(ctx context.Context) ([]*entity.CustomSound, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// Settings keys persisted in the settings table.
const (
	KeyDefaultSound       = "default_sound"
	KeyDefaultVolume      = "default_volume"
	KeyEmergencyDismiss   = "emergency_dismiss"
	KeyCautionAccepted    = "caution_accepted"
	KeySameDayKeepsStreak = "same_day_keeps_streak"
)
