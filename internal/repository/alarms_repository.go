package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/pkg/cleanup"
	"github.com/limbo/wakeup/pkg/entity"
)

type AlarmsRepository struct {
	conn PgConnection
}

func NewAlarmsRepo(cfg DBConfig) *AlarmsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for alarmsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for alarmsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AlarmsRepository{
		conn: pool,
	}
}

func NewAlarmsRepoWithConn(conn PgConnection) *AlarmsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for alarmsRepo: " + err.Error())
	}
	return &AlarmsRepository{
		conn: conn,
	}
}

func (ar *AlarmsRepository) Create(ctx context.Context, alarm *entity.Alarm) (uuid.UUID, error) {
	var id uuid.UUID
	row := ar.conn.QueryRow(ctx, `INSERT INTO alarms (trigger_time, period, label, days, trigger_date, active, task, difficulty, sound)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		alarm.Time,
		alarm.Period,
		alarm.Label,
		alarm.Days,
		nullableDate(alarm.Date),
		alarm.Active,
		alarm.Task,
		alarm.Difficulty,
		alarm.Sound,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating alarm db error: " + err.Error())
	}
	return id, nil
}

func (ar *AlarmsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	var alarm entity.Alarm
	alarm.ID = id
	var date *string
	row := ar.conn.QueryRow(ctx, `SELECT trigger_time, period, label, days, trigger_date, active, task, difficulty, sound, created_at, updated_at FROM alarms WHERE id = $1;`, id)
	if err := row.Scan(&alarm.Time, &alarm.Period, &alarm.Label, &alarm.Days, &date, &alarm.Active, &alarm.Task, &alarm.Difficulty, &alarm.Sound, &alarm.CreatedAt, &alarm.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAlarmNotFound
		}
		return nil, errors.New("getting alarm by id error: " + err.Error())
	}
	if date != nil {
		alarm.Date = *date
	}
	return &alarm, nil
}

func (ar *AlarmsRepository) List(ctx context.Context) ([]*entity.Alarm, error) {
	alarms := make([]*entity.Alarm, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, trigger_time, period, label, days, trigger_date, active, task, difficulty, sound, created_at, updated_at 
		FROM alarms ORDER BY created_at ASC;`)
	if err != nil {
		return nil, errors.New("listing alarms error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a := entity.Alarm{}
		var date *string
		err = rows.Scan(&a.ID, &a.Time, &a.Period, &a.Label, &a.Days, &date, &a.Active, &a.Task, &a.Difficulty, &a.Sound, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling alarm error: " + err.Error())
		}
		if date != nil {
			a.Date = *date
		}
		alarms = append(alarms, &a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return alarms, nil
}

func (ar *AlarmsRepository) Update(ctx context.Context, alarm *entity.Alarm) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE alarms SET trigger_time = $1, period = $2, label = $3, days = $4, trigger_date = $5, active = $6, task = $7, difficulty = $8, sound = $9, updated_at = NOW() WHERE id = $10;`,
		alarm.Time, alarm.Period, alarm.Label, alarm.Days, nullableDate(alarm.Date), alarm.Active, alarm.Task, alarm.Difficulty, alarm.Sound, alarm.ID,
	)
	if err != nil {
		return errors.New("error updating alarm: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAlarmNotFound
	}
	return nil
}

func (ar *AlarmsRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE alarms SET active = $1, updated_at = NOW() WHERE id = $2;`, active, id)
	if err != nil {
		return errors.New("error toggling alarm: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAlarmNotFound
	}
	return nil
}

func (ar *AlarmsRepository) SetAllActive(ctx context.Context, active bool) error {
	_, err := ar.conn.Exec(ctx, `UPDATE alarms SET active = $1, updated_at = NOW();`, active)
	if err != nil {
		return errors.New("error toggling all alarms: " + err.Error())
	}
	return nil
}

func (ar *AlarmsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM alarms WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting alarm: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAlarmNotFound
	}
	return nil
}

func nullableDate(date string) *string {
	if date == "" {
		return nil
	}
	return &date
}
