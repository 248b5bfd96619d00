package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/pkg/cleanup"
)

type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepo(cfg DBConfig) *SettingsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for settingsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for settingsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SettingsRepository{
		conn: pool,
	}
}

func NewSettingsRepoWithConn(conn PgConnection) *SettingsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for settingsRepo: " + err.Error())
	}
	return &SettingsRepository{
		conn: conn,
	}
}

func (sr *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	row := sr.conn.QueryRow(ctx, `SELECT v FROM settings WHERE k = $1;`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errorvalues.ErrSettingNotFound
		}
		return "", errors.New("getting setting error: " + err.Error())
	}
	return value, nil
}

func (sr *SettingsRepository) Set(ctx context.Context, key, value string) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO settings (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v;`, key, value)
	if err != nil {
		return errors.New("setting value error: " + err.Error())
	}
	return nil
}
