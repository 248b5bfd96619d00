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

type SoundsRepository struct {
	conn PgConnection
}

func NewSoundsRepo(cfg DBConfig) *SoundsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for soundsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for soundsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SoundsRepository{
		conn: pool,
	}
}

func NewSoundsRepoWithConn(conn PgConnection) *SoundsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for soundsRepo: " + err.Error())
	}
	return &SoundsRepository{
		conn: conn,
	}
}

func (sr *SoundsRepository) Create(ctx context.Context, name, data string) (uuid.UUID, error) {
	var id uuid.UUID
	row := sr.conn.QueryRow(ctx, `INSERT INTO custom_sounds (name, data) VALUES ($1, $2) RETURNING id;`, name, data)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating custom sound db error: " + err.Error())
	}
	return id, nil
}

func (sr *SoundsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomSound, error) {
	var sound entity.CustomSound
	sound.ID = id
	row := sr.conn.QueryRow(ctx, `SELECT name, data, created_at FROM custom_sounds WHERE id = $1;`, id)
	if err := row.Scan(&sound.Name, &sound.Data, &sound.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSoundNotFound
		}
		return nil, errors.New("getting custom sound error: " + err.Error())
	}
	return &sound, nil
}

func (sr *SoundsRepository) List(ctx context.Context) ([]*entity.CustomSound, error) {
	sounds := make([]*entity.CustomSound, 0)
	rows, err := sr.conn.Query(ctx, `SELECT id, name, data, created_at FROM custom_sounds ORDER BY created_at ASC;`)
	if err != nil {
		return nil, errors.New("listing custom sounds error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		s := entity.CustomSound{}
		err = rows.Scan(&s.ID, &s.Name, &s.Data, &s.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling custom sound error: " + err.Error())
		}
		sounds = append(sounds, &s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return sounds, nil
}

func (sr *SoundsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM custom_sounds WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting custom sound: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSoundNotFound
	}
	return nil
}
