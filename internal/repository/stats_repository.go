package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/wakeup/pkg/cleanup"
	"github.com/limbo/wakeup/pkg/entity"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) Get(ctx context.Context) (*entity.UserStats, error) {
	var stats entity.UserStats
	var rawHistory []byte
	row := sr.conn.QueryRow(ctx, `SELECT current_streak, best_streak, total_wakes, last_wake_date, history FROM user_stats WHERE id = 1;`)
	if err := row.Scan(&stats.CurrentStreak, &stats.BestStreak, &stats.TotalWakes, &stats.LastWakeDate, &rawHistory); err != nil {
		return nil, errors.New("getting stats error: " + err.Error())
	}
	history, err := decodeHistory(rawHistory)
	if err != nil {
		// Corrupt history never blocks the enforcement path
		log.Println("corrupt stats history, starting from empty: " + err.Error())
		history = []entity.CompletionRecord{}
	}
	stats.History = history
	return &stats, nil
}

func (sr *StatsRepository) Save(ctx context.Context, stats *entity.UserStats) error {
	history, err := sonic.Marshal(stats.History)
	if err != nil {
		return errors.New("marshalling history error: " + err.Error())
	}
	_, err = sr.conn.Exec(ctx, `UPDATE user_stats SET current_streak = $1, best_streak = $2, total_wakes = $3, last_wake_date = $4, history = $5 WHERE id = 1;`,
		stats.CurrentStreak,
		stats.BestStreak,
		stats.TotalWakes,
		stats.LastWakeDate,
		history,
	)
	if err != nil {
		return errors.New("saving stats error: " + err.Error())
	}
	return nil
}

// decodeHistory upgrades legacy entries on the fly: early builds stored the
// history as a bare array of date strings. Those become full records with the
// Math task and a "Legacy Alarm" label.
func decodeHistory(raw []byte) ([]entity.CompletionRecord, error) {
	if len(raw) == 0 {
		return []entity.CompletionRecord{}, nil
	}
	var items []any
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	records := make([]entity.CompletionRecord, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			records = append(records, entity.CompletionRecord{
				Date:  v,
				Task:  entity.TaskMath,
				Label: "Legacy Alarm",
			})
		case map[string]any:
			rec := entity.CompletionRecord{}
			if date, ok := v["date"].(string); ok {
				rec.Date = date
			}
			if task, ok := v["task"].(string); ok {
				rec.Task = entity.TaskKind(task)
			}
			if label, ok := v["label"].(string); ok {
				rec.Label = label
			}
			records = append(records, rec)
		}
	}
	return records, nil
}
