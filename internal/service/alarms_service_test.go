package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/service"
	"github.com/limbo/wakeup/pkg/entity"
	"github.com/stretchr/testify/assert"
)

type mockState int

const (
	stateSuccess = iota
	stateDBError
	stateAlarmNotFoundError
	stateSoundNotFoundError
)

type alarmsRepoMock struct {
	state mockState
}

// Variables for tests
var (
	alarmID   = uuid.New()
	testAlarm = entity.Alarm{
		ID:         alarmID,
		Time:       "07:30",
		Period:     "AM",
		Label:      "Workday",
		Days:       []int{0, 1, 2, 3, 4},
		Active:     true,
		Task:       entity.TaskMath,
		Difficulty: entity.DifficultyMedium,
		Sound:      "Loud Beep",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	validRequest = service.CreateAlarmRequest{
		Time:       "07:30",
		Period:     "AM",
		Label:      "Workday",
		Days:       []int{0, 1, 2, 3, 4},
		Active:     true,
		Task:       entity.TaskMath,
		Difficulty: entity.DifficultyMedium,
		Sound:      "Loud Beep",
	}
)

func (armock *alarmsRepoMock) Create(ctx context.Context, alarm *entity.Alarm) (uuid.UUID, error) {
	switch armock.state {
	case stateDBError:
		return uuid.UUID{}, errors.New("db error")
	default:
		return alarmID, nil
	}
}

func (armock *alarmsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	switch armock.state {
	case stateAlarmNotFoundError:
		return nil, errorvalues.ErrAlarmNotFound
	case stateDBError:
		return nil, errors.New("db error")
	default:
		a := testAlarm
		return &a, nil
	}
}

func (armock *alarmsRepoMock) List(ctx context.Context) ([]*entity.Alarm, error) {
	switch armock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		a := testAlarm
		return []*entity.Alarm{&a}, nil
	}
}

func (armock *alarmsRepoMock) Update(ctx context.Context, alarm *entity.Alarm) error {
	switch armock.state {
	case stateAlarmNotFoundError:
		return errorvalues.ErrAlarmNotFound
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func (armock *alarmsRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	switch armock.state {
	case stateAlarmNotFoundError:
		return errorvalues.ErrAlarmNotFound
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func (armock *alarmsRepoMock) SetAllActive(ctx context.Context, active bool) error {
	switch armock.state {
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func (armock *alarmsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	switch armock.state {
	case stateAlarmNotFoundError:
		return errorvalues.ErrAlarmNotFound
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func TestCreateAlarm(t *testing.T) {
	mock := &alarmsRepoMock{state: stateSuccess}
	s := service.NewAlarmsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		req := validRequest
		a, err := s.CreateAlarm(ctx, &req)
		assert.NoError(t, err)
		assert.Equal(t, testAlarm, *a)
	})
	t.Run("bad clock time", func(t *testing.T) {
		req := validRequest
		req.Time = "25:00"
		_, err := s.CreateAlarm(ctx, &req)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidData)
	})
	t.Run("bad period", func(t *testing.T) {
		req := validRequest
		req.Period = "XX"
		_, err := s.CreateAlarm(ctx, &req)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidData)
	})
	t.Run("bad weekday", func(t *testing.T) {
		req := validRequest
		req.Days = []int{0, 7}
		_, err := s.CreateAlarm(ctx, &req)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidData)
	})
	t.Run("date and weekdays conflict", func(t *testing.T) {
		req := validRequest
		req.Date = "2026-09-14"
		_, err := s.CreateAlarm(ctx, &req)
		assert.ErrorIs(t, err, errorvalues.ErrRecurrenceConflict)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		req := validRequest
		_, err := s.CreateAlarm(ctx, &req)
		assert.Error(t, err)
	})
}

func TestListAlarms(t *testing.T) {
	mock := &alarmsRepoMock{state: stateSuccess}
	s := service.NewAlarmsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		alarms, err := s.ListAlarms(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(alarms))
		assert.Equal(t, testAlarm, *alarms[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.ListAlarms(ctx)
		assert.Error(t, err)
	})
}

func TestUpdateAlarm(t *testing.T) {
	mock := &alarmsRepoMock{state: stateSuccess}
	s := service.NewAlarmsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		req := validRequest
		a, err := s.UpdateAlarm(ctx, alarmID, &req)
		assert.NoError(t, err)
		assert.Equal(t, testAlarm, *a)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateAlarmNotFoundError
		req := validRequest
		_, err := s.UpdateAlarm(ctx, alarmID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrAlarmNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		req := validRequest
		_, err := s.UpdateAlarm(ctx, alarmID, &req)
		assert.Error(t, err)
	})
}

func TestToggleAlarm(t *testing.T) {
	mock := &alarmsRepoMock{state: stateSuccess}
	s := service.NewAlarmsService(mock)
	ctx := context.Background()
	t.Run("success flips active", func(t *testing.T) {
		a, err := s.ToggleAlarm(ctx, alarmID)
		assert.NoError(t, err)
		assert.Equal(t, !testAlarm.Active, a.Active)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateAlarmNotFoundError
		_, err := s.ToggleAlarm(ctx, alarmID)
		assert.ErrorIs(t, err, errorvalues.ErrAlarmNotFound)
	})
}

func TestDeleteAlarmService(t *testing.T) {
	mock := &alarmsRepoMock{state: stateSuccess}
	s := service.NewAlarmsService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		err := s.DeleteAlarm(ctx, alarmID)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateAlarmNotFoundError
		err := s.DeleteAlarm(ctx, alarmID)
		assert.ErrorIs(t, err, errorvalues.ErrAlarmNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		err := s.DeleteAlarm(ctx, alarmID)
		assert.Error(t, err)
	})
}
