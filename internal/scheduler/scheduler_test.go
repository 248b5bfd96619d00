package scheduler_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/scheduler"
	"github.com/limbo/wakeup/internal/task"
	"github.com/limbo/wakeup/pkg/entity"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type alarmSourceMock struct {
	alarms  []*entity.Alarm
	listErr error
}

func (m *alarmSourceMock) ListAlarms(ctx context.Context) ([]*entity.Alarm, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.alarms, nil
}

func (m *alarmSourceMock) GetAlarm(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	for _, a := range m.alarms {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errorvalues.ErrAlarmNotFound
}

type recorderMock struct {
	calls int
	fail  bool
}

func (m *recorderMock) RecordCompletion(ctx context.Context, task entity.TaskKind, label string, now time.Time) (*entity.UserStats, error) {
	m.calls++
	if m.fail {
		return nil, errors.New("stats error")
	}
	return &entity.UserStats{CurrentStreak: 1, TotalWakes: m.calls}, nil
}

type settingsMock struct {
	volume           float64
	emergencyDismiss bool
	fail             bool
}

func (m *settingsMock) Settings(ctx context.Context) (*entity.Settings, error) {
	if m.fail {
		return nil, errors.New("settings error")
	}
	return &entity.Settings{
		DefaultSound:       "Loud Beep",
		DefaultVolume:      m.volume,
		EmergencyDismiss:   m.emergencyDismiss,
		SameDayKeepsStreak: true,
	}, nil
}

type playCall struct {
	soundID string
	volume  float64
	elapsed int
}

type sounderMock struct {
	plays   []playCall
	stops   int
	resumes int
}

func (m *sounderMock) Play(ctx context.Context, soundID string, volume float64, durationSeconds float64, elapsedSeconds int) {
	m.plays = append(m.plays, playCall{soundID: soundID, volume: volume, elapsed: elapsedSeconds})
}

func (m *sounderMock) Stop() {
	m.stops++
}

func (m *sounderMock) Resume() {
	m.resumes++
}

func shakeAlarm(days []int) *entity.Alarm {
	return &entity.Alarm{
		ID:         uuid.New(),
		Time:       "07:30",
		Period:     "AM",
		Label:      "Workday",
		Days:       days,
		Active:     true,
		Task:       entity.TaskShake,
		Difficulty: entity.DifficultyEasy,
		Sound:      "Loud Beep",
	}
}

func newTestScheduler(alarms *alarmSourceMock, clock *fakeClock) (*scheduler.Scheduler, *recorderMock, *sounderMock) {
	recorder := &recorderMock{}
	sounder := &sounderMock{}
	s := scheduler.New(scheduler.Deps{
		Clock:    clock,
		Alarms:   alarms,
		Stats:    recorder,
		Settings: &settingsMock{volume: 0.7, emergencyDismiss: true},
		Audio:    sounder,
		Rand:     rand.New(rand.NewSource(1)),
	})
	return s, recorder, sounder
}

// dismiss solves the Easy shake task (15 shakes).
func dismiss(t *testing.T, s *scheduler.Scheduler) *entity.UserStats {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 14; i++ {
		_, satisfied, err := s.HandleTaskEvent(ctx, task.Event{Type: task.EventShake})
		assert.NoError(t, err)
		assert.False(t, satisfied)
	}
	stats, satisfied, err := s.HandleTaskEvent(ctx, task.Event{Type: task.EventShake})
	assert.NoError(t, err)
	assert.True(t, satisfied)
	return stats
}

func TestTickTriggersMatchingAlarm(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{2})
	s, _, sounder := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
	ctx := context.Background()

	s.Tick(ctx)
	snap := s.Snapshot()
	assert.Equal(t, scheduler.StateRinging, snap.State)
	assert.Equal(t, alarm.ID, snap.Alarm.ID)
	assert.Equal(t, entity.TaskShake, snap.TaskKind)
	assert.Equal(t, 1, len(sounder.plays))
	assert.InDelta(t, 0.14, sounder.plays[0].volume, 1e-9)
}

func TestTickIgnoresInactiveAndNonMatching(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	inactive := shakeAlarm([]int{2})
	inactive.Active = false
	otherDay := shakeAlarm([]int{5})
	s, _, sounder := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{inactive, otherDay}}, clock)

	s.Tick(context.Background())
	assert.Equal(t, scheduler.StateIdle, s.Snapshot().State)
	assert.Equal(t, 0, len(sounder.plays))
}

func TestMinuteGuardPreventsRefire(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{2})
	s, _, _ := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
	ctx := context.Background()

	s.Tick(ctx)
	dismiss(t, s)
	assert.Equal(t, scheduler.StateIdle, s.Snapshot().State)

	// Still inside 07:30; the alarm must not refire
	clock.Advance(5 * time.Second)
	s.Tick(ctx)
	assert.Equal(t, scheduler.StateIdle, s.Snapshot().State)

	// Next day, same minute: fires again
	clock.Advance(24 * time.Hour)
	alarm.Days = []int{3}
	s.Tick(ctx)
	assert.Equal(t, scheduler.StateRinging, s.Snapshot().State)
}

func TestRingingSessionIsNotPreempted(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	first := shakeAlarm([]int{2})
	second := shakeAlarm([]int{2})
	second.Time = "07:31"
	s, _, sounder := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{first, second}}, clock)
	ctx := context.Background()

	s.Tick(ctx)
	assert.Equal(t, first.ID, s.Snapshot().Alarm.ID)

	clock.Advance(time.Minute)
	s.Tick(ctx)
	snap := s.Snapshot()
	assert.Equal(t, first.ID, snap.Alarm.ID)
	assert.Equal(t, 60, snap.ElapsedSeconds)
	// Playback keeps pulsing the ringing alarm's sound
	assert.Equal(t, "Loud Beep", sounder.plays[len(sounder.plays)-1].soundID)
}

func TestEscalationOverTicks(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{2})
	s, _, sounder := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
	ctx := context.Background()

	s.Tick(ctx)
	clock.Advance(20 * time.Second)
	s.Tick(ctx)
	assert.InDelta(t, 0.7, sounder.plays[len(sounder.plays)-1].volume, 1e-9)

	clock.Advance(21 * time.Second)
	s.Tick(ctx)
	assert.InDelta(t, 1.0, sounder.plays[len(sounder.plays)-1].volume, 1e-9)
	assert.Equal(t, 41, sounder.plays[len(sounder.plays)-1].elapsed)
}

func TestSnooze(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{2})
	s, recorder, sounder := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
	ctx := context.Background()

	t.Run("not ringing", func(t *testing.T) {
		err := s.Snooze(ctx, 5)
		assert.ErrorIs(t, err, errorvalues.ErrNotRinging)
	})
	s.Tick(ctx)
	t.Run("bad duration", func(t *testing.T) {
		err := s.Snooze(ctx, 0)
		assert.ErrorIs(t, err, errorvalues.ErrBadSnoozeDuration)
	})
	t.Run("snooze silences and re-arms", func(t *testing.T) {
		err := s.Snooze(ctx, 5)
		assert.NoError(t, err)
		snap := s.Snapshot()
		assert.Equal(t, scheduler.StateIdle, snap.State)
		assert.Equal(t, alarm.ID, snap.Snooze.AlarmID)
		assert.Equal(t, 1, sounder.stops)
		assert.Equal(t, 0, recorder.calls)
	})
	t.Run("early tick stays idle", func(t *testing.T) {
		clock.Advance(3 * time.Minute)
		s.Tick(ctx)
		assert.Equal(t, scheduler.StateIdle, s.Snapshot().State)
	})
	t.Run("due snooze rings the same alarm", func(t *testing.T) {
		clock.Advance(2 * time.Minute)
		s.Tick(ctx)
		snap := s.Snapshot()
		assert.Equal(t, scheduler.StateRinging, snap.State)
		assert.Equal(t, alarm.ID, snap.Alarm.ID)
		assert.Nil(t, snap.Snooze)
	})
	t.Run("task progress was reset by the snooze", func(t *testing.T) {
		dismiss(t, s)
	})
}

func TestDueSnoozeBeatsMatchingAlarm(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	snoozed := shakeAlarm([]int{2})
	competitor := shakeAlarm([]int{2})
	competitor.Time = "07:35"
	competitor.Label = "Competitor"
	s, _, _ := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{snoozed, competitor}}, clock)
	ctx := context.Background()

	s.Tick(ctx)
	assert.Equal(t, snoozed.ID, s.Snapshot().Alarm.ID)
	assert.NoError(t, s.Snooze(ctx, 5))

	// 07:35: the snooze comes due in the same minute the competitor matches.
	// The deferred alarm wins, the competitor never gets scanned.
	clock.Advance(5 * time.Minute)
	s.Tick(ctx)
	snap := s.Snapshot()
	assert.Equal(t, scheduler.StateRinging, snap.State)
	assert.Equal(t, snoozed.ID, snap.Alarm.ID)
	assert.Nil(t, snap.Snooze)
}

func TestSnoozeDisabledByEmergencyDismiss(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{2})
	sounder := &sounderMock{}
	s := scheduler.New(scheduler.Deps{
		Clock:    clock,
		Alarms:   &alarmSourceMock{alarms: []*entity.Alarm{alarm}},
		Stats:    &recorderMock{},
		Settings: &settingsMock{volume: 0.7, emergencyDismiss: false},
		Audio:    sounder,
		Rand:     rand.New(rand.NewSource(1)),
	})
	ctx := context.Background()

	s.Tick(ctx)
	err := s.Snooze(ctx, 5)
	assert.ErrorIs(t, err, errorvalues.ErrSnoozeDisabled)
	// The session survives: solving the task stays the only way out
	assert.Equal(t, scheduler.StateRinging, s.Snapshot().State)
	assert.Equal(t, 0, sounder.stops)
}

func TestFallbackVolumeWhenSettingsUnavailable(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{2})
	sounder := &sounderMock{}
	s := scheduler.New(scheduler.Deps{
		Clock:          clock,
		Alarms:         &alarmSourceMock{alarms: []*entity.Alarm{alarm}},
		Stats:          &recorderMock{},
		Settings:       &settingsMock{fail: true},
		Audio:          sounder,
		Rand:           rand.New(rand.NewSource(1)),
		FallbackVolume: 1.0,
	})

	s.Tick(context.Background())
	assert.Equal(t, scheduler.StateRinging, s.Snapshot().State)
	assert.InDelta(t, 0.2, sounder.plays[0].volume, 1e-9)
}

func TestHandleTaskEvent(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{2})
	ctx := context.Background()

	t.Run("not ringing", func(t *testing.T) {
		s, _, _ := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
		_, _, err := s.HandleTaskEvent(ctx, task.Event{Type: task.EventShake})
		assert.ErrorIs(t, err, errorvalues.ErrNotRinging)
	})
	t.Run("mismatched event", func(t *testing.T) {
		s, _, _ := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
		s.Tick(ctx)
		_, _, err := s.HandleTaskEvent(ctx, task.Event{Type: task.EventTap, Value: 1})
		assert.ErrorIs(t, err, errorvalues.ErrTaskEventMismatch)
	})
	t.Run("completion recorded exactly once", func(t *testing.T) {
		s, recorder, sounder := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
		s.Tick(ctx)
		stats := dismiss(t, s)
		assert.NotNil(t, stats)
		assert.Equal(t, 1, recorder.calls)
		assert.Equal(t, 1, sounder.stops)
		// each of the 15 shake gestures also pokes the audio awake
		assert.Equal(t, 15, sounder.resumes)
		assert.Equal(t, scheduler.StateIdle, s.Snapshot().State)
	})
	t.Run("stats failure still silences", func(t *testing.T) {
		recorder := &recorderMock{fail: true}
		sounder := &sounderMock{}
		s := scheduler.New(scheduler.Deps{
			Clock:    clock,
			Alarms:   &alarmSourceMock{alarms: []*entity.Alarm{alarm}},
			Stats:    recorder,
			Settings: &settingsMock{volume: 0.7},
			Audio:    sounder,
			Rand:     rand.New(rand.NewSource(1)),
		})
		err := s.Simulate(ctx, alarm.ID)
		assert.NoError(t, err)
		stats := dismiss(t, s)
		assert.Nil(t, stats)
		assert.Equal(t, 1, recorder.calls)
		assert.Equal(t, scheduler.StateIdle, s.Snapshot().State)
	})
}

func TestSimulate(t *testing.T) {
	clock := &fakeClock{now: wednesday}
	alarm := shakeAlarm([]int{5})
	s, _, _ := newTestScheduler(&alarmSourceMock{alarms: []*entity.Alarm{alarm}}, clock)
	ctx := context.Background()

	t.Run("rings regardless of schedule", func(t *testing.T) {
		err := s.Simulate(ctx, alarm.ID)
		assert.NoError(t, err)
		assert.Equal(t, scheduler.StateRinging, s.Snapshot().State)
	})
	t.Run("already ringing", func(t *testing.T) {
		err := s.Simulate(ctx, alarm.ID)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyRinging)
	})
	t.Run("unknown alarm", func(t *testing.T) {
		dismiss(t, s)
		err := s.Simulate(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrAlarmNotFound)
	})
}
