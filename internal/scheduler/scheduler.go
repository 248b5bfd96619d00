// Package scheduler owns the single authoritative decision of when the system
// transitions from idle to ringing, and drives audio escalation while a
// session stays unacknowledged. One tick per second evaluates the pending
// snooze first, then scans alarms; while ringing no other alarm can pre-empt
// the active session.
package scheduler

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/task"
	"github.com/limbo/wakeup/pkg/entity"
)

type State string

const (
	StateIdle    State = "IDLE"
	StateRinging State = "RINGING"
)

// pulseSeconds is how long each synthesized pulse is asked to last; pulses
// are re-issued every tick so playback is continuous.
const pulseSeconds = 1.5

type AlarmSource interface {
	ListAlarms(ctx context.Context) ([]*entity.Alarm, error)
	GetAlarm(ctx context.Context, id uuid.UUID) (*entity.Alarm, error)
}

type CompletionRecorder interface {
	RecordCompletion(ctx context.Context, task entity.TaskKind, label string, now time.Time) (*entity.UserStats, error)
}

type SettingsSource interface {
	Settings(ctx context.Context) (*entity.Settings, error)
}

type Sounder interface {
	// Play is fire-and-forget; backends that can't start yet defer silently
	Play(ctx context.Context, soundID string, volume float64, durationSeconds float64, elapsedSeconds int)
	Stop()
	// Resume signals a user gesture that may ungate a deferred playback
	Resume()
}

type session struct {
	alarm      *entity.Alarm
	startedAt  time.Time
	elapsed    int
	baseVolume float64
	task       task.Task
}

type Scheduler struct {
	mu       sync.Mutex
	clock    Clock
	alarms   AlarmSource
	stats    CompletionRecorder
	settings SettingsSource
	audio    Sounder
	rng      *rand.Rand
	logger   *slog.Logger

	state   State
	session *session
	snooze  *entity.PendingSnooze
	// guard against refiring inside the same wall-clock minute
	lastTriggeredMinute string
	fallbackVolume      float64
}

type Deps struct {
	Clock    Clock
	Alarms   AlarmSource
	Stats    CompletionRecorder
	Settings SettingsSource
	Audio    Sounder
	Logger   *slog.Logger
	Rand     *rand.Rand
	// FallbackVolume applies when the settings store can't be read
	FallbackVolume float64
}

func New(deps Deps) *Scheduler {
	if deps.Alarms == nil || deps.Stats == nil || deps.Settings == nil || deps.Audio == nil {
		log.Fatal("on scheduler provided nil dependencies")
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.FallbackVolume <= 0 || deps.FallbackVolume > 1 {
		deps.FallbackVolume = 0.7
	}
	return &Scheduler{
		clock:          deps.Clock,
		alarms:         deps.Alarms,
		stats:          deps.Stats,
		settings:       deps.Settings,
		audio:          deps.Audio,
		rng:            deps.Rand,
		logger:         deps.Logger,
		state:          StateIdle,
		fallbackVolume: deps.FallbackVolume,
	}
}

// Run drives the scheduler until the context is cancelled. The 1-second
// granularity is the accepted design trade-off, not a defect.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick evaluates one scheduling step. It never returns an error and never
// panics: a broken repository or a malformed alarm only means no transition
// this second.
func (s *Scheduler) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()

	if s.state == StateRinging {
		s.session.elapsed = int(now.Sub(s.session.startedAt) / time.Second)
		volume := EffectiveVolume(s.session.elapsed, s.session.baseVolume)
		s.audio.Play(ctx, s.session.alarm.Sound, volume, pulseSeconds, s.session.elapsed)
		return
	}

	// The snooze slot wins over any naturally matching alarm in this second
	if s.snooze != nil && !now.Before(s.snooze.At) {
		alarmID := s.snooze.AlarmID
		s.snooze = nil
		alarm, err := s.alarms.GetAlarm(ctx, alarmID)
		if err != nil {
			s.logger.Error("snoozed alarm vanished", slog.String("alarm_id", alarmID.String()), slog.String("error", err.Error()))
			return
		}
		s.startRinging(ctx, alarm, now)
		return
	}

	key := minuteKey(now)
	if key == s.lastTriggeredMinute {
		return
	}
	alarms, err := s.alarms.ListAlarms(ctx)
	if err != nil {
		s.logger.Error("listing alarms on tick failed", slog.String("error", err.Error()))
		return
	}
	for _, alarm := range alarms {
		if Matches(alarm, now) {
			s.lastTriggeredMinute = key
			// a direct trigger consumes any outstanding snooze
			s.snooze = nil
			s.startRinging(ctx, alarm, now)
			return
		}
	}
}

func (s *Scheduler) startRinging(ctx context.Context, alarm *entity.Alarm, now time.Time) {
	baseVolume := s.fallbackVolume
	if settings, err := s.settings.Settings(ctx); err == nil {
		baseVolume = settings.DefaultVolume
	}
	s.session = &session{
		alarm:      alarm,
		startedAt:  now,
		baseVolume: baseVolume,
		task:       task.New(alarm.Task, alarm.Difficulty, s.rng),
	}
	s.state = StateRinging
	s.audio.Play(ctx, alarm.Sound, EffectiveVolume(0, baseVolume), pulseSeconds, 0)
	s.logger.Info("alarm ringing",
		slog.String("alarm_id", alarm.ID.String()),
		slog.String("time", alarm.Time+" "+alarm.Period),
		slog.String("task", string(alarm.Task)),
	)
}

// Snooze defers the active session: the ringing stops, all task progress is
// discarded and the alarm re-triggers after the given number of minutes.
// With emergency dismiss turned off the only way out is solving the task.
func (s *Scheduler) Snooze(ctx context.Context, minutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRinging {
		return errorvalues.ErrNotRinging
	}
	if minutes < 1 {
		return errorvalues.ErrBadSnoozeDuration
	}
	if settings, err := s.settings.Settings(ctx); err == nil && !settings.EmergencyDismiss {
		return errorvalues.ErrSnoozeDisabled
	}
	now := s.clock.Now()
	s.snooze = &entity.PendingSnooze{
		AlarmID: s.session.alarm.ID,
		At:      now.Add(time.Duration(minutes) * time.Minute),
	}
	s.logger.Info("alarm snoozed",
		slog.String("alarm_id", s.session.alarm.ID.String()),
		slog.Int("minutes", minutes),
	)
	s.endSession()
	return nil
}

// HandleTaskEvent forwards a verification interaction to the active task.
// When the task becomes satisfied the completion is recorded exactly once,
// the audio stops and the scheduler returns to idle.
func (s *Scheduler) HandleTaskEvent(ctx context.Context, ev task.Event) (*entity.UserStats, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRinging {
		return nil, false, errorvalues.ErrNotRinging
	}
	// every task interaction is a user gesture, which is what ungates a
	// playback the output device deferred
	s.audio.Resume()
	if err := s.session.task.Handle(ev); err != nil {
		return nil, false, err
	}
	if !s.session.task.Satisfied() {
		return nil, false, nil
	}
	alarm := s.session.alarm
	stats, err := s.stats.RecordCompletion(ctx, alarm.Task, alarm.Label, s.clock.Now())
	if err != nil {
		// The wake still counts: silence the alarm even if stats can't be saved
		s.logger.Error("recording completion failed", slog.String("error", err.Error()))
	}
	s.snooze = nil
	s.logger.Info("alarm verified", slog.String("alarm_id", alarm.ID.String()))
	s.endSession()
	return stats, true, nil
}

// Simulate rings a specific alarm immediately, bypassing time matching.
func (s *Scheduler) Simulate(ctx context.Context, alarmID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRinging {
		return errorvalues.ErrAlreadyRinging
	}
	alarm, err := s.alarms.GetAlarm(ctx, alarmID)
	if err != nil {
		return err
	}
	s.startRinging(ctx, alarm, s.clock.Now())
	return nil
}

func (s *Scheduler) endSession() {
	s.audio.Stop()
	s.session = nil
	s.state = StateIdle
}

// Snapshot is the read-only view the API serves while polling the session.
type Snapshot struct {
	State           State                 `json:"state"`
	Alarm           *entity.Alarm         `json:"alarm,omitempty"`
	ElapsedSeconds  int                   `json:"elapsed_seconds"`
	EffectiveVolume float64               `json:"effective_volume"`
	TaskKind        entity.TaskKind       `json:"task_kind,omitempty"`
	TaskState       any                   `json:"task_state,omitempty"`
	Snooze          *entity.PendingSnooze `json:"snooze,omitempty"`
}

func (s *Scheduler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{State: s.state, Snooze: s.snooze}
	if s.state == StateRinging {
		snap.Alarm = s.session.alarm
		snap.ElapsedSeconds = s.session.elapsed
		snap.EffectiveVolume = EffectiveVolume(s.session.elapsed, s.session.baseVolume)
		snap.TaskKind = s.session.task.Kind()
		snap.TaskState = s.session.task.State()
	}
	return snap
}
