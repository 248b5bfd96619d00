// Package audio turns sound identifiers into concrete playback plans: preset
// names resolve to synthesized tone profiles, uuid identifiers to uploaded
// custom sounds looped at the requested volume. Playback is fire-and-forget;
// an output device that isn't ready yet (gesture-gated platforms) defers the
// latest plan instead of failing.
package audio

import (
	"context"
	"log"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/limbo/wakeup/pkg/entity"
)

// PlaybackPlan is the full instruction handed to an output device for one
// pulse (synthesized) or one looped custom payload.
type PlaybackPlan struct {
	Wave            string
	Volume          float64
	DurationSeconds float64
	StartFrequency  float64
	EndFrequency    float64
	SweepSeconds    float64
	Gain            []GainStep
	Loop            bool
	// base64 audio payload, set only for custom sounds
	CustomData string
}

type Output interface {
	// Ready reports whether the device can start playback right now
	Ready() bool
	Play(plan PlaybackPlan) error
	Stop()
	Resume() error
	Suspend() error
}

type SoundSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomSound, error)
}

type Engine struct {
	mu       sync.Mutex
	out      Output
	sounds   SoundSource
	profiles map[string]Profile
	// last plan that couldn't start; retried on the next resume or play
	pending *PlaybackPlan
	logger  *slog.Logger
}

func NewEngine(out Output, sounds SoundSource, logger *slog.Logger) *Engine {
	if out == nil || sounds == nil {
		log.Fatal("on audio engine provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		out:      out,
		sounds:   sounds,
		profiles: loadProfiles(),
		logger:   logger,
	}
}

// Play issues one pulse for the given sound at the given volume. Failures are
// logged and swallowed: a broken audio backend must never block the
// enforcement loop.
func (e *Engine) Play(ctx context.Context, soundID string, volume float64, durationSeconds float64, elapsedSeconds int) {
	plan := e.buildPlan(ctx, soundID, volume, durationSeconds, elapsedSeconds)
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.out.Ready() {
		// deferred until the next qualifying user interaction
		e.pending = &plan
		return
	}
	e.pending = nil
	if err := e.out.Play(plan); err != nil {
		e.logger.Warn("audio playback failed", slog.String("sound", soundID), slog.String("error", err.Error()))
	}
}

func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = nil
	e.out.Stop()
}

// Resume is called on user gestures: it wakes the device and replays any plan
// that was deferred while the device was gated.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.out.Resume(); err != nil {
		e.logger.Warn("audio resume failed", slog.String("error", err.Error()))
		return
	}
	if e.pending != nil && e.out.Ready() {
		plan := *e.pending
		e.pending = nil
		if err := e.out.Play(plan); err != nil {
			e.logger.Warn("deferred playback failed", slog.String("error", err.Error()))
		}
	}
}

func (e *Engine) Suspend() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.out.Suspend(); err != nil {
		e.logger.Warn("audio suspend failed", slog.String("error", err.Error()))
	}
}

func (e *Engine) buildPlan(ctx context.Context, soundID string, volume, durationSeconds float64, elapsedSeconds int) PlaybackPlan {
	if volume > 1.0 {
		volume = 1.0
	}
	if id, err := uuid.Parse(soundID); err == nil {
		if sound, err := e.sounds.GetByID(ctx, id); err == nil {
			return PlaybackPlan{
				Volume:     volume,
				Loop:       true,
				CustomData: sound.Data,
			}
		}
		// fall through to the default preset when the upload is gone
		e.logger.Warn("custom sound not found, using default preset", slog.String("sound_id", soundID))
		soundID = DefaultProfile
	}
	profile, ok := e.profiles[soundID]
	if !ok {
		profile = e.profiles[DefaultProfile]
	}
	start := profile.FrequencyAt(elapsedSeconds)
	end := start
	sweep := 0.0
	if profile.SweepTo != 0 {
		end = profile.SweepTo + profile.Climb*float64(elapsedSeconds)
		sweep = profile.SweepSeconds
	}
	return PlaybackPlan{
		Wave:            profile.Wave,
		Volume:          volume,
		DurationSeconds: durationSeconds,
		StartFrequency:  start,
		EndFrequency:    end,
		SweepSeconds:    sweep,
		Gain:            profile.Gain,
	}
}
