package audio

import (
	"log/slog"
	"sync"
)

// LogOutput is the host-side stand-in for a platform playback device: it
// accepts every plan and records what would be played. Real devices plug in
// behind the same Output interface.
type LogOutput struct {
	mu        sync.Mutex
	suspended bool
	logger    *slog.Logger
}

func NewLogOutput(logger *slog.Logger) *LogOutput {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogOutput{logger: logger}
}

func (o *LogOutput) Ready() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return !o.suspended
}

func (o *LogOutput) Play(plan PlaybackPlan) error {
	if plan.CustomData != "" {
		o.logger.Debug("playing custom sound", slog.Float64("volume", plan.Volume), slog.Bool("loop", plan.Loop))
		return nil
	}
	o.logger.Debug("playing tone",
		slog.String("wave", plan.Wave),
		slog.Float64("volume", plan.Volume),
		slog.Float64("frequency", plan.StartFrequency),
	)
	return nil
}

func (o *LogOutput) Stop() {}

func (o *LogOutput) Resume() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.suspended = false
	return nil
}

func (o *LogOutput) Suspend() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.suspended = true
	return nil
}
