package scheduler

import "math"

// Escalation constants. The cutoff is the single authoritative threshold past
// which user volume preferences stop mattering.
const (
	MaxVolumeCutoffSeconds = 40
	RampDurationSeconds    = 15

	rampStartRatio   = 0.2
	minAudibleVolume = 0.1
)

// EffectiveVolume maps elapsed ringing seconds and the configured base volume
// to the playback volume. Past the cutoff it is pinned to full volume no
// matter what the user configured; below it the volume ramps linearly from
// a fifth of the base up to the base, never dropping under the audible floor.
// Pure and side-effect free; recomputed on every tick while ringing.
func EffectiveVolume(elapsedSeconds int, baseVolume float64) float64 {
	if elapsedSeconds > MaxVolumeCutoffSeconds {
		return 1.0
	}
	if elapsedSeconds >= RampDurationSeconds {
		return baseVolume
	}
	ratio := rampStartRatio + (1-rampStartRatio)*(float64(elapsedSeconds)/RampDurationSeconds)
	return math.Max(minAudibleVolume, baseVolume*ratio)
}
