package scheduler_test

import (
	"testing"

	"github.com/limbo/wakeup/internal/scheduler"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveVolume(t *testing.T) {
	t.Run("ramp starts at a fifth of base", func(t *testing.T) {
		assert.InDelta(t, 0.14, scheduler.EffectiveVolume(0, 0.7), 1e-9)
	})
	t.Run("ramp is linear", func(t *testing.T) {
		// 0.2 + 0.8 * 7/15 of the base
		assert.InDelta(t, 0.5733333333, scheduler.EffectiveVolume(7, 1.0), 1e-9)
	})
	t.Run("base volume reached at ramp end", func(t *testing.T) {
		assert.InDelta(t, 0.7, scheduler.EffectiveVolume(15, 0.7), 1e-9)
	})
	t.Run("base volume held until cutoff", func(t *testing.T) {
		assert.InDelta(t, 0.7, scheduler.EffectiveVolume(40, 0.7), 1e-9)
	})
	t.Run("full volume past cutoff", func(t *testing.T) {
		assert.InDelta(t, 1.0, scheduler.EffectiveVolume(41, 0.7), 1e-9)
		assert.InDelta(t, 1.0, scheduler.EffectiveVolume(300, 0.05), 1e-9)
	})
	t.Run("audible floor during ramp", func(t *testing.T) {
		assert.InDelta(t, 0.1, scheduler.EffectiveVolume(0, 0.2), 1e-9)
	})
	t.Run("monotonic over a whole session", func(t *testing.T) {
		prev := 0.0
		for elapsed := 0; elapsed <= 60; elapsed++ {
			v := scheduler.EffectiveVolume(elapsed, 0.7)
			assert.GreaterOrEqual(t, v, prev)
			prev = v
		}
	})
}
