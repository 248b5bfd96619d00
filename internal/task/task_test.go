package task_test

import (
	"math/rand"
	"testing"

	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/task"
	"github.com/limbo/wakeup/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func digits(t *testing.T, tk task.Task, answer int) {
	t.Helper()
	for answer > 0 {
		pow := 1
		for answer/pow >= 10 {
			pow *= 10
		}
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventDigit, Value: answer / pow}))
		answer %= pow
		if pow == 1 {
			break
		}
	}
}

func TestMathTask(t *testing.T) {
	t.Run("operand ranges per difficulty", func(t *testing.T) {
		cases := []struct {
			difficulty entity.Difficulty
			min, max   int
		}{
			{entity.DifficultyEasy, 1, 10},
			{entity.DifficultyMedium, 10, 50},
			{entity.DifficultyHard, 25, 99},
		}
		for _, c := range cases {
			for range 50 {
				tk := task.New(entity.TaskMath, c.difficulty, newRng())
				state := tk.State().(task.MathState)
				assert.GreaterOrEqual(t, state.A, c.min)
				assert.Less(t, state.A, c.max)
				assert.GreaterOrEqual(t, state.B, c.min)
				assert.Less(t, state.B, c.max)
			}
		}
	})
	t.Run("correct answer satisfies", func(t *testing.T) {
		tk := task.New(entity.TaskMath, entity.DifficultyMedium, newRng())
		state := tk.State().(task.MathState)
		digits(t, tk, state.A+state.B)
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventSubmit}))
		assert.True(t, tk.Satisfied())
	})
	t.Run("wrong answer clears input", func(t *testing.T) {
		tk := task.New(entity.TaskMath, entity.DifficultyEasy, newRng())
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventDigit, Value: 0}))
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventSubmit}))
		assert.False(t, tk.Satisfied())
		assert.Equal(t, "", tk.State().(task.MathState).Input)
	})
	t.Run("backspace edits input", func(t *testing.T) {
		tk := task.New(entity.TaskMath, entity.DifficultyEasy, newRng())
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventDigit, Value: 4}))
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventDigit, Value: 2}))
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventBackspace}))
		assert.Equal(t, "4", tk.State().(task.MathState).Input)
	})
	t.Run("input capped at four digits", func(t *testing.T) {
		tk := task.New(entity.TaskMath, entity.DifficultyEasy, newRng())
		for range 6 {
			assert.NoError(t, tk.Handle(task.Event{Type: task.EventDigit, Value: 9}))
		}
		assert.Equal(t, "9999", tk.State().(task.MathState).Input)
	})
	t.Run("foreign event rejected", func(t *testing.T) {
		tk := task.New(entity.TaskMath, entity.DifficultyEasy, newRng())
		err := tk.Handle(task.Event{Type: task.EventShake})
		assert.ErrorIs(t, err, errorvalues.ErrTaskEventMismatch)
	})
}

func TestShakeTask(t *testing.T) {
	t.Run("targets per difficulty", func(t *testing.T) {
		cases := map[entity.Difficulty]int{
			entity.DifficultyEasy:   15,
			entity.DifficultyMedium: 30,
			entity.DifficultyHard:   50,
		}
		for difficulty, target := range cases {
			tk := task.New(entity.TaskShake, difficulty, newRng())
			assert.Equal(t, target, tk.State().(task.ShakeState).Target)
		}
	})
	t.Run("satisfied at target", func(t *testing.T) {
		tk := task.New(entity.TaskShake, entity.DifficultyEasy, newRng())
		for range 14 {
			assert.NoError(t, tk.Handle(task.Event{Type: task.EventShake}))
			assert.False(t, tk.Satisfied())
		}
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventShake}))
		assert.True(t, tk.Satisfied())
	})
	t.Run("count does not overshoot", func(t *testing.T) {
		tk := task.New(entity.TaskShake, entity.DifficultyEasy, newRng())
		for range 20 {
			assert.NoError(t, tk.Handle(task.Event{Type: task.EventShake}))
		}
		assert.Equal(t, 15, tk.State().(task.ShakeState).Count)
	})
}

func TestMemoryTask(t *testing.T) {
	t.Run("pairs per difficulty", func(t *testing.T) {
		cases := map[entity.Difficulty]int{
			entity.DifficultyEasy:   4,
			entity.DifficultyMedium: 8,
			entity.DifficultyHard:   12,
		}
		for difficulty, cardCount := range cases {
			tk := task.New(entity.TaskMemory, difficulty, newRng())
			assert.Equal(t, cardCount, len(tk.State().(task.MemoryState).Cards))
		}
	})
	t.Run("face-down values are hidden", func(t *testing.T) {
		tk := task.New(entity.TaskMemory, entity.DifficultyEasy, newRng())
		for _, card := range tk.State().(task.MemoryState).Cards {
			assert.Equal(t, "", card.Value)
		}
	})
	t.Run("mismatch reverts both cards", func(t *testing.T) {
		tk := task.New(entity.TaskMemory, entity.DifficultyEasy, newRng())
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventFlip, Value: 0}))
		first := tk.State().(task.MemoryState).Cards[0].Value
		// find a card with a different value using a same-seed parallel deck
		other := -1
		for i := 1; i < 4; i++ {
			probe := task.New(entity.TaskMemory, entity.DifficultyEasy, newRng())
			assert.NoError(t, probe.Handle(task.Event{Type: task.EventFlip, Value: i}))
			if probe.State().(task.MemoryState).Cards[i].Value != first {
				other = i
				break
			}
		}
		assert.NotEqual(t, -1, other)
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventFlip, Value: other}))
		for _, card := range tk.State().(task.MemoryState).Cards {
			assert.False(t, card.Flipped)
		}
	})
	t.Run("matching all pairs satisfies", func(t *testing.T) {
		tk := task.New(entity.TaskMemory, entity.DifficultyEasy, newRng())
		// reveal layout with a parallel deck built from the same seed
		values := make([]string, 4)
		for i := range values {
			probe := task.New(entity.TaskMemory, entity.DifficultyEasy, newRng())
			assert.NoError(t, probe.Handle(task.Event{Type: task.EventFlip, Value: i}))
			values[i] = probe.State().(task.MemoryState).Cards[i].Value
		}
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if values[i] == values[j] {
					assert.NoError(t, tk.Handle(task.Event{Type: task.EventFlip, Value: i}))
					assert.NoError(t, tk.Handle(task.Event{Type: task.EventFlip, Value: j}))
				}
			}
		}
		assert.True(t, tk.Satisfied())
	})
	t.Run("out of range flip rejected", func(t *testing.T) {
		tk := task.New(entity.TaskMemory, entity.DifficultyEasy, newRng())
		err := tk.Handle(task.Event{Type: task.EventFlip, Value: 99})
		assert.ErrorIs(t, err, errorvalues.ErrTaskEventMismatch)
	})
}

func TestSequenceTask(t *testing.T) {
	t.Run("lengths per difficulty", func(t *testing.T) {
		cases := map[entity.Difficulty]int{
			entity.DifficultyEasy:   5,
			entity.DifficultyMedium: 8,
			entity.DifficultyHard:   12,
		}
		for difficulty, count := range cases {
			tk := task.New(entity.TaskSequence, difficulty, newRng())
			assert.Equal(t, count, len(tk.State().(task.SequenceState).Numbers))
		}
	})
	t.Run("ordered taps satisfy", func(t *testing.T) {
		tk := task.New(entity.TaskSequence, entity.DifficultyEasy, newRng())
		for i := 1; i <= 5; i++ {
			assert.NoError(t, tk.Handle(task.Event{Type: task.EventTap, Value: i}))
		}
		assert.True(t, tk.Satisfied())
	})
	t.Run("wrong tap resets progress", func(t *testing.T) {
		tk := task.New(entity.TaskSequence, entity.DifficultyEasy, newRng())
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventTap, Value: 1}))
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventTap, Value: 2}))
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventTap, Value: 4}))
		assert.Equal(t, 0, tk.State().(task.SequenceState).Progress)
		assert.False(t, tk.Satisfied())
	})
}

func TestQRTask(t *testing.T) {
	tk := task.New(entity.TaskQR, entity.DifficultyEasy, newRng())
	t.Run("only a scan confirms", func(t *testing.T) {
		err := tk.Handle(task.Event{Type: task.EventSubmit})
		assert.ErrorIs(t, err, errorvalues.ErrTaskEventMismatch)
		assert.False(t, tk.Satisfied())
	})
	t.Run("scan satisfies", func(t *testing.T) {
		assert.NoError(t, tk.Handle(task.Event{Type: task.EventScan}))
		assert.True(t, tk.Satisfied())
	})
}
