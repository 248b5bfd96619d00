package task

import (
	"math/rand"
	"strconv"

	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/pkg/entity"
)

const mathInputLimit = 4

type MathTask struct {
	a, b      int
	input     string
	satisfied bool
}

type MathState struct {
	A     int    `json:"a"`
	B     int    `json:"b"`
	Input string `json:"input"`
}

func newMathTask(difficulty entity.Difficulty, rng *rand.Rand) *MathTask {
	min, max := 1, 10
	switch difficulty {
	case entity.DifficultyMedium:
		min, max = 10, 50
	case entity.DifficultyHard:
		min, max = 25, 99
	}
	return &MathTask{
		a: rng.Intn(max-min) + min,
		b: rng.Intn(max-min) + min,
	}
}

func (t *MathTask) Kind() entity.TaskKind { return entity.TaskMath }

func (t *MathTask) Handle(ev Event) error {
	switch ev.Type {
	case EventDigit:
		if ev.Value < 0 || ev.Value > 9 {
			return errorvalues.ErrTaskEventMismatch
		}
		if len(t.input) < mathInputLimit {
			t.input += strconv.Itoa(ev.Value)
		}
	case EventBackspace:
		if len(t.input) > 0 {
			t.input = t.input[:len(t.input)-1]
		}
	case EventSubmit:
		answer, err := strconv.Atoi(t.input)
		if err == nil && answer == t.a+t.b {
			t.satisfied = true
		} else {
			// Wrong submission clears the input, no further penalty
			t.input = ""
		}
	default:
		return errorvalues.ErrTaskEventMismatch
	}
	return nil
}

func (t *MathTask) Satisfied() bool { return t.satisfied }

func (t *MathTask) State() any {
	return MathState{A: t.a, B: t.b, Input: t.input}
}
