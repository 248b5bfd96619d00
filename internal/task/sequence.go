package task

import (
	"math/rand"

	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/pkg/entity"
)

type SequenceTask struct {
	numbers []int
	// highest number tapped in order so far, 0 means no progress
	progress int
}

type SequenceState struct {
	Numbers  []int `json:"numbers"`
	Progress int   `json:"progress"`
}

func newSequenceTask(difficulty entity.Difficulty, rng *rand.Rand) *SequenceTask {
	count := 5
	switch difficulty {
	case entity.DifficultyMedium:
		count = 8
	case entity.DifficultyHard:
		count = 12
	}
	numbers := make([]int, count)
	for i := range numbers {
		numbers[i] = i + 1
	}
	rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})
	return &SequenceTask{numbers: numbers}
}

func (t *SequenceTask) Kind() entity.TaskKind { return entity.TaskSequence }

func (t *SequenceTask) Handle(ev Event) error {
	if ev.Type != EventTap {
		return errorvalues.ErrTaskEventMismatch
	}
	if ev.Value == t.progress+1 {
		t.progress = ev.Value
	} else {
		// Any out-of-order tap loses all partial credit
		t.progress = 0
	}
	return nil
}

func (t *SequenceTask) Satisfied() bool { return t.progress == len(t.numbers) }

func (t *SequenceTask) State() any {
	return SequenceState{Numbers: t.numbers, Progress: t.progress}
}
