package task

import (
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/pkg/entity"
)

type ShakeTask struct {
	count  int
	target int
}

type ShakeState struct {
	Count  int `json:"count"`
	Target int `json:"target"`
}

func newShakeTask(difficulty entity.Difficulty) *ShakeTask {
	target := 15
	switch difficulty {
	case entity.DifficultyMedium:
		target = 30
	case entity.DifficultyHard:
		target = 50
	}
	return &ShakeTask{target: target}
}

func (t *ShakeTask) Kind() entity.TaskKind { return entity.TaskShake }

func (t *ShakeTask) Handle(ev Event) error {
	if ev.Type != EventShake {
		return errorvalues.ErrTaskEventMismatch
	}
	if t.count < t.target {
		t.count++
	}
	return nil
}

func (t *ShakeTask) Satisfied() bool { return t.count >= t.target }

func (t *ShakeTask) State() any {
	return ShakeState{Count: t.count, Target: t.target}
}
