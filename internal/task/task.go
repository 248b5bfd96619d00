// Package task implements the verification challenges that silence a ringing
// alarm. Each kind keeps its own transient progress and reports satisfaction
// through the common interface; wrong inputs reset local progress and are
// never alarm-level errors.
package task

import (
	"math/rand"

	"github.com/limbo/wakeup/pkg/entity"
)

type EventType string

const (
	EventDigit     EventType = "digit"
	EventBackspace EventType = "backspace"
	EventSubmit    EventType = "submit"
	EventShake     EventType = "shake"
	EventFlip      EventType = "flip"
	EventTap       EventType = "tap"
	EventScan      EventType = "scan"
)

// Event is a single user interaction forwarded from the ringing screen.
// Value carries the digit, card index or tapped number depending on the type.
type Event struct {
	Type  EventType `json:"type"`
	Value int       `json:"value"`
}

type Task interface {
	Kind() entity.TaskKind
	// Handle applies one interaction. Events that don't belong to the task
	// kind return ErrTaskEventMismatch; wrong-but-applicable inputs just
	// reset progress
	Handle(ev Event) error
	Satisfied() bool
	// State exposes the transient progress for the ringing screen
	State() any
}

// New builds a fresh task for a ringing session. The generator drives the
// random parts (operands, deck shuffle, number placement) so sessions differ
// but tests stay deterministic.
func New(kind entity.TaskKind, difficulty entity.Difficulty, rng *rand.Rand) Task {
	switch kind {
	case entity.TaskShake:
		return newShakeTask(difficulty)
	case entity.TaskMemory:
		return newMemoryTask(difficulty, rng)
	case entity.TaskSequence:
		return newSequenceTask(difficulty, rng)
	case entity.TaskQR:
		return newQRTask()
	default:
		return newMathTask(difficulty, rng)
	}
}
