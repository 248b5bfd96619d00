package task

import (
	"math/rand"

	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/pkg/entity"
)

var memorySymbols = []string{"🔥", "⭐", "💎", "🍀", "🍎", "🌈", "🌊", "🍄"}

type memoryCard struct {
	value   string
	flipped bool
	matched bool
}

type MemoryTask struct {
	cards    []memoryCard
	selected []int
}

type MemoryCardState struct {
	Value   string `json:"value,omitempty"`
	Flipped bool   `json:"flipped"`
	Matched bool   `json:"matched"`
}

type MemoryState struct {
	Cards []MemoryCardState `json:"cards"`
}

func newMemoryTask(difficulty entity.Difficulty, rng *rand.Rand) *MemoryTask {
	pairs := 2
	switch difficulty {
	case entity.DifficultyMedium:
		pairs = 4
	case entity.DifficultyHard:
		pairs = 6
	}
	cards := make([]memoryCard, 0, pairs*2)
	for _, symbol := range memorySymbols[:pairs] {
		cards = append(cards, memoryCard{value: symbol}, memoryCard{value: symbol})
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &MemoryTask{
		cards:    cards,
		selected: make([]int, 0, 2),
	}
}

func (t *MemoryTask) Kind() entity.TaskKind { return entity.TaskMemory }

func (t *MemoryTask) Handle(ev Event) error {
	if ev.Type != EventFlip {
		return errorvalues.ErrTaskEventMismatch
	}
	idx := ev.Value
	if idx < 0 || idx >= len(t.cards) {
		return errorvalues.ErrTaskEventMismatch
	}
	card := &t.cards[idx]
	if len(t.selected) == 2 || card.matched || card.flipped {
		return nil
	}
	card.flipped = true
	t.selected = append(t.selected, idx)
	if len(t.selected) < 2 {
		return nil
	}
	first, second := &t.cards[t.selected[0]], &t.cards[t.selected[1]]
	if first.value == second.value {
		first.matched, second.matched = true, true
	} else {
		// Mismatch reverts both cards; the client renders the reveal delay
		first.flipped, second.flipped = false, false
	}
	t.selected = t.selected[:0]
	return nil
}

func (t *MemoryTask) Satisfied() bool {
	for _, c := range t.cards {
		if !c.matched {
			return false
		}
	}
	return true
}

// State hides face-down card values so the client can't cheat by inspecting
// the session snapshot.
func (t *MemoryTask) State() any {
	cards := make([]MemoryCardState, len(t.cards))
	for i, c := range t.cards {
		cards[i] = MemoryCardState{Flipped: c.flipped, Matched: c.matched}
		if c.flipped || c.matched {
			cards[i].Value = c.value
		}
	}
	return MemoryState{Cards: cards}
}
