package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskKind string

const (
	TaskMath     TaskKind = "Math"
	TaskShake    TaskKind = "Shake"
	TaskQR       TaskKind = "QR"
	TaskMemory   TaskKind = "Memory"
	TaskSequence TaskKind = "Sequence"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Alarm keeps its trigger time in the 12-hour form the clients display:
// an "HH:MM" string plus an AM/PM period. Days uses Monday=0..Sunday=6.
// Date is a "YYYY-MM-DD" calendar day for one-shot alarms and excludes Days.
type Alarm struct {
	ID         uuid.UUID  `json:"id"`
	Time       string     `json:"time"`
	Period     string     `json:"period"`
	Label      string     `json:"label"`
	Days       []int      `json:"days"`
	Date       string     `json:"date,omitempty"`
	Active     bool       `json:"active"`
	Task       TaskKind   `json:"task"`
	Difficulty Difficulty `json:"difficulty"`
	Sound      string     `json:"sound"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Recurring reports whether the alarm triggers by weekday set rather than
// a single calendar date. An empty Days set with no Date means every day.
func (a *Alarm) Recurring() bool {
	return a.Date == ""
}

type CompletionRecord struct {
	Date  string   `json:"date"`
	Task  TaskKind `json:"task"`
	Label string   `json:"label"`
}

type UserStats struct {
	CurrentStreak int                `json:"currentStreak"`
	BestStreak    int                `json:"bestStreak"`
	TotalWakes    int                `json:"totalWakes"`
	LastWakeDate  *time.Time         `json:"lastWakeDate,omitempty"`
	History       []CompletionRecord `json:"history"`
}

// PendingSnooze is the single deferred re-trigger slot. At most one exists
// system-wide at any moment.
type PendingSnooze struct {
	AlarmID uuid.UUID `json:"alarm_id"`
	At      time.Time `json:"at"`
}

type CustomSound struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

type Settings struct {
	DefaultSound       string  `json:"default_sound"`
	DefaultVolume      float64 `json:"default_volume"`
	EmergencyDismiss   bool    `json:"emergency_dismiss"`
	CautionAccepted    bool    `json:"caution_accepted"`
	SameDayKeepsStreak bool    `json:"same_day_keeps_streak"`
}
