package live

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEventType = errors.New("unknown event type")
var ErrUnknownStatus = errors.New("unknown match status")

type EventType string

const (
	Goal          EventType = "GOAL"
	PenaltyScored EventType = "PENALTY_SCORED"
	PenaltyMissed EventType = "PENALTY_MISSED"
	YellowCard    EventType = "YELLOW_CARD"
	RedCard       EventType = "RED_CARD"
	Substitution  EventType = "SUBSTITUTION"
	OwnGoal       EventType = "OWN_GOAL"
)

var eventTypes = map[EventType]bool{
	Goal:          true,
	PenaltyScored: true,
	PenaltyMissed: true,
	YellowCard:    true,
	RedCard:       true,
	Substitution:  true,
	OwnGoal:       true,
}

// ParseEventType accepts the upper case wire name, surrounding whitespace is ignored.
func ParseEventType(s string) (EventType, error) {
	t := EventType(strings.ToUpper(strings.TrimSpace(s)))
	if !eventTypes[t] {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
	}
	return t, nil
}

// Scoring reports whether events of this type count towards the derived score.
func (t EventType) Scoring() bool {
	return t == Goal || t == PenaltyScored
}

type Status string

const (
	Scheduled Status = "SCHEDULED"
	Live      Status = "LIVE"
	Finished  Status = "FINISHED"
	Cancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case Scheduled, Live, Finished, Cancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

type MatchEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Minute    int       `json:"minute"`
	TeamID    string    `json:"teamId"`
	PlayerID  string    `json:"playerId,omitempty"`
	CreatedAt string    `json:"createdAt"`
}

type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Match is a fixture between two opponents. Score1 and Score2 are the
// persisted scores and may be nil when nobody has set them yet.
type Match struct {
	ID             string `json:"id"`
	FirstOpponent  Team   `json:"firstOpponent"`
	SecondOpponent Team   `json:"secondOpponent"`
	Status         Status `json:"status"`
	Score1         *int   `json:"score1"`
	Score2         *int   `json:"score2"`
	Date           string `json:"date"`
	Round          int    `json:"round"`
}

// HasTeam reports whether teamID is one of the two opponents.
func (m Match) HasTeam(teamID string) bool {
	return teamID != "" && (teamID == m.FirstOpponent.ID || teamID == m.SecondOpponent.ID)
}

type Score struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// PersistedScore returns the stored score with unset sides as 0.
func (m Match) PersistedScore() Score {
	return Score{First: valueOrZero(m.Score1), Second: valueOrZero(m.Score2)}
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// CanTransition reports whether a match may move from one status to another.
func CanTransition(from, to Status) bool {
	switch from {
	case Scheduled:
		return to == Live || to == Cancelled
	case Live:
		return to == Finished || to == Cancelled
	}
	return false
}
