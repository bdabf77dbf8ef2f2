package league

import "github.com/nvbf/league-live/pkg/live"

// Firestore shapes of the league documents. They are kept apart from the live
// package types so the stored field names can differ from the JSON ones.

type matchDoc struct {
	FirstOpponent  teamDoc `firestore:"firstOpponent"`
	SecondOpponent teamDoc `firestore:"secondOpponent"`
	Status         string  `firestore:"status"`
	Score1         *int    `firestore:"score1"`
	Score2         *int    `firestore:"score2"`
	Date           string  `firestore:"date"`
	Round          int     `firestore:"round"`
}

type teamDoc struct {
	ID   string `firestore:"id"`
	Name string `firestore:"name"`
}

type eventDoc struct {
	Type      string `firestore:"type"`
	Minute    int    `firestore:"minute"`
	TeamID    string `firestore:"teamId"`
	PlayerID  string `firestore:"playerId,omitempty"`
	CreatedAt string `firestore:"createdAt"`
	Author    string `firestore:"author"`
}

// MatchUpdate holds the fields an admin may change on a match. Nil fields are
// left as they are.
type MatchUpdate struct {
	Status *string `json:"status"`
	Score1 *int    `json:"score1"`
	Score2 *int    `json:"score2"`
}

func (d matchDoc) toMatch(id string) live.Match {
	return live.Match{
		ID:             id,
		FirstOpponent:  live.Team{ID: d.FirstOpponent.ID, Name: d.FirstOpponent.Name},
		SecondOpponent: live.Team{ID: d.SecondOpponent.ID, Name: d.SecondOpponent.Name},
		Status:         live.Status(d.Status),
		Score1:         d.Score1,
		Score2:         d.Score2,
		Date:           d.Date,
		Round:          d.Round,
	}
}

func (d eventDoc) toEvent(id string) live.MatchEvent {
	return live.MatchEvent{
		ID:        id,
		Type:      live.EventType(d.Type),
		Minute:    d.Minute,
		TeamID:    d.TeamID,
		PlayerID:  d.PlayerID,
		CreatedAt: d.CreatedAt,
	}
}

func newEventDoc(event live.MatchEvent, author string) eventDoc {
	return eventDoc{
		Type:      string(event.Type),
		Minute:    event.Minute,
		TeamID:    event.TeamID,
		PlayerID:  event.PlayerID,
		CreatedAt: event.CreatedAt,
		Author:    author,
	}
}
