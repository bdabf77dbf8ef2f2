package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"
)

func testMatch(score1, score2 *int) Match {
	return Match{
		ID:             "m1",
		FirstOpponent:  Team{ID: "home", Name: "Home FC"},
		SecondOpponent: Team{ID: "away", Name: "Away United"},
		Status:         Live,
		Score1:         score1,
		Score2:         score2,
	}
}

func TestDeriveScoreConcreteScenario(t *testing.T) {
	match := testMatch(pointer.Int(1), pointer.Int(0))
	events := []MatchEvent{
		{ID: "e1", Type: Goal, Minute: 10, TeamID: "away"},
		{ID: "e2", Type: Goal, Minute: 55, TeamID: "away"},
	}

	assert.Equal(t, Score{First: 1, Second: 2}, DeriveScore(match, events))
	assert.Equal(t, 55, CurrentMinute(events))
}

func TestDeriveScoreEmptyMatch(t *testing.T) {
	match := testMatch(nil, nil)

	assert.Equal(t, Score{}, DeriveScore(match, nil))
	assert.Equal(t, 0, CurrentMinute(nil))
}

func TestDeriveScoreFloorsAtPersistedScore(t *testing.T) {
	match := testMatch(pointer.Int(3), pointer.Int(2))

	assert.Equal(t, Score{First: 3, Second: 2}, DeriveScore(match, nil))
	assert.Equal(t, Score{First: 3, Second: 2}, DeriveScore(match, []MatchEvent{
		{Type: Goal, TeamID: "home"},
	}))
}

func TestDeriveScoreIgnoresNonScoringEvents(t *testing.T) {
	match := testMatch(pointer.Int(1), nil)
	events := []MatchEvent{
		{Type: YellowCard, TeamID: "home"},
		{Type: RedCard, TeamID: "away"},
		{Type: Substitution, TeamID: "away"},
		{Type: PenaltyMissed, TeamID: "away"},
		{Type: OwnGoal, TeamID: "away"},
		{Type: OwnGoal, TeamID: "home"},
	}

	assert.Equal(t, Score{First: 1, Second: 0}, DeriveScore(match, events))
}

func TestDeriveScoreCountsPenalties(t *testing.T) {
	match := testMatch(nil, nil)
	events := []MatchEvent{
		{Type: PenaltyScored, TeamID: "home"},
		{Type: Goal, TeamID: "home"},
		{Type: PenaltyScored, TeamID: "away"},
	}

	assert.Equal(t, Score{First: 2, Second: 1}, DeriveScore(match, events))
}

func TestDeriveScoreMonotonic(t *testing.T) {
	match := testMatch(pointer.Int(1), pointer.Int(1))
	var events []MatchEvent

	prev := DeriveScore(match, events)
	for i := 0; i < 5; i++ {
		events = append(events, MatchEvent{Type: Goal, TeamID: "home"})
		cur := DeriveScore(match, events)

		assert.GreaterOrEqual(t, cur.First, prev.First)
		assert.Equal(t, prev.Second, cur.Second, "a goal for one side never moves the other side")
		prev = cur
	}
	assert.Equal(t, Score{First: 5, Second: 1}, prev)
}

func TestDeriveScoreIdempotent(t *testing.T) {
	match := testMatch(pointer.Int(0), pointer.Int(4))
	events := []MatchEvent{
		{Type: Goal, TeamID: "home"},
		{Type: PenaltyScored, TeamID: "away"},
	}

	assert.Equal(t, DeriveScore(match, events), DeriveScore(match, events))
}

func TestDeriveScoreUnknownTeam(t *testing.T) {
	match := testMatch(nil, nil)
	events := []MatchEvent{
		{ID: "stray", Type: Goal, TeamID: "someone-else"},
		{ID: "blank", Type: Goal},
		{ID: "ok", Type: Goal, TeamID: "home"},
	}

	assert.Equal(t, Score{First: 1, Second: 0}, DeriveScore(match, events))

	unattributed := UnattributedEvents(match, events)
	if assert.Len(t, unattributed, 2) {
		assert.Equal(t, "stray", unattributed[0].ID)
		assert.Equal(t, "blank", unattributed[1].ID)
	}
}

func TestDeriveScoreTeamlessEventWithUnsetOpponent(t *testing.T) {
	match := testMatch(nil, nil)
	match.SecondOpponent = Team{}

	score := DeriveScore(match, []MatchEvent{{ID: "blank", Type: Goal}})

	assert.Equal(t, Score{}, score)
}
