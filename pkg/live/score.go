package live

// DeriveScore reconciles the persisted score of a match with a recount of its
// scoring events. Each side gets the larger of the two, so a stored score that
// lags behind live event entry is never shown.
func DeriveScore(match Match, events []MatchEvent) Score {
	countFirst, countSecond := 0, 0

	for _, event := range events {
		// An event without a team never counts, even against an opponent with an empty ID.
		if !event.Type.Scoring() || event.TeamID == "" {
			continue
		}
		switch event.TeamID {
		case match.FirstOpponent.ID:
			countFirst++
		case match.SecondOpponent.ID:
			countSecond++
		}
	}

	persisted := match.PersistedScore()
	return Score{
		First:  max(persisted.First, countFirst),
		Second: max(persisted.Second, countSecond),
	}
}

// UnattributedEvents returns the scoring events credited to a team that plays
// in neither side of the match. DeriveScore ignores them.
func UnattributedEvents(match Match, events []MatchEvent) []MatchEvent {
	var out []MatchEvent
	for _, event := range events {
		if event.Type.Scoring() && !match.HasTeam(event.TeamID) {
			out = append(out, event)
		}
	}
	return out
}
