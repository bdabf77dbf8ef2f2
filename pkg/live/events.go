package live

import "sort"

// SortedAscending returns a copy of events ordered by minute, then by
// creation time. The input slice is left untouched.
func SortedAscending(events []MatchEvent) []MatchEvent {
	sorted := make([]MatchEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Minute != sorted[j].Minute {
			return sorted[i].Minute < sorted[j].Minute
		}
		return sorted[i].CreatedAt < sorted[j].CreatedAt
	})
	return sorted
}

// CurrentMinute is the highest minute seen in events, 0 when there are none.
func CurrentMinute(events []MatchEvent) int {
	minute := 0
	for _, event := range events {
		if event.Minute > minute {
			minute = event.Minute
		}
	}
	return minute
}
