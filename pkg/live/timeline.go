package live

import (
	"fmt"
	"time"

	timehelper "github.com/nvbf/league-live/pkg/timeHelper"
)

// View is what a viewer gets to see of a match at one point in time.
type View struct {
	Match    Match        `json:"match"`
	Live     bool         `json:"live"`
	Label    string       `json:"label"`
	Minute   int          `json:"minute"`
	Score    Score        `json:"score"`
	Timeline []MatchEvent `json:"timeline"`
}

// NeedsEvents reports whether a match in this status is rendered from its
// events. Callers can skip loading them otherwise.
func NeedsEvents(status Status) bool {
	return status == Live
}

// Render builds the view of a match. Only live matches look at events: they get
// the ordered timeline, the running minute and the derived score. Every other
// status passes the persisted score through with a static label.
func Render(match Match, events []MatchEvent, now time.Time) View {
	if !NeedsEvents(match.Status) {
		return View{
			Match: match,
			Label: StatusLabel(match, now),
			Score: match.PersistedScore(),
		}
	}

	minute := CurrentMinute(events)
	return View{
		Match:    match,
		Live:     true,
		Label:    fmt.Sprintf("LIVE — %d'", minute),
		Minute:   minute,
		Score:    DeriveScore(match, events),
		Timeline: SortedAscending(events),
	}
}

// StatusLabel is the static label shown for a match that is not live.
func StatusLabel(match Match, now time.Time) string {
	switch match.Status {
	case Scheduled:
		if left := timehelper.Countdown(now, match.Date); left != "" {
			return "Kick-off in " + left
		}
		return "Scheduled"
	case Finished:
		return "Full time"
	case Cancelled:
		return "Cancelled"
	case Live:
		return "LIVE"
	}
	return string(match.Status)
}
