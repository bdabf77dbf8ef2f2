package resend

import "github.com/nvbf/league-live/pkg/live"

// ReportRequest lists the recipients of a match report.
type ReportRequest struct {
	To []string `json:"to" binding:"required,min=1,dive,email"`
}

// MatchReport is the content of a match report mail.
type MatchReport struct {
	Match    live.Match
	Label    string
	Score    live.Score
	Timeline []live.MatchEvent
}
