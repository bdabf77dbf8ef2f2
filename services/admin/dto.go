package admin

// EventRequest is the body of a new live event. Minute is a pointer so that
// kick-off events at minute 0 pass the required check.
type EventRequest struct {
	Type     string `json:"type" binding:"required"`
	Minute   *int   `json:"minute" binding:"required"`
	TeamID   string `json:"teamId" binding:"required"`
	PlayerID string `json:"playerId"`
}
