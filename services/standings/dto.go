package standings

// Row is one team's line in the league table.
type Row struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type Table struct {
	AsOf      string `json:"asOf"`
	UpToRound int    `json:"upToRound,omitempty"`
	Rows      []Row  `json:"rows"`
}
