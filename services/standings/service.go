package standings

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/nvbf/league-live/pkg/live"
	timehelper "github.com/nvbf/league-live/pkg/timeHelper"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Store is the part of the league store the standings service reads from.
type Store interface {
	ListMatches(ctx context.Context, status live.Status) ([]live.Match, error)
}

type StandingsService struct {
	store Store
}

func NewStandingsService(store Store) *StandingsService {
	return &StandingsService{
		store: store,
	}
}

// GetTable builds the league table from finished matches. A positive upToRound
// leaves out matches from later rounds.
func (s *StandingsService) GetTable(ctx context.Context, upToRound int) (*Table, error) {
	matches, err := s.store.ListMatches(ctx, live.Finished)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list finished matches")
		return nil, err
	}

	if upToRound > 0 {
		kept := matches[:0]
		for _, match := range matches {
			if match.Round <= upToRound {
				kept = append(kept, match)
			}
		}
		matches = kept
	}

	log.Debug().Int("matches", len(matches)).Int("up_to_round", upToRound).Msg("Building table")

	return &Table{
		AsOf:      timehelper.GetTodaysDateString(),
		UpToRound: upToRound,
		Rows:      buildTable(matches),
	}, nil
}

// buildTable aggregates finished matches into ordered table rows. Finished
// matches count with their persisted score.
func buildTable(matches []live.Match) []Row {
	rows := map[string]*Row{}
	row := func(team live.Team) *Row {
		r, ok := rows[team.ID]
		if !ok {
			r = &Row{TeamID: team.ID, TeamName: team.Name}
			rows[team.ID] = r
		}
		return r
	}

	for _, match := range matches {
		if match.Status != live.Finished {
			continue
		}
		score := match.PersistedScore()
		first := row(match.FirstOpponent)
		second := row(match.SecondOpponent)
		first.record(score.First, score.Second)
		second.record(score.Second, score.First)
	}

	table := make([]Row, 0, len(rows))
	for _, r := range rows {
		table = append(table, *r)
	}

	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.TeamID < b.TeamID
	})

	for i := range table {
		table[i].Position = i + 1
	}
	return table
}

func (r *Row) record(scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst

	switch {
	case scored > conceded:
		r.Won++
		r.Points += pointsWin
	case scored == conceded:
		r.Drawn++
		r.Points += pointsDraw
	default:
		r.Lost++
	}
}
