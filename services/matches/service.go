package matches

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nvbf/league-live/pkg/live"
	"github.com/nvbf/league-live/pkg/metrics"
	"github.com/nvbf/league-live/repos/league"
)

// Store is the part of the league store the matches service reads from.
type Store interface {
	GetMatch(ctx context.Context, matchID string) (live.Match, error)
	ListEvents(ctx context.Context, matchID string) ([]live.MatchEvent, error)
}

type MatchesService struct {
	store   Store
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewMatchesService(store Store, m *metrics.Metrics) *MatchesService {
	return &MatchesService{
		store:   store,
		metrics: m,
		now:     time.Now,
	}
}

// LiveView loads a match and renders what a viewer sees of it. Events are only
// fetched for live matches.
func (s *MatchesService) LiveView(ctx context.Context, matchID string) (live.View, error) {
	view, events, err := s.render(ctx, matchID)
	if err != nil {
		return live.View{}, err
	}

	s.reportUnattributed(view.Match, events)
	s.metrics.LiveViews.WithLabelValues(string(view.Match.Status)).Inc()
	return view, nil
}

// Timeline returns the ordered events of a live match, and an empty timeline
// for any other match.
func (s *MatchesService) Timeline(ctx context.Context, matchID string) ([]live.MatchEvent, error) {
	view, _, err := s.render(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if view.Timeline == nil {
		return []live.MatchEvent{}, nil
	}
	return view.Timeline, nil
}

func (s *MatchesService) render(ctx context.Context, matchID string) (live.View, []live.MatchEvent, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		s.countError(err)
		return live.View{}, nil, err
	}

	var events []live.MatchEvent
	if live.NeedsEvents(match.Status) {
		events, err = s.store.ListEvents(ctx, matchID)
		if err != nil {
			s.countError(err)
			return live.View{}, nil, err
		}
	}

	return live.Render(match, events, s.now()), events, nil
}

func (s *MatchesService) reportUnattributed(match live.Match, events []live.MatchEvent) {
	for _, event := range live.UnattributedEvents(match, events) {
		s.metrics.Unattributed.Inc()
		log.Warn().
			Str("match_id", match.ID).
			Str("event_id", event.ID).
			Str("team_id", event.TeamID).
			Msg("Scoring event credited to a team outside the match, ignored in score")
	}
}

func (s *MatchesService) countError(err error) {
	s.metrics.StoreErrors.WithLabelValues(league.KindOf(err).String()).Inc()
}
