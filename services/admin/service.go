package admin

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/nvbf/league-live/pkg/eventID"
	"github.com/nvbf/league-live/pkg/live"
	"github.com/nvbf/league-live/pkg/metrics"
	timehelper "github.com/nvbf/league-live/pkg/timeHelper"
	"github.com/nvbf/league-live/repos/league"
	"github.com/nvbf/league-live/repos/resend"
)

// Store is the part of the league store admins write to.
type Store interface {
	GetMatch(ctx context.Context, matchID string) (live.Match, error)
	ListEvents(ctx context.Context, matchID string) ([]live.MatchEvent, error)
	AddEvent(ctx context.Context, matchID string, event live.MatchEvent, author string) (live.MatchEvent, error)
	DeleteEvent(ctx context.Context, matchID, eventID string) error
	UpdateMatch(ctx context.Context, matchID string, update league.MatchUpdate) (live.Match, error)
}

// Mailer sends match reports.
type Mailer interface {
	SendMatchReport(ctx context.Context, to []string, report resend.MatchReport) error
}

type AdminService struct {
	store   Store
	mailer  Mailer
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string
}

func NewAdminService(store Store, mailer Mailer, m *metrics.Metrics) *AdminService {
	return &AdminService{
		store:   store,
		mailer:  mailer,
		metrics: m,
		now:     time.Now,
		newID:   eventID.New,
	}
}

// AddEvent records a live event entered by an admin. The event gets a fresh
// ID and the current time as creation time.
func (s *AdminService) AddEvent(ctx context.Context, matchID, author string, request EventRequest) (live.MatchEvent, error) {
	const op = "admin.AddEvent"

	eventType, err := live.ParseEventType(request.Type)
	if err != nil {
		return live.MatchEvent{}, &league.Error{Kind: league.KindValidation, Op: op, Err: err}
	}
	if request.Minute == nil {
		return live.MatchEvent{}, &league.Error{Kind: league.KindValidation, Op: op, Err: xerrors.New("minute is required")}
	}

	event := live.MatchEvent{
		ID:        s.newID(),
		Type:      eventType,
		Minute:    *request.Minute,
		TeamID:    request.TeamID,
		PlayerID:  request.PlayerID,
		CreatedAt: timehelper.NowString(s.now()),
	}

	stored, err := s.store.AddEvent(ctx, matchID, event, author)
	if err != nil {
		s.countError(err)
		return live.MatchEvent{}, err
	}

	s.metrics.EventsWritten.WithLabelValues(string(stored.Type)).Inc()
	log.Info().
		Str("match_id", matchID).
		Str("event_id", stored.ID).
		Str("type", string(stored.Type)).
		Int("minute", stored.Minute).
		Str("author", author).
		Msg("Match event added")
	return stored, nil
}

func (s *AdminService) DeleteEvent(ctx context.Context, matchID, id, author string) error {
	if err := s.store.DeleteEvent(ctx, matchID, id); err != nil {
		s.countError(err)
		return err
	}

	s.metrics.EventsDeleted.Inc()
	log.Info().Str("match_id", matchID).Str("event_id", id).Str("author", author).Msg("Match event deleted")
	return nil
}

func (s *AdminService) UpdateMatch(ctx context.Context, matchID, author string, update league.MatchUpdate) (live.Match, error) {
	match, err := s.store.UpdateMatch(ctx, matchID, update)
	if err != nil {
		s.countError(err)
		return live.Match{}, err
	}

	log.Info().Str("match_id", matchID).Str("status", string(match.Status)).Str("author", author).Msg("Match updated")
	return match, nil
}

// SendReport mails the final score and timeline of a finished match. The score
// is the stored one, the same score the standings count.
func (s *AdminService) SendReport(ctx context.Context, matchID string, to []string) error {
	const op = "admin.SendReport"

	var (
		match  live.Match
		events []live.MatchEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		match, err = s.store.GetMatch(gctx, matchID)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.store.ListEvents(gctx, matchID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.countError(err)
		return err
	}

	if match.Status != live.Finished {
		return &league.Error{Kind: league.KindConflict, Op: op, Err: xerrors.Errorf("match %s is %s, reports are sent for finished matches", matchID, match.Status)}
	}

	report := resend.MatchReport{
		Match:    match,
		Label:    live.StatusLabel(match, s.now()),
		Score:    match.PersistedScore(),
		Timeline: live.SortedAscending(events),
	}
	return s.mailer.SendMatchReport(ctx, to, report)
}

func (s *AdminService) countError(err error) {
	s.metrics.StoreErrors.WithLabelValues(league.KindOf(err).String()).Inc()
}
