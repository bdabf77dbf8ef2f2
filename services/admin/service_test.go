package admin

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	"github.com/nvbf/league-live/pkg/live"
	"github.com/nvbf/league-live/pkg/metrics"
	"github.com/nvbf/league-live/repos/league"
	"github.com/nvbf/league-live/repos/resend"
)

type fakeStore struct {
	mu      sync.Mutex
	matches map[string]live.Match
	events  map[string][]live.MatchEvent
	authors map[string]string
}

func newStore() *fakeStore {
	return &fakeStore{
		matches: map[string]live.Match{
			"live": {
				ID: "live", Status: live.Live,
				FirstOpponent:  live.Team{ID: "home", Name: "Home FC"},
				SecondOpponent: live.Team{ID: "away", Name: "Away United"},
			},
			"done": {
				ID: "done", Status: live.Finished, Score1: pointer.Int(0), Score2: pointer.Int(0),
				FirstOpponent:  live.Team{ID: "home", Name: "Home FC"},
				SecondOpponent: live.Team{ID: "away", Name: "Away United"},
			},
		},
		events: map[string][]live.MatchEvent{
			"done": {
				{ID: "d2", Type: live.Goal, Minute: 80, TeamID: "away"},
				{ID: "d1", Type: live.YellowCard, Minute: 20, TeamID: "home"},
			},
		},
		authors: map[string]string{},
	}
}

func notFound(op string) error {
	return &league.Error{Kind: league.KindNotFound, Op: op, Err: errors.New("missing")}
}

func (f *fakeStore) GetMatch(_ context.Context, matchID string) (live.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	match, ok := f.matches[matchID]
	if !ok {
		return live.Match{}, notFound("league.GetMatch")
	}
	return match, nil
}

func (f *fakeStore) ListEvents(_ context.Context, matchID string) ([]live.MatchEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events[matchID], nil
}

func (f *fakeStore) AddEvent(_ context.Context, matchID string, event live.MatchEvent, author string) (live.MatchEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	match, ok := f.matches[matchID]
	if !ok {
		return live.MatchEvent{}, notFound("league.AddEvent")
	}
	if match.Status != live.Live {
		return live.MatchEvent{}, &league.Error{Kind: league.KindConflict, Op: "league.AddEvent", Err: errors.New("not live")}
	}
	f.events[matchID] = append(f.events[matchID], event)
	f.authors[event.ID] = author
	return event, nil
}

func (f *fakeStore) DeleteEvent(_ context.Context, matchID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.events[matchID]
	for i, event := range events {
		if event.ID == id {
			f.events[matchID] = append(events[:i], events[i+1:]...)
			return nil
		}
	}
	return notFound("league.DeleteEvent")
}

func (f *fakeStore) UpdateMatch(_ context.Context, matchID string, update league.MatchUpdate) (live.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	match, ok := f.matches[matchID]
	if !ok {
		return live.Match{}, notFound("league.UpdateMatch")
	}
	if update.Status != nil {
		match.Status = live.Status(*update.Status)
	}
	if update.Score1 != nil {
		match.Score1 = update.Score1
	}
	if update.Score2 != nil {
		match.Score2 = update.Score2
	}
	f.matches[matchID] = match
	return match, nil
}

type fakeMailer struct {
	to      []string
	reports []resend.MatchReport
}

func (f *fakeMailer) SendMatchReport(_ context.Context, to []string, report resend.MatchReport) error {
	f.to = to
	f.reports = append(f.reports, report)
	return nil
}

func newService(store Store, mailer Mailer) (*AdminService, *metrics.Metrics) {
	m := metrics.New()
	s := NewAdminService(store, mailer, m)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC) }
	s.newID = func() string { return "01890a5d-ac96-774b-bcce-b302099a8057" }
	return s, m
}

func TestAddEvent(t *testing.T) {
	store := newStore()
	s, m := newService(store, &fakeMailer{})

	event, err := s.AddEvent(context.Background(), "live", "admin-1", EventRequest{
		Type:     "goal",
		Minute:   pointer.Int(0),
		TeamID:   "home",
		PlayerID: "p7",
	})

	require.NoError(t, err)
	assert.Equal(t, live.MatchEvent{
		ID:        "01890a5d-ac96-774b-bcce-b302099a8057",
		Type:      live.Goal,
		Minute:    0,
		TeamID:    "home",
		PlayerID:  "p7",
		CreatedAt: "2024-05-01T18:30:00.000000000Z",
	}, event)
	assert.Equal(t, "admin-1", store.authors[event.ID])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsWritten.WithLabelValues("GOAL")))
}

func TestAddEventErrors(t *testing.T) {
	s, m := newService(newStore(), &fakeMailer{})

	_, err := s.AddEvent(context.Background(), "live", "admin-1", EventRequest{Type: "CORNER", Minute: pointer.Int(3), TeamID: "home"})
	assert.Equal(t, league.KindValidation, league.KindOf(err))

	_, err = s.AddEvent(context.Background(), "done", "admin-1", EventRequest{Type: "GOAL", Minute: pointer.Int(3), TeamID: "home"})
	assert.Equal(t, league.KindConflict, league.KindOf(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues("conflict")))
}

func TestAddEventWithoutMinute(t *testing.T) {
	store := newStore()
	s, _ := newService(store, &fakeMailer{})

	assert.NotPanics(t, func() {
		_, err := s.AddEvent(context.Background(), "live", "admin-1", EventRequest{Type: "GOAL", TeamID: "home"})
		assert.Equal(t, league.KindValidation, league.KindOf(err))
	})
	assert.Empty(t, store.events["live"])
}

func TestDeleteEvent(t *testing.T) {
	store := newStore()
	s, m := newService(store, &fakeMailer{})

	require.NoError(t, s.DeleteEvent(context.Background(), "done", "d1", "admin-1"))
	assert.Len(t, store.events["done"], 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsDeleted))

	err := s.DeleteEvent(context.Background(), "done", "d1", "admin-1")
	assert.Equal(t, league.KindNotFound, league.KindOf(err))
}

func TestUpdateMatch(t *testing.T) {
	s, _ := newService(newStore(), &fakeMailer{})

	match, err := s.UpdateMatch(context.Background(), "live", "admin-1", league.MatchUpdate{
		Status: pointer.String("FINISHED"),
		Score1: pointer.Int(2),
	})

	require.NoError(t, err)
	assert.Equal(t, live.Finished, match.Status)
	assert.Equal(t, 2, *match.Score1)
}

func TestSendReport(t *testing.T) {
	mailer := &fakeMailer{}
	s, _ := newService(newStore(), mailer)

	err := s.SendReport(context.Background(), "done", []string{"board@league.example"})

	require.NoError(t, err)
	require.Len(t, mailer.reports, 1)
	report := mailer.reports[0]
	assert.Equal(t, []string{"board@league.example"}, mailer.to)
	assert.Equal(t, "Full time", report.Label)
	assert.Equal(t, live.Score{First: 0, Second: 0}, report.Score, "report carries the stored score")
	require.Len(t, report.Timeline, 2)
	assert.Equal(t, "d1", report.Timeline[0].ID)
}

func TestSendReportMatchesStandingsScore(t *testing.T) {
	store := newStore()
	mailer := &fakeMailer{}
	s, _ := newService(store, mailer)

	require.NoError(t, s.SendReport(context.Background(), "done", []string{"board@league.example"}))

	require.Len(t, mailer.reports, 1)
	assert.Equal(t, store.matches["done"].PersistedScore(), mailer.reports[0].Score)
}

func TestSendReportRequiresFinishedMatch(t *testing.T) {
	mailer := &fakeMailer{}
	s, _ := newService(newStore(), mailer)

	err := s.SendReport(context.Background(), "live", []string{"board@league.example"})
	assert.Equal(t, league.KindConflict, league.KindOf(err))

	err = s.SendReport(context.Background(), "missing", []string{"board@league.example"})
	assert.Equal(t, league.KindNotFound, league.KindOf(err))

	assert.Empty(t, mailer.reports)
}
