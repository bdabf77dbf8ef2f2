package league

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
	"google.golang.org/api/iterator"

	"github.com/nvbf/league-live/pkg/live"
)

const (
	matchesCollection = "Matches"
	eventsCollection  = "events"
)

// Service reads and writes league matches and their live events in Firestore.
type Service struct {
	Client *firestore.Client
}

// NewService creates a new service on top of an open Firestore client.
func NewService(client *firestore.Client) *Service {
	return &Service{
		Client: client,
	}
}

func (s *Service) GetMatch(ctx context.Context, matchID string) (live.Match, error) {
	const op = "league.GetMatch"
	if strings.TrimSpace(matchID) == "" {
		return live.Match{}, validationError(op, "match id is empty")
	}

	doc, err := s.Client.Collection(matchesCollection).Doc(matchID).Get(ctx)
	if err != nil {
		return live.Match{}, decode(op, err)
	}

	match, err := docToMatch(doc)
	if err != nil {
		return live.Match{}, decode(op, err)
	}
	return match, nil
}

// ListMatches returns all matches in the given status, or every match when
// status is empty.
func (s *Service) ListMatches(ctx context.Context, status live.Status) ([]live.Match, error) {
	const op = "league.ListMatches"

	q := s.Client.Collection(matchesCollection).Query
	if status != "" {
		q = q.Where("status", "==", string(status))
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, decode(op, err)
	}

	matches := make([]live.Match, 0, len(docs))
	for _, doc := range docs {
		match, err := docToMatch(doc)
		if err != nil {
			return nil, decode(op, err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// ListEvents returns the events of a match in storage order. Use
// live.SortedAscending for display order.
func (s *Service) ListEvents(ctx context.Context, matchID string) ([]live.MatchEvent, error) {
	const op = "league.ListEvents"
	if strings.TrimSpace(matchID) == "" {
		return nil, validationError(op, "match id is empty")
	}

	iter := s.Client.Collection(matchesCollection).Doc(matchID).Collection(eventsCollection).Documents(ctx)
	defer iter.Stop()

	var events []live.MatchEvent
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, decode(op, err)
		}

		var event eventDoc
		if err := doc.DataTo(&event); err != nil {
			log.Error().Err(err).Str("match_id", matchID).Str("event_id", doc.Ref.ID).Msg("Failed to decode event")
			return nil, decode(op, xerrors.Errorf(
				"consistency error. Converting event %s to internal struct failed: %w",
				doc.Ref.ID,
				err,
			))
		}
		events = append(events, event.toEvent(doc.Ref.ID))
	}
	return events, nil
}

// AddEvent stores a new event for a live match. The match is read in the same
// transaction so an event can not slip in after the match has finished.
func (s *Service) AddEvent(ctx context.Context, matchID string, event live.MatchEvent, author string) (live.MatchEvent, error) {
	const op = "league.AddEvent"
	if strings.TrimSpace(matchID) == "" {
		return live.MatchEvent{}, validationError(op, "match id is empty")
	}
	if strings.TrimSpace(event.ID) == "" {
		return live.MatchEvent{}, validationError(op, "event id is empty")
	}

	matchRef := s.Client.Collection(matchesCollection).Doc(matchID)
	eventRef := matchRef.Collection(eventsCollection).Doc(event.ID)

	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(matchRef)
		if err != nil {
			return err
		}

		match, err := docToMatch(doc)
		if err != nil {
			return err
		}

		if err := validateEvent(op, match, event); err != nil {
			return err
		}

		return tx.Create(eventRef, newEventDoc(event, author))
	})
	if err != nil {
		return live.MatchEvent{}, decode(op, err)
	}
	return event, nil
}

func (s *Service) DeleteEvent(ctx context.Context, matchID, eventID string) error {
	const op = "league.DeleteEvent"
	if strings.TrimSpace(matchID) == "" || strings.TrimSpace(eventID) == "" {
		return validationError(op, "match id and event id are required")
	}

	_, err := s.Client.Collection(matchesCollection).Doc(matchID).
		Collection(eventsCollection).Doc(eventID).
		Delete(ctx, firestore.Exists)
	return decode(op, err)
}

// UpdateMatch applies an admin update to the status and persisted scores of a
// match and returns the match as stored afterwards.
func (s *Service) UpdateMatch(ctx context.Context, matchID string, update MatchUpdate) (live.Match, error) {
	const op = "league.UpdateMatch"
	if strings.TrimSpace(matchID) == "" {
		return live.Match{}, validationError(op, "match id is empty")
	}

	ref := s.Client.Collection(matchesCollection).Doc(matchID)

	var updated live.Match
	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		match, err := docToMatch(doc)
		if err != nil {
			return err
		}

		updates, next, err := createMatchUpdates(op, match, update)
		if err != nil {
			return err
		}
		updated = next

		if len(updates) == 0 {
			return nil
		}
		return tx.Update(ref, updates)
	})
	if err != nil {
		return live.Match{}, decode(op, err)
	}
	return updated, nil
}

func validateEvent(op string, match live.Match, event live.MatchEvent) error {
	if match.Status != live.Live {
		return &Error{Kind: KindConflict, Op: op, Err: xerrors.Errorf("match %s is %s, events can only be added while it is live", match.ID, match.Status)}
	}
	if _, err := live.ParseEventType(string(event.Type)); err != nil {
		return &Error{Kind: KindValidation, Op: op, Err: err}
	}
	if event.Minute < 0 {
		return validationError(op, "minute must not be negative, got %d", event.Minute)
	}
	if !match.HasTeam(event.TeamID) {
		return validationError(op, "team %q does not play in match %s", event.TeamID, match.ID)
	}
	return nil
}

// createMatchUpdates turns the non-nil fields of update into Firestore updates
// and returns the match as it will look once they are applied.
func createMatchUpdates(op string, match live.Match, update MatchUpdate) ([]firestore.Update, live.Match, error) {
	var updates []firestore.Update

	if update.Status != nil {
		next, err := live.ParseStatus(*update.Status)
		if err != nil {
			return nil, match, &Error{Kind: KindValidation, Op: op, Err: err}
		}
		if next != match.Status {
			if !live.CanTransition(match.Status, next) {
				return nil, match, &Error{Kind: KindConflict, Op: op, Err: xerrors.Errorf("match %s can not go from %s to %s", match.ID, match.Status, next)}
			}
			updates = append(updates, firestore.Update{Path: "status", Value: string(next)})
			match.Status = next
		}
	}
	if update.Score1 != nil {
		if *update.Score1 < 0 {
			return nil, match, validationError(op, "score1 must not be negative, got %d", *update.Score1)
		}
		updates = append(updates, firestore.Update{Path: "score1", Value: *update.Score1})
		match.Score1 = update.Score1
	}
	if update.Score2 != nil {
		if *update.Score2 < 0 {
			return nil, match, validationError(op, "score2 must not be negative, got %d", *update.Score2)
		}
		updates = append(updates, firestore.Update{Path: "score2", Value: *update.Score2})
		match.Score2 = update.Score2
	}

	return updates, match, nil
}

func docToMatch(doc *firestore.DocumentSnapshot) (live.Match, error) {
	var match matchDoc
	if err := doc.DataTo(&match); err != nil {
		// If this fails, we have an inconsistency error as we control both the data written to
		// Firestore and the shape of our `matchDoc` struct.
		return live.Match{}, xerrors.Errorf(
			"consistency error. Converting match %s to internal struct failed: %w",
			doc.Ref.ID,
			err,
		)
	}
	return match.toMatch(doc.Ref.ID), nil
}
