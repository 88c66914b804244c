// Package card owns the board: it creates, edits, relocates and deletes
// cards, enforces WIP limits on cross-list moves and persists the whole
// board after every successful mutation.
package card

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
	"github.com/thenoetrevino/tablero/internal/types"
	"github.com/thenoetrevino/tablero/internal/wip"
)

// Service defines all card lifecycle operations
type Service interface {
	// Read operations
	Snapshot() models.Snapshot
	Lists() []models.ListSummary
	GetCard(ctx context.Context, cardID types.CardID) (*CardDetail, error)
	CanAccept(cardID types.CardID, toListID types.ListID) bool
	Metrics() MetricsSnapshot
	LastPersistError() error

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	EditCard(ctx context.Context, req EditCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, cardID types.CardID) error
	Reset(ctx context.Context) error

	// Card movements
	RelocateCard(ctx context.Context, req RelocateCardRequest) (*models.Card, error)
	MoveCard(ctx context.Context, cardID types.CardID, toListID types.ListID) (*models.Card, error)
	ReorderCard(ctx context.Context, cardID types.CardID, index int) error
}

// CreateCardRequest encapsulates all data needed to create a card
type CreateCardRequest struct {
	ListID  types.ListID
	Fields  models.CardFields
	Comment string // Optional: first entry of the comment log
}

// EditCardRequest overwrites a card's fields and optionally appends a comment
type EditCardRequest struct {
	CardID  types.CardID
	Fields  models.CardFields
	Comment string
}

// RelocateCardRequest is an edit that may also change the card's list
type RelocateCardRequest struct {
	CardID     types.CardID
	FromListID types.ListID
	ToListID   types.ListID
	Fields     models.CardFields
	Comment    string
}

// CardDetail is a card together with where it lives
type CardDetail struct {
	models.Card
	ListID   types.ListID
	ListName string
	Position int
}

// service implements Service over an owned in-memory store
type service struct {
	mu      sync.Mutex
	store   *store.Store
	gateway database.Gateway
	cfg     serviceConfig
	metrics *Metrics

	lastPersistErr error
}

// NewService hydrates the board from gateway and returns the service owning it.
// When the gateway has never been written, the sample board is seeded and
// saved immediately so later loads are stable.
func NewService(ctx context.Context, gateway database.Gateway, lists []models.List, opts ...Option) (Service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	st, err := store.New(lists)
	if err != nil {
		return nil, fmt.Errorf("invalid board configuration: %w", err)
	}

	s := &service{
		store:   st,
		gateway: gateway,
		cfg:     cfg,
		metrics: NewMetrics(),
	}

	snap, ok, err := gateway.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	if !ok {
		s.cfg.logger.Info("no saved board found, seeding sample data")
		if _, err := s.store.Load(database.SeedSnapshot(s.cfg.now())); err != nil {
			return nil, fmt.Errorf("failed to seed board: %w", err)
		}
		s.persist(ctx)
		return s, nil
	}

	rehomed, err := s.store.Load(snap)
	if err != nil {
		return nil, fmt.Errorf("saved board is inconsistent: %w", err)
	}
	if len(rehomed) > 0 {
		s.cfg.logger.Warn("cards from unconfigured lists moved to the first list",
			"list_id", lists[0].ID,
			"count", len(rehomed))
		s.persist(ctx)
	}

	s.cfg.logger.Debug("board loaded", "cards", s.store.Len())
	return s, nil
}

// CreateCard validates and appends a new card to the end of a list.
// Creation is not gated by WIP limits; an over-full list is flagged instead.
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	fields := req.Fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	comment, err := normalizeComment(req.Comment)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.HasList(req.ListID) {
		return nil, ErrUnknownList
	}

	card := models.Card{
		ID:       s.cfg.newID(),
		Comments: []models.Comment{},
	}
	card.Apply(fields)
	if comment != "" {
		card.Comments = append(card.Comments, models.NewComment(comment, s.cfg.now()))
	}

	if err := s.store.Append(req.ListID, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.metrics.CardsCreated.Add(1)
	s.persist(ctx)
	s.publish(events.Event{Type: events.EventCardCreated, CardID: card.ID, ToList: req.ListID})

	return &card, nil
}

// EditCard overwrites title, description, assignee and priority and appends
// the comment when one is given
func (s *service) EditCard(ctx context.Context, req EditCardRequest) (*models.Card, error) {
	if req.CardID.IsZero() {
		return nil, ErrMissingCardID
	}
	fields := req.Fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	comment, err := normalizeComment(req.Comment)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listID, _, ok := s.store.Locate(req.CardID)
	if !ok {
		return nil, &models.NotFoundError{CardID: req.CardID}
	}

	s.applyEdit(req.CardID, fields, comment)

	s.metrics.CardsUpdated.Add(1)
	s.persist(ctx)
	s.publish(events.Event{Type: events.EventCardUpdated, CardID: req.CardID, ToList: listID})

	card, _, _ := s.store.Card(req.CardID)
	return &card, nil
}

// RelocateCard is EditCard plus a list change. A cross-list move consults the
// WIP policy first; on rejection nothing is modified. A same-list relocation
// edits the card where it stands.
func (s *service) RelocateCard(ctx context.Context, req RelocateCardRequest) (*models.Card, error) {
	if req.CardID.IsZero() {
		return nil, ErrMissingCardID
	}
	fields := req.Fields.Normalize()
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	comment, err := normalizeComment(req.Comment)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.relocate(ctx, req.CardID, req.FromListID, req.ToListID, fields, comment)
}

// MoveCard is the drop handler: it relocates the card from wherever it is,
// keeps its fields and records a "Moved to" comment. Dropping a card on its
// own list is a no-op.
func (s *service) MoveCard(ctx context.Context, cardID types.CardID, toListID types.ListID) (*models.Card, error) {
	if cardID.IsZero() {
		return nil, ErrMissingCardID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card, current, ok := s.store.Card(cardID)
	if !ok {
		return nil, &models.NotFoundError{CardID: cardID}
	}
	dest, ok := s.store.List(toListID)
	if !ok {
		return nil, ErrUnknownList
	}
	if current == toListID {
		return &card, nil
	}

	return s.relocate(ctx, cardID, current, toListID, card.Fields(), MovedComment(dest))
}

// ReorderCard repositions a card inside its own list; never WIP-gated
func (s *service) ReorderCard(ctx context.Context, cardID types.CardID, index int) error {
	if cardID.IsZero() {
		return ErrMissingCardID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listID, pos, ok := s.store.Locate(cardID)
	if !ok {
		return &models.NotFoundError{CardID: cardID}
	}
	if err := s.store.Reorder(cardID, index); err != nil {
		return err
	}
	if _, newPos, _ := s.store.Locate(cardID); newPos == pos {
		return nil
	}

	s.metrics.CardsUpdated.Add(1)
	s.persist(ctx)
	s.publish(events.Event{Type: events.EventCardUpdated, CardID: cardID, FromList: listID, ToList: listID})
	return nil
}

// DeleteCard removes a card. Deleting an id that is not on the board fails,
// so a repeated delete is reported rather than silently accepted.
func (s *service) DeleteCard(ctx context.Context, cardID types.CardID) error {
	if cardID.IsZero() {
		return ErrMissingCardID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, listID, ok := s.store.Remove(cardID)
	if !ok {
		return &models.NotFoundError{CardID: cardID}
	}

	s.metrics.CardsDeleted.Add(1)
	s.persist(ctx)
	s.publish(events.Event{Type: events.EventCardDeleted, CardID: cardID, FromList: listID})
	return nil
}

// Reset replaces the board with the sample data
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rehomed, err := s.store.Load(database.SeedSnapshot(s.cfg.now()))
	if err != nil {
		return fmt.Errorf("failed to reset board: %w", err)
	}
	if len(rehomed) > 0 {
		s.cfg.logger.Debug("seeded cards placed in the first list", "count", len(rehomed))
	}

	s.persist(ctx)
	s.publish(events.Event{Type: events.EventBoardReset})
	return nil
}

// Snapshot returns a detached copy of the board
func (s *service) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Lists returns each configured list with its WIP usage, in display order
func (s *service) Lists() []models.ListSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	lists := s.store.Lists()
	out := make([]models.ListSummary, len(lists))
	for i, l := range lists {
		count := s.store.Count(l.ID)
		out[i] = models.ListSummary{
			List:     l,
			Count:    count,
			Usage:    wip.Usage(count, l.WIPLimit),
			Exceeded: wip.Exceeded(count, l.WIPLimit),
		}
	}
	return out
}

// GetCard returns a copy of a card with its location
func (s *service) GetCard(_ context.Context, cardID types.CardID) (*CardDetail, error) {
	if cardID.IsZero() {
		return nil, ErrMissingCardID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card, listID, ok := s.store.Card(cardID)
	if !ok {
		return nil, &models.NotFoundError{CardID: cardID}
	}
	list, _ := s.store.List(listID)
	_, pos, _ := s.store.Locate(cardID)

	return &CardDetail{
		Card:     card,
		ListID:   listID,
		ListName: list.Name,
		Position: pos,
	}, nil
}

// CanAccept previews whether dropping cardID on toListID would be allowed
func (s *service) CanAccept(cardID types.CardID, toListID types.ListID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _, ok := s.store.Locate(cardID)
	if !ok {
		return false
	}
	return wip.CanAccept(s.store, toListID, cardID, current)
}

// Metrics returns the service counters
func (s *service) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// LastPersistError returns the error of the most recent save, nil if it succeeded
func (s *service) LastPersistError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPersistErr
}

// MovedComment is the default history entry for a drop onto another list
func MovedComment(dest models.List) string {
	name := dest.Name
	if name == "" {
		name = dest.ID.String()
	}
	return fmt.Sprintf("Moved to %q.", name)
}

// relocate runs with s.mu held and validated fields/comment
func (s *service) relocate(ctx context.Context, cardID types.CardID, from, to types.ListID, fields models.CardFields, comment string) (*models.Card, error) {
	if !s.store.HasList(from) {
		return nil, ErrUnknownFromList
	}
	if !s.store.HasList(to) {
		return nil, ErrUnknownList
	}

	current, _, ok := s.store.Locate(cardID)
	if !ok {
		return nil, &models.NotFoundError{CardID: cardID}
	}
	if current != from {
		return nil, notInListError(current)
	}

	if to != from {
		if !wip.CanAccept(s.store, to, cardID, current) {
			limit, _ := s.store.Limit(to)
			s.metrics.WipRejections.Add(1)
			s.cfg.logger.Info("move rejected by wip limit",
				"card_id", cardID,
				"from_list", from,
				"to_list", to,
				"limit", limit)
			return nil, &models.WipLimitExceededError{ListID: to, Limit: limit, Count: s.store.Count(to)}
		}
		if err := s.store.MoveTo(cardID, to); err != nil {
			return nil, fmt.Errorf("failed to move card: %w", err)
		}
	}

	s.applyEdit(cardID, fields, comment)

	evType := events.EventCardUpdated
	if to != from {
		evType = events.EventCardMoved
		s.metrics.CardsMoved.Add(1)
	} else {
		s.metrics.CardsUpdated.Add(1)
	}
	s.persist(ctx)
	s.publish(events.Event{Type: evType, CardID: cardID, FromList: from, ToList: to})

	card, _, _ := s.store.Card(cardID)
	return &card, nil
}

// applyEdit overwrites fields and appends comment; s.mu must be held
func (s *service) applyEdit(cardID types.CardID, fields models.CardFields, comment string) {
	s.store.Update(cardID, func(c *models.Card) {
		c.Apply(fields)
		if comment != "" {
			c.Comments = append(c.Comments, models.NewComment(comment, s.cfg.now()))
		}
	})
}

// persist flushes the whole board. A failed save is logged, counted and
// published but does not fail the operation: the in-memory board stays
// authoritative for the running session.
func (s *service) persist(ctx context.Context) {
	err := s.gateway.Save(ctx, s.store.Snapshot())
	s.lastPersistErr = err
	if err == nil {
		s.metrics.Saves.Add(1)
		return
	}

	s.metrics.PersistFailures.Add(1)
	s.cfg.logger.Warn("failed to persist board", "error", err)
	s.publish(events.Event{Type: events.EventPersistFailed, Err: err.Error()})
}

func (s *service) publish(event events.Event) {
	events.Publish(s.cfg.eventClient, event)
}

// normalizeComment trims the comment and enforces its length limit
func normalizeComment(text string) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return "", ErrCommentTooLong
	}
	return text, nil
}
