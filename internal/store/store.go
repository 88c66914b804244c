// Package store holds the in-memory board: configured lists, their ordered
// card sequences and an id→list index. It enforces the single-membership
// invariant but knows nothing about WIP rules or persistence.
package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/types"
)

var (
	// ErrUnknownList indicates a list id that is not configured
	ErrUnknownList = errors.New("unknown list")

	// ErrDuplicateCard indicates a card id already present on the board
	ErrDuplicateCard = errors.New("duplicate card id")

	// ErrNoLists indicates a board configured without lists
	ErrNoLists = errors.New("board needs at least one list")
)

// Store is the single source of truth for card placement.
// It is not safe for concurrent use; the owning service serializes access.
type Store struct {
	lists    []models.List
	listIdx  map[types.ListID]int
	cards    map[types.ListID][]models.Card
	location map[types.CardID]types.ListID
}

// New creates an empty store over the configured lists, in display order
func New(lists []models.List) (*Store, error) {
	if len(lists) == 0 {
		return nil, ErrNoLists
	}

	s := &Store{
		lists:    make([]models.List, 0, len(lists)),
		listIdx:  make(map[types.ListID]int, len(lists)),
		cards:    make(map[types.ListID][]models.Card, len(lists)),
		location: make(map[types.CardID]types.ListID),
	}
	for _, l := range lists {
		if l.ID.IsZero() {
			return nil, fmt.Errorf("list with empty id: %w", ErrUnknownList)
		}
		if _, dup := s.listIdx[l.ID]; dup {
			return nil, fmt.Errorf("list %q configured twice", l.ID)
		}
		if l.WIPLimit < 0 {
			return nil, fmt.Errorf("list %q has negative wip limit %d", l.ID, l.WIPLimit)
		}
		s.listIdx[l.ID] = len(s.lists)
		s.lists = append(s.lists, l)
		s.cards[l.ID] = []models.Card{}
	}
	return s, nil
}

// Lists returns the configured lists in display order
func (s *Store) Lists() []models.List {
	out := make([]models.List, len(s.lists))
	copy(out, s.lists)
	return out
}

// List returns a configured list by id
func (s *Store) List(id types.ListID) (models.List, bool) {
	i, ok := s.listIdx[id]
	if !ok {
		return models.List{}, false
	}
	return s.lists[i], true
}

// HasList reports whether id is a configured list
func (s *Store) HasList(id types.ListID) bool {
	_, ok := s.listIdx[id]
	return ok
}

// Limit implements wip.Board
func (s *Store) Limit(id types.ListID) (int, bool) {
	l, ok := s.List(id)
	return l.WIPLimit, ok
}

// Count implements wip.Board
func (s *Store) Count(id types.ListID) int {
	return len(s.cards[id])
}

// Len returns the total number of cards on the board
func (s *Store) Len() int {
	return len(s.location)
}

// Locate returns the list holding the card and the card's position in it
func (s *Store) Locate(id types.CardID) (types.ListID, int, bool) {
	listID, ok := s.location[id]
	if !ok {
		return "", -1, false
	}
	for i, c := range s.cards[listID] {
		if c.ID == id {
			return listID, i, true
		}
	}
	// index and sequence disagree: treat as absent rather than guess
	return "", -1, false
}

// Card returns a copy of the card and the list holding it
func (s *Store) Card(id types.CardID) (models.Card, types.ListID, bool) {
	listID, pos, ok := s.Locate(id)
	if !ok {
		return models.Card{}, "", false
	}
	return s.cards[listID][pos].Clone(), listID, true
}

// Cards returns a copy of a list's card sequence
func (s *Store) Cards(listID types.ListID) []models.Card {
	src := s.cards[listID]
	out := make([]models.Card, len(src))
	for i, c := range src {
		out[i] = c.Clone()
	}
	return out
}

// Append adds a new card to the end of a list
func (s *Store) Append(listID types.ListID, card models.Card) error {
	if !s.HasList(listID) {
		return fmt.Errorf("list %q: %w", listID, ErrUnknownList)
	}
	if _, exists := s.location[card.ID]; exists {
		return fmt.Errorf("card %q: %w", card.ID, ErrDuplicateCard)
	}
	if card.Comments == nil {
		card.Comments = []models.Comment{}
	}
	s.cards[listID] = append(s.cards[listID], card.Clone())
	s.location[card.ID] = listID
	return nil
}

// Remove deletes a card and returns it with its former list
func (s *Store) Remove(id types.CardID) (models.Card, types.ListID, bool) {
	listID, pos, ok := s.Locate(id)
	if !ok {
		return models.Card{}, "", false
	}
	seq := s.cards[listID]
	card := seq[pos]
	s.cards[listID] = append(seq[:pos:pos], seq[pos+1:]...)
	delete(s.location, id)
	return card, listID, true
}

// Update mutates a card in place through fn. The id cannot be changed.
func (s *Store) Update(id types.CardID, fn func(*models.Card)) bool {
	listID, pos, ok := s.Locate(id)
	if !ok {
		return false
	}
	card := &s.cards[listID][pos]
	fn(card)
	card.ID = id
	return true
}

// MoveTo relocates a card to the end of another list.
// Moving to the card's own list leaves its position untouched.
func (s *Store) MoveTo(id types.CardID, to types.ListID) error {
	if !s.HasList(to) {
		return fmt.Errorf("list %q: %w", to, ErrUnknownList)
	}
	from, _, ok := s.Locate(id)
	if !ok {
		return &models.NotFoundError{CardID: id}
	}
	if from == to {
		return nil
	}
	card, _, _ := s.Remove(id)
	s.cards[to] = append(s.cards[to], card)
	s.location[id] = to
	return nil
}

// Reorder moves a card to index within its own list, clamping index to bounds
func (s *Store) Reorder(id types.CardID, index int) error {
	listID, pos, ok := s.Locate(id)
	if !ok {
		return &models.NotFoundError{CardID: id}
	}
	seq := s.cards[listID]
	if index < 0 {
		index = 0
	}
	if index > len(seq)-1 {
		index = len(seq) - 1
	}
	if index == pos {
		return nil
	}
	card := seq[pos]
	seq = append(seq[:pos], seq[pos+1:]...)
	seq = append(seq[:index], append([]models.Card{card}, seq[index:]...)...)
	s.cards[listID] = seq
	return nil
}

// Snapshot returns a deep copy of the board, with every configured list present
func (s *Store) Snapshot() models.Snapshot {
	out := make(models.Snapshot, len(s.lists))
	for _, l := range s.lists {
		out[l.ID] = s.Cards(l.ID)
	}
	return out
}

// Load replaces the board contents with snap.
//
// Cards filed under lists that are not configured are appended to the first
// configured list; their ids are returned so the caller can log the re-homing.
// A snapshot holding the same card id twice is rejected and leaves the store
// untouched.
func (s *Store) Load(snap models.Snapshot) ([]types.CardID, error) {
	cards := make(map[types.ListID][]models.Card, len(s.lists))
	location := make(map[types.CardID]types.ListID)
	for _, l := range s.lists {
		cards[l.ID] = []models.Card{}
	}

	place := func(listID types.ListID, c models.Card) error {
		if c.ID.IsZero() {
			return fmt.Errorf("card with empty id in list %q", listID)
		}
		if prev, dup := location[c.ID]; dup {
			return fmt.Errorf("card %q in lists %q and %q: %w", c.ID, prev, listID, ErrDuplicateCard)
		}
		c = c.Clone()
		cards[listID] = append(cards[listID], c)
		location[c.ID] = listID
		return nil
	}

	for _, l := range s.lists {
		for _, c := range snap[l.ID] {
			if err := place(l.ID, c); err != nil {
				return nil, err
			}
		}
	}

	var strays []types.ListID
	for listID := range snap {
		if !s.HasList(listID) {
			strays = append(strays, listID)
		}
	}
	sort.Slice(strays, func(i, j int) bool { return strays[i] < strays[j] })

	first := s.lists[0].ID
	var rehomed []types.CardID
	for _, listID := range strays {
		for _, c := range snap[listID] {
			if err := place(first, c); err != nil {
				return nil, err
			}
			rehomed = append(rehomed, c.ID)
		}
	}

	s.cards = cards
	s.location = location
	return rehomed, nil
}

// Check verifies the single-membership invariant and index consistency
func (s *Store) Check() error {
	seen := make(map[types.CardID]types.ListID)
	for _, l := range s.lists {
		for _, c := range s.cards[l.ID] {
			if prev, dup := seen[c.ID]; dup {
				return fmt.Errorf("card %q in lists %q and %q: %w", c.ID, prev, l.ID, ErrDuplicateCard)
			}
			seen[c.ID] = l.ID
			if s.location[c.ID] != l.ID {
				return fmt.Errorf("index places card %q in %q, found in %q", c.ID, s.location[c.ID], l.ID)
			}
		}
	}
	if len(seen) != len(s.location) {
		return fmt.Errorf("index holds %d cards, lists hold %d", len(s.location), len(seen))
	}
	return nil
}
