package itemstore

import (
	"context"
	"sync"

	"auction-client/internal/models"
	"auction-client/internal/userstore"
)

//go:generate mockgen -source=item_store.go -destination=mock_items_api.go -package=itemstore

// ItemsAPI is the slice of the items service the store depends on
type ItemsAPI interface {
	GetItems(ctx context.Context, search string) (*models.Envelope, error)
	GetItemDetail(ctx context.Context, itemID int) (*models.Envelope, error)
	CreateItem(ctx context.Context, data models.ItemCreateData) (*models.Envelope, error)
	PlaceBid(ctx context.Context, itemID int, amount string) (*models.Envelope, error)
	AskQuestion(ctx context.Context, itemID int, questionText string) (*models.Envelope, error)
	AnswerQuestion(ctx context.Context, questionID int, answerText string) (*models.Envelope, error)
	UpdateItem(ctx context.Context, itemID int, data models.ItemUpdateData) (*models.Envelope, error)
	DeleteItem(ctx context.Context, itemID int) (*models.Envelope, error)
}

// Store holds the catalog state: the flat item list and the detail triple
// for the single current item. The triple (item, bids, questions) is
// always replaced or cleared together, never mixed across items.
type Store struct {
	mu        sync.RWMutex
	api       ItemsAPI
	users     *userstore.Store
	items     []models.Item
	current   *models.Item
	bids      []models.Bid
	questions []models.Question
	loading   bool
	err       string
}

// NewStore creates a catalog store. The user store receives the bid and
// question id back-fill after successful mutations.
func NewStore(api ItemsAPI, users *userstore.Store) *Store {
	return &Store{api: api, users: users}
}

// Items returns a copy of the item list
func (s *Store) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Item(nil), s.items...)
}

// ActiveItems returns the items whose auctions have not ended
func (s *Store) ActiveItems() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var active []models.Item
	for _, item := range s.items {
		if !item.IsEnded {
			active = append(active, item)
		}
	}
	return active
}

// EndedItems returns the items whose auctions have ended
func (s *Store) EndedItems() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ended []models.Item
	for _, item := range s.items {
		if item.IsEnded {
			ended = append(ended, item)
		}
	}
	return ended
}

// CurrentItem returns a copy of the loaded detail item, or nil
func (s *Store) CurrentItem() *models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	item := *s.current
	return &item
}

// CurrentItemBids returns a copy of the current item's bid list
func (s *Store) CurrentItemBids() []models.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Bid(nil), s.bids...)
}

// CurrentItemQuestions returns a copy of the current item's question list
func (s *Store) CurrentItemQuestions() []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Question(nil), s.questions...)
}

// Loading reports whether a catalog call is in flight
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded error message
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FetchItems replaces the item list from the server; search is an
// optional substring filter
func (s *Store) FetchItems(ctx context.Context, search string) {
	s.begin()
	defer s.finish()

	envelope, err := s.api.GetItems(ctx, search)
	if err != nil {
		s.recordError("Network error")
		return
	}

	var payload models.ItemsPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Failed to load items"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = payload.Items
}

// FetchItemDetail replaces the current-item triple wholesale. The boolean
// result tells the caller whether there is anything to render.
func (s *Store) FetchItemDetail(ctx context.Context, itemID int) bool {
	s.begin()
	defer s.finish()

	envelope, err := s.api.GetItemDetail(ctx, itemID)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.ItemDetailPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Failed to load item"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &payload.Item
	s.bids = payload.Bids
	s.questions = payload.Questions
	return true
}

// CreateItem creates a listing and inserts it at the head of the list.
// Most-recent-first ordering is a client convention, not a server
// guarantee.
func (s *Store) CreateItem(ctx context.Context, data models.ItemCreateData) bool {
	s.begin()
	defer s.finish()

	envelope, err := s.api.CreateItem(ctx, data)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.ItemPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Failed to create item"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Item{payload.Item}, s.items...)
	return true
}

// PlaceBid places a bid and applies the server's result to every view
// that holds the item: the detail triple, the flat list, and the session
// user's bid id list. The id record runs inside the catalog lock's
// critical section (the session store's mutex nests inside it), so a
// reader who sees the patched item also sees the recorded id.
func (s *Store) PlaceBid(ctx context.Context, itemID int, amount string) bool {
	s.begin()
	defer s.finish()

	envelope, err := s.api.PlaceBid(ctx, itemID, amount)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.BidPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Failed to place bid"))
		return false
	}

	s.mu.Lock()
	s.current = &payload.Item
	s.bids = append([]models.Bid{payload.Bid}, s.bids...)
	s.patchItemLocked(itemID, payload.Item)
	if s.users != nil {
		s.users.RecordBidItem(itemID)
	}
	s.mu.Unlock()
	return true
}

// AskQuestion appends the new question to the detail list and records the
// item in the session user's questioned id list
func (s *Store) AskQuestion(ctx context.Context, itemID int, questionText string) bool {
	s.begin()
	defer s.finish()

	envelope, err := s.api.AskQuestion(ctx, itemID, questionText)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.QuestionPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Failed to ask question"))
		return false
	}

	s.mu.Lock()
	s.questions = append(s.questions, payload.Question)
	if s.users != nil {
		s.users.RecordQuestionedItem(itemID)
	}
	s.mu.Unlock()
	return true
}

// AnswerQuestion replaces the matching question wholesale with the
// server's answered version
func (s *Store) AnswerQuestion(ctx context.Context, questionID int, answerText string) bool {
	s.begin()
	defer s.finish()

	envelope, err := s.api.AnswerQuestion(ctx, questionID, answerText)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.QuestionPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Failed to answer question"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			s.questions[i] = payload.Question
			break
		}
	}
	return true
}

// UpdateItem replaces the current item and patches the flat-list entry
func (s *Store) UpdateItem(ctx context.Context, itemID int, data models.ItemUpdateData) bool {
	s.begin()
	defer s.finish()

	envelope, err := s.api.UpdateItem(ctx, itemID, data)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.ItemPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Failed to update item"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &payload.Item
	s.patchItemLocked(itemID, payload.Item)
	return true
}

// DeleteItem removes the item from the flat list. The server performs a
// soft delete; locally the entry is gone. If the deleted item was the
// current one the whole detail triple clears with it.
func (s *Store) DeleteItem(ctx context.Context, itemID int) bool {
	s.begin()
	defer s.finish()

	envelope, err := s.api.DeleteItem(ctx, itemID)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	if !envelope.Success {
		s.recordError(defaultMessage(envelope.Error, "Failed to delete item"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.items = kept

	if s.current != nil && s.current.ID == itemID {
		s.clearCurrentLocked()
	}
	return true
}

// ClearCurrentItem resets the detail triple. Views call this when
// navigating away from a detail page.
func (s *Store) ClearCurrentItem() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCurrentLocked()
}

func (s *Store) clearCurrentLocked() {
	s.current = nil
	s.bids = nil
	s.questions = nil
}

// patchItemLocked replaces the flat-list entry matching id, if present
func (s *Store) patchItemLocked(itemID int, item models.Item) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i] = item
			return
		}
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

func (s *Store) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

func (s *Store) recordError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = message
}

func defaultMessage(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
