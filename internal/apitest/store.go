package apitest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"auction-client/internal/clienterrors"
	"auction-client/internal/models"
)

// account pairs a public user record with its login password
type account struct {
	user     models.User
	password string
}

// Store is a concurrency-safe in-memory backing store for the reference
// auction API
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]*account       // key: username
	sessions  map[string]int            // key: session token -> user id
	items     map[int]*models.Item      // key: item id
	bids      map[int][]models.Bid      // key: item id -> bids, newest first
	questions map[int][]models.Question // key: item id -> questions, oldest first
	deleted   map[int]bool              // soft-deleted item ids
	nextID    int
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]*account),
		sessions:  make(map[string]int),
		items:     make(map[int]*models.Item),
		bids:      make(map[int][]models.Bid),
		questions: make(map[int][]models.Question),
		deleted:   make(map[int]bool),
		nextID:    0,
	}
}

func (s *Store) allocateID() int {
	s.nextID++
	return s.nextID
}

// CreateAccount registers a new user. Usernames are unique.
func (s *Store) CreateAccount(username, email, password, dateOfBirth, profileImage string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[username]; exists {
		return models.User{}, fmt.Errorf("create account %s: username taken", username)
	}

	user := models.User{
		ID:                 s.allocateID(),
		Username:           username,
		Email:              email,
		DateOfBirth:        dateOfBirth,
		ProfileImage:       profileImage,
		CurrencyPreference: "USD",
		BidItemIDs:         []int{},
		QuestionedItemIDs:  []int{},
	}
	s.accounts[username] = &account{user: user, password: password}
	return user, nil
}

// Authenticate checks credentials and returns the matching user
func (s *Store) Authenticate(username, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[username]
	if !ok || acct.password != password {
		return models.User{}, false
	}
	return acct.user, true
}

// OpenSession binds a session token to a user id
func (s *Store) OpenSession(token string, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID
}

// CloseSession discards a session token
func (s *Store) CloseSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// UserBySession resolves a session token to its user
func (s *Store) UserBySession(token string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.sessions[token]
	if !ok {
		return models.User{}, false
	}
	return s.userByIDLocked(userID)
}

func (s *Store) userByIDLocked(userID int) (models.User, bool) {
	for _, acct := range s.accounts {
		if acct.user.ID == userID {
			return acct.user, true
		}
	}
	return models.User{}, false
}

// UpdateAccount applies a profile update and returns the fresh record.
// Empty optional fields leave the stored values untouched.
func (s *Store) UpdateAccount(userID int, email, dateOfBirth, profileImage, currencyPreference string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if acct.user.ID != userID {
			continue
		}
		acct.user.Email = email
		if dateOfBirth != "" {
			acct.user.DateOfBirth = dateOfBirth
		}
		if profileImage != "" {
			acct.user.ProfileImage = profileImage
		}
		if currencyPreference != "" {
			acct.user.CurrencyPreference = currencyPreference
		}
		return acct.user, nil
	}
	return models.User{}, fmt.Errorf("update account %d: %w", userID, clienterrors.ErrNoUser)
}

// AddItem creates a listing owned by the given user
func (s *Store) AddItem(owner models.User, title, description, startingPrice, picture, endDate string) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.Item{
		ID:            s.allocateID(),
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Picture:       picture,
		EndDate:       endDate,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		IsActive:      true,
	}
	s.items[item.ID] = &item
	return item
}

// ListItems returns the live items newest first, optionally filtered by a
// case-insensitive title substring
func (s *Store) ListItems(search string) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var listed []models.Item
	for id, item := range s.items {
		if s.deleted[id] {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(search)) {
			continue
		}
		listed = append(listed, *item)
	}

	sort.Slice(listed, func(i, j int) bool { return listed[i].ID > listed[j].ID })
	return listed
}

// ItemDetail returns an item with its bids and questions
func (s *Store) ItemDetail(itemID int) (models.Item, []models.Bid, []models.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok || s.deleted[itemID] {
		return models.Item{}, nil, nil, false
	}

	bids := append([]models.Bid(nil), s.bids[itemID]...)
	questions := append([]models.Question(nil), s.questions[itemID]...)
	return *item, bids, questions, true
}

// Item returns a single live item
func (s *Store) Item(itemID int) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok || s.deleted[itemID] {
		return models.Item{}, false
	}
	return *item, true
}

// RecordBid validates and applies a bid: the amount must parse as a
// decimal, exceed the current price, and not come from the item owner.
func (s *Store) RecordBid(bidder models.User, itemID int, amount string) (models.Item, models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok || s.deleted[itemID] {
		return models.Item{}, models.Bid{}, fmt.Errorf("record bid: item %d not found", itemID)
	}
	if item.OwnerID == bidder.ID {
		return models.Item{}, models.Bid{}, fmt.Errorf("record bid: you cannot bid on your own item")
	}

	offered, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return models.Item{}, models.Bid{}, fmt.Errorf("record bid: invalid amount %q", amount)
	}
	current, err := strconv.ParseFloat(item.CurrentPrice, 64)
	if err == nil && offered <= current && item.BidCount > 0 {
		return models.Item{}, models.Bid{}, fmt.Errorf("record bid: bid must be higher than the current price")
	}
	if err == nil && offered < current && item.BidCount == 0 {
		return models.Item{}, models.Bid{}, fmt.Errorf("record bid: bid must be at least the starting price")
	}

	bid := models.Bid{
		ID:             s.allocateID(),
		ItemID:         itemID,
		ItemTitle:      item.Title,
		BidderID:       bidder.ID,
		BidderUsername: bidder.Username,
		Amount:         amount,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	s.bids[itemID] = append([]models.Bid{bid}, s.bids[itemID]...)
	item.CurrentPrice = amount
	item.BidCount++

	if acct := s.accountByIDLocked(bidder.ID); acct != nil {
		acct.user.BidItemIDs = appendUnique(acct.user.BidItemIDs, itemID)
	}

	return *item, bid, nil
}

// AddQuestion records an unanswered question about an item
func (s *Store) AddQuestion(asker models.User, itemID int, questionText string) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok || s.deleted[itemID] {
		return models.Question{}, fmt.Errorf("add question: item %d not found", itemID)
	}

	question := models.Question{
		ID:            s.allocateID(),
		ItemID:        itemID,
		ItemTitle:     item.Title,
		AskerID:       asker.ID,
		AskerUsername: asker.Username,
		QuestionText:  questionText,
		AskedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	s.questions[itemID] = append(s.questions[itemID], question)

	if acct := s.accountByIDLocked(asker.ID); acct != nil {
		acct.user.QuestionedItemIDs = appendUnique(acct.user.QuestionedItemIDs, itemID)
	}

	return question, nil
}

// AnswerQuestion records the owner's answer and flips the question to
// answered
func (s *Store) AnswerQuestion(answerer models.User, questionID int, answerText string) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for itemID, questions := range s.questions {
		for i := range questions {
			if questions[i].ID != questionID {
				continue
			}
			item, ok := s.items[itemID]
			if !ok || item.OwnerID != answerer.ID {
				return models.Question{}, fmt.Errorf("answer question: only the item owner can answer")
			}
			questions[i].AnswerText = answerText
			questions[i].AnsweredAt = time.Now().UTC().Format(time.RFC3339)
			questions[i].IsAnswered = true
			return questions[i], nil
		}
	}
	return models.Question{}, fmt.Errorf("answer question: question %d not found", questionID)
}

// UpdateItem applies an owner edit. An empty picture keeps the existing
// one.
func (s *Store) UpdateItem(owner models.User, itemID int, title, description, endDate, picture string) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok || s.deleted[itemID] {
		return models.Item{}, fmt.Errorf("update item: item %d not found", itemID)
	}
	if item.OwnerID != owner.ID {
		return models.Item{}, fmt.Errorf("update item: only the owner can edit an item")
	}

	item.Title = title
	item.Description = description
	item.EndDate = endDate
	if picture != "" {
		item.Picture = picture
	}
	return *item, nil
}

// DeleteItem soft-deletes an owner's item; the record survives but stops
// being served
func (s *Store) DeleteItem(owner models.User, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok || s.deleted[itemID] {
		return fmt.Errorf("delete item: item %d not found", itemID)
	}
	if item.OwnerID != owner.ID {
		return fmt.Errorf("delete item: only the owner can delete an item")
	}

	s.deleted[itemID] = true
	return nil
}

func (s *Store) accountByIDLocked(userID int) *account {
	for _, acct := range s.accounts {
		if acct.user.ID == userID {
			return acct
		}
	}
	return nil
}

func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
