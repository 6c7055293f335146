package userstore

import (
	"context"
	"sync"

	"auction-client/internal/models"
)

//go:generate mockgen -source=user_store.go -destination=mock_auth_api.go -package=userstore

// AuthAPI is the slice of the auth service the store depends on
type AuthAPI interface {
	Login(ctx context.Context, credentials models.LoginCredentials) (*models.Envelope, error)
	Signup(ctx context.Context, data models.SignupData) (*models.Envelope, error)
	Logout(ctx context.Context) (*models.Envelope, error)
	CurrentUser(ctx context.Context) (*models.Envelope, error)
	UpdateProfile(ctx context.Context, data models.ProfileUpdateData) (*models.Envelope, error)
}

// Store holds the session state: the current user, the authentication
// flag, and the error state of the last auth/profile call. Server
// responses are authoritative; the user record is replaced wholesale on
// every successful auth response and only patched in place to append an
// item id after a local bid/question succeeds.
type Store struct {
	mu            sync.RWMutex
	api           AuthAPI
	user          *models.User
	authenticated bool
	loading       bool
	err           string
	fieldErrors   map[string][]string
}

// NewStore creates a session store. seed is the previously-established
// session the host process injects at startup, if any; it avoids a
// redundant round trip when the server already knows the user.
func NewStore(api AuthAPI, seed *models.User) *Store {
	s := &Store{api: api}
	if seed != nil {
		user := *seed
		s.user = &user
		s.authenticated = true
	}
	return s
}

// User returns a copy of the current user, or nil when anonymous
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a session user is established
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Loading reports whether an auth/profile call is in flight
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded error message, empty when the last call
// succeeded
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FieldErrors returns the field-keyed validation messages from the last
// failed signup/profile call
func (s *Store) FieldErrors() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fieldErrors
}

// Login authenticates with the given credentials and installs the
// returned user on success
func (s *Store) Login(ctx context.Context, credentials models.LoginCredentials) bool {
	s.begin(false)
	defer s.finish()

	envelope, err := s.api.Login(ctx, credentials)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.AuthPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Login failed"))
		return false
	}

	s.install(payload.User)
	return true
}

// Signup registers a new account and signs it in on success. Validation
// failures populate the field-keyed error map for form re-rendering.
func (s *Store) Signup(ctx context.Context, data models.SignupData) bool {
	s.begin(true)
	defer s.finish()

	envelope, err := s.api.Signup(ctx, data)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.AuthPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Signup failed"))
		s.recordFieldErrors(envelope.Errors)
		return false
	}

	s.install(payload.User)
	return true
}

// Logout calls the remote logout and clears the local session regardless
// of the remote outcome
func (s *Store) Logout(ctx context.Context) {
	s.api.Logout(ctx) //nolint:errcheck // local state clears either way

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
}

// FetchCurrentUser validates the assumed session against the server. It
// is the only operation that actively de-authenticates on failure: when
// session validity cannot be confirmed, anonymous is the safe default.
func (s *Store) FetchCurrentUser(ctx context.Context) {
	s.begin(false)
	defer s.finish()

	envelope, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.recordError("Network error while fetching user.")
		s.clearSession()
		return
	}

	var payload models.AuthPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.clearSession()
		return
	}

	s.install(payload.User)
}

// UpdateProfile submits the profile form and installs the returned user
// on success
func (s *Store) UpdateProfile(ctx context.Context, data models.ProfileUpdateData) bool {
	s.begin(true)
	defer s.finish()

	envelope, err := s.api.UpdateProfile(ctx, data)
	if err != nil {
		s.recordError("Network error")
		return false
	}

	var payload models.AuthPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		s.recordError(defaultMessage(envelope.Error, "Update failed"))
		s.recordFieldErrors(envelope.Errors)
		return false
	}

	s.installUserOnly(payload.User)
	return true
}

// SetCurrency round-trips the user's existing email plus the new currency
// preference through the profile endpoint. It is a quiet convenience
// path: failures return false without recording an error message.
func (s *Store) SetCurrency(ctx context.Context, currency string) bool {
	user := s.User()
	if user == nil {
		return false
	}

	envelope, err := s.api.UpdateProfile(ctx, models.ProfileUpdateData{
		Email:              user.Email,
		CurrencyPreference: currency,
	})
	if err != nil {
		return false
	}

	var payload models.AuthPayload
	if !envelope.Success || envelope.DecodeData(&payload) != nil || len(envelope.Data) == 0 {
		return false
	}

	s.installUserOnly(payload.User)
	return true
}

// RecordBidItem appends an item id to the user's bid id list unless it is
// already present. An optimistic patch; the server remains the source of
// truth on the next fetch.
func (s *Store) RecordBidItem(itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user.BidItemIDs = appendUnique(s.user.BidItemIDs, itemID)
}

// RecordQuestionedItem appends an item id to the user's questioned id
// list unless it is already present
func (s *Store) RecordQuestionedItem(itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user.QuestionedItemIDs = appendUnique(s.user.QuestionedItemIDs, itemID)
}

func (s *Store) begin(resetFieldErrors bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
	if resetFieldErrors {
		s.fieldErrors = nil
	}
}

func (s *Store) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

func (s *Store) install(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.authenticated = true
}

// installUserOnly replaces the user record without touching the
// authentication flag (profile updates assume an established session)
func (s *Store) installUserOnly(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (s *Store) clearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
}

func (s *Store) recordError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = message
}

func (s *Store) recordFieldErrors(errors map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fieldErrors = errors
}

func defaultMessage(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

func appendUnique(ids []int, id int) []int {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
