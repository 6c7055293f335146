package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"auction-client/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Helper to build a success envelope carrying a user payload
func userEnvelope(t *testing.T, user models.User) *models.Envelope {
	t.Helper()
	data, err := json.Marshal(models.AuthPayload{User: user})
	require.NoError(t, err)
	return &models.Envelope{Success: true, Data: data}
}

func sampleUser() models.User {
	return models.User{
		ID:                 1,
		Username:           "alice",
		Email:              "alice@example.com",
		CurrencyPreference: "USD",
		BidItemIDs:         []int{},
		QuestionedItemIDs:  []int{},
	}
}

// Tests Login
func TestUserStore_Login(t *testing.T) {
	credentials := models.LoginCredentials{Username: "alice", Password: "pass"}

	tests := []struct {
		name      string
		mockSetup func(t *testing.T, api *MockAuthAPI)
		wantOK    bool
		wantAuth  bool
		wantError string
	}{
		{
			name: "success_installs_user",
			mockSetup: func(t *testing.T, api *MockAuthAPI) {
				api.EXPECT().Login(gomock.Any(), credentials).Return(userEnvelope(t, sampleUser()), nil)
			},
			wantOK:   true,
			wantAuth: true,
		},
		{
			name: "failure_uses_server_message",
			mockSetup: func(t *testing.T, api *MockAuthAPI) {
				api.EXPECT().Login(gomock.Any(), credentials).
					Return(&models.Envelope{Success: false, Error: "Invalid username or password"}, nil)
			},
			wantOK:    false,
			wantError: "Invalid username or password",
		},
		{
			name: "failure_falls_back_to_default_message",
			mockSetup: func(t *testing.T, api *MockAuthAPI) {
				api.EXPECT().Login(gomock.Any(), credentials).
					Return(&models.Envelope{Success: false}, nil)
			},
			wantOK:    false,
			wantError: "Login failed",
		},
		{
			name: "transport_error_records_network_error",
			mockSetup: func(t *testing.T, api *MockAuthAPI) {
				api.EXPECT().Login(gomock.Any(), credentials).
					Return(nil, errors.New("connection refused"))
			},
			wantOK:    false,
			wantError: "Network error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := NewMockAuthAPI(ctrl)
			tc.mockSetup(t, api)
			store := NewStore(api, nil)

			ok := store.Login(context.Background(), credentials)

			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantAuth, store.IsAuthenticated())
			require.Equal(t, tc.wantError, store.Err())
			require.False(t, store.Loading(), "loading must clear after the call")
			if tc.wantOK {
				require.NotNil(t, store.User())
				require.Equal(t, "alice", store.User().Username)
			}
		})
	}
}

// For all sequences of successful login/logout, the authentication flag
// equals the outcome of the most recent operation applied.
func TestUserStore_LoginLogoutSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockAuthAPI(ctrl)
	credentials := models.LoginCredentials{Username: "alice", Password: "pass"}

	api.EXPECT().Login(gomock.Any(), credentials).
		DoAndReturn(func(context.Context, models.LoginCredentials) (*models.Envelope, error) {
			return userEnvelope(t, sampleUser()), nil
		}).Times(2)
	api.EXPECT().Logout(gomock.Any()).Return(&models.Envelope{Success: true}, nil).Times(2)

	store := NewStore(api, nil)
	ctx := context.Background()

	require.True(t, store.Login(ctx, credentials))
	require.True(t, store.IsAuthenticated())

	store.Logout(ctx)
	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.User())

	require.True(t, store.Login(ctx, credentials))
	require.True(t, store.IsAuthenticated())

	store.Logout(ctx)
	require.False(t, store.IsAuthenticated())
}

// Logout clears the local session even when the remote call fails
func TestUserStore_LogoutClearsOnRemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockAuthAPI(ctrl)
	api.EXPECT().Logout(gomock.Any()).Return(nil, errors.New("connection reset"))

	store := NewStore(api, func() *models.User { u := sampleUser(); return &u }())
	require.True(t, store.IsAuthenticated())

	store.Logout(context.Background())
	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.User())
}

// Tests Signup field-level validation errors
func TestUserStore_SignupFieldErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockAuthAPI(ctrl)
	data := models.SignupData{Username: "alice", Email: "alice@example.com", Password1: "a", Password2: "b"}

	api.EXPECT().Signup(gomock.Any(), data).Return(&models.Envelope{
		Success: false,
		Errors:  map[string][]string{"password2": {"Passwords do not match."}},
	}, nil)

	store := NewStore(api, nil)
	require.False(t, store.Signup(context.Background(), data))
	require.Equal(t, "Signup failed", store.Err())
	require.Equal(t, []string{"Passwords do not match."}, store.FieldErrors()["password2"])

	// A later successful signup clears the stale field errors
	api.EXPECT().Signup(gomock.Any(), data).Return(userEnvelope(t, sampleUser()), nil)
	require.True(t, store.Signup(context.Background(), data))
	require.Nil(t, store.FieldErrors())
	require.True(t, store.IsAuthenticated())
}

// FetchCurrentUser de-authenticates when the session cannot be confirmed
func TestUserStore_FetchCurrentUser(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(t *testing.T, api *MockAuthAPI)
		wantAuth  bool
	}{
		{
			name: "valid_session",
			mockSetup: func(t *testing.T, api *MockAuthAPI) {
				api.EXPECT().CurrentUser(gomock.Any()).Return(userEnvelope(t, sampleUser()), nil)
			},
			wantAuth: true,
		},
		{
			name: "rejected_session_clears_user",
			mockSetup: func(t *testing.T, api *MockAuthAPI) {
				api.EXPECT().CurrentUser(gomock.Any()).
					Return(&models.Envelope{Success: false, Error: "Authentication required"}, nil)
			},
			wantAuth: false,
		},
		{
			name: "transport_error_clears_user",
			mockSetup: func(t *testing.T, api *MockAuthAPI) {
				api.EXPECT().CurrentUser(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantAuth: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := NewMockAuthAPI(ctrl)
			tc.mockSetup(t, api)

			// Seeded with an assumed session; the fetch validates it
			seed := sampleUser()
			store := NewStore(api, &seed)

			store.FetchCurrentUser(context.Background())

			require.Equal(t, tc.wantAuth, store.IsAuthenticated())
			require.False(t, store.Loading())
			if !tc.wantAuth {
				require.Nil(t, store.User())
			}
		})
	}
}

// SetCurrency round-trips only the existing email and the new currency,
// and stays quiet about failures
func TestUserStore_SetCurrency(t *testing.T) {
	t.Run("no_user_loaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewStore(NewMockAuthAPI(ctrl), nil)
		require.False(t, store.SetCurrency(context.Background(), "EUR"))
	})

	t.Run("sends_email_and_currency_only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		api := NewMockAuthAPI(ctrl)
		updated := sampleUser()
		updated.CurrencyPreference = "EUR"

		api.EXPECT().UpdateProfile(gomock.Any(), models.ProfileUpdateData{
			Email:              "alice@example.com",
			CurrencyPreference: "EUR",
		}).Return(userEnvelope(t, updated), nil)

		seed := sampleUser()
		store := NewStore(api, &seed)

		require.True(t, store.SetCurrency(context.Background(), "EUR"))
		require.Equal(t, "EUR", store.User().CurrencyPreference)
	})

	t.Run("swallows_transport_error_without_message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		api := NewMockAuthAPI(ctrl)
		api.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		seed := sampleUser()
		store := NewStore(api, &seed)

		require.False(t, store.SetCurrency(context.Background(), "EUR"))
		require.Empty(t, store.Err())
	})
}

// UpdateProfile installs the returned user without touching the
// authentication flag, and records validation errors on failure
func TestUserStore_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockAuthAPI(ctrl)
	seed := sampleUser()
	store := NewStore(api, &seed)

	data := models.ProfileUpdateData{Email: "new@example.com"}
	updated := sampleUser()
	updated.Email = "new@example.com"

	api.EXPECT().UpdateProfile(gomock.Any(), data).Return(userEnvelope(t, updated), nil)
	require.True(t, store.UpdateProfile(context.Background(), data))
	require.Equal(t, "new@example.com", store.User().Email)
	require.True(t, store.IsAuthenticated())

	api.EXPECT().UpdateProfile(gomock.Any(), data).Return(&models.Envelope{
		Success: false,
		Errors:  map[string][]string{"email": {"Enter a valid email address."}},
	}, nil)
	require.False(t, store.UpdateProfile(context.Background(), data))
	require.Equal(t, "Update failed", store.Err())
	require.Equal(t, []string{"Enter a valid email address."}, store.FieldErrors()["email"])
}

// RecordBidItem and RecordQuestionedItem never duplicate ids
func TestUserStore_RecordItemIDs(t *testing.T) {
	seed := sampleUser()
	store := NewStore(nil, &seed)

	store.RecordBidItem(5)
	store.RecordBidItem(5)
	store.RecordBidItem(9)
	require.Equal(t, []int{5, 9}, store.User().BidItemIDs)

	store.RecordQuestionedItem(3)
	store.RecordQuestionedItem(3)
	require.Equal(t, []int{3}, store.User().QuestionedItemIDs)

	// No-op when anonymous
	anonymous := NewStore(nil, nil)
	anonymous.RecordBidItem(1)
	require.Nil(t, anonymous.User())
}
