package integrationtests

import (
	"context"
	"testing"

	"auction-client/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSignupLoginLogoutFlow(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	alice := api.newClientSession(t)
	alice.signUp(t, "alice")
	require.Equal(t, "alice", alice.users.User().Username)
	require.Equal(t, "USD", alice.users.User().CurrencyPreference)

	// a second stack with the same cookie-less jar starts signed out
	visitor := api.newClientSession(t)
	visitor.users.FetchCurrentUser(ctx)
	require.False(t, visitor.users.IsAuthenticated())

	ok := visitor.users.Login(ctx, models.LoginCredentials{
		Username: "alice",
		Password: "auction-pass-1",
	})
	require.True(t, ok)
	require.True(t, visitor.users.IsAuthenticated())

	visitor.users.Logout(ctx)
	require.False(t, visitor.users.IsAuthenticated())
	visitor.users.FetchCurrentUser(ctx)
	require.False(t, visitor.users.IsAuthenticated())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	alice := api.newClientSession(t)
	alice.signUp(t, "alice")

	visitor := api.newClientSession(t)
	ok := visitor.users.Login(ctx, models.LoginCredentials{
		Username: "alice",
		Password: "wrong-pass",
	})
	require.False(t, ok)
	require.False(t, visitor.users.IsAuthenticated())
	require.Equal(t, "Invalid username or password", visitor.users.Err())
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	alice := api.newClientSession(t)
	alice.signUp(t, "alice")

	copycat := api.newClientSession(t)
	ok := copycat.users.Signup(ctx, models.SignupData{
		Username:  "alice",
		Email:     "other@example.com",
		Password1: "auction-pass-1",
		Password2: "auction-pass-1",
	})
	require.False(t, ok)
	require.Equal(t, "Signup failed", copycat.users.Err())
	require.Equal(t, []string{"A user with that username already exists."}, copycat.users.FieldErrors()["username"])
}

func TestAuctionLifecycleFlow(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	seller := api.newClientSession(t)
	seller.signUp(t, "seller")
	listed := seller.createItem(t, "Antique Clock", "120.00")

	buyer := api.newClientSession(t)
	buyer.signUp(t, "buyer")

	buyer.catalog.FetchItems(ctx, "")
	require.Len(t, buyer.catalog.Items(), 1)
	require.Equal(t, listed.ID, buyer.catalog.Items()[0].ID)

	require.True(t, buyer.catalog.FetchItemDetail(ctx, listed.ID))
	require.Equal(t, "120.00", buyer.catalog.CurrentItem().CurrentPrice)

	// first bid may match the starting price
	ok := buyer.catalog.PlaceBid(ctx, listed.ID, "120.00")
	require.True(t, ok, "bid failed: %s", buyer.catalog.Err())
	require.Equal(t, 1, buyer.catalog.CurrentItem().BidCount)
	require.Equal(t, "120.00", buyer.catalog.CurrentItem().CurrentPrice)
	require.Equal(t, []int{listed.ID}, buyer.users.User().BidItemIDs)

	ok = buyer.catalog.PlaceBid(ctx, listed.ID, "135.50")
	require.True(t, ok)
	require.Equal(t, "135.50", buyer.catalog.CurrentItem().CurrentPrice)
	require.Len(t, buyer.catalog.CurrentItemBids(), 2)
	require.Equal(t, "135.50", buyer.catalog.CurrentItemBids()[0].Amount)
	require.Equal(t, []int{listed.ID}, buyer.users.User().BidItemIDs)

	ok = buyer.catalog.AskQuestion(ctx, listed.ID, "Does it still chime?")
	require.True(t, ok)
	require.Equal(t, []int{listed.ID}, buyer.users.User().QuestionedItemIDs)
	question := buyer.catalog.CurrentItemQuestions()[0]
	require.False(t, question.IsAnswered)

	require.True(t, seller.catalog.FetchItemDetail(ctx, listed.ID))
	ok = seller.catalog.AnswerQuestion(ctx, question.ID, "Every hour, on the hour.")
	require.True(t, ok, "answer failed: %s", seller.catalog.Err())
	answered := seller.catalog.CurrentItemQuestions()[0]
	require.True(t, answered.IsAnswered)
	require.Equal(t, "Every hour, on the hour.", answered.AnswerText)

	ok = seller.catalog.UpdateItem(ctx, listed.ID, models.ItemUpdateData{
		Title:       "Antique Wall Clock",
		Description: "Chimes hourly",
		EndDate:     "2026-12-15T00:00:00Z",
	})
	require.True(t, ok)
	require.Equal(t, "Antique Wall Clock", seller.catalog.CurrentItem().Title)

	ok = seller.catalog.DeleteItem(ctx, listed.ID)
	require.True(t, ok)
	require.Nil(t, seller.catalog.CurrentItem())

	buyer.catalog.FetchItems(ctx, "")
	require.Empty(t, buyer.catalog.Items())
}

func TestBidValidation(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	seller := api.newClientSession(t)
	seller.signUp(t, "seller")
	listed := seller.createItem(t, "Oil Painting", "300.00")

	buyer := api.newClientSession(t)
	buyer.signUp(t, "buyer")
	require.True(t, buyer.catalog.FetchItemDetail(ctx, listed.ID))
	require.True(t, buyer.catalog.PlaceBid(ctx, listed.ID, "310.00"))

	tests := []struct {
		name    string
		session *clientSession
		amount  string
		message string
	}{
		{
			name:    "owner cannot bid",
			session: seller,
			amount:  "400.00",
			message: "You cannot bid on your own item",
		},
		{
			name:    "bid below current price",
			session: buyer,
			amount:  "305.00",
			message: "Bid must be higher than the current price",
		},
		{
			name:    "bid equal to current price",
			session: buyer,
			amount:  "310.00",
			message: "Bid must be higher than the current price",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.session.catalog.FetchItemDetail(ctx, listed.ID))
			ok := tc.session.catalog.PlaceBid(ctx, listed.ID, tc.amount)
			require.False(t, ok)
			require.Equal(t, tc.message, tc.session.catalog.Err())
			require.Equal(t, "310.00", tc.session.catalog.CurrentItem().CurrentPrice)
		})
	}
}

func TestAnswerRequiresOwnership(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	seller := api.newClientSession(t)
	seller.signUp(t, "seller")
	listed := seller.createItem(t, "Bronze Statue", "90.00")

	buyer := api.newClientSession(t)
	buyer.signUp(t, "buyer")
	require.True(t, buyer.catalog.FetchItemDetail(ctx, listed.ID))
	require.True(t, buyer.catalog.AskQuestion(ctx, listed.ID, "What is it made of?"))
	question := buyer.catalog.CurrentItemQuestions()[0]

	ok := buyer.catalog.AnswerQuestion(ctx, question.ID, "Bronze, I assume.")
	require.False(t, ok)
	require.Equal(t, "Only the item owner can answer", buyer.catalog.Err())
	require.False(t, buyer.catalog.CurrentItemQuestions()[0].IsAnswered)
}

func TestItemSearch(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	seller := api.newClientSession(t)
	seller.signUp(t, "seller")
	seller.createItem(t, "Antique Clock", "120.00")
	seller.createItem(t, "Pocket Watch", "80.00")
	seller.createItem(t, "Grandfather Clock", "450.00")

	tests := []struct {
		name   string
		search string
		titles []string
	}{
		{
			name:   "no filter returns newest first",
			search: "",
			titles: []string{"Grandfather Clock", "Pocket Watch", "Antique Clock"},
		},
		{
			name:   "case-insensitive substring",
			search: "clock",
			titles: []string{"Grandfather Clock", "Antique Clock"},
		},
		{
			name:   "no matches",
			search: "vase",
			titles: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			seller.catalog.FetchItems(ctx, tc.search)
			listed := seller.catalog.Items()
			titles := make([]string, 0, len(listed))
			for _, item := range listed {
				titles = append(titles, item.Title)
			}
			require.Equal(t, tc.titles, titles)
		})
	}
}

func TestProfileAndCurrencyFlow(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	alice := api.newClientSession(t)
	alice.signUp(t, "alice")

	ok := alice.users.SetCurrency(ctx, "EUR")
	require.True(t, ok)
	require.Equal(t, "EUR", alice.users.User().CurrencyPreference)

	// a bogus code is rejected server-side and leaves the profile alone
	ok = alice.users.SetCurrency(ctx, "XYZ")
	require.False(t, ok)
	require.Equal(t, "EUR", alice.users.User().CurrencyPreference)

	ok = alice.users.UpdateProfile(ctx, models.ProfileUpdateData{
		Email:       "alice@auctionhouse.example.com",
		DateOfBirth: "1990-04-01",
	})
	require.True(t, ok)
	require.Equal(t, "alice@auctionhouse.example.com", alice.users.User().Email)
	require.Equal(t, "1990-04-01", alice.users.User().DateOfBirth)
	require.Equal(t, "EUR", alice.users.User().CurrencyPreference)
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	seller := api.newClientSession(t)
	seller.signUp(t, "seller")
	listed := seller.createItem(t, "Antique Clock", "120.00")

	visitor := api.newClientSession(t)
	visitor.catalog.FetchItems(ctx, "")
	require.Empty(t, visitor.catalog.Items())
	require.Equal(t, "Authentication required", visitor.catalog.Err())

	require.False(t, visitor.catalog.FetchItemDetail(ctx, listed.ID))
	require.False(t, visitor.catalog.PlaceBid(ctx, listed.ID, "200.00"))
	require.Equal(t, "Authentication required", visitor.catalog.Err())
}
