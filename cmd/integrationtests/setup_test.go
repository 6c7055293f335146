package integrationtests

import (
	"context"
	"net/http/httptest"
	"testing"

	"auction-client/internal/apitest"
	"auction-client/internal/httpclient"
	"auction-client/internal/itemstore"
	"auction-client/internal/models"
	"auction-client/internal/userstore"
	"auction-client/services/auth"
	"auction-client/services/items"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testAPI is one running in-memory auction API shared by every client in
// a test
type testAPI struct {
	store  *apitest.Store
	server *httptest.Server
}

// newTestAPI starts the reference API server
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := apitest.NewStore()
	server := httptest.NewServer(apitest.SetupRouter(store))
	t.Cleanup(server.Close)

	return &testAPI{store: store, server: server}
}

// clientSession is a full client stack (its own cookie jar) against the
// test API; each simulated user gets one
type clientSession struct {
	users   *userstore.Store
	catalog *itemstore.Store
}

// newClientSession builds the client stack exactly as production wiring
// does
func (api *testAPI) newClientSession(t *testing.T) *clientSession {
	t.Helper()

	client, err := httpclient.New(api.server.URL, 0)
	require.NoError(t, err)

	users := userstore.NewStore(auth.NewService(client), nil)
	catalog := itemstore.NewStore(items.NewService(client), users)
	return &clientSession{users: users, catalog: catalog}
}

// signUp registers and signs in a fresh account
func (s *clientSession) signUp(t *testing.T, username string) {
	t.Helper()
	ok := s.users.Signup(context.Background(), models.SignupData{
		Username:  username,
		Email:     username + "@example.com",
		Password1: "auction-pass-1",
		Password2: "auction-pass-1",
	})
	require.True(t, ok, "signup for %s failed: %s", username, s.users.Err())
	require.True(t, s.users.IsAuthenticated())
}

// createItem lists a new auction item and returns it
func (s *clientSession) createItem(t *testing.T, title, price string) models.Item {
	t.Helper()
	ok := s.catalog.CreateItem(context.Background(), models.ItemCreateData{
		Title:         title,
		Description:   title + " in good condition",
		StartingPrice: price,
		Picture:       &models.FileUpload{Filename: "item.jpg", Content: []byte("jpeg")},
		EndDate:       "2026-12-01T00:00:00Z",
	})
	require.True(t, ok, "create item failed: %s", s.catalog.Err())
	return s.catalog.Items()[0]
}
