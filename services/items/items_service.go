package items

import (
	"context"
	"fmt"
	"net/url"

	"auction-client/internal/httpclient"
	"auction-client/internal/models"
)

// Service builds item, bid and question requests on top of the HTTP
// client. Item and question endpoints are parameterized by numeric id.
type Service struct {
	client *httpclient.Client
}

// NewService creates a new items Service instance
func NewService(client *httpclient.Client) *Service {
	return &Service{client: client}
}

// GetItems lists items, optionally filtered by a substring search term
func (s *Service) GetItems(ctx context.Context, search string) (*models.Envelope, error) {
	path := "/api/items/"
	if search != "" {
		path = fmt.Sprintf("/api/items/?search=%s", url.QueryEscape(search))
	}
	return s.client.Get(ctx, path)
}

// GetItemDetail fetches a single item with its bids and questions
func (s *Service) GetItemDetail(ctx context.Context, itemID int) (*models.Envelope, error) {
	return s.client.Get(ctx, fmt.Sprintf("/api/items/%d/", itemID))
}

// CreateItem creates a new auction listing
func (s *Service) CreateItem(ctx context.Context, data models.ItemCreateData) (*models.Envelope, error) {
	form := httpclient.NewForm()
	form.Set("title", data.Title)
	form.Set("description", data.Description)
	form.Set("starting_price", data.StartingPrice)
	form.SetFile("picture", data.Picture)
	form.Set("end_date", data.EndDate)

	return s.client.PostForm(ctx, "/api/items/", form)
}

// PlaceBid places a bid on an item. Amount is a decimal string.
func (s *Service) PlaceBid(ctx context.Context, itemID int, amount string) (*models.Envelope, error) {
	body := map[string]string{"amount": amount}
	return s.client.PostJSON(ctx, fmt.Sprintf("/api/items/%d/bid/", itemID), body)
}

// AskQuestion asks a question about an item
func (s *Service) AskQuestion(ctx context.Context, itemID int, questionText string) (*models.Envelope, error) {
	body := map[string]string{"question_text": questionText}
	return s.client.PostJSON(ctx, fmt.Sprintf("/api/items/%d/questions/", itemID), body)
}

// AnswerQuestion answers a question; the server enforces that only the
// item owner may do so
func (s *Service) AnswerQuestion(ctx context.Context, questionID int, answerText string) (*models.Envelope, error) {
	body := map[string]string{"answer_text": answerText}
	return s.client.PostJSON(ctx, fmt.Sprintf("/api/questions/%d/answer/", questionID), body)
}

// UpdateItem edits an item; the replacement picture is optional
func (s *Service) UpdateItem(ctx context.Context, itemID int, data models.ItemUpdateData) (*models.Envelope, error) {
	form := httpclient.NewForm()
	form.Set("title", data.Title)
	form.Set("description", data.Description)
	form.Set("end_date", data.EndDate)
	form.SetFile("picture", data.Picture)

	return s.client.PutForm(ctx, fmt.Sprintf("/api/items/%d/edit/", itemID), form)
}

// DeleteItem soft-deletes an item
func (s *Service) DeleteItem(ctx context.Context, itemID int) (*models.Envelope, error) {
	return s.client.Delete(ctx, fmt.Sprintf("/api/items/%d/delete/", itemID))
}
