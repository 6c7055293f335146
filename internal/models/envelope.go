package models

import "encoding/json"

// Envelope is the uniform response wrapper returned by every remote call.
// Data is left raw so callers can decode it into the operation-specific
// payload.
type Envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// DecodeData unmarshals the envelope's data payload into v
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// FileUpload is an in-memory file destined for a multipart form part
type FileUpload struct {
	Filename string
	Content  []byte
}

// AuthPayload is the data payload of auth/profile endpoints
type AuthPayload struct {
	User User `json:"user"`
}

// ItemsPayload is the data payload of the item list endpoint
type ItemsPayload struct {
	Items []Item `json:"items"`
}

// ItemDetailPayload is the data payload of the item detail endpoint
type ItemDetailPayload struct {
	Item      Item       `json:"item"`
	Bids      []Bid      `json:"bids"`
	Questions []Question `json:"questions"`
}

// ItemPayload is the data payload of item create/edit endpoints
type ItemPayload struct {
	Item Item `json:"item"`
}

// BidPayload is the data payload of the place-bid endpoint: the updated
// item plus the newly created bid
type BidPayload struct {
	Item Item `json:"item"`
	Bid  Bid  `json:"bid"`
}

// QuestionPayload is the data payload of the ask/answer question endpoints
type QuestionPayload struct {
	Question Question `json:"question"`
}
