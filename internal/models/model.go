package models

// User represents the authenticated marketplace account
type User struct {
	ID                 int    `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
	ProfileImage       string `json:"profile_image,omitempty"`
	CurrencyPreference string `json:"currency_preference"`
	BidItemIDs         []int  `json:"bid_item_ids"`
	QuestionedItemIDs  []int  `json:"questioned_item_ids"`
}

// Item represents an auction listing. Prices travel as decimal strings to
// avoid floating-point currency error on the wire.
type Item struct {
	ID             int    `json:"id"`
	OwnerID        int    `json:"owner_id"`
	OwnerUsername  string `json:"owner_username"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartingPrice  string `json:"starting_price"`
	CurrentPrice   string `json:"current_price"`
	Picture        string `json:"picture,omitempty"`
	EndDate        string `json:"end_date"`
	CreatedAt      string `json:"created_at"`
	IsActive       bool   `json:"is_active"`
	IsEnded        bool   `json:"is_ended"`
	BidCount       int    `json:"bid_count"`
	WinnerID       int    `json:"winner_id,omitempty"`
	WinnerUsername string `json:"winner_username,omitempty"`
}

// Bid represents a user's bid on an item. Immutable once created.
type Bid struct {
	ID             int    `json:"id"`
	ItemID         int    `json:"item_id"`
	ItemTitle      string `json:"item_title"`
	BidderID       int    `json:"bidder_id"`
	BidderUsername string `json:"bidder_username"`
	Amount         string `json:"amount"`
	CreatedAt      string `json:"created_at"`
}

// Question represents a question asked about an item. Created unanswered,
// it transitions once to answered by the item owner.
type Question struct {
	ID            int    `json:"id"`
	ItemID        int    `json:"item_id"`
	ItemTitle     string `json:"item_title"`
	AskerID       int    `json:"asker_id"`
	AskerUsername string `json:"asker_username"`
	QuestionText  string `json:"question_text"`
	AnswerText    string `json:"answer_text"`
	AskedAt       string `json:"asked_at"`
	AnsweredAt    string `json:"answered_at,omitempty"`
	IsAnswered    bool   `json:"is_answered"`
}

// LoginCredentials is the payload for a login request
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupData carries the signup form fields. Optional fields are omitted
// from the outgoing form when empty.
type SignupData struct {
	Username     string
	Email        string
	Password1    string
	Password2    string
	DateOfBirth  string
	ProfileImage *FileUpload
}

// ProfileUpdateData carries the profile form fields. Email is always sent;
// the rest only when present.
type ProfileUpdateData struct {
	Email              string
	DateOfBirth        string
	ProfileImage       *FileUpload
	CurrencyPreference string
}

// ItemCreateData carries the fields for a new listing
type ItemCreateData struct {
	Title         string
	Description   string
	StartingPrice string
	Picture       *FileUpload
	EndDate       string
}

// ItemUpdateData carries the fields for an edit. Picture is optional.
type ItemUpdateData struct {
	Title       string
	Description string
	EndDate     string
	Picture     *FileUpload
}
