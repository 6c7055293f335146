package apitest

import (
	"net/http"
	"strconv"
	"strings"

	"auction-client/internal/currency"
	"auction-client/internal/models"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the auction API endpoints against a Store
type Handler struct {
	store *Store
}

// NewHandler creates a new Handler instance
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// IssueCSRF handles GET /api/csrf/. It plants the csrftoken cookie the
// client echoes back in the X-CSRFToken header.
func (h *Handler) IssueCSRF(c *gin.Context) {
	token := utils.GenerateID()
	c.SetCookie(csrfCookieName, token, 0, "/", "", false, false)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"csrfToken": token})
}

// Login handles POST /api/auth/login/
func (h *Handler) Login(c *gin.Context) {
	var credentials models.LoginCredentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, ok := h.store.Authenticate(credentials.Username, credentials.Password)
	if !ok {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid username or password")
		return
	}

	h.openSession(c, user)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}

// Signup handles POST /api/auth/signup/ (multipart)
func (h *Handler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password1 := c.PostForm("password1")
	password2 := c.PostForm("password2")

	fieldErrors := map[string][]string{}
	if username == "" {
		fieldErrors["username"] = append(fieldErrors["username"], "This field is required.")
	}
	if email == "" {
		fieldErrors["email"] = append(fieldErrors["email"], "This field is required.")
	}
	if password1 == "" {
		fieldErrors["password1"] = append(fieldErrors["password1"], "This field is required.")
	}
	if password1 != password2 {
		fieldErrors["password2"] = append(fieldErrors["password2"], "Passwords do not match.")
	}
	if len(fieldErrors) > 0 {
		utils.JSONInvalid(c, http.StatusBadRequest, "Signup failed", fieldErrors)
		return
	}

	user, err := h.store.CreateAccount(username, email, password1, c.PostForm("date_of_birth"), h.savedFile(c, "profile_image"))
	if err != nil {
		utils.JSONInvalid(c, http.StatusBadRequest, "Signup failed", map[string][]string{
			"username": {"A user with that username already exists."},
		})
		return
	}

	h.openSession(c, user)
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user})
}

// CurrentUser handles GET /api/auth/me/
func (h *Handler) CurrentUser(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": sessionUser(c)})
}

// Logout handles POST /api/auth/logout/
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil {
		h.store.CloseSession(token)
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, nil)
}

// UpdateProfile handles PUT /api/profile/ and the legacy path (multipart)
func (h *Handler) UpdateProfile(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		utils.JSONInvalid(c, http.StatusBadRequest, "Update failed", map[string][]string{
			"email": {"This field is required."},
		})
		return
	}

	preference := c.PostForm("currency_preference")
	if preference != "" && !currency.Supported(currency.Code(preference)) {
		utils.JSONInvalid(c, http.StatusBadRequest, "Update failed", map[string][]string{
			"currency_preference": {"Select a valid choice."},
		})
		return
	}

	user, err := h.store.UpdateAccount(sessionUser(c).ID, email, c.PostForm("date_of_birth"), h.savedFile(c, "profile_image"), preference)
	if err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Update failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}

// ListItems handles GET /api/items/?search=<term>
func (h *Handler) ListItems(c *gin.Context) {
	items := h.store.ListItems(c.Query("search"))
	if items == nil {
		items = []models.Item{}
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"items": items})
}

// ItemDetail handles GET /api/items/:item_id/
func (h *Handler) ItemDetail(c *gin.Context) {
	itemID, ok := h.pathID(c, "item_id")
	if !ok {
		return
	}

	item, bids, questions, found := h.store.ItemDetail(itemID)
	if !found {
		utils.JSONFailure(c, http.StatusNotFound, "Item not found")
		return
	}

	if bids == nil {
		bids = []models.Bid{}
	}
	if questions == nil {
		questions = []models.Question{}
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"item":      item,
		"bids":      bids,
		"questions": questions,
	})
}

// CreateItem handles POST /api/items/ (multipart)
func (h *Handler) CreateItem(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	startingPrice := c.PostForm("starting_price")
	endDate := c.PostForm("end_date")

	fieldErrors := map[string][]string{}
	for field, value := range map[string]string{
		"title":          title,
		"description":    description,
		"starting_price": startingPrice,
		"end_date":       endDate,
	} {
		if value == "" {
			fieldErrors[field] = append(fieldErrors[field], "This field is required.")
		}
	}
	if _, err := strconv.ParseFloat(startingPrice, 64); startingPrice != "" && err != nil {
		fieldErrors["starting_price"] = append(fieldErrors["starting_price"], "Enter a valid price.")
	}
	if len(fieldErrors) > 0 {
		utils.JSONInvalid(c, http.StatusBadRequest, "Failed to create item", fieldErrors)
		return
	}

	item := h.store.AddItem(sessionUser(c), title, description, startingPrice, h.savedFile(c, "picture"), endDate)
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"item": item})
}

// UpdateItem handles PUT /api/items/:item_id/edit/ (multipart)
func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, ok := h.pathID(c, "item_id")
	if !ok {
		return
	}

	item, err := h.store.UpdateItem(sessionUser(c), itemID, c.PostForm("title"), c.PostForm("description"), c.PostForm("end_date"), h.savedFile(c, "picture"))
	if err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, humanize(err))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"item": item})
}

// DeleteItem handles DELETE /api/items/:item_id/delete/
func (h *Handler) DeleteItem(c *gin.Context) {
	itemID, ok := h.pathID(c, "item_id")
	if !ok {
		return
	}

	if err := h.store.DeleteItem(sessionUser(c), itemID); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, humanize(err))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}

// PlaceBid handles POST /api/items/:item_id/bid/
func (h *Handler) PlaceBid(c *gin.Context) {
	itemID, ok := h.pathID(c, "item_id")
	if !ok {
		return
	}

	var body struct {
		Amount string `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, bid, err := h.store.RecordBid(sessionUser(c), itemID, body.Amount)
	if err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, humanize(err))
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"item": item, "bid": bid})
}

// AskQuestion handles POST /api/items/:item_id/questions/
func (h *Handler) AskQuestion(c *gin.Context) {
	itemID, ok := h.pathID(c, "item_id")
	if !ok {
		return
	}

	var body struct {
		QuestionText string `json:"question_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question, err := h.store.AddQuestion(sessionUser(c), itemID, body.QuestionText)
	if err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, humanize(err))
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"question": question})
}

// AnswerQuestion handles POST /api/questions/:question_id/answer/
func (h *Handler) AnswerQuestion(c *gin.Context) {
	questionID, ok := h.pathID(c, "question_id")
	if !ok {
		return
	}

	var body struct {
		AnswerText string `json:"answer_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question, err := h.store.AnswerQuestion(sessionUser(c), questionID, body.AnswerText)
	if err != nil {
		utils.JSONFailure(c, http.StatusBadRequest, humanize(err))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"question": question})
}

func (h *Handler) openSession(c *gin.Context, user models.User) {
	token := utils.GenerateID()
	h.store.OpenSession(token, user.ID)
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// savedFile returns the stored reference for an uploaded file part, or
// empty when the part is absent
func (h *Handler) savedFile(c *gin.Context, field string) string {
	file, err := c.FormFile(field)
	if err != nil {
		return ""
	}
	return "/media/" + file.Filename
}

// pathID parses a numeric path parameter, replying 404 when it is not a
// number
func (h *Handler) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.JSONFailure(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

// humanize strips the internal operation prefix from store errors before
// they go on the wire
func humanize(err error) string {
	message := err.Error()
	if _, after, found := strings.Cut(message, ": "); found {
		return strings.ToUpper(after[:1]) + after[1:]
	}
	return message
}
