package auth

import (
	"context"

	"auction-client/internal/httpclient"
	"auction-client/internal/models"
)

const (
	loginPath         = "/api/auth/login/"
	signupPath        = "/api/auth/signup/"
	logoutPath        = "/api/auth/logout/"
	currentUserPath   = "/api/auth/me/"
	profilePath       = "/api/profile/"
	legacyProfilePath = "/api/auth/profile/update/"
)

// Service builds auth requests on top of the HTTP client. It holds no
// state and applies no business logic; envelopes pass through untouched.
type Service struct {
	client *httpclient.Client
}

// NewService creates a new auth Service instance
func NewService(client *httpclient.Client) *Service {
	return &Service{client: client}
}

// Login authenticates with username and password
func (s *Service) Login(ctx context.Context, credentials models.LoginCredentials) (*models.Envelope, error) {
	return s.client.PostJSON(ctx, loginPath, credentials)
}

// Signup registers a new account. Date of birth and profile image are
// included in the form only when supplied.
func (s *Service) Signup(ctx context.Context, data models.SignupData) (*models.Envelope, error) {
	form := httpclient.NewForm()
	form.Set("username", data.Username)
	form.Set("email", data.Email)
	form.Set("password1", data.Password1)
	form.Set("password2", data.Password2)

	if data.DateOfBirth != "" {
		form.Set("date_of_birth", data.DateOfBirth)
	}
	form.SetFile("profile_image", data.ProfileImage)

	return s.client.PostForm(ctx, signupPath, form)
}

// Logout ends the server-side session
func (s *Service) Logout(ctx context.Context) (*models.Envelope, error) {
	return s.client.PostJSON(ctx, logoutPath, struct{}{})
}

// CurrentUser fetches the user bound to the current session cookie
func (s *Service) CurrentUser(ctx context.Context) (*models.Envelope, error) {
	return s.client.Get(ctx, currentUserPath)
}

// UpdateProfile submits the profile form. Email is always sent; the
// optional fields are omitted entirely when absent.
func (s *Service) UpdateProfile(ctx context.Context, data models.ProfileUpdateData) (*models.Envelope, error) {
	return s.client.PutForm(ctx, profilePath, profileForm(data))
}

// UpdateProfileLegacy submits the same profile form to the legacy
// endpoint path kept for older deployments
func (s *Service) UpdateProfileLegacy(ctx context.Context, data models.ProfileUpdateData) (*models.Envelope, error) {
	return s.client.PutForm(ctx, legacyProfilePath, profileForm(data))
}

func profileForm(data models.ProfileUpdateData) *httpclient.Form {
	form := httpclient.NewForm()
	form.Set("email", data.Email)

	if data.DateOfBirth != "" {
		form.Set("date_of_birth", data.DateOfBirth)
	}
	form.SetFile("profile_image", data.ProfileImage)
	if data.CurrencyPreference != "" {
		form.Set("currency_preference", data.CurrencyPreference)
	}

	return form
}
