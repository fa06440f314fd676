package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chirpy/internal/logger"
	"github.com/MKhiriev/go-chirpy/internal/utils"
	"github.com/MKhiriev/go-chirpy/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type httpChirpyClient struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	logger *logger.Logger
}

// NewHTTPChirpyClient constructs a [ChirpyClient] talking to the server at
// baseURL. A scheme-less address such as "localhost:8080" is treated as
// http. A zero timeout disables the per-request limit.
func NewHTTPChirpyClient(baseURL string, timeout time.Duration, logger *logger.Logger) (ChirpyClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpChirpyClient{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpChirpyClient) SetTokens(accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = strings.TrimSpace(accessToken)
	c.refreshToken = strings.TrimSpace(refreshToken)
}

func (c *httpChirpyClient) Tokens() (string, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken, c.refreshToken
}

func (c *httpChirpyClient) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var user models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpChirpyClient) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&login).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.SetTokens(login.Token, login.RefreshToken)
	c.logger.Debug().Str("user_id", login.ID.String()).Msg("logged in")

	return login, nil
}

func (c *httpChirpyClient) Refresh(ctx context.Context) (string, error) {
	_, refreshToken := c.Tokens()
	if refreshToken == "" {
		return "", ErrNotLoggedIn
	}

	var result models.AccessTokenResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(refreshToken).
		SetResult(&result).
		Post("/api/refresh")
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.accessToken = result.Token
	c.mu.Unlock()

	return result.Token, nil
}

func (c *httpChirpyClient) Revoke(ctx context.Context) error {
	_, refreshToken := c.Tokens()
	if refreshToken == "" {
		return ErrNotLoggedIn
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(refreshToken).
		Post("/api/revoke")
	if err != nil {
		return fmt.Errorf("revoke request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.SetTokens("", "")
	return nil
}

func (c *httpChirpyClient) UpdateCredentials(ctx context.Context, credentials models.Credentials) (models.User, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := req.SetBody(credentials).SetResult(&user).Put("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("update credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (c *httpChirpyClient) CreateChirp(ctx context.Context, body string) (models.Chirp, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Chirp{}, err
	}

	var chirp models.Chirp
	resp, err := req.SetBody(models.ChirpRequest{Body: body}).SetResult(&chirp).Post("/api/chirps")
	if err != nil {
		return models.Chirp{}, fmt.Errorf("create chirp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chirp{}, err
	}

	return chirp, nil
}

func (c *httpChirpyClient) ListChirps(ctx context.Context, filter models.ChirpFilter) ([]models.Chirp, error) {
	req := c.client.R().SetContext(ctx)
	if filter.AuthorID != nil {
		req.SetQueryParam("author_id", filter.AuthorID.String())
	}
	if filter.Sort != "" {
		req.SetQueryParam("sort", string(filter.Sort))
	}

	chirps := make([]models.Chirp, 0)
	resp, err := req.SetResult(&chirps).Get("/api/chirps")
	if err != nil {
		return nil, fmt.Errorf("list chirps request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return chirps, nil
}

func (c *httpChirpyClient) GetChirp(ctx context.Context, chirpID uuid.UUID) (models.Chirp, error) {
	var chirp models.Chirp

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("chirpID", chirpID.String()).
		SetResult(&chirp).
		Get("/api/chirps/{chirpID}")
	if err != nil {
		return models.Chirp{}, fmt.Errorf("get chirp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Chirp{}, err
	}

	return chirp, nil
}

func (c *httpChirpyClient) DeleteChirp(ctx context.Context, chirpID uuid.UUID) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("chirpID", chirpID.String()).Delete("/api/chirps/{chirpID}")
	if err != nil {
		return fmt.Errorf("delete chirp request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpChirpyClient) UserID() (uuid.UUID, error) {
	accessToken, _ := c.Tokens()
	if accessToken == "" {
		return uuid.Nil, ErrNotLoggedIn
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return uuid.Nil, fmt.Errorf("parse access token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse access token subject: %w", err)
	}
	return userID, nil
}

// authedRequest returns a request carrying the stored access token.
func (c *httpChirpyClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	accessToken, _ := c.Tokens()
	if accessToken == "" {
		return nil, ErrNotLoggedIn
	}
	return c.client.R().SetContext(ctx).SetAuthToken(accessToken), nil
}
