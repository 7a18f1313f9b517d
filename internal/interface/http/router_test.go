package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anvitha/outfit-advisor/internal/domain/auth"
	"github.com/anvitha/outfit-advisor/internal/domain/recommender"
	"github.com/anvitha/outfit-advisor/internal/domain/wardrobe"
	"github.com/anvitha/outfit-advisor/internal/infra/config"
	apperrors "github.com/anvitha/outfit-advisor/pkg/errors"
)

func TestRouter_RegisterLoginRecommend(t *testing.T) {
	rec := &stubRecommender{
		recommendFn: func(ctx context.Context, req recommender.Request) (recommender.Result, error) {
			require.Equal(t, "anvi", req.User)
			require.Equal(t, "office party in blue", req.Prompt)
			require.Equal(t, "teen", req.Profile.AgeGroup)
			require.Equal(t, "female", req.Profile.Gender)
			return recommender.Result{
				User:     req.User,
				Occasion: "office party",
				Outfits: []recommender.Outfit{
					{Type: recommender.OutfitMultiPiece},
					{Type: recommender.OutfitMultiPiece},
					{Type: recommender.OutfitMultiPiece},
				},
			}, nil
		},
	}
	server := newRouterUnderTest(t, rec, nil)

	recorder := performJSON(server, http.MethodPost, "/api/v1/auth/register",
		`{"username":"anvi","password":"password123","age_group":"teen","gender":"female"}`, "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = performJSON(server, http.MethodPost, "/api/v1/auth/login",
		`{"username":"anvi","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var login auth.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	recorder = performJSON(server, http.MethodPost, "/api/v1/outfits/recommend",
		`{"prompt":"office party in blue"}`, login.Token)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result recommender.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Equal(t, "anvi", result.User)
	require.Len(t, result.Outfits, 3)
}

func TestRouter_RecommendRequiresToken(t *testing.T) {
	server := newRouterUnderTest(t, &stubRecommender{}, nil)

	recorder := performJSON(server, http.MethodPost, "/api/v1/outfits/recommend", `{"prompt":"party"}`, "")
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = performJSON(server, http.MethodPost, "/api/v1/outfits/recommend", `{"prompt":"party"}`, "bogus-token")
	require.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRouter_RegisterDuplicate(t *testing.T) {
	server := newRouterUnderTest(t, &stubRecommender{}, nil)

	recorder := performJSON(server, http.MethodPost, "/api/v1/auth/register",
		`{"username":"sam","password":"password123"}`, "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = performJSON(server, http.MethodPost, "/api/v1/auth/register",
		`{"username":"sam","password":"password456"}`, "")
	require.Equal(t, http.StatusConflict, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "user_exists", errBody["error"]["code"])
}

func TestRouter_RecommendCatalogError(t *testing.T) {
	rec := &stubRecommender{
		recommendFn: func(ctx context.Context, req recommender.Request) (recommender.Result, error) {
			return recommender.Result{}, apperrors.Wrap("catalog_error", "failed to load wardrobe catalog", nil)
		},
	}
	server := newRouterUnderTest(t, rec, nil)
	token := registerAndLogin(t, server, "sam")

	recorder := performJSON(server, http.MethodPost, "/api/v1/outfits/recommend", `{"prompt":"party"}`, token)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "catalog_error", errBody["error"]["code"])
}

func TestRouter_Trending(t *testing.T) {
	rec := &stubRecommender{
		trendingFn: func(ctx context.Context) ([]recommender.TrendingOccasion, error) {
			return []recommender.TrendingOccasion{{Occasion: "party", Count: 4}}, nil
		},
	}
	server := newRouterUnderTest(t, rec, nil)

	recorder := performJSON(server, http.MethodGet, "/api/v1/outfits/trending", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"party"`)
}

func TestRouter_Wardrobe(t *testing.T) {
	rec := &stubRecommender{
		wardrobeFn: func(ctx context.Context) ([]wardrobe.Item, error) {
			return []wardrobe.Item{{Name: "blue jeans", Category: wardrobe.CategoryBottomwear}}, nil
		},
	}
	server := newRouterUnderTest(t, rec, nil)

	recorder := performJSON(server, http.MethodGet, "/api/v1/wardrobe", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "blue jeans")
}

func TestRouter_WardrobeImage(t *testing.T) {
	images := &stubImageStore{objects: map[string][]byte{"jeans.png": []byte("png-bytes")}}
	server := newRouterUnderTest(t, &stubRecommender{}, images)

	recorder := performJSON(server, http.MethodGet, "/wardrobe/jeans.png", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	require.Equal(t, "png-bytes", recorder.Body.String())

	recorder = performJSON(server, http.MethodGet, "/wardrobe/missing.png", "", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRouter_FormFlow(t *testing.T) {
	rec := &stubRecommender{
		recommendFn: func(ctx context.Context, req recommender.Request) (recommender.Result, error) {
			return recommender.Result{
				User:     req.User,
				Occasion: "wedding",
				Outfits: []recommender.Outfit{
					{Type: recommender.OutfitMultiPiece, Items: []wardrobe.Item{{Name: "silk kurta"}, {Name: "churidar"}}},
					{Type: recommender.OutfitMultiPiece},
					{Type: recommender.OutfitMultiPiece},
				},
			}, nil
		},
	}
	server := newRouterUnderTest(t, rec, nil)

	recorder := performJSON(server, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "<form")

	form := url.Values{}
	form.Set("username", "anvi")
	form.Set("password", "password123")
	form.Set("age_group", "adult")
	form.Set("gender", "female")
	form.Set("prompt", "wedding outfit")

	recorder = performForm(server, "/get_recommendation", form)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "silk kurta")

	// Same user again with the wrong password is rejected.
	form.Set("password", "wrong-password")
	recorder = performForm(server, "/get_recommendation", form)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.Contains(t, recorder.Body.String(), "invalid username or password")

	// Right password updates preferences and recommends again.
	form.Set("password", "password123")
	form.Set("age_group", "senior")
	recorder = performForm(server, "/get_recommendation", form)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func decodeErrorBody(t *testing.T, body []byte) map[string]map[string]any {
	t.Helper()
	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func registerAndLogin(t *testing.T, server *http.Server, username string) string {
	t.Helper()
	recorder := performJSON(server, http.MethodPost, "/api/v1/auth/register",
		`{"username":"`+username+`","password":"password123"}`, "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = performJSON(server, http.MethodPost, "/api/v1/auth/login",
		`{"username":"`+username+`","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var login auth.LoginResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	return login.Token
}

func performJSON(server *http.Server, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performForm(server *http.Server, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, rec recommender.Service, images wardrobe.ImageStore) *http.Server {
	t.Helper()
	logger := newTestLogger()
	authSvc := auth.NewService(auth.Config{Secret: "test-secret", TokenTTL: time.Hour}, newStubUserRepo(), logger)
	if images == nil {
		images = &stubImageStore{objects: map[string][]byte{}}
	}
	handler := NewHandler(authSvc, rec, images, logger)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler, authSvc)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubRecommender struct {
	recommendFn func(ctx context.Context, req recommender.Request) (recommender.Result, error)
	wardrobeFn  func(ctx context.Context) ([]wardrobe.Item, error)
	trendingFn  func(ctx context.Context) ([]recommender.TrendingOccasion, error)
}

func (s *stubRecommender) Recommend(ctx context.Context, req recommender.Request) (recommender.Result, error) {
	if s.recommendFn != nil {
		return s.recommendFn(ctx, req)
	}
	return recommender.Result{}, nil
}

func (s *stubRecommender) Wardrobe(ctx context.Context) ([]wardrobe.Item, error) {
	if s.wardrobeFn != nil {
		return s.wardrobeFn(ctx)
	}
	return nil, nil
}

func (s *stubRecommender) Trending(ctx context.Context) ([]recommender.TrendingOccasion, error) {
	if s.trendingFn != nil {
		return s.trendingFn(ctx)
	}
	return nil, nil
}

type stubUserRepo struct {
	users map[string]auth.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]auth.User)}
}

func (r *stubUserRepo) Create(_ context.Context, username, passwordHash string, prefs auth.Preferences) (auth.User, error) {
	if _, ok := r.users[username]; ok {
		return auth.User{}, auth.ErrUserExists
	}
	user := auth.User{Username: username, PasswordHash: passwordHash, Preferences: prefs, CreatedAt: time.Now()}
	r.users[username] = user
	return user, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (auth.User, bool, error) {
	user, ok := r.users[username]
	return user, ok, nil
}

func (r *stubUserRepo) UpdatePreferences(_ context.Context, username string, prefs auth.Preferences) error {
	user, ok := r.users[username]
	if !ok {
		return nil
	}
	user.Preferences = prefs
	r.users[username] = user
	return nil
}

type stubImageStore struct {
	objects map[string][]byte
}

func (s *stubImageStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *stubImageStore) Put(_ context.Context, key string, data []byte, _ string) error {
	s.objects[key] = data
	return nil
}
