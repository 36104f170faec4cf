// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/flix/internal/api"
	"github.com/taibuivan/flix/internal/core/actor"
	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/core/movie"
	"github.com/taibuivan/flix/internal/platform/config"
	"github.com/taibuivan/flix/internal/platform/dataset/datasettest"
	"github.com/taibuivan/flix/internal/platform/middleware"
	"github.com/taibuivan/flix/internal/platform/sec"
	"github.com/taibuivan/flix/internal/users/account"
	"github.com/taibuivan/flix/internal/users/auth"
)

func newServer(t *testing.T, repo catalog.Repository) http.Handler {
	t.Helper()
	return newLockedServer(t, repo, &sync.RWMutex{})
}

func newLockedServer(t *testing.T, repo catalog.Repository, lock *sync.RWMutex) http.Handler {
	t.Helper()

	cfg := &config.Config{
		ServerPort:     "0",
		Environment:    "development",
		BcryptCost:     bcrypt.MinCost,
		AdminUsernames: []string{"thorke"},
	}
	logger := datasettest.DiscardLogger()

	tokens, err := sec.NewTokenService("integration-secret", "flix.test")
	require.NoError(t, err)
	authService := auth.NewService(repo, auth.NewMemoryRevocationStore(), tokens, auth.Options{
		BcryptCost: cfg.BcryptCost,
		Roles:      cfg,
	})

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCatalog: func() error {
			if repo.GetNumberOfMovies() == 0 {
				return errors.New("catalogue is empty")
			}
			return nil
		},
	}, logger)

	server := api.NewServer(cfg, logger, api.Dependencies{
		Verifier:    authService,
		Limiter:     middleware.NewRateLimiter(1000, 1000),
		CatalogLock: lock,
	}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Movie:     movie.NewHandler(movie.NewService(repo)),
		Actor:     actor.NewHandler(actor.NewService(repo)),
		Account:   account.NewHandler(account.NewService(repo)),
	})
	return server.Handler()
}

func call(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func login(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	body := `{"username":"` + username + `","password":"` + password + `"}`
	recorder := call(t, router, http.MethodPost, "/api/v1/auth/login", body, "")
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data.AccessToken
}

func TestServer_Health(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		router := newServer(t, datasettest.Repository(t))

		assert.Equal(t, http.StatusOK, call(t, router, http.MethodGet, "/health", "", "").Code)

		recorder := call(t, router, http.MethodGet, "/ready", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ready"`)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("empty catalogue", func(t *testing.T) {
		router := newServer(t, catalog.NewMemoryRepository())

		recorder := call(t, router, http.MethodGet, "/ready", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"degraded"`)
	})
}

/*
TestServer_MemberJourney drives a new member through the public API.
*/
func TestServer_MemberJourney(t *testing.T) {
	router := newServer(t, datasettest.Repository(t))

	// 1. Browse anonymously
	recorder := call(t, router, http.MethodGet, "/api/v1/movies?date=1994", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = call(t, router, http.MethodGet, "/api/v1/actors/Chris%20Evans", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	// 2. Register and sign in
	recorder = call(t, router, http.MethodPost, "/api/v1/auth/register", `{"username":"Ziggy","password":"stardust72"}`, "")
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	token := login(t, router, "ziggy", "stardust72")

	// 3. Review a movie
	recorder = call(t, router, http.MethodPost, "/api/v1/movies/1/reviews", `{"review_text":"An offer I could not refuse","rating":10}`, token)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = call(t, router, http.MethodGet, "/api/v1/movies/1/reviews", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var reviews struct {
		Data []movie.ReviewDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &reviews))
	assert.Len(t, reviews.Data, 5)

	// 4. Curate the watch list
	recorder = call(t, router, http.MethodPost, "/api/v1/me/watchlist/6", "", token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = call(t, router, http.MethodGet, "/api/v1/me", "", token)
	require.Equal(t, http.StatusOK, recorder.Code)
	var profile struct {
		Data account.Profile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &profile))
	assert.Equal(t, "ziggy", profile.Data.Username)
	assert.Equal(t, 1, profile.Data.ReviewCount)
	assert.Equal(t, 1, profile.Data.WatchListSize)

	// 5. Members cannot curate
	recorder = call(t, router, http.MethodPut, "/api/v1/movies/1/runtime", `{"runtime_minutes":175}`, token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	// 6. Logout revokes the token
	recorder = call(t, router, http.MethodPost, "/api/v1/auth/logout", "", token)
	require.Equal(t, http.StatusNoContent, recorder.Code)
	recorder = call(t, router, http.MethodGet, "/api/v1/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestServer_AdminCuration(t *testing.T) {
	router := newServer(t, datasettest.Repository(t))
	token := login(t, router, "thorke", "902fjf0j2f")

	recorder := call(t, router, http.MethodPut, "/api/v1/movies/1/runtime", `{"runtime_minutes":175}`, token)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = call(t, router, http.MethodPost, "/api/v1/movies/13/genres", `{"name":"Genre 3"}`, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = call(t, router, http.MethodGet, "/api/v1/genres/Genre%203/ids", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[6,8,13]}`, recorder.Body.String())
}

/*
TestServer_AuthBypassesCatalogLock signs in while a catalogue write holds the
lock, then checks that catalogue reads still wait for it.
*/
func TestServer_AuthBypassesCatalogLock(t *testing.T) {
	lock := &sync.RWMutex{}
	router := newLockedServer(t, datasettest.Repository(t), lock)

	lock.Lock()
	released := false
	defer func() {
		if !released {
			lock.Unlock()
		}
	}()

	done := make(chan int, 1)
	go func() {
		body := `{"username":"thorke","password":"902fjf0j2f"}`
		done <- call(t, router, http.MethodPost, "/api/v1/auth/login", body, "").Code
	}()

	select {
	case code := <-done:
		assert.Equal(t, http.StatusOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("login waited for the catalogue lock")
	}

	blocked := make(chan struct{})
	go func() {
		call(t, router, http.MethodGet, "/api/v1/movies/1", "", "")
		close(blocked)
	}()

	select {
	case <-blocked:
		t.Fatal("catalogue read ran while the lock was held")
	case <-time.After(50 * time.Millisecond):
	}

	lock.Unlock()
	released = true
	<-blocked
}
