// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/flix/internal/platform/middleware"
	requestutil "github.com/taibuivan/flix/internal/platform/request"
	"github.com/taibuivan/flix/internal/platform/respond"
	"github.com/taibuivan/flix/internal/platform/sec"
)

// Handler implements the HTTP layer for the signed-in user's account.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns the account endpoints, all behind [middleware.RequireAuth].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	// Profile
	router.Get("/", handler.getMe)
	router.Get("/reviews", handler.listReviews)

	// Watch List
	router.Get("/watchlist", handler.getWatchList)
	router.Get("/watchlist/next", handler.getNext)
	router.Post("/watchlist/{movieID}", handler.addToWatchList)
	router.Delete("/watchlist/{movieID}", handler.removeFromWatchList)

	// History
	router.Post("/watched/{movieID}", handler.watchMovie)

	return router
}

// # Profile Endpoints

/*
GET /api/v1/me

Description: Retrieves the private profile of the authenticated user.

Response:
  - 200: Profile
  - 401: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetProfile(request.Context(), claims.Username, sec.UserRole(claims.Role))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.accountService.GetReviews(request.Context(), claims.Username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

// # Watch List Endpoints

func (handler *Handler) getWatchList(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movies, err := handler.accountService.GetWatchList(request.Context(), claims.Username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movies)
}

func (handler *Handler) getNext(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	next, err := handler.accountService.NextToWatch(request.Context(), claims.Username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, next)
}

/*
POST /api/v1/me/watchlist/{movieID}

Response:
  - 200: the watch list after the change
  - 404: unknown movie
*/
func (handler *Handler) addToWatchList(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movieID, err := requestutil.IntParam(request, "movieID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movies, err := handler.accountService.AddToWatchList(request.Context(), claims.Username, movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movies)
}

func (handler *Handler) removeFromWatchList(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movieID, err := requestutil.IntParam(request, "movieID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.RemoveFromWatchList(request.Context(), claims.Username, movieID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # History Endpoints

/*
POST /api/v1/me/watched/{movieID}

Description: Records a viewing. The movie's runtime, if known, is added to
the user's minutes watched.

Response:
  - 200: the updated Profile
  - 404: unknown movie
*/
func (handler *Handler) watchMovie(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movieID, err := requestutil.IntParam(request, "movieID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.WatchMovie(request.Context(), claims.Username, movieID, sec.UserRole(claims.Role))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}
