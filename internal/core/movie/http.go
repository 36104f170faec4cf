// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/flix/internal/platform/middleware"
	requestutil "github.com/taibuivan/flix/internal/platform/request"
	"github.com/taibuivan/flix/internal/platform/respond"
	"github.com/taibuivan/flix/internal/platform/sec"
	"github.com/taibuivan/flix/internal/platform/validate"
	"github.com/taibuivan/flix/pkg/convert"
	"github.com/taibuivan/flix/pkg/pagination"
	"github.com/taibuivan/flix/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for browsing movies and genres.
type Handler struct {
	service *Service
}

// NewHandler constructs a movie [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the movie endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): browse by year, random picks, single movies.
//   - Reviews (Authenticated): any signed-in user may post a review.
//   - Curation (Restricted): requires [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listByDate)
	router.Get("/first", handler.getFirst)
	router.Get("/last", handler.getLast)
	router.Get("/random", handler.listRandom)
	router.Get("/batch", handler.listByID)
	router.Get("/{id}", handler.getMovie)
	router.Get("/{id}/reviews", handler.listReviews)

	// ## Reviews
	router.Group(func(member chi.Router) {
		member.Use(middleware.RequireAuth)
		member.Post("/{id}/reviews", handler.addReview)
	})

	// ## Curation (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/{id}/genres", handler.tagMovie)
		admin.Post("/{id}/actors", handler.creditActor)
		admin.Put("/{id}/runtime", handler.setRuntime)
		admin.Put("/{id}/director", handler.setDirector)
	})

	return router
}

// GenreRoutes returns the genre endpoints.
func (handler *Handler) GenreRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listGenres)
	router.Get("/names", handler.listGenreNames)
	router.Get("/{name}/ids", handler.listGenreMovieIDs)
	router.Get("/{name}/movies", handler.listGenreMovies)

	return router
}

// # Movies

/*
GET /api/v1/movies

Description: One year of the chronological browse.

Request:
  - date: release year (optional, defaults to the year of the first movie)

Response:
  - 200: DatePage
  - 400: date is not an integer
*/
func (handler *Handler) listByDate(writer http.ResponseWriter, request *http.Request) {
	date, err := convert.ToOptionalInt(request.URL.Query().Get(FieldDate))
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldDate, "Must be a year"))
		return
	}

	if date == nil {
		date = handler.service.GetFirstDate(request.Context())
	}
	if date == nil {
		respond.OK(writer, DatePage{Movies: []MovieDTO{}})
		return
	}

	respond.OK(writer, handler.service.GetMoviesByDate(request.Context(), *date))
}

func (handler *Handler) getFirst(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.service.GetFirstMovie(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

func (handler *Handler) getLast(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.service.GetLastMovie(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

/*
GET /api/v1/movies/random

Request:
  - quantity: number of movies (optional, 1 to RandomMoviesMax)
*/
func (handler *Handler) listRandom(writer http.ResponseWriter, request *http.Request) {
	quantity := convert.ToIntD(request.URL.Query().Get("quantity"), RandomMoviesDefault)
	respond.OK(writer, handler.service.GetRandomMovies(request.Context(), quantity))
}

/*
GET /api/v1/movies/batch

Request:
  - ids: comma separated or repeated movie ids

Response:
  - 200: known movies, ascending by id
*/
func (handler *Handler) listByID(writer http.ResponseWriter, request *http.Request) {
	ids := query.IntSlice(request.URL.Query()["ids"])
	respond.OK(writer, handler.service.GetMoviesByID(request.Context(), ids))
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.GetMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

// # Reviews

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.GetReviewsForMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

type reviewRequest struct {
	ReviewText string `json:"review_text"`
	Rating     int    `json:"rating"`
}

/*
POST /api/v1/movies/{id}/reviews

Description: Posts a review as the authenticated user.

Request:
  - review_text: 4 to 1000 characters
  - rating: 1 to 10

Response:
  - 201: ReviewDTO
  - 400: validation failure
  - 401: anonymous request
  - 404: unknown movie
*/
func (handler *Handler) addReview(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movieID, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input reviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.AddReview(request.Context(), ReviewInput{
		MovieID:  movieID,
		Username: claims.Username,
		Text:     input.ReviewText,
		Rating:   input.Rating,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, review)
}

// # Curation

type nameRequest struct {
	Name string `json:"name"`
}

type fullNameRequest struct {
	FullName string `json:"full_name"`
}

type runtimeRequest struct {
	RuntimeMinutes int `json:"runtime_minutes"`
}

/*
POST /api/v1/movies/{id}/genres

Response:
  - 200: the updated MovieDTO
  - 409: genre already applied
*/
func (handler *Handler) tagMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input nameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.TagMovie(request.Context(), movieID, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

/*
POST /api/v1/movies/{id}/actors

Response:
  - 200: the updated MovieDTO
  - 409: actor already credited
*/
func (handler *Handler) creditActor(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input fullNameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.CreditActor(request.Context(), movieID, input.FullName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

func (handler *Handler) setRuntime(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input runtimeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.SetRuntime(request.Context(), movieID, input.RuntimeMinutes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

func (handler *Handler) setDirector(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input fullNameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.SetDirector(request.Context(), movieID, input.FullName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

// # Genres

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.GetGenres(request.Context()))
}

func (handler *Handler) listGenreNames(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.GetGenreNames(request.Context()))
}

func (handler *Handler) listGenreMovieIDs(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.GetMovieIDsForGenre(request.Context(), genreParam(request)))
}

/*
GET /api/v1/genres/{name}/movies

Request:
  - page, limit: pagination

Response:
  - 200: paginated MovieDTO list
  - 404: unknown genre
*/
func (handler *Handler) listGenreMovies(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	movies, meta, err := handler.service.GetMoviesForGenre(request.Context(), genreParam(request), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, movies, meta)
}

// genreParam returns the decoded genre name. Names may hold spaces and
// brackets, which arrive escaped when the router matches on the raw path.
func genreParam(request *http.Request) string {
	raw := requestutil.Param(request, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
