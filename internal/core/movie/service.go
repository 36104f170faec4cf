// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie presents the catalogue to clients.

The [Service] reads the catalogue repository and returns DTOs. It is the
only layer that turns domain sentinels into [apperr.AppError] values:

  - missing movie, actor or user  → NotFound
  - duplicate genre tag or credit → Conflict
  - review not attached           → Unprocessable
*/
package movie

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/platform/apperr"
	"github.com/taibuivan/flix/internal/platform/ctxutil"
	"github.com/taibuivan/flix/internal/platform/validate"
	"github.com/taibuivan/flix/pkg/pagination"
	"github.com/taibuivan/flix/pkg/pointer"
	"github.com/taibuivan/flix/pkg/slice"
)

// # Service Definition

// Service implements the browse, review and curation use cases.
type Service struct {
	repository catalog.Repository
}

// NewService constructs a [Service] over repository.
func NewService(repository catalog.Repository) *Service {
	return &Service{repository: repository}
}

// # Single Movies

/*
GetMovie returns one movie.

Returns:
  - MovieDTO: the movie with its actors, reviews and genres
  - error: NotFound("Movie") if the id is unknown
*/
func (service *Service) GetMovie(_ context.Context, id int) (MovieDTO, error) {
	movie := service.repository.GetMovie(id)
	if movie == nil {
		return MovieDTO{}, apperr.NotFound("Movie")
	}
	return ToMovieDTO(movie), nil
}

// GetFirstMovie returns the earliest inserted movie.
func (service *Service) GetFirstMovie(_ context.Context) (MovieDTO, error) {
	movie := service.repository.GetFirstMovie()
	if movie == nil {
		return MovieDTO{}, apperr.NotFound("Movie")
	}
	return ToMovieDTO(movie), nil
}

// GetLastMovie returns the latest inserted movie.
func (service *Service) GetLastMovie(_ context.Context) (MovieDTO, error) {
	movie := service.repository.GetLastMovie()
	if movie == nil {
		return MovieDTO{}, apperr.NotFound("Movie")
	}
	return ToMovieDTO(movie), nil
}

// # Browsing

/*
GetMoviesByDate returns the movies released in year together with the
neighbouring years.

The neighbours are computed from the first matching movie. A year with no
movies yields an empty page with both neighbours nil.
*/
func (service *Service) GetMoviesByDate(_ context.Context, year int) DatePage {
	movies := service.repository.GetMoviesByDate(year)
	if len(movies) == 0 {
		return DatePage{Movies: []MovieDTO{}}
	}

	return DatePage{
		Movies:       ToMovieDTOs(movies),
		PreviousDate: service.repository.GetDateOfPreviousMovie(movies[0]),
		NextDate:     service.repository.GetDateOfNextMovie(movies[0]),
	}
}

// GetFirstDate returns the release year of the earliest inserted movie, or
// nil for an empty catalogue.
func (service *Service) GetFirstDate(_ context.Context) *int {
	movie := service.repository.GetFirstMovie()
	if movie == nil {
		return nil
	}
	return movie.ReleaseYear()
}

// GetMovieIDsForGenre returns the ids tagged with genreName in tagging order.
func (service *Service) GetMovieIDsForGenre(_ context.Context, genreName string) []int {
	return service.repository.GetMovieIDsForGenre(genreName)
}

// GetMoviesByID returns the known movies among ids, ascending by id.
func (service *Service) GetMoviesByID(_ context.Context, ids []int) []MovieDTO {
	return ToMovieDTOs(service.repository.GetMoviesByID(ids))
}

/*
GetMoviesForGenre returns one page of the movies tagged with genreName.

Movies are ordered ascending by id and the page window is taken over that
ordering, so consecutive pages never overlap or interleave.

Returns:
  - []MovieDTO: the page
  - pagination.Meta: page metadata over every tagged movie
  - error: NotFound("Genre") if the genre is unknown
*/
func (service *Service) GetMoviesForGenre(_ context.Context, genreName string, page pagination.Params) ([]MovieDTO, pagination.Meta, error) {
	if service.repository.GetGenre(genreName) == nil {
		return nil, pagination.Meta{}, apperr.NotFound("Genre")
	}

	ids := slices.Sorted(slices.Values(service.repository.GetMovieIDsForGenre(genreName)))
	start, end := page.Bounds(len(ids))

	movies := ToMovieDTOs(service.repository.GetMoviesByID(ids[start:end]))
	return movies, pagination.NewMeta(page.Page, page.Limit, len(ids)), nil
}

// GetGenres returns every genre in insertion order.
func (service *Service) GetGenres(_ context.Context) []GenreDTO {
	return ToGenreDTOs(service.repository.GetGenres())
}

// GetGenreNames returns the genre names in insertion order.
func (service *Service) GetGenreNames(_ context.Context) []string {
	return slice.Map(service.repository.GetGenres(), func(genre *catalog.Genre) string {
		return pointer.Val(genre.Name())
	})
}

/*
GetRandomMovies returns up to quantity distinct movies, ascending by id.

The quantity is clamped to [1, RandomMoviesMax] and to the size of the
catalogue.
*/
func (service *Service) GetRandomMovies(_ context.Context, quantity int) []MovieDTO {
	movies := service.repository.GetMovies()
	quantity = min(max(quantity, 1), RandomMoviesMax, len(movies))

	ids := make([]int, 0, quantity)
	for _, index := range rand.Perm(len(movies))[:quantity] {
		ids = append(ids, movies[index].ID())
	}
	return ToMovieDTOs(service.repository.GetMoviesByID(ids))
}

// # Reviews

// ReviewInput carries a new review.
type ReviewInput struct {
	MovieID  int
	Username string
	Text     string
	Rating   int
}

/*
AddReview records a review by an authenticated user.

Parameters:
  - input: Target movie, author and content

Returns:
  - ReviewDTO: the stored review
  - error: ValidationError, NotFound("Movie"), NotFound("User") or Unprocessable
*/
func (service *Service) AddReview(context context.Context, input ReviewInput) (ReviewDTO, error) {
	text := strings.TrimSpace(input.Text)

	validator := &validate.Validator{}
	validator.Required(FieldReviewText, text).
		MinLen(FieldReviewText, text, ReviewTextMin).
		MaxLen(FieldReviewText, text, ReviewTextMax).
		UTF8(FieldReviewText, text).
		Range(FieldRating, input.Rating, RatingMin, RatingMax)
	if err := validator.Err(); err != nil {
		return ReviewDTO{}, err
	}

	movie := service.repository.GetMovie(input.MovieID)
	if movie == nil {
		return ReviewDTO{}, apperr.NotFound("Movie")
	}
	user := service.repository.GetUser(input.Username)
	if user == nil {
		return ReviewDTO{}, apperr.NotFound("User")
	}

	review := catalog.CreateReview(text, input.Rating, movie, user, time.Now())
	if err := service.repository.AddReview(review); err != nil {
		return ReviewDTO{}, mapCatalogError(err)
	}

	ctxutil.GetLogger(context).Info("review_added",
		slog.Int("movie_id", movie.ID()),
		slog.String("username", pointer.Val(user.Username())),
		slog.Int("rating", input.Rating),
	)
	return ToReviewDTO(review), nil
}

// GetReviewsForMovie returns the reviews of a movie in submission order.
func (service *Service) GetReviewsForMovie(_ context.Context, movieID int) ([]ReviewDTO, error) {
	movie := service.repository.GetMovie(movieID)
	if movie == nil {
		return nil, apperr.NotFound("Movie")
	}
	return ToReviewDTOs(movie.Reviews()), nil
}

// # Curation

// TagMovie applies genreName to a movie, registering the genre on first use.
func (service *Service) TagMovie(context context.Context, movieID int, genreName string) (MovieDTO, error) {
	movie := service.repository.GetMovie(movieID)
	if movie == nil {
		return MovieDTO{}, apperr.NotFound("Movie")
	}

	genre := service.repository.GetGenre(strings.TrimSpace(genreName))
	created := false
	if genre == nil {
		genre = catalog.NewGenre(genreName)
		if genre.Name() == nil {
			return MovieDTO{}, validate.RequiredError(FieldGenre, "Must not be blank")
		}
		created = true
	}

	if err := catalog.AssociateGenre(movie, genre); err != nil {
		return MovieDTO{}, mapCatalogError(err)
	}
	if created {
		service.repository.AddGenre(genre)
	}

	ctxutil.GetLogger(context).Info("movie_tagged",
		slog.Int("movie_id", movieID),
		slog.String("genre", pointer.Val(genre.Name())),
	)
	return ToMovieDTO(movie), nil
}

// CreditActor credits actorName on a movie. Unknown actors are created with
// only a name.
func (service *Service) CreditActor(context context.Context, movieID int, actorName string) (MovieDTO, error) {
	movie := service.repository.GetMovie(movieID)
	if movie == nil {
		return MovieDTO{}, apperr.NotFound("Movie")
	}

	actor := service.repository.GetActor(actorName)
	created := false
	if actor == nil {
		actor = catalog.NewActor(actorName, "", "", "")
		if actor.FullName() == nil {
			return MovieDTO{}, validate.RequiredError(FieldActor, "Must not be blank")
		}
		created = true
	}

	if err := catalog.AssociateActor(movie, actor); err != nil {
		return MovieDTO{}, mapCatalogError(err)
	}
	if created {
		service.repository.AddActor(actor)
	}

	ctxutil.GetLogger(context).Info("actor_credited",
		slog.Int("movie_id", movieID),
		slog.String("actor", pointer.Val(actor.FullName())),
	)
	return ToMovieDTO(movie), nil
}

// SetRuntime stores a positive runtime on a movie.
func (service *Service) SetRuntime(_ context.Context, movieID, minutes int) (MovieDTO, error) {
	movie := service.repository.GetMovie(movieID)
	if movie == nil {
		return MovieDTO{}, apperr.NotFound("Movie")
	}
	if err := movie.SetRuntimeMinutes(minutes); err != nil {
		return MovieDTO{}, mapCatalogError(err)
	}
	return ToMovieDTO(movie), nil
}

// SetDirector assigns a director to a movie, reusing a known director of
// the same name.
func (service *Service) SetDirector(_ context.Context, movieID int, fullName string) (MovieDTO, error) {
	movie := service.repository.GetMovie(movieID)
	if movie == nil {
		return MovieDTO{}, apperr.NotFound("Movie")
	}

	director := service.repository.GetDirector(fullName)
	if director == nil {
		director = catalog.NewDirector(fullName)
		if director.FullName() == nil {
			return MovieDTO{}, validate.RequiredError("full_name", "Must not be blank")
		}
		service.repository.AddDirector(director)
	}

	movie.SetDirector(director)
	return ToMovieDTO(movie), nil
}

// # Error Mapping

var conflictMessages = map[error]string{
	catalog.ErrGenreAlreadyApplied:  "Genre is already applied to this movie",
	catalog.ErrActorAlreadyCredited: "Actor is already credited on this movie",
}

func mapCatalogError(err error) error {
	for sentinel, message := range conflictMessages {
		if errors.Is(err, sentinel) {
			return apperr.Conflict(message).WithCause(err)
		}
	}

	switch {
	case errors.Is(err, catalog.ErrRuntimeOutOfRange):
		return validate.RequiredError(FieldRuntimeMinutes, "Must be a positive number of minutes")
	case errors.Is(err, catalog.ErrReviewNotAttached):
		return apperr.Unprocessable("Review rejected").WithCause(err)
	case errors.Is(err, catalog.ErrMissingEntity):
		return apperr.Unprocessable("Association is incomplete").WithCause(err)
	}
	return apperr.Internal(err)
}
