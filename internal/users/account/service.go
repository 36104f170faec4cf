// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/core/movie"
	"github.com/taibuivan/flix/internal/platform/apperr"
	"github.com/taibuivan/flix/internal/platform/ctxutil"
	"github.com/taibuivan/flix/internal/platform/sec"
)

// # Service Layer

// Service implements the account use cases over the catalogue repository.
type Service struct {
	repository catalog.Repository
}

// NewService constructs a [Service].
func NewService(repository catalog.Repository) *Service {
	return &Service{repository: repository}
}

// # Profile

/*
GetProfile returns the private profile of a user.

Parameters:
  - username: the authenticated user
  - role: the role carried by the access token

Returns:
  - Profile: the profile
  - error: NotFound("User") if the account no longer exists
*/
func (service *Service) GetProfile(_ context.Context, username string, role sec.UserRole) (Profile, error) {
	user, err := service.user(username)
	if err != nil {
		return Profile{}, err
	}
	return toProfile(user, role), nil
}

// GetReviews returns the reviews written by a user in submission order.
func (service *Service) GetReviews(_ context.Context, username string) ([]movie.ReviewDTO, error) {
	user, err := service.user(username)
	if err != nil {
		return nil, err
	}
	return movie.ToReviewDTOs(user.Reviews()), nil
}

// # Watch List

// GetWatchList returns the listed movies in the order they were added.
func (service *Service) GetWatchList(_ context.Context, username string) ([]movie.MovieDTO, error) {
	user, err := service.user(username)
	if err != nil {
		return nil, err
	}

	movies := make([]movie.MovieDTO, 0, user.WatchList().Size())
	for listed := range user.WatchList().All() {
		movies = append(movies, movie.ToMovieDTO(listed))
	}
	return movies, nil
}

// NextToWatch returns the head of the watch list, or NotFound("Movie") when
// the list is empty.
func (service *Service) NextToWatch(_ context.Context, username string) (movie.MovieDTO, error) {
	user, err := service.user(username)
	if err != nil {
		return movie.MovieDTO{}, err
	}

	next := user.WatchList().First()
	if next == nil {
		return movie.MovieDTO{}, apperr.NotFound("Movie")
	}
	return movie.ToMovieDTO(next), nil
}

// AddToWatchList lists a movie. Listing a movie twice is a no-op.
func (service *Service) AddToWatchList(context context.Context, username string, movieID int) ([]movie.MovieDTO, error) {
	user, target, err := service.userAndMovie(username, movieID)
	if err != nil {
		return nil, err
	}

	user.WatchList().Add(target)
	ctxutil.GetLogger(context).Info("watchlist_added",
		slog.String("username", username),
		slog.Int("movie_id", movieID),
	)
	return service.GetWatchList(context, username)
}

// RemoveFromWatchList unlists a movie. Unlisted movies are ignored.
func (service *Service) RemoveFromWatchList(_ context.Context, username string, movieID int) error {
	user, target, err := service.userAndMovie(username, movieID)
	if err != nil {
		return err
	}

	user.WatchList().Remove(target)
	return nil
}

// # History

/*
WatchMovie records a viewing and drops the movie from the watch list.

Returns:
  - Profile: the profile with the updated minutes and history
  - error: NotFound("User") or NotFound("Movie")
*/
func (service *Service) WatchMovie(context context.Context, username string, movieID int, role sec.UserRole) (Profile, error) {
	user, target, err := service.userAndMovie(username, movieID)
	if err != nil {
		return Profile{}, err
	}

	user.WatchMovie(target)
	user.WatchList().Remove(target)

	ctxutil.GetLogger(context).Info("movie_watched",
		slog.String("username", username),
		slog.Int("movie_id", movieID),
		slog.Int("minutes_watched", user.MinutesWatched()),
	)
	return toProfile(user, role), nil
}

// # Lookups

func (service *Service) user(username string) (*catalog.User, error) {
	user := service.repository.GetUser(username)
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (service *Service) userAndMovie(username string, movieID int) (*catalog.User, *catalog.Movie, error) {
	user, err := service.user(username)
	if err != nil {
		return nil, nil, err
	}

	target := service.repository.GetMovie(movieID)
	if target == nil {
		return nil, nil, apperr.NotFound("Movie")
	}
	return user, target, nil
}
