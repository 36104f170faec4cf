// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"time"
)

// # Association Builders
//
// Each builder checks its duplicate rule before touching either end, so a
// rejected call leaves both entities unchanged.

// AssociateGenre tags movie with genre and records movie on the genre.
//
// It returns an error wrapping [ErrGenreAlreadyApplied] if the genre already
// tags the movie.
func AssociateGenre(movie *Movie, genre *Genre) error {
	if movie == nil || genre == nil {
		return fmt.Errorf("associate genre: %w", ErrMissingEntity)
	}
	if genre.IsAppliedTo(movie) {
		return fmt.Errorf("associate genre %s with %s: %w", genre, movie, ErrGenreAlreadyApplied)
	}

	movie.AddGenre(genre)
	genre.AddMovie(movie)
	return nil
}

// AssociateActor credits actor on movie.
//
// Every actor already credited on the movie becomes a colleague of the new
// one. It returns an error wrapping [ErrActorAlreadyCredited] if the credit
// already exists.
func AssociateActor(movie *Movie, actor *Actor) error {
	if movie == nil || actor == nil {
		return fmt.Errorf("associate actor: %w", ErrMissingEntity)
	}
	if actor.IsAppliedTo(movie) {
		return fmt.Errorf("associate actor %s with %s: %w", actor, movie, ErrActorAlreadyCredited)
	}

	for _, other := range movie.actors {
		other.AddColleague(actor)
	}

	movie.AddActor(actor)
	actor.AddMovie(movie)
	return nil
}

// CreateReview builds a review and attaches it to user and movie.
//
// A zero timestamp means "now". Nil ends are not rejected here; the
// repository refuses reviews that are not attached on both sides.
func CreateReview(text string, rating int, movie *Movie, user *User, timestamp time.Time) *Review {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	review := NewReview(movie, user, text, rating, timestamp)
	if user != nil {
		user.AddReview(review)
	}
	if movie != nil {
		movie.AddReview(review)
	}
	return review
}
