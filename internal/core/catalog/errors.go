// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "errors"

// # Validation (hard)

// ErrRuntimeOutOfRange is returned by [Movie.SetRuntimeMinutes] for a non-positive value.
var ErrRuntimeOutOfRange = errors.New("catalog: runtime minutes out of range")

// # Domain Conflicts

var (
	// ErrGenreAlreadyApplied is returned by [AssociateGenre] when the movie already carries the genre.
	ErrGenreAlreadyApplied = errors.New("catalog: genre already applied to movie")

	// ErrActorAlreadyCredited is returned by [AssociateActor] when the actor already has the movie credit.
	ErrActorAlreadyCredited = errors.New("catalog: actor already credited on movie")

	// ErrMissingEntity is returned by the association builders when either end is nil.
	ErrMissingEntity = errors.New("catalog: association endpoint is missing")

	// ErrColleagueAsymmetric is reported by [VerifyColleagues] for a one-way colleague edge.
	ErrColleagueAsymmetric = errors.New("catalog: colleague relation is not symmetric")
)

// # Repository Consistency

// ErrReviewNotAttached is returned by [Repository.AddReview] when the review is
// missing from its user's or its movie's review list.
var ErrReviewNotAttached = errors.New("catalog: review not attached to both user and movie")
