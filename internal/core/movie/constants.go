// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

// # Review Limits

const (
	ReviewTextMin = 4
	ReviewTextMax = 1000

	RatingMin = 1
	RatingMax = 10
)

// # Random Selection

const (
	// RandomMoviesDefault is used when the quantity parameter is absent.
	RandomMoviesDefault = 2
	RandomMoviesMax     = 10
)

// # Field Names

const (
	FieldReviewText     = "review_text"
	FieldRating         = "rating"
	FieldRuntimeMinutes = "runtime_minutes"
	FieldGenre          = "genre"
	FieldActor          = "actor"
	FieldDate           = "date"
	FieldID             = "id"

	FieldMovies       = "movies"
	FieldPreviousDate = "previous_date"
	FieldNextDate     = "next_date"
)
