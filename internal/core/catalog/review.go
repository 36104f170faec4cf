// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"time"
)

// Review is a user's rated opinion of a movie.
//
// A review only counts once it is attached to both its movie and its user;
// [Repository.AddReview] enforces that.
type Review struct {
	movie     *Movie
	user      *User
	text      *string
	rating    *int
	timestamp time.Time
}

// NewReview builds a detached review. Text that is not valid UTF-8 and
// ratings outside [MinRating, MaxRating] leave the field nil.
func NewReview(movie *Movie, user *User, text string, rating int, timestamp time.Time) *Review {
	return &Review{
		movie:     movie,
		user:      user,
		text:      normalizeText(text),
		rating:    normalizeRating(rating),
		timestamp: timestamp,
	}
}

func (review *Review) Movie() *Movie { return review.movie }

func (review *Review) User() *User { return review.user }

// Text returns the review body, or nil if it was rejected.
func (review *Review) Text() *string { return clonePtr(review.text) }

// Rating returns the rating, or nil if it was out of range.
func (review *Review) Rating() *int { return clonePtr(review.rating) }

func (review *Review) Timestamp() time.Time { return review.timestamp }

// Equal compares movie, text, rating and timestamp.
func (review *Review) Equal(other *Review) bool {
	if review == nil || other == nil {
		return review == other
	}
	return review.movie.Equal(other.movie) &&
		equalPtr(review.text, other.text) &&
		equalPtr(review.rating, other.rating) &&
		review.timestamp.Equal(other.timestamp)
}

func (review *Review) String() string {
	return fmt.Sprintf("<Review of movie %s, rating = %s, timestamp = %s>",
		review.movie, describe(review.rating), review.timestamp.Format(time.DateTime))
}
