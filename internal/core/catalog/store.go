// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// # Data Access

// Repository is the authoritative store of every catalogue entity.
//
// Lookups never fail: a missing key yields nil or an empty slice. The only
// operation with a hard precondition is AddReview.
type Repository interface {

	// # Insertion

	AddMovie(movie *Movie)
	AddGenre(genre *Genre)
	AddActor(actor *Actor)
	AddDirector(director *Director)
	AddUser(user *User)

	/*
		AddReview accepts a review into the global review list.

		It does not create links. The review must already be attached to both
		its user and its movie (see [CreateReview]).

		Returns:
		  - error: wraps [ErrReviewNotAttached] when either link is missing
	*/
	AddReview(review *Review) error

	// # Movies

	// GetMovie returns the movie with the given surrogate id, or nil.
	GetMovie(id int) *Movie

	// GetMovies returns every movie in insertion order.
	GetMovies() []*Movie

	// GetMoviesByDate returns the movies released in year.
	GetMoviesByDate(year int) []*Movie

	// GetDateOfPreviousMovie scans back from movie for the closest strictly
	// earlier release year. It returns nil if there is none or movie is unknown.
	GetDateOfPreviousMovie(movie *Movie) *int

	// GetDateOfNextMovie scans forward from movie for the closest strictly
	// later release year. It returns nil if there is none or movie is unknown.
	GetDateOfNextMovie(movie *Movie) *int

	// GetFirstMovie and GetLastMovie return the earliest and latest inserted
	// movie, or nil for an empty repository.
	GetFirstMovie() *Movie
	GetLastMovie() *Movie

	// GetMovieIDsForGenre returns the ids tagged with the named genre in
	// tagging order, or an empty slice for an unknown genre.
	GetMovieIDsForGenre(genreName string) []int

	// GetMoviesByID returns the movies whose ids appear in ids, ordered by
	// ascending id. Unknown ids are skipped and duplicates collapse.
	GetMoviesByID(ids []int) []*Movie

	GetNumberOfMovies() int

	// # People & Classifiers

	GetUser(username string) *User
	GetActor(name string) *Actor
	GetDirector(name string) *Director
	GetGenre(name string) *Genre

	GetGenres() []*Genre
	GetActors() []*Actor
	GetUsers() []*User
	GetReviews() []*Review
}
