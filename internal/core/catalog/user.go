// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"slices"
)

// User is a registered account that watches and reviews movies.
//
// The username is trimmed and lower-cased; the password is an opaque hash.
type User struct {
	username       *string
	password       *string
	watchedMovies  []*Movie
	reviews        []*Review
	minutesWatched int
	watchList      *WatchList
}

// NewUser builds a user. A blank username or empty hash leaves that field nil.
func NewUser(username, passwordHash string) *User {
	return &User{
		username:  normalizeUsername(username),
		password:  normalizePassword(passwordHash),
		watchList: NewWatchList(),
	}
}

// NormalizeUsername applies the same folding as [NewUser], so lookups match.
func NormalizeUsername(username string) string {
	if name := normalizeUsername(username); name != nil {
		return *name
	}
	return ""
}

// Username returns the normalised username, or nil if it was blank.
func (user *User) Username() *string { return clonePtr(user.username) }

// Password returns the stored hash, or nil if none was provided.
func (user *User) Password() *string { return clonePtr(user.password) }

// # Watching

// WatchedMovies returns the watched movies in viewing order.
func (user *User) WatchedMovies() []*Movie { return slices.Clone(user.watchedMovies) }

// MinutesWatched returns the total runtime of every watched movie.
func (user *User) MinutesWatched() int { return user.minutesWatched }

// WatchMovie records a viewing. Movies without a runtime add no minutes.
func (user *User) WatchMovie(movie *Movie) {
	if movie == nil {
		return
	}
	user.watchedMovies = append(user.watchedMovies, movie)
	if movie.runtimeMinutes != nil {
		user.minutesWatched += *movie.runtimeMinutes
	}
}

// WatchList returns the user's personal watch list.
func (user *User) WatchList() *WatchList { return user.watchList }

// # Reviews

// Reviews returns the authored reviews in submission order.
func (user *User) Reviews() []*Review { return slices.Clone(user.reviews) }

// AddReview appends review. Nil reviews are ignored.
func (user *User) AddReview(review *Review) {
	if review == nil {
		return
	}
	user.reviews = append(user.reviews, review)
}

// HasReview reports whether an equal review is attached to the user.
func (user *User) HasReview(review *Review) bool {
	return slices.ContainsFunc(user.reviews, review.Equal)
}

// # Identity & Ordering

// Equal reports whether both users share the same username.
func (user *User) Equal(other *User) bool {
	if user == nil || other == nil {
		return user == other
	}
	return equalPtr(user.username, other.username)
}

func (user *User) String() string {
	return fmt.Sprintf("<User %s>", describe(user.username))
}

// CompareUsers orders users by username.
func CompareUsers(a, b *User) int {
	return compareOptional(a.username, b.username)
}
