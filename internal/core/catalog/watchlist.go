// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"iter"
	"slices"
)

// WatchList is an ordered list of movies a user intends to watch.
// It never holds the same movie twice.
type WatchList struct {
	movies []*Movie
}

// NewWatchList returns an empty watch list.
func NewWatchList() *WatchList {
	return &WatchList{}
}

// Add appends movie unless it is nil or already listed.
func (list *WatchList) Add(movie *Movie) {
	if movie == nil || slices.ContainsFunc(list.movies, movie.Equal) {
		return
	}
	list.movies = append(list.movies, movie)
}

// Remove drops movie. Absent movies are ignored.
func (list *WatchList) Remove(movie *Movie) {
	if index := slices.IndexFunc(list.movies, movie.Equal); index >= 0 {
		list.movies = slices.Delete(list.movies, index, index+1)
	}
}

// Select returns the movie at index, or nil when index is out of range.
func (list *WatchList) Select(index int) *Movie {
	if index < 0 || index >= len(list.movies) {
		return nil
	}
	return list.movies[index]
}

// Size returns the number of listed movies.
func (list *WatchList) Size() int { return len(list.movies) }

// First returns the first listed movie, or nil for an empty list.
func (list *WatchList) First() *Movie { return list.Select(0) }

// Movies returns a copy of the listed movies.
func (list *WatchList) Movies() []*Movie { return slices.Clone(list.movies) }

// All iterates the listed movies in order.
func (list *WatchList) All() iter.Seq[*Movie] {
	return slices.Values(list.movies)
}
