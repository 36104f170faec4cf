// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"slices"
)

// Genre is a classifier applied to movies (e.g. "Drama").
type Genre struct {
	name   *string
	movies []*Movie
}

// NewGenre builds a genre. A blank name leaves the name nil.
func NewGenre(name string) *Genre {
	return &Genre{name: normalizeName(name)}
}

// Name returns the trimmed name, or nil if it was blank.
func (genre *Genre) Name() *string { return clonePtr(genre.name) }

// Movies returns the tagged movies in tagging order.
func (genre *Genre) Movies() []*Movie { return slices.Clone(genre.movies) }

// IsAppliedTo reports whether the genre already tags movie.
func (genre *Genre) IsAppliedTo(movie *Movie) bool {
	return slices.ContainsFunc(genre.movies, movie.Equal)
}

// AddMovie appends movie. Duplicate checks belong to [AssociateGenre].
func (genre *Genre) AddMovie(movie *Movie) {
	if movie == nil {
		return
	}
	genre.movies = append(genre.movies, movie)
}

// NumberOfTaggedMovies returns how many movies carry the genre.
func (genre *Genre) NumberOfTaggedMovies() int { return len(genre.movies) }

// Equal reports whether both genres share the same name.
func (genre *Genre) Equal(other *Genre) bool {
	if genre == nil || other == nil {
		return genre == other
	}
	return equalPtr(genre.name, other.name)
}

func (genre *Genre) String() string {
	return fmt.Sprintf("<Genre %s>", describe(genre.name))
}

// CompareGenres orders genres by name.
func CompareGenres(a, b *Genre) int {
	return compareOptional(a.name, b.name)
}
