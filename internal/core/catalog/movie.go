// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the domain model of the Flix movie catalogue and its
in-memory repository.

The model is a small object graph: movies, actors, directors, genres, users
and reviews, linked in both directions.

Core Responsibility:

  - Construction: Entities normalise their inputs. Malformed values become nil
    fields rather than errors, so callers check [Movie.IsValid] and friends.
  - Associations: [AssociateGenre], [AssociateActor] and [CreateReview] keep
    both ends of a link in step and reject duplicates.
  - Storage: [MemoryRepository] is the single owner of every entity for the
    lifetime of the process.
*/
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// # Core Entities

// Movie is a single film in the catalogue.
//
// Identity is the (title, release year) pair; the numeric ID is an externally
// assigned surrogate key used for indexing.
type Movie struct {
	id             int
	title          *string
	releaseYear    *int
	description    string
	hyperlink      string
	imageHyperlink string
	runtimeMinutes *int
	director       *Director
	actors         []*Actor
	genres         []*Genre
	reviews        []*Review
}

// NewMovie builds a movie. A blank title or a year before [MinReleaseYear]
// leaves the corresponding field nil.
func NewMovie(id int, title string, releaseYear int, description, hyperlink, imageHyperlink string) *Movie {
	return &Movie{
		id:             id,
		title:          normalizeName(title),
		releaseYear:    normalizeYear(releaseYear),
		description:    description,
		hyperlink:      hyperlink,
		imageHyperlink: imageHyperlink,
	}
}

// # Essential Attributes

func (movie *Movie) ID() int { return movie.id }

func (movie *Movie) SetID(id int) { movie.id = id }

// Title returns the trimmed title, or nil if it was blank.
func (movie *Movie) Title() *string { return clonePtr(movie.title) }

func (movie *Movie) SetTitle(title string) { movie.title = normalizeName(title) }

// ReleaseYear returns the release year, or nil if it was out of range.
func (movie *Movie) ReleaseYear() *int { return clonePtr(movie.releaseYear) }

func (movie *Movie) SetReleaseYear(year int) { movie.releaseYear = normalizeYear(year) }

// IsValid reports whether both identity fields survived normalisation.
func (movie *Movie) IsValid() bool {
	return movie.title != nil && movie.releaseYear != nil
}

// # Additional Attributes

func (movie *Movie) Description() string { return movie.description }

// SetDescription stores the trimmed description.
func (movie *Movie) SetDescription(description string) {
	movie.description = strings.TrimSpace(description)
}

func (movie *Movie) Hyperlink() string { return movie.hyperlink }

func (movie *Movie) ImageHyperlink() string { return movie.imageHyperlink }

func (movie *Movie) Director() *Director { return movie.director }

// SetDirector replaces the director. A nil director clears it.
func (movie *Movie) SetDirector(director *Director) { movie.director = director }

// RuntimeMinutes returns the runtime, or nil if it was never set.
func (movie *Movie) RuntimeMinutes() *int { return clonePtr(movie.runtimeMinutes) }

// SetRuntimeMinutes stores a positive runtime. Any other value is a
// programming error: it returns [ErrRuntimeOutOfRange] and keeps the old value.
func (movie *Movie) SetRuntimeMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: %d", ErrRuntimeOutOfRange, minutes)
	}
	movie.runtimeMinutes = &minutes
	return nil
}

// # Actors

// Actors returns the credited actors in credit order.
func (movie *Movie) Actors() []*Actor { return slices.Clone(movie.actors) }

// HasActor reports whether an equal actor is credited on the movie.
func (movie *Movie) HasActor(actor *Actor) bool {
	return slices.ContainsFunc(movie.actors, actor.Equal)
}

// AddActor appends actor unless it is nil or already credited.
func (movie *Movie) AddActor(actor *Actor) {
	if actor == nil || movie.HasActor(actor) {
		return
	}
	movie.actors = append(movie.actors, actor)
}

// RemoveActor drops actor. Absent or nil actors are ignored.
func (movie *Movie) RemoveActor(actor *Actor) {
	if actor == nil {
		return
	}
	if index := slices.IndexFunc(movie.actors, actor.Equal); index >= 0 {
		movie.actors = slices.Delete(movie.actors, index, index+1)
	}
}

// # Genres

// Genres returns the genres in tagging order.
func (movie *Movie) Genres() []*Genre { return slices.Clone(movie.genres) }

// AddGenre appends genre unless it is nil or already present.
func (movie *Movie) AddGenre(genre *Genre) {
	if genre == nil || movie.IsTaggedBy(genre) {
		return
	}
	movie.genres = append(movie.genres, genre)
}

// RemoveGenre drops genre. Absent or nil genres are ignored.
func (movie *Movie) RemoveGenre(genre *Genre) {
	if genre == nil {
		return
	}
	if index := slices.IndexFunc(movie.genres, genre.Equal); index >= 0 {
		movie.genres = slices.Delete(movie.genres, index, index+1)
	}
}

// IsTagged reports whether the movie carries at least one genre.
func (movie *Movie) IsTagged() bool { return len(movie.genres) > 0 }

// IsTaggedBy reports whether an equal genre is applied to the movie.
func (movie *Movie) IsTaggedBy(genre *Genre) bool {
	return slices.ContainsFunc(movie.genres, genre.Equal)
}

// # Reviews

// Reviews returns the reviews in submission order.
func (movie *Movie) Reviews() []*Review { return slices.Clone(movie.reviews) }

// AddReview appends review. The list is append-only.
func (movie *Movie) AddReview(review *Review) {
	if review == nil {
		return
	}
	movie.reviews = append(movie.reviews, review)
}

// HasReview reports whether an equal review is attached to the movie.
func (movie *Movie) HasReview(review *Review) bool {
	return slices.ContainsFunc(movie.reviews, review.Equal)
}

// # Identity & Ordering

// Equal reports whether both movies share title and release year.
func (movie *Movie) Equal(other *Movie) bool {
	if movie == nil || other == nil {
		return movie == other
	}
	return equalPtr(movie.title, other.title) && equalPtr(movie.releaseYear, other.releaseYear)
}

// String renders the movie as "<Movie title, year>".
func (movie *Movie) String() string {
	return fmt.Sprintf("<Movie %s, %s>", describe(movie.title), describe(movie.releaseYear))
}

// CompareMovies orders movies by title, then by release year.
func CompareMovies(a, b *Movie) int {
	if c := compareOptional(a.title, b.title); c != 0 {
		return c
	}
	return compareOptional(a.releaseYear, b.releaseYear)
}
