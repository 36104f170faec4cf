// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"time"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/pkg/pointer"
	"github.com/taibuivan/flix/pkg/slice"
	"github.com/taibuivan/flix/pkg/slug"
)

// # Data Transfer Objects
//
// DTOs are flat snapshots of the object graph. Back references are reduced
// to ids or names so that a DTO never recurses.

// MovieDTO is the public view of a movie.
type MovieDTO struct {
	ID             int         `json:"id"`
	Date           *int        `json:"date"`
	Title          *string     `json:"title"`
	Description    string      `json:"description"`
	Hyperlink      string      `json:"hyperlink"`
	ImageHyperlink string      `json:"image_hyperlink"`
	RuntimeMinutes *int        `json:"runtime_minutes,omitempty"`
	Director       *string     `json:"director,omitempty"`
	Actors         []ActorDTO  `json:"actors"`
	Reviews        []ReviewDTO `json:"reviews"`
	Genres         []GenreDTO  `json:"genres"`
}

// ActorDTO is the public view of an actor.
type ActorDTO struct {
	FullName       *string  `json:"full_name"`
	Slug           string   `json:"slug"`
	ActedMovies    []int    `json:"acted_movies"`
	Description    string   `json:"description"`
	Hyperlink      string   `json:"hyperlink"`
	ImageHyperlink string   `json:"image_hyperlink"`
	Colleagues     []string `json:"colleagues"`
}

// GenreDTO is the public view of a genre.
type GenreDTO struct {
	Name           *string `json:"name"`
	Slug           string  `json:"slug"`
	MovieWithGenre []int   `json:"movie_with_genre"`
}

// ReviewDTO is the public view of a review.
type ReviewDTO struct {
	Username   *string   `json:"username"`
	MovieID    int       `json:"movie_id"`
	Rating     *int      `json:"rating"`
	ReviewText *string   `json:"review_text"`
	Timestamp  time.Time `json:"timestamp"`
}

// DatePage is one year of the chronological browse.
type DatePage struct {
	Movies       []MovieDTO `json:"movies"`
	PreviousDate *int       `json:"previous_date"`
	NextDate     *int       `json:"next_date"`
}

// # Conversion

// ToMovieDTO converts movie and everything reachable from it.
func ToMovieDTO(movie *catalog.Movie) MovieDTO {
	dto := MovieDTO{
		ID:             movie.ID(),
		Date:           movie.ReleaseYear(),
		Title:          movie.Title(),
		Description:    movie.Description(),
		Hyperlink:      movie.Hyperlink(),
		ImageHyperlink: movie.ImageHyperlink(),
		RuntimeMinutes: movie.RuntimeMinutes(),
		Actors:         ToActorDTOs(movie.Actors()),
		Reviews:        ToReviewDTOs(movie.Reviews()),
		Genres:         ToGenreDTOs(movie.Genres()),
	}
	if director := movie.Director(); director != nil {
		dto.Director = director.FullName()
	}
	return dto
}

func ToMovieDTOs(movies []*catalog.Movie) []MovieDTO {
	return slice.Map(movies, ToMovieDTO)
}

func ToActorDTO(actor *catalog.Actor) ActorDTO {
	return ActorDTO{
		FullName:       actor.FullName(),
		Slug:           slug.From(pointer.Val(actor.FullName())),
		ActedMovies:    movieIDs(actor.Movies()),
		Description:    actor.Description(),
		Hyperlink:      actor.Hyperlink(),
		ImageHyperlink: actor.ImageHyperlink(),
		Colleagues: slice.Map(actor.Colleagues(), func(colleague *catalog.Actor) string {
			return pointer.Val(colleague.FullName())
		}),
	}
}

func ToActorDTOs(actors []*catalog.Actor) []ActorDTO {
	return slice.Map(actors, ToActorDTO)
}

func ToGenreDTO(genre *catalog.Genre) GenreDTO {
	return GenreDTO{
		Name:           genre.Name(),
		Slug:           slug.From(pointer.Val(genre.Name())),
		MovieWithGenre: movieIDs(genre.Movies()),
	}
}

func ToGenreDTOs(genres []*catalog.Genre) []GenreDTO {
	return slice.Map(genres, ToGenreDTO)
}

// ToReviewDTO converts review. Detached ends render as a nil username or a
// zero movie id.
func ToReviewDTO(review *catalog.Review) ReviewDTO {
	dto := ReviewDTO{
		Rating:     review.Rating(),
		ReviewText: review.Text(),
		Timestamp:  review.Timestamp(),
	}
	if user := review.User(); user != nil {
		dto.Username = user.Username()
	}
	if movie := review.Movie(); movie != nil {
		dto.MovieID = movie.ID()
	}
	return dto
}

func ToReviewDTOs(reviews []*catalog.Review) []ReviewDTO {
	return slice.Map(reviews, ToReviewDTO)
}

func movieIDs(movies []*catalog.Movie) []int {
	return slice.Map(movies, (*catalog.Movie).ID)
}
