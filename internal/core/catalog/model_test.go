// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flix/internal/core/catalog"
)

/*
TestMovie_Normalisation covers the soft validation of movie identity fields.
*/
func TestMovie_Normalisation(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		year      int
		wantTitle *string
		wantYear  *int
	}{
		{"valid", "  Moana  ", 2016, ptr("Moana"), ptr(2016)},
		{"blank_title", "   ", 2016, nil, ptr(2016)},
		{"year_too_early", "Moana", 1899, ptr("Moana"), nil},
		{"lower_bound_year", "Moana", catalog.MinReleaseYear, ptr("Moana"), ptr(catalog.MinReleaseYear)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie := catalog.NewMovie(1, tt.title, tt.year, "", "", "")
			assert.Equal(t, tt.wantTitle, movie.Title())
			assert.Equal(t, tt.wantYear, movie.ReleaseYear())
			assert.Equal(t, tt.wantTitle != nil && tt.wantYear != nil, movie.IsValid())
		})
	}
}

/*
TestMovie_RuntimeMinutes rejects non-positive runtimes and keeps the previous value.
*/
func TestMovie_RuntimeMinutes(t *testing.T) {
	movie := catalog.NewMovie(1, "Moana", 2016, "", "", "")
	assert.Nil(t, movie.RuntimeMinutes())

	require.NoError(t, movie.SetRuntimeMinutes(107))
	assert.Equal(t, ptr(107), movie.RuntimeMinutes())

	for _, invalid := range []int{0, -1} {
		err := movie.SetRuntimeMinutes(invalid)
		assert.ErrorIs(t, err, catalog.ErrRuntimeOutOfRange)
		assert.Equal(t, ptr(107), movie.RuntimeMinutes())
	}
}

/*
TestMovie_Identity checks equality, ordering and the string form.
*/
func TestMovie_Identity(t *testing.T) {
	a := catalog.NewMovie(1, "Moana", 2016, "", "", "")
	b := catalog.NewMovie(2, "Moana", 2016, "other", "", "")
	c := catalog.NewMovie(3, "Moana", 1999, "", "", "")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "<Movie Moana, 2016>", a.String())
	assert.Equal(t, "<Movie -, ->", catalog.NewMovie(4, "", 0, "", "", "").String())

	up := catalog.NewMovie(5, "Up", 2009, "", "", "")
	movies := []*catalog.Movie{up, a, c}
	slices.SortFunc(movies, catalog.CompareMovies)
	assert.Equal(t, []*catalog.Movie{c, a, up}, movies)
}

/*
TestMovie_GenresAndActors covers the list mutators on a movie.
*/
func TestMovie_GenresAndActors(t *testing.T) {
	movie := catalog.NewMovie(1, "Moana", 2016, "", "", "")
	genre := catalog.NewGenre("Animation")
	actor := catalog.NewActor("Auli'i Cravalho", "", "", "")

	movie.AddGenre(genre)
	movie.AddGenre(catalog.NewGenre("Animation"))
	movie.AddGenre(nil)
	assert.Len(t, movie.Genres(), 1)
	assert.True(t, movie.IsTagged())
	assert.True(t, movie.IsTaggedBy(genre))

	movie.RemoveGenre(catalog.NewGenre("Comedy"))
	movie.RemoveGenre(genre)
	assert.False(t, movie.IsTagged())

	movie.AddActor(actor)
	movie.AddActor(actor)
	assert.Len(t, movie.Actors(), 1)
	movie.RemoveActor(actor)
	assert.Empty(t, movie.Actors())
}

/*
TestUser_Normalisation lower-cases and trims usernames.
*/
func TestUser_Normalisation(t *testing.T) {
	user := catalog.NewUser("  Dave  ", "hash")

	require.NotNil(t, user.Username())
	assert.Equal(t, "dave", *user.Username())
	assert.Equal(t, "dave", catalog.NormalizeUsername(" DAVE"))
	assert.Equal(t, "<User dave>", user.String())
	assert.True(t, user.Equal(catalog.NewUser("dave", "other")))

	assert.Nil(t, catalog.NewUser(" ", "hash").Username())
	assert.Nil(t, catalog.NewUser("dave", "").Password())
}

/*
TestUser_WatchMovie accumulates runtime minutes of watched movies.
*/
func TestUser_WatchMovie(t *testing.T) {
	user := catalog.NewUser("dave", "hash")
	timed := catalog.NewMovie(1, "Moana", 2016, "", "", "")
	require.NoError(t, timed.SetRuntimeMinutes(107))
	untimed := catalog.NewMovie(2, "Up", 2009, "", "", "")

	user.WatchMovie(timed)
	user.WatchMovie(untimed)
	user.WatchMovie(nil)

	assert.Len(t, user.WatchedMovies(), 2)
	assert.Equal(t, 107, user.MinutesWatched())
}

/*
TestWatchList covers add, remove, selection and iteration.
*/
func TestWatchList(t *testing.T) {
	list := catalog.NewWatchList()
	moana := catalog.NewMovie(1, "Moana", 2016, "", "", "")
	up := catalog.NewMovie(2, "Up", 2009, "", "", "")

	assert.Nil(t, list.First())

	list.Add(moana)
	list.Add(up)
	list.Add(catalog.NewMovie(3, "Moana", 2016, "", "", ""))
	assert.Equal(t, 2, list.Size())
	assert.Equal(t, moana, list.First())
	assert.Equal(t, up, list.Select(1))
	assert.Nil(t, list.Select(2))
	assert.Nil(t, list.Select(-1))

	var iterated []*catalog.Movie
	for movie := range list.All() {
		iterated = append(iterated, movie)
	}
	assert.Equal(t, list.Movies(), iterated)

	list.Remove(moana)
	assert.Equal(t, []*catalog.Movie{up}, list.Movies())
}

/*
TestReview_Normalisation nulls out-of-range ratings and invalid text.
*/
func TestReview_Normalisation(t *testing.T) {
	movie := catalog.NewMovie(1, "Moana", 2016, "", "", "")
	now := time.Date(2020, 2, 28, 14, 31, 26, 0, time.UTC)

	tests := []struct {
		name       string
		text       string
		rating     int
		wantText   *string
		wantRating *int
	}{
		{"valid", "Great", 8, ptr("Great"), ptr(8)},
		{"rating_too_low", "Great", 0, ptr("Great"), nil},
		{"rating_too_high", "Great", 11, ptr("Great"), nil},
		{"invalid_utf8", "\xff\xfe", 5, nil, ptr(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := catalog.NewReview(movie, nil, tt.text, tt.rating, now)
			assert.Equal(t, tt.wantText, review.Text())
			assert.Equal(t, tt.wantRating, review.Rating())
		})
	}

	review := catalog.NewReview(movie, nil, "Great", 8, now)
	assert.Equal(t, "<Review of movie <Movie Moana, 2016>, rating = 8, timestamp = 2020-02-28 14:31:26>", review.String())
}

/*
TestDirectorAndGenre_Identity checks name-based identity of the simple classifiers.
*/
func TestDirectorAndGenre_Identity(t *testing.T) {
	assert.True(t, catalog.NewDirector(" Taika Waititi ").Equal(catalog.NewDirector("Taika Waititi")))
	assert.Nil(t, catalog.NewDirector("").FullName())
	assert.Equal(t, "<Director Taika Waititi>", catalog.NewDirector("Taika Waititi").String())

	assert.True(t, catalog.NewGenre("Comedy").Equal(catalog.NewGenre(" Comedy")))
	assert.Equal(t, "<Genre Comedy>", catalog.NewGenre("Comedy").String())
	assert.Negative(t, catalog.CompareGenres(catalog.NewGenre("Action"), catalog.NewGenre("Comedy")))
}

func ptr[T any](value T) *T { return &value }
