// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/platform/dataset/datasettest"
)

func movieIDs(movies []*catalog.Movie) []int {
	ids := make([]int, 0, len(movies))
	for _, movie := range movies {
		ids = append(ids, movie.ID())
	}
	return ids
}

/*
TestMemoryRepository_AddMovie round-trips the movie count and id lookup.
*/
func TestMemoryRepository_AddMovie(t *testing.T) {
	repo := catalog.NewMemoryRepository()
	assert.Nil(t, repo.GetFirstMovie())
	assert.Nil(t, repo.GetLastMovie())

	for i := 1; i <= 7; i++ {
		repo.AddMovie(catalog.NewMovie(i, fmt.Sprintf("Movie %d", i), 2000+i, "", "", ""))
	}
	repo.AddMovie(nil)

	assert.Equal(t, 7, repo.GetNumberOfMovies())
	assert.Equal(t, "Movie 3", *repo.GetMovie(3).Title())
	assert.Nil(t, repo.GetMovie(42))
	assert.Equal(t, 1, repo.GetFirstMovie().ID())
	assert.Equal(t, 7, repo.GetLastMovie().ID())
}

/*
TestMemoryRepository_AdjacentDates walks release years in insertion order.
*/
func TestMemoryRepository_AdjacentDates(t *testing.T) {
	repo := catalog.NewMemoryRepository()
	years := []int{1972, 1993, 1994, 1994, 1994, 1999}
	for i, year := range years {
		repo.AddMovie(catalog.NewMovie(i+1, fmt.Sprintf("Movie %d", i+1), year, "", "", ""))
	}

	last := repo.GetMovie(6)
	assert.Equal(t, ptr(1994), repo.GetDateOfPreviousMovie(last))
	assert.Nil(t, repo.GetDateOfNextMovie(last))

	first := repo.GetMovie(1)
	assert.Nil(t, repo.GetDateOfPreviousMovie(first))
	assert.Equal(t, ptr(1993), repo.GetDateOfNextMovie(first))

	middle := repo.GetMovie(4)
	assert.Equal(t, ptr(1993), repo.GetDateOfPreviousMovie(middle))
	assert.Equal(t, ptr(1999), repo.GetDateOfNextMovie(middle))

	stranger := catalog.NewMovie(99, "Stranger", 1980, "", "", "")
	assert.Nil(t, repo.GetDateOfPreviousMovie(stranger))
	assert.Nil(t, repo.GetDateOfNextMovie(stranger))
}

/*
TestMemoryRepository_Fixture checks lookups against the reference catalogue.
*/
func TestMemoryRepository_Fixture(t *testing.T) {
	repo := datasettest.Repository(t)

	t.Run("movie_ids_for_genre", func(t *testing.T) {
		assert.Equal(t, []int{9, 10, 11, 13}, repo.GetMovieIDsForGenre("Movie with actors[test]"))
		assert.Empty(t, repo.GetMovieIDsForGenre("Western"))
	})

	t.Run("movies_by_id", func(t *testing.T) {
		assert.Equal(t, []int{9}, movieIDs(repo.GetMoviesByID([]int{0, 9})))
		assert.Empty(t, repo.GetMoviesByID([]int{0, 100}))
		assert.Equal(t, []int{2, 5, 9}, movieIDs(repo.GetMoviesByID([]int{9, 2, 5, 9})))
	})

	t.Run("movies_by_date", func(t *testing.T) {
		assert.Equal(t, []int{6, 7}, movieIDs(repo.GetMoviesByDate(1999)))
		assert.Empty(t, repo.GetMoviesByDate(1900))
	})

	t.Run("adjacent_dates", func(t *testing.T) {
		assert.Equal(t, ptr(1994), repo.GetDateOfPreviousMovie(repo.GetMovie(6)))
		assert.Nil(t, repo.GetDateOfPreviousMovie(repo.GetMovie(1)))
		assert.Equal(t, ptr(1993), repo.GetDateOfNextMovie(repo.GetMovie(1)))
		assert.Equal(t, ptr(1999), repo.GetDateOfNextMovie(repo.GetMovie(5)))
		assert.Nil(t, repo.GetDateOfNextMovie(repo.GetMovie(13)))
	})

	t.Run("people", func(t *testing.T) {
		assert.NotNil(t, repo.GetUser("  FMercury "))
		assert.Nil(t, repo.GetUser("nobody"))
		assert.Nil(t, repo.GetUser(""))
		assert.NotNil(t, repo.GetActor(" Hugh Jackman "))
		assert.Nil(t, repo.GetGenre("r"))
		assert.Equal(t, 8, repo.GetGenre("R").NumberOfTaggedMovies())
	})
}

/*
TestMemoryRepository_AddReview refuses reviews that are not attached on both ends.
*/
func TestMemoryRepository_AddReview(t *testing.T) {
	repo := catalog.NewMemoryRepository()
	movie := catalog.NewMovie(1, "Moana", 2016, "", "", "")
	user := catalog.NewUser("dave", "hash")
	repo.AddMovie(movie)
	repo.AddUser(user)
	timestamp := time.Date(2020, 2, 28, 14, 31, 26, 0, time.UTC)

	detached := catalog.NewReview(movie, user, "Nope", 3, timestamp)
	assert.ErrorIs(t, repo.AddReview(detached), catalog.ErrReviewNotAttached)
	assert.ErrorIs(t, repo.AddReview(nil), catalog.ErrReviewNotAttached)

	orphan := catalog.CreateReview("No user", 4, movie, nil, timestamp)
	assert.ErrorIs(t, repo.AddReview(orphan), catalog.ErrReviewNotAttached)

	attached := catalog.CreateReview("Yes", 9, movie, user, timestamp)
	require.NoError(t, repo.AddReview(attached))
	assert.Len(t, repo.GetReviews(), 1)
}

/*
TestMemoryRepository_ConcurrentAccess exercises the lock under -race.
*/
func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	repo := catalog.NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			repo.AddMovie(catalog.NewMovie(id, fmt.Sprintf("Movie %d", id), 2000, "", "", ""))
		}(i)
		go func() {
			defer wg.Done()
			_ = repo.GetMoviesByDate(2000)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, repo.GetNumberOfMovies())
}
