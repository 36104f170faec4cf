// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dataset_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/platform/dataset"
	"github.com/taibuivan/flix/internal/platform/dataset/datasettest"
	"github.com/taibuivan/flix/internal/platform/sec"
)

/*
TestLoader_Populate checks the record counts of the reference fixture.
*/
func TestLoader_Populate(t *testing.T) {
	repo := datasettest.Repository(t)

	assert.Equal(t, 13, repo.GetNumberOfMovies())
	assert.Len(t, repo.GetGenres(), 5)
	assert.Len(t, repo.GetUsers(), 3)
	assert.Len(t, repo.GetReviews(), 4)
	assert.Len(t, repo.GetActors(), 4)
}

/*
TestLoader_GenresInFirstSeenOrder verifies genres are created in the order
they first appear in movies.csv.
*/
func TestLoader_GenresInFirstSeenOrder(t *testing.T) {
	repo := datasettest.Repository(t)

	var names []string
	for _, genre := range repo.GetGenres() {
		names = append(names, *genre.Name())
	}
	assert.Equal(t, []string{"R", "Genre 1", "Genre 2", "Genre 3", "Movie with actors[test]"}, names)
}

/*
TestLoader_PasswordsAreHashed ensures plain-text passwords never reach the repository.
*/
func TestLoader_PasswordsAreHashed(t *testing.T) {
	repo := datasettest.Repository(t)

	user := repo.GetUser("fmercury")
	require.NotNil(t, user)
	require.NotNil(t, user.Password())

	assert.NotEqual(t, "8734gfe2058v", *user.Password())
	assert.True(t, sec.CheckPasswordHash("8734gfe2058v", *user.Password()))
}

/*
TestLoader_ReviewsAreAttached checks loaded reviews satisfy the attachment invariant.
*/
func TestLoader_ReviewsAreAttached(t *testing.T) {
	repo := datasettest.Repository(t)

	for _, review := range repo.GetReviews() {
		assert.True(t, review.Movie().HasReview(review))
		assert.True(t, review.User().HasReview(review))
	}
	assert.Len(t, repo.GetMovie(1).Reviews(), 4)
}

/*
TestLoader_ActorColleagues verifies colleague edges derived from shared credits.
*/
func TestLoader_ActorColleagues(t *testing.T) {
	repo := datasettest.Repository(t)

	evans := repo.GetActor("Chris Evans")
	downey := repo.GetActor("Robert Downey Jr.")
	jackman := repo.GetActor("Hugh Jackman")
	require.NotNil(t, evans)
	require.NotNil(t, downey)
	require.NotNil(t, jackman)

	assert.True(t, evans.WorkedWith(downey))
	assert.True(t, downey.WorkedWith(evans))
	assert.Empty(t, jackman.Colleagues())
	assert.NoError(t, catalog.VerifyColleagues(repo.GetActors()...))
}

/*
TestLoader_Failures covers broken input sets.
*/
func TestLoader_Failures(t *testing.T) {
	header := map[string]string{
		dataset.MoviesFile:  "id,title,year,description,hyperlink,image_hyperlink,genre\n",
		dataset.UsersFile:   "id,username,password\n",
		dataset.ReviewsFile: "id,user,movie,rating,review,timestamp\n",
		dataset.ActorsFile:  "id,name,description,hyperlink,image_hyperlink,movies\n",
	}
	validMovie := "1,The Godfather,1972,desc,link,image,Drama\n"

	tests := []struct {
		name  string
		files map[string]string
	}{
		{"missing_file", map[string]string{dataset.MoviesFile: header[dataset.MoviesFile]}},
		{"invalid_year", map[string]string{
			dataset.MoviesFile:  header[dataset.MoviesFile] + "1,Title,nineteen,d,h,i,Drama\n",
			dataset.UsersFile:   header[dataset.UsersFile],
			dataset.ReviewsFile: header[dataset.ReviewsFile],
			dataset.ActorsFile:  header[dataset.ActorsFile],
		}},
		{"review_for_unknown_user", map[string]string{
			dataset.MoviesFile:  header[dataset.MoviesFile] + validMovie,
			dataset.UsersFile:   header[dataset.UsersFile],
			dataset.ReviewsFile: header[dataset.ReviewsFile] + "1,9,1,5,text,2020-02-28 14:31:26\n",
			dataset.ActorsFile:  header[dataset.ActorsFile],
		}},
		{"actor_for_unknown_movie", map[string]string{
			dataset.MoviesFile:  header[dataset.MoviesFile] + validMovie,
			dataset.UsersFile:   header[dataset.UsersFile],
			dataset.ReviewsFile: header[dataset.ReviewsFile],
			dataset.ActorsFile:  header[dataset.ActorsFile] + "1,Al Pacino,d,h,i,42\n",
		}},
		{"duplicate_actor_credit", map[string]string{
			dataset.MoviesFile:  header[dataset.MoviesFile] + validMovie,
			dataset.UsersFile:   header[dataset.UsersFile],
			dataset.ReviewsFile: header[dataset.ReviewsFile],
			dataset.ActorsFile:  header[dataset.ActorsFile] + "1,Al Pacino,d,h,i,1,1\n",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for name, content := range tt.files {
				fsys[name] = &fstest.MapFile{Data: []byte(content)}
			}

			loader := dataset.NewLoader(fsys, catalog.NewMemoryRepository(), datasettest.Hasher, datasettest.DiscardLogger())
			assert.Error(t, loader.Populate(context.Background()))
		})
	}
}

/*
TestLoader_CancelledContext stops before reading anything.
*/
func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := catalog.NewMemoryRepository()
	loader := dataset.NewLoader(datasettest.FS(), repo, datasettest.Hasher, datasettest.DiscardLogger())

	err := loader.Populate(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, repo.GetNumberOfMovies())
}
