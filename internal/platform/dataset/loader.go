// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dataset bulk-loads the catalogue from CSV files at process start.

Four record sets are read from a directory (any [fs.FS]):

  - movies.csv   : id, title, year, description, hyperlink, image_hyperlink, genre...
  - users.csv    : id, username, password
  - comments.csv : id, user_id, movie_id, rating, review, timestamp
  - actors.csv   : id, name, description, hyperlink, image_hyperlink, movie_id...

The four files are read and parsed concurrently. Records are then applied in
a fixed order: movies & genres, users, reviews, actors. Reviews and actors
reference movies (and users) by their row id, so an unknown reference aborts
the load.
*/
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/flix/internal/core/catalog"
)

// # File Layout

const (
	MoviesFile  = "movies.csv"
	UsersFile   = "users.csv"
	ReviewsFile = "comments.csv"
	ActorsFile  = "actors.csv"

	// movieColumns is the number of fixed columns before the genre list.
	movieColumns = 6
	// actorColumns is the number of fixed columns before the movie id list.
	actorColumns = 5
)

// timestampLayouts are tried in order when parsing review timestamps.
var timestampLayouts = []string{
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.DateOnly,
}

// Hasher turns a plain-text password into the stored hash.
type Hasher func(plainText string) (string, error)

// Loader populates a [catalog.Repository] from CSV files.
type Loader struct {
	fsys   fs.FS
	repo   catalog.Repository
	hasher Hasher
	logger *slog.Logger

	rows       map[string][][]string
	usersByRow map[string]*catalog.User
}

// NewLoader constructs a [Loader] reading from fsys.
func NewLoader(fsys fs.FS, repo catalog.Repository, hasher Hasher, logger *slog.Logger) *Loader {
	return &Loader{
		fsys:   fsys,
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// # Population

/*
Populate loads every record set.

Parameters:
  - context: cancels the file reads and is checked between stages

Returns:
  - error: the first read, parse or reference failure
*/
func (loader *Loader) Populate(context context.Context) error {
	if err := loader.readAll(context); err != nil {
		return err
	}

	// Row ids of users.csv are only meaningful while loading comments.csv.
	loader.usersByRow = make(map[string]*catalog.User)
	defer func() {
		loader.rows = nil
		loader.usersByRow = nil
	}()

	stages := []struct {
		name string
		run  func() error
	}{
		{"movies", loader.loadMoviesAndGenres},
		{"users", loader.loadUsers},
		{"reviews", loader.loadReviews},
		{"actors", loader.loadActors},
	}

	for _, stage := range stages {
		if err := context.Err(); err != nil {
			return fmt.Errorf("dataset: %s: %w", stage.name, err)
		}
		if err := stage.run(); err != nil {
			return fmt.Errorf("dataset: %s: %w", stage.name, err)
		}
	}

	loader.logger.Info("dataset_loaded",
		slog.Int("movies", loader.repo.GetNumberOfMovies()),
		slog.Int("genres", len(loader.repo.GetGenres())),
		slog.Int("users", len(loader.repo.GetUsers())),
		slog.Int("reviews", len(loader.repo.GetReviews())),
		slog.Int("actors", len(loader.repo.GetActors())),
	)
	return nil
}

// readAll parses the four files in parallel into loader.rows.
func (loader *Loader) readAll(context context.Context) error {
	names := []string{MoviesFile, UsersFile, ReviewsFile, ActorsFile}
	parsed := make([][][]string, len(names))

	group, groupContext := errgroup.WithContext(context)
	for i, name := range names {
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			rows, err := loader.read(name)
			if err != nil {
				return err
			}
			parsed[i] = rows
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	loader.rows = make(map[string][][]string, len(names))
	for i, name := range names {
		loader.rows[name] = parsed[i]
	}
	return nil
}

func (loader *Loader) loadMoviesAndGenres() error {
	rows := loader.rows[MoviesFile]

	// Genres are created in first-seen order once all movies exist.
	genreOrder := make([]string, 0)
	genreMovies := make(map[string][]int)

	for _, row := range rows {
		if len(row) < movieColumns {
			return fmt.Errorf("%s: expected at least %d columns, got %d", MoviesFile, movieColumns, len(row))
		}

		movieID, err := strconv.Atoi(row[0])
		if err != nil {
			return fmt.Errorf("%s: invalid id %q: %w", MoviesFile, row[0], err)
		}
		year, err := strconv.Atoi(row[2])
		if err != nil {
			return fmt.Errorf("%s: invalid year %q: %w", MoviesFile, row[2], err)
		}

		for _, genreName := range row[movieColumns:] {
			if genreName == "" {
				continue
			}
			if _, seen := genreMovies[genreName]; !seen {
				genreOrder = append(genreOrder, genreName)
			}
			genreMovies[genreName] = append(genreMovies[genreName], movieID)
		}

		loader.repo.AddMovie(catalog.NewMovie(movieID, row[1], year, row[3], row[4], row[5]))
	}

	for _, genreName := range genreOrder {
		genre := catalog.NewGenre(genreName)
		for _, movieID := range genreMovies[genreName] {
			if err := catalog.AssociateGenre(loader.repo.GetMovie(movieID), genre); err != nil {
				return fmt.Errorf("%s: genre %q on movie %d: %w", MoviesFile, genreName, movieID, err)
			}
		}
		loader.repo.AddGenre(genre)
	}
	return nil
}

func (loader *Loader) loadUsers() error {
	rows := loader.rows[UsersFile]

	for _, row := range rows {
		if len(row) < 3 {
			return fmt.Errorf("%s: expected 3 columns, got %d", UsersFile, len(row))
		}

		hash, err := loader.hasher(row[2])
		if err != nil {
			return fmt.Errorf("%s: hash password for %q: %w", UsersFile, row[1], err)
		}

		user := catalog.NewUser(row[1], hash)
		loader.repo.AddUser(user)
		loader.usersByRow[row[0]] = user
	}
	return nil
}

func (loader *Loader) loadReviews() error {
	rows := loader.rows[ReviewsFile]

	for _, row := range rows {
		if len(row) < 6 {
			return fmt.Errorf("%s: expected 6 columns, got %d", ReviewsFile, len(row))
		}

		user, found := loader.usersByRow[row[1]]
		if !found {
			return fmt.Errorf("%s: unknown user id %q", ReviewsFile, row[1])
		}
		movieID, err := strconv.Atoi(row[2])
		if err != nil {
			return fmt.Errorf("%s: invalid movie id %q: %w", ReviewsFile, row[2], err)
		}
		movie := loader.repo.GetMovie(movieID)
		if movie == nil {
			return fmt.Errorf("%s: unknown movie id %d", ReviewsFile, movieID)
		}
		rating, err := strconv.Atoi(row[3])
		if err != nil {
			return fmt.Errorf("%s: invalid rating %q: %w", ReviewsFile, row[3], err)
		}
		timestamp, err := parseTimestamp(row[5])
		if err != nil {
			return fmt.Errorf("%s: %w", ReviewsFile, err)
		}

		review := catalog.CreateReview(row[4], rating, movie, user, timestamp)
		if err := loader.repo.AddReview(review); err != nil {
			return err
		}
	}
	return nil
}

func (loader *Loader) loadActors() error {
	rows := loader.rows[ActorsFile]

	for _, row := range rows {
		if len(row) < actorColumns {
			return fmt.Errorf("%s: expected at least %d columns, got %d", ActorsFile, actorColumns, len(row))
		}

		actor := catalog.NewActor(row[1], row[2], row[3], row[4])
		for _, rawID := range row[actorColumns:] {
			if rawID == "" {
				continue
			}
			movieID, err := strconv.Atoi(rawID)
			if err != nil {
				return fmt.Errorf("%s: invalid movie id %q: %w", ActorsFile, rawID, err)
			}
			movie := loader.repo.GetMovie(movieID)
			if movie == nil {
				return fmt.Errorf("%s: unknown movie id %d for %s", ActorsFile, movieID, actor)
			}
			if err := catalog.AssociateActor(movie, actor); err != nil {
				return fmt.Errorf("%s: %w", ActorsFile, err)
			}
		}
		loader.repo.AddActor(actor)
	}
	return nil
}

// # CSV Helpers

// read returns every data row of name, header skipped and cells trimmed.
func (loader *Loader) read(name string) ([][]string, error) {
	file, err := loader.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	return parseRows(file)
}

func parseRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if len(record) == 0 || (len(record) == 1 && record[0] == "") {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}
