// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// MemoryRepository is a process-local [Repository].
//
// # Concurrency
//
// The collections and the id index are guarded by a read-write lock. Entities
// handed out by the repository are not; callers that mutate the entity graph
// must serialise those mutations themselves (see middleware.Serialize).
type MemoryRepository struct {
	mu          sync.RWMutex
	movies      []*Movie
	moviesIndex map[int]*Movie
	genres      []*Genre
	actors      []*Actor
	directors   []*Director
	users       []*User
	reviews     []*Review
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		moviesIndex: make(map[int]*Movie),
	}
}

var _ Repository = (*MemoryRepository)(nil)

// # Insertion

func (repository *MemoryRepository) AddMovie(movie *Movie) {
	if movie == nil {
		return
	}
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.movies = append(repository.movies, movie)
	repository.moviesIndex[movie.id] = movie
}

func (repository *MemoryRepository) AddGenre(genre *Genre) {
	if genre == nil {
		return
	}
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.genres = append(repository.genres, genre)
}

func (repository *MemoryRepository) AddActor(actor *Actor) {
	if actor == nil {
		return
	}
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.actors = append(repository.actors, actor)
}

func (repository *MemoryRepository) AddDirector(director *Director) {
	if director == nil {
		return
	}
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.directors = append(repository.directors, director)
}

func (repository *MemoryRepository) AddUser(user *User) {
	if user == nil {
		return
	}
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.users = append(repository.users, user)
}

// AddReview verifies the bidirectional attachment and then stores review.
func (repository *MemoryRepository) AddReview(review *Review) error {
	if review == nil {
		return fmt.Errorf("add review: %w", ErrReviewNotAttached)
	}
	if review.user == nil || !review.user.HasReview(review) {
		return fmt.Errorf("add review: not attached to a user: %w", ErrReviewNotAttached)
	}
	if review.movie == nil || !review.movie.HasReview(review) {
		return fmt.Errorf("add review: not attached to a movie: %w", ErrReviewNotAttached)
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.reviews = append(repository.reviews, review)
	return nil
}

// # Movies

func (repository *MemoryRepository) GetMovie(id int) *Movie {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return repository.moviesIndex[id]
}

func (repository *MemoryRepository) GetMovies() []*Movie {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return slices.Clone(repository.movies)
}

func (repository *MemoryRepository) GetNumberOfMovies() int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return len(repository.movies)
}

func (repository *MemoryRepository) GetMoviesByDate(year int) []*Movie {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	matching := make([]*Movie, 0)
	for _, movie := range repository.movies {
		if movie.releaseYear != nil && *movie.releaseYear == year {
			matching = append(matching, movie)
		}
	}
	return matching
}

func (repository *MemoryRepository) GetDateOfPreviousMovie(movie *Movie) *int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index := repository.movieIndex(movie)
	if index < 0 {
		return nil
	}
	for i := index - 1; i >= 0; i-- {
		stored := repository.movies[i].releaseYear
		if stored != nil && *stored < *movie.releaseYear {
			return clonePtr(stored)
		}
	}
	return nil
}

func (repository *MemoryRepository) GetDateOfNextMovie(movie *Movie) *int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index := repository.movieIndex(movie)
	if index < 0 {
		return nil
	}
	for i := index + 1; i < len(repository.movies); i++ {
		stored := repository.movies[i].releaseYear
		if stored != nil && *stored > *movie.releaseYear {
			return clonePtr(stored)
		}
	}
	return nil
}

func (repository *MemoryRepository) GetFirstMovie() *Movie {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	if len(repository.movies) == 0 {
		return nil
	}
	return repository.movies[0]
}

func (repository *MemoryRepository) GetLastMovie() *Movie {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	if len(repository.movies) == 0 {
		return nil
	}
	return repository.movies[len(repository.movies)-1]
}

func (repository *MemoryRepository) GetMovieIDsForGenre(genreName string) []int {
	genre := repository.GetGenre(genreName)
	if genre == nil {
		return []int{}
	}

	movieIDs := make([]int, 0, len(genre.movies))
	for _, movie := range genre.movies {
		movieIDs = append(movieIDs, movie.id)
	}
	return movieIDs
}

func (repository *MemoryRepository) GetMoviesByID(ids []int) []*Movie {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	existing := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, found := repository.moviesIndex[id]; found {
			existing = append(existing, id)
		}
	}
	slices.Sort(existing)
	existing = slices.Compact(existing)

	movies := make([]*Movie, 0, len(existing))
	for _, id := range existing {
		movies = append(movies, repository.moviesIndex[id])
	}
	return movies
}

// movieIndex locates movie in insertion order. Both the identity and the
// release year must match. It returns -1 when absent. Callers hold the lock.
func (repository *MemoryRepository) movieIndex(movie *Movie) int {
	if movie == nil || movie.releaseYear == nil {
		return -1
	}
	index := slices.IndexFunc(repository.movies, movie.Equal)
	if index < 0 || !equalPtr(repository.movies[index].releaseYear, movie.releaseYear) {
		return -1
	}
	return index
}

// # People & Classifiers

// GetUser folds username the same way [NewUser] does before matching.
func (repository *MemoryRepository) GetUser(username string) *User {
	key := normalizeUsername(username)
	if key == nil {
		return nil
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return findFirst(repository.users, func(user *User) bool { return equalPtr(user.username, key) })
}

func (repository *MemoryRepository) GetActor(name string) *Actor {
	key := strings.TrimSpace(name)

	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return findFirst(repository.actors, func(actor *Actor) bool { return equalPtr(actor.fullName, &key) })
}

func (repository *MemoryRepository) GetDirector(name string) *Director {
	key := strings.TrimSpace(name)

	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return findFirst(repository.directors, func(director *Director) bool { return equalPtr(director.fullName, &key) })
}

// GetGenre matches the genre name exactly.
func (repository *MemoryRepository) GetGenre(name string) *Genre {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return findFirst(repository.genres, func(genre *Genre) bool { return equalPtr(genre.name, &name) })
}

func (repository *MemoryRepository) GetGenres() []*Genre {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return slices.Clone(repository.genres)
}

func (repository *MemoryRepository) GetActors() []*Actor {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return slices.Clone(repository.actors)
}

func (repository *MemoryRepository) GetUsers() []*User {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return slices.Clone(repository.users)
}

func (repository *MemoryRepository) GetReviews() []*Review {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return slices.Clone(repository.reviews)
}

func findFirst[T any](items []*T, match func(*T) bool) *T {
	if index := slices.IndexFunc(items, match); index >= 0 {
		return items[index]
	}
	return nil
}
