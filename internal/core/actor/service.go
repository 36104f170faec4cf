// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package actor serves actor profiles: the actor, their colleagues and
// their filmography.
package actor

import (
	"context"
	"slices"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/core/movie"
	"github.com/taibuivan/flix/internal/platform/apperr"
	"github.com/taibuivan/flix/pkg/pagination"
	"github.com/taibuivan/flix/pkg/pointer"
	"github.com/taibuivan/flix/pkg/slice"
)

// Page is the full profile of one actor.
type Page struct {
	Actor      movie.ActorDTO   `json:"actor"`
	Colleagues []movie.ActorDTO `json:"colleagues"`
	Movies     []movie.MovieDTO `json:"movies"`
}

type Service struct {
	repository catalog.Repository
}

func NewService(repository catalog.Repository) *Service {
	return &Service{repository: repository}
}

// GetActor returns one actor, or NotFound("Actor").
func (service *Service) GetActor(_ context.Context, name string) (movie.ActorDTO, error) {
	actor := service.repository.GetActor(name)
	if actor == nil {
		return movie.ActorDTO{}, apperr.NotFound("Actor")
	}
	return movie.ToActorDTO(actor), nil
}

/*
GetActorPage returns the actor with their colleagues (sorted by name) and
the movies they are credited on (ascending by id).

Returns:
  - Page: the profile
  - error: NotFound("Actor") if the name is unknown
*/
func (service *Service) GetActorPage(_ context.Context, name string) (Page, error) {
	actor := service.repository.GetActor(name)
	if actor == nil {
		return Page{}, apperr.NotFound("Actor")
	}

	dto := movie.ToActorDTO(actor)
	return Page{
		Actor:      dto,
		Colleagues: movie.ToActorDTOs(actor.Colleagues()),
		Movies:     movie.ToMovieDTOs(service.repository.GetMoviesByID(dto.ActedMovies)),
	}, nil
}

// GetActorNames returns every actor name in insertion order.
func (service *Service) GetActorNames(_ context.Context) []string {
	return slice.Map(service.repository.GetActors(), func(actor *catalog.Actor) string {
		return pointer.Val(actor.FullName())
	})
}

// ListActors returns one page of actors sorted by name.
func (service *Service) ListActors(_ context.Context, page pagination.Params) ([]movie.ActorDTO, pagination.Meta) {
	actors := service.repository.GetActors()
	slices.SortFunc(actors, catalog.CompareActors)

	start, end := page.Bounds(len(actors))
	return movie.ToActorDTOs(actors[start:end]), pagination.NewMeta(page.Page, page.Limit, len(actors))
}
