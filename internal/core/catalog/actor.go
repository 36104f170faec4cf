// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"slices"
)

// Actor is a performer credited on one or more movies.
//
// Colleagues form an undirected graph: every edge is stored on both actors,
// keyed by the colleague's name.
type Actor struct {
	fullName       *string
	description    string
	hyperlink      string
	imageHyperlink string
	movies         []*Movie
	colleagues     map[string]*Actor
}

// NewActor builds an actor. A blank name leaves the name nil.
func NewActor(fullName, description, hyperlink, imageHyperlink string) *Actor {
	return &Actor{
		fullName:       normalizeName(fullName),
		description:    description,
		hyperlink:      hyperlink,
		imageHyperlink: imageHyperlink,
		colleagues:     make(map[string]*Actor),
	}
}

// FullName returns the trimmed name, or nil if it was blank.
func (actor *Actor) FullName() *string { return clonePtr(actor.fullName) }

func (actor *Actor) Description() string { return actor.description }

func (actor *Actor) Hyperlink() string { return actor.hyperlink }

func (actor *Actor) ImageHyperlink() string { return actor.imageHyperlink }

// # Filmography

// Movies returns the acted movies in credit order.
func (actor *Actor) Movies() []*Movie { return slices.Clone(actor.movies) }

// AddMovie appends movie to the filmography. Nil movies are ignored.
func (actor *Actor) AddMovie(movie *Movie) {
	if movie == nil {
		return
	}
	actor.movies = append(actor.movies, movie)
}

// IsAppliedTo reports whether the actor already holds a credit on movie.
func (actor *Actor) IsAppliedTo(movie *Movie) bool {
	return slices.ContainsFunc(actor.movies, movie.Equal)
}

// # Colleagues

// AddColleague links both actors. Nil, self and existing edges are ignored.
//
// Colleagues are keyed by name, so an actor without a name never gains or
// becomes a colleague.
func (actor *Actor) AddColleague(colleague *Actor) {
	if colleague == nil || actor.fullName == nil || colleague.fullName == nil {
		return
	}
	if colleague.Equal(actor) || actor.WorkedWith(colleague) {
		return
	}
	actor.colleagues[colleague.key()] = colleague
	colleague.colleagues[actor.key()] = actor
}

// WorkedWith reports whether colleague shares a movie credit with the actor.
func (actor *Actor) WorkedWith(colleague *Actor) bool {
	if colleague == nil || colleague.fullName == nil {
		return false
	}
	_, found := actor.colleagues[colleague.key()]
	return found
}

// Colleagues returns the colleague set sorted by name.
func (actor *Actor) Colleagues() []*Actor {
	result := make([]*Actor, 0, len(actor.colleagues))
	for _, colleague := range actor.colleagues {
		result = append(result, colleague)
	}
	slices.SortFunc(result, CompareActors)
	return result
}

// VerifyColleagues checks that every colleague edge among actors is stored on
// both ends. It returns an error wrapping [ErrColleagueAsymmetric] for the
// first one-way edge found.
func VerifyColleagues(actors ...*Actor) error {
	for _, actor := range actors {
		if actor == nil {
			continue
		}
		for _, colleague := range actor.colleagues {
			if !colleague.WorkedWith(actor) {
				return fmt.Errorf("%w: %s -> %s", ErrColleagueAsymmetric, actor, colleague)
			}
		}
	}
	return nil
}

func (actor *Actor) key() string {
	if actor.fullName == nil {
		return ""
	}
	return *actor.fullName
}

// # Identity & Ordering

// Equal reports whether both actors share the same name.
func (actor *Actor) Equal(other *Actor) bool {
	if actor == nil || other == nil {
		return actor == other
	}
	return equalPtr(actor.fullName, other.fullName)
}

func (actor *Actor) String() string {
	return fmt.Sprintf("<Actor %s>", describe(actor.fullName))
}

// CompareActors orders actors by name.
func CompareActors(a, b *Actor) int {
	return compareOptional(a.fullName, b.fullName)
}
