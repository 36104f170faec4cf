// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "fmt"

// Director is the person credited with directing a movie.
type Director struct {
	fullName *string
}

// NewDirector builds a director. A blank name leaves the name nil.
func NewDirector(fullName string) *Director {
	return &Director{fullName: normalizeName(fullName)}
}

// FullName returns the trimmed name, or nil if it was blank.
func (director *Director) FullName() *string { return clonePtr(director.fullName) }

// Equal reports whether both directors share the same name.
func (director *Director) Equal(other *Director) bool {
	if director == nil || other == nil {
		return director == other
	}
	return equalPtr(director.fullName, other.fullName)
}

func (director *Director) String() string {
	return fmt.Sprintf("<Director %s>", describe(director.fullName))
}

// CompareDirectors orders directors by name.
func CompareDirectors(a, b *Director) int {
	return compareOptional(a.fullName, b.fullName)
}
