// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// # Field Constraints

const (
	// MinReleaseYear is the earliest release year accepted for a movie.
	MinReleaseYear = 1900

	// MinRating and MaxRating bound a review rating (inclusive).
	MinRating = 1
	MaxRating = 10
)

var lowerCaser = cases.Lower(language.Und)

// normalizeName trims value. Blank input yields nil.
func normalizeName(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// normalizeUsername trims and lower-cases value. Blank input yields nil.
func normalizeUsername(value string) *string {
	name := normalizeName(value)
	if name == nil {
		return nil
	}
	lowered := lowerCaser.String(*name)
	return &lowered
}

// normalizePassword keeps the hash untouched. Empty input yields nil.
func normalizePassword(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func normalizeYear(year int) *int {
	if year < MinReleaseYear {
		return nil
	}
	return &year
}

func normalizeRating(rating int) *int {
	if rating < MinRating || rating > MaxRating {
		return nil
	}
	return &rating
}

// normalizeText rejects byte sequences that are not valid UTF-8.
func normalizeText(text string) *string {
	if !utf8.ValidString(text) {
		return nil
	}
	return &text
}

// # Optional Helpers

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// compareOptional orders nil before any value.
func compareOptional[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

func describe[T any](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}
