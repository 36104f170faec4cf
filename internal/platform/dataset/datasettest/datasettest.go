// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package datasettest exposes the reference catalogue fixture for tests.
//
// The fixture holds 13 movies (ids 1–13, released 1972–2020), 5 genres,
// 3 users, 4 reviews of movie 1 and 4 actors credited on movies 9, 10, 11 and 13.
package datasettest

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/platform/dataset"
	"github.com/taibuivan/flix/internal/platform/sec"
)

//go:embed fixtures/*.csv
var fixtures embed.FS

// FS returns the fixture directory.
func FS() fs.FS {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

// Hasher hashes with the minimum bcrypt cost to keep tests fast.
func Hasher(plainText string) (string, error) {
	return sec.HashPasswordWithCost(plainText, bcrypt.MinCost)
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Repository returns a fresh repository populated with the fixture.
func Repository(t testing.TB) *catalog.MemoryRepository {
	t.Helper()

	repo := catalog.NewMemoryRepository()
	loader := dataset.NewLoader(FS(), repo, Hasher, DiscardLogger())
	require.NoError(t, loader.Populate(context.Background()))
	return repo
}
