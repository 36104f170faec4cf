// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account serves the authenticated user's own data: the profile, the
watch list and the viewing history.

# Security

Every endpoint in this package runs behind the RequireAuth middleware. The
user is always the one named by the access token.
*/
package account

import (
	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/platform/sec"
	"github.com/taibuivan/flix/pkg/pointer"
	"github.com/taibuivan/flix/pkg/slice"
)

// Profile is the private view of the signed-in user.
type Profile struct {
	Username       string       `json:"username"`
	Role           sec.UserRole `json:"role"`
	MinutesWatched int          `json:"minutes_watched"`
	WatchedMovies  []int        `json:"watched_movies"`
	WatchListSize  int          `json:"watchlist_size"`
	ReviewCount    int          `json:"review_count"`
}

func toProfile(user *catalog.User, role sec.UserRole) Profile {
	return Profile{
		Username:       pointer.Val(user.Username()),
		Role:           role,
		MinutesWatched: user.MinutesWatched(),
		WatchedMovies:  slice.Map(user.WatchedMovies(), (*catalog.Movie).ID),
		WatchListSize:  user.WatchList().Size(),
		ReviewCount:    len(user.Reviews()),
	}
}
