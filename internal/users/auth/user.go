// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/platform/sec"
	"github.com/taibuivan/flix/pkg/pointer"
)

// UserDTO is the public view of an account. The password hash never leaves
// the service.
type UserDTO struct {
	Username       string       `json:"username"`
	Role           sec.UserRole `json:"role"`
	MinutesWatched int          `json:"minutes_watched"`
	ReviewCount    int          `json:"review_count"`
}

func toUserDTO(user *catalog.User, role sec.UserRole) UserDTO {
	return UserDTO{
		Username:       pointer.Val(user.Username()),
		Role:           role,
		MinutesWatched: user.MinutesWatched(),
		ReviewCount:    len(user.Reviews()),
	}
}
