// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # Repository Interfaces

// RevocationStore remembers logged-out access tokens until they expire.
//
// Accounts themselves live in the catalogue repository; only the session
// state that outlives a request is kept here.
type RevocationStore interface {
	// Revoke marks tokenID as unusable for ttl.
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether tokenID was revoked and has not yet expired.
	IsRevoked(context context.Context, tokenID string) (bool, error)
}
