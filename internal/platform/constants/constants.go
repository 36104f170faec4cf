// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides immutable values shared across layers.

Categories:

  - Server Timing: HTTP server and shutdown timeouts.
  - Rate Limiting: per-IP token bucket settings.
  - Authentication: token issuer and revocation key prefix.
  - HTTP Headers and JSON field names.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "flix-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout bounds how long in-flight requests may take to drain.
	ShutdownTimeout = 30 * time.Second

	// DatasetLoadTimeout bounds the CSV load at startup.
	DatasetLoadTimeout = time.Minute
)

// # Rate Limiting

const (
	DefaultRateLimitRPS   = 100.0
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often idle IP entries are swept.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is the idle time after which an IP entry is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim of access tokens.
	AuthIssuer = "flix.app"

	// RedisPrefixRevokedToken prefixes revoked token IDs in Redis.
	RedisPrefixRevokedToken = "auth:revoked:"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
	HeaderRetryAfter    = "Retry-After"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)
