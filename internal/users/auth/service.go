// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements account registration and token-based sessions.

Architecture:

  - Accounts are catalogue users ([catalog.User]) held by the catalogue
    repository, so reviews and watch lists hang off the same object.
  - Sessions are stateless HS256 access tokens; logout revokes a token by
    its ID in a [RevocationStore] (Redis or memory).
  - Passwords are bcrypt hashes.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/flix/internal/core/catalog"
	"github.com/taibuivan/flix/internal/platform/apperr"
	"github.com/taibuivan/flix/internal/platform/ctxutil"
	"github.com/taibuivan/flix/internal/platform/sec"
	"github.com/taibuivan/flix/internal/platform/validate"
)

// # Contracts & Types

// TokenProvider signs and verifies access tokens. [sec.TokenService] implements it.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, *sec.AuthClaims, error)
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// RoleResolver decides which accounts receive the admin role.
type RoleResolver interface {
	IsAdmin(username string) bool
}

// Options tunes the service.
type Options struct {
	// BcryptCost is the work factor for new password hashes.
	BcryptCost int
	// Roles grants elevated roles. Nil means everybody is a member.
	Roles RoleResolver
}

// Service implements the authentication use cases.
type Service struct {
	repository  catalog.Repository
	revocations RevocationStore
	tokens      TokenProvider
	options     Options
	now         func() time.Time

	// registration makes the username check and the insert atomic.
	registration sync.Mutex
}

// NewService constructs a [Service].
func NewService(repository catalog.Repository, revocations RevocationStore, tokens TokenProvider, options Options) *Service {
	return &Service{
		repository:  repository,
		revocations: revocations,
		tokens:      tokens,
		options:     options,
		now:         time.Now,
	}
}

// # Registration Flow

// RegisterInput holds the credentials of a new account.
type RegisterInput struct {
	Username string
	Password string
}

/*
Register validates, hashes and stores a new account.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - UserDTO: the created account
  - error: ValidationError, or Conflict if the username is taken
*/
func (service *Service) Register(context context.Context, input RegisterInput) (UserDTO, error) {
	username := catalog.NormalizeUsername(input.Username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		MinLen(FieldUsername, username, UsernameMinLength).
		MaxLen(FieldUsername, username, UsernameMaxLength)
	if username != "" {
		validator.Username(FieldUsername, username)
	}
	validator.Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLength).
		MaxLen(FieldPassword, input.Password, PasswordMaxLength)
	if err := validator.Err(); err != nil {
		return UserDTO{}, err
	}

	if service.repository.GetUser(username) != nil {
		return UserDTO{}, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPasswordWithCost(input.Password, service.options.BcryptCost)
	if err != nil {
		return UserDTO{}, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := catalog.NewUser(username, hashedPassword)

	service.registration.Lock()
	if service.repository.GetUser(username) != nil {
		service.registration.Unlock()
		return UserDTO{}, apperr.Conflict("Username is already taken")
	}
	service.repository.AddUser(user)
	service.registration.Unlock()

	ctxutil.GetLogger(context).Info("user_registered", slog.String("username", username))
	return toUserDTO(user, service.roleOf(username)), nil
}

// # Authentication Flow

// LoginInput holds the credentials of a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession is the result of a successful login.
type LoginSession struct {
	AccessToken string
	ExpiresAt   time.Time
	User        UserDTO
}

/*
Login checks credentials and issues an access token.

Unknown usernames and wrong passwords produce the same Unauthorized error.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: token and profile
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user := service.repository.GetUser(input.Username)
	if user == nil || user.Password() == nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, *user.Password()) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	username := *user.Username()
	role := service.roleOf(username)

	token, claims, err := service.tokens.GenerateAccessToken(username, username, string(role), AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_failed: %w", err))
	}

	ctxutil.GetLogger(context).Info("user_logged_in", slog.String("username", username))
	return &LoginSession{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        toUserDTO(user, role),
	}, nil
}

// Logout revokes the token described by claims for the rest of its lifetime.
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {
	if claims == nil || claims.ID == "" {
		return apperr.Unauthorized("Authentication required")
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(service.now())
	}

	if err := service.revocations.Revoke(context, claims.ID, ttl); err != nil {
		return apperr.Internal(fmt.Errorf("auth_service_logout_failed: %w", err))
	}

	ctxutil.GetLogger(context).Info("user_logged_out", slog.String("username", claims.Username))
	return nil
}

// VerifyToken validates a bearer token. Revoked tokens and tokens of accounts
// that no longer exist are rejected.
func (service *Service) VerifyToken(context context.Context, token string) (*sec.AuthClaims, error) {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token").WithCause(err)
	}

	revoked, err := service.revocations.IsRevoked(context, claims.ID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_revocation_check_failed: %w", err))
	}
	if revoked {
		return nil, apperr.Unauthorized("Token has been revoked")
	}

	if service.repository.GetUser(claims.Username) == nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}
	return claims, nil
}

// GetUser returns the public profile of username.
func (service *Service) GetUser(_ context.Context, username string) (UserDTO, error) {
	user := service.repository.GetUser(username)
	if user == nil {
		return UserDTO{}, apperr.NotFound("User")
	}
	return toUserDTO(user, service.roleOf(*user.Username())), nil
}

func (service *Service) roleOf(username string) sec.UserRole {
	if service.options.Roles != nil && service.options.Roles.IsAdmin(username) {
		return sec.RoleAdmin
	}
	return sec.RoleMember
}
