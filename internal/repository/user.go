package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"humspot-backend/internal/apperror"
	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
)

var (
	getUser = query.Statement{
		Name: "get user",
		SQL: `
			SELECT userid, username, email, profilepicurl, accounttype, accountcreationdate
			FROM users
			WHERE userid = $1
		`,
	}
	updateProfilePhoto = query.Statement{
		Name: "update profile photo",
		SQL:  `UPDATE users SET profilepicurl = $1 WHERE userid = $2`,
	}
)

// UserRepository handles database operations for users
type UserRepository struct {
	exec *query.Executor
}

// NewUserRepository creates a new user repository
func NewUserRepository(exec *query.Executor) *UserRepository {
	return &UserRepository{exec: exec}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := query.One[models.User](ctx, r.exec, getUser, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("user", userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateProfilePhoto sets the profile picture URL. A userID that matches no row is
// not reported; the update simply affects nothing.
func (r *UserRepository) UpdateProfilePhoto(ctx context.Context, userID, profilePicURL string) error {
	n, err := query.Exec(ctx, r.exec, updateProfilePhoto, profilePicURL, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile photo: %w", err)
	}
	if n == 0 {
		log.Debug().Str("user_id", userID).Msg("Profile photo update matched no user")
	}
	return nil
}
