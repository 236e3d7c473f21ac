package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"humspot-backend/internal/models"
	"humspot-backend/internal/repository"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  *repository.UserRepository
	blocks *repository.BlockRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *repository.UserRepository, blocks *repository.BlockRepository) *UserHandler {
	return &UserHandler{
		users:  users,
		blocks: blocks,
	}
}

type userInput struct {
	UserID string `path:"userID" validate:"required"`
}

// Get handles GET /users/{userID}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	endpoint[userInput, *models.User]{
		name:    "get user",
		message: "User info retrieved successfully",
		bind: func(r *http.Request) (userInput, error) {
			return userInput{UserID: chi.URLParam(r, "userID")}, nil
		},
		run: func(ctx context.Context, in userInput) (*models.User, error) {
			return h.users.GetByID(ctx, in.UserID)
		},
		payload: object[models.User]("info"),
	}.ServeHTTP(w, r)
}

type profilePhotoRequest struct {
	UserID        bodyID `json:"userID" validate:"required"`
	ProfilePicURL string `json:"profilePicURL" validate:"required,url"`
}

// UpdateProfilePhoto handles POST /update-profile-photo
func (h *UserHandler) UpdateProfilePhoto(w http.ResponseWriter, r *http.Request) {
	endpoint[profilePhotoRequest, none]{
		name:    "update profile photo",
		message: "Profile photo updated successfully",
		bind: func(r *http.Request) (profilePhotoRequest, error) {
			var req profilePhotoRequest
			err := decodeBody(r, &req)
			return req, err
		},
		run: func(ctx context.Context, in profilePhotoRequest) (none, error) {
			return none{}, h.users.UpdateProfilePhoto(ctx, string(in.UserID), in.ProfilePicURL)
		},
	}.ServeHTTP(w, r)
}

type blockRequest struct {
	BlockerUserID bodyID `json:"blockerUserID" validate:"required"`
	BlockedUserID bodyID `json:"blockedUserID" validate:"required"`
}

func (b blockRequest) edge() models.Block {
	return models.Block{
		BlockerUserID: string(b.BlockerUserID),
		BlockedUserID: string(b.BlockedUserID),
	}
}

func bindBlock(r *http.Request) (blockRequest, error) {
	var req blockRequest
	err := decodeBody(r, &req)
	return req, err
}

// Block handles POST /block-user
func (h *UserHandler) Block(w http.ResponseWriter, r *http.Request) {
	endpoint[blockRequest, none]{
		name:    "block user",
		message: "User blocked successfully",
		bind:    bindBlock,
		run: func(ctx context.Context, in blockRequest) (none, error) {
			if err := h.blocks.Block(ctx, in.edge()); err != nil {
				return none{}, err
			}
			log.Info().
				Str("blocker_user_id", string(in.BlockerUserID)).
				Str("blocked_user_id", string(in.BlockedUserID)).
				Msg("User blocked")
			return none{}, nil
		},
	}.ServeHTTP(w, r)
}

// Unblock handles POST /unblock-user
func (h *UserHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	endpoint[blockRequest, none]{
		name:    "unblock user",
		message: "User unblocked successfully",
		bind:    bindBlock,
		run: func(ctx context.Context, in blockRequest) (none, error) {
			return none{}, h.blocks.Unblock(ctx, in.edge())
		},
	}.ServeHTTP(w, r)
}

type blockStatusInput struct {
	BlockerUserID string `path:"blockerUserID" validate:"required"`
	BlockedUserID string `path:"blockedUserID" validate:"required"`
}

// IsBlocked handles GET /is-user-blocked/{blockerUserID}/{blockedUserID}
func (h *UserHandler) IsBlocked(w http.ResponseWriter, r *http.Request) {
	endpoint[blockStatusInput, bool]{
		name:    "check block",
		message: "Block status retrieved successfully",
		bind: func(r *http.Request) (blockStatusInput, error) {
			return blockStatusInput{
				BlockerUserID: chi.URLParam(r, "blockerUserID"),
				BlockedUserID: chi.URLParam(r, "blockedUserID"),
			}, nil
		},
		run: func(ctx context.Context, in blockStatusInput) (bool, error) {
			return h.blocks.IsBlocked(ctx, models.Block{
				BlockerUserID: in.BlockerUserID,
				BlockedUserID: in.BlockedUserID,
			})
		},
		payload: value[bool]("isUserBlocked"),
	}.ServeHTTP(w, r)
}
