package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
	"humspot-backend/internal/repository"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	comments *repository.CommentRepository
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments *repository.CommentRepository) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type activityCommentsInput struct {
	ActivityID string `path:"activityID" validate:"required,id"`
	Page       string `path:"page" validate:"required"`
}

// ListByActivity handles GET /comments/{activityID}/{page}
func (h *CommentHandler) ListByActivity(w http.ResponseWriter, r *http.Request) {
	endpoint[activityCommentsInput, []models.Comment]{
		name:    "list activity comments",
		message: "Comments retrieved successfully",
		bind: func(r *http.Request) (activityCommentsInput, error) {
			return activityCommentsInput{
				ActivityID: chi.URLParam(r, "activityID"),
				Page:       chi.URLParam(r, "page"),
			}, nil
		},
		run: func(ctx context.Context, in activityCommentsInput) ([]models.Comment, error) {
			page, err := query.ParsePage(in.Page)
			if err != nil {
				return nil, err
			}
			return h.comments.ListByActivity(ctx, in.ActivityID, page)
		},
		payload: list[models.Comment]("comments"),
	}.ServeHTTP(w, r)
}

type userCommentsInput struct {
	UserID string `path:"userID" validate:"required"`
	Page   string `path:"page" validate:"required"`
}

// ListByUser handles GET /user-comments/{userID}/{page}
func (h *CommentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	endpoint[userCommentsInput, []models.UserComment]{
		name:    "list user comments",
		message: "Comments retrieved successfully",
		bind: func(r *http.Request) (userCommentsInput, error) {
			return userCommentsInput{
				UserID: chi.URLParam(r, "userID"),
				Page:   chi.URLParam(r, "page"),
			}, nil
		},
		run: func(ctx context.Context, in userCommentsInput) ([]models.UserComment, error) {
			page, err := query.ParsePage(in.Page)
			if err != nil {
				return nil, err
			}
			return h.comments.ListByUser(ctx, in.UserID, page)
		},
		payload: list[models.UserComment]("comments"),
	}.ServeHTTP(w, r)
}

type addCommentRequest struct {
	UserID      bodyID `json:"userID" validate:"required"`
	ActivityID  bodyID `json:"activityID" validate:"required,id"`
	CommentText string `json:"commentText" validate:"required,max=2000"`
}

// Add handles POST /add-comment
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	endpoint[addCommentRequest, int64]{
		name:    "add comment",
		message: "Comment added successfully",
		bind: func(r *http.Request) (addCommentRequest, error) {
			var req addCommentRequest
			err := decodeBody(r, &req)
			return req, err
		},
		run: func(ctx context.Context, in addCommentRequest) (int64, error) {
			return h.comments.Add(ctx, string(in.UserID), string(in.ActivityID), in.CommentText)
		},
		payload: value[int64]("commentID"),
	}.ServeHTTP(w, r)
}

type deleteCommentRequest struct {
	CommentID bodyID `json:"commentID" validate:"required,id"`
	UserID    bodyID `json:"userID" validate:"required"`
}

// Delete handles POST /delete-comment. A pair that matches no comment still succeeds.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	endpoint[deleteCommentRequest, none]{
		name:    "delete comment",
		message: "Comment deleted successfully",
		bind: func(r *http.Request) (deleteCommentRequest, error) {
			var req deleteCommentRequest
			err := decodeBody(r, &req)
			return req, err
		},
		run: func(ctx context.Context, in deleteCommentRequest) (none, error) {
			return none{}, h.comments.Delete(ctx, string(in.CommentID), string(in.UserID))
		},
	}.ServeHTTP(w, r)
}
