package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
)

var (
	listActivityComments = query.Statement{
		Name: "list activity comments",
		SQL: `
			SELECT c.commentid, c.userid, c.activityid, c.commenttext, c.commentdate,
				u.username, u.profilepicurl
			FROM comments c
			JOIN users u ON u.userid = c.userid
			WHERE c.activityid = $1
			ORDER BY c.commentdate DESC, c.commentid DESC
			LIMIT $2 OFFSET $3
		`,
	}
	listUserComments = query.Statement{
		Name: "list user comments",
		SQL: `
			SELECT c.commentid, c.userid, c.activityid, c.commenttext, c.commentdate,
				a.name, a.activitytype
			FROM comments c
			JOIN activities a ON a.activityid = c.activityid
			WHERE c.userid = $1
			ORDER BY c.commentdate DESC, c.commentid DESC
			LIMIT $2 OFFSET $3
		`,
	}
	addComment = query.Statement{
		Name: "add comment",
		SQL: `
			INSERT INTO comments (userid, activityid, commenttext, commentdate)
			VALUES ($1, $2, $3, NOW())
			RETURNING commentid
		`,
	}
	deleteComment = query.Statement{
		Name: "delete comment",
		SQL:  `DELETE FROM comments WHERE commentid = $1 AND userid = $2`,
	}
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	exec *query.Executor
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(exec *query.Executor) *CommentRepository {
	return &CommentRepository{exec: exec}
}

// ListByActivity retrieves one page of an activity's comments, newest first
func (r *CommentRepository) ListByActivity(ctx context.Context, activityID string, page query.Page) ([]models.Comment, error) {
	items, err := query.List[models.Comment](ctx, r.exec, listActivityComments, activityID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list activity comments: %w", err)
	}
	return items, nil
}

// ListByUser retrieves one page of a user's comments, newest first
func (r *CommentRepository) ListByUser(ctx context.Context, userID string, page query.Page) ([]models.UserComment, error) {
	items, err := query.List[models.UserComment](ctx, r.exec, listUserComments, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list user comments: %w", err)
	}
	return items, nil
}

// Add creates a comment and returns its ID
func (r *CommentRepository) Add(ctx context.Context, userID, activityID, text string) (int64, error) {
	id, err := query.Value[int64](ctx, r.exec, addComment, userID, activityID, text)
	if err != nil {
		return 0, fmt.Errorf("failed to add comment: %w", err)
	}
	return id, nil
}

// Delete removes a comment only if userID wrote it. Deleting a pair that matches
// nothing is not an error.
func (r *CommentRepository) Delete(ctx context.Context, commentID, userID string) error {
	n, err := query.Exec(ctx, r.exec, deleteComment, commentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if n == 0 {
		log.Debug().
			Str("comment_id", commentID).
			Str("user_id", userID).
			Msg("Comment delete matched no row")
	}
	return nil
}
