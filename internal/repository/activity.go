package repository

import (
	"context"
	"fmt"
	"strings"

	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
)

var (
	listSubmissions = query.Statement{
		Name: "list submissions",
		SQL: `
			SELECT a.activityid, a.name, a.description, a.activitytype, a.location,
				MIN(p.photourl) AS photourl
			FROM activities a
			LEFT JOIN activityphotos p ON p.activityid = a.activityid
			WHERE a.addedbyuserid = $1
			GROUP BY a.activityid
			ORDER BY a.activityid
			LIMIT $2 OFFSET $3
		`,
	}
	searchActivities = query.Statement{
		Name: "search activities",
		SQL: `
			SELECT activityid, name, description, activitytype, location
			FROM activities
			WHERE name ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\'
		`,
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	exec *query.Executor
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(exec *query.Executor) *ActivityRepository {
	return &ActivityRepository{exec: exec}
}

// ListSubmissions retrieves one page of the activities a user added
func (r *ActivityRepository) ListSubmissions(ctx context.Context, userID string, page query.Page) ([]models.Submission, error) {
	items, err := query.List[models.Submission](ctx, r.exec, listSubmissions, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return items, nil
}

// Search retrieves activities whose name or description contains text, ignoring case.
// LIKE wildcards in text match literally.
func (r *ActivityRepository) Search(ctx context.Context, text string) ([]models.SearchResult, error) {
	pattern := "%" + likeEscaper.Replace(text) + "%"
	items, err := query.List[models.SearchResult](ctx, r.exec, searchActivities, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search activities: %w", err)
	}
	return items, nil
}
