package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"humspot-backend/internal/apperror"
	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
)

const eventColumns = `
	a.activityid, a.name, a.description, a.location, e.organizer, a.addedbyuserid,
	e.date::text AS date, e.time::text AS time,
	COALESCE(STRING_AGG(t.tagname, ', ' ORDER BY t.tagname), '') AS tags
`

var (
	listEventsByTag = query.Statement{
		Name: "list events by tag",
		SQL: `
			SELECT` + eventColumns + `
			FROM events e
			JOIN activities a ON a.activityid = e.activityid
			JOIN activitytags atg ON atg.activityid = a.activityid
			JOIN tags t ON t.tagid = atg.tagid
			WHERE a.activityid IN (
				SELECT atg2.activityid
				FROM activitytags atg2
				JOIN tags t2 ON t2.tagid = atg2.tagid
				WHERE t2.tagname = $1
			)
			GROUP BY a.activityid, e.organizer, e.date, e.time
			ORDER BY e.date DESC, e.time DESC, a.activityid DESC
			LIMIT $2 OFFSET $3
		`,
	}
	getEvent = query.Statement{
		Name: "get event",
		SQL: `
			SELECT` + eventColumns + `
			FROM events e
			JOIN activities a ON a.activityid = e.activityid
			LEFT JOIN activitytags atg ON atg.activityid = a.activityid
			LEFT JOIN tags t ON t.tagid = atg.tagid
			WHERE a.activityid = $1
			GROUP BY a.activityid, e.organizer, e.date, e.time
		`,
	}
)

// EventRepository handles database operations for events
type EventRepository struct {
	exec *query.Executor
}

// NewEventRepository creates a new event repository
func NewEventRepository(exec *query.Executor) *EventRepository {
	return &EventRepository{exec: exec}
}

// ListByTag retrieves one page of events carrying tag, latest first
func (r *EventRepository) ListByTag(ctx context.Context, tag string, page query.Page) ([]models.Event, error) {
	items, err := query.List[models.Event](ctx, r.exec, listEventsByTag, tag, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list events by tag: %w", err)
	}
	return items, nil
}

// GetByID retrieves one event with all of its tags joined into one string
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := query.One[models.Event](ctx, r.exec, getEvent, eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("event", eventID)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}
