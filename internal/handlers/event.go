package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
	"humspot-backend/internal/repository"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	events *repository.EventRepository
}

// NewEventHandler creates a new event handler
func NewEventHandler(events *repository.EventRepository) *EventHandler {
	return &EventHandler{events: events}
}

type eventsByTagInput struct {
	Tag  string `path:"tag" validate:"required"`
	Page string `path:"page" validate:"required"`
}

// ListByTag handles GET /events/tag/{tag}/{page}
func (h *EventHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	endpoint[eventsByTagInput, []models.Event]{
		name:    "list events by tag",
		message: "Events retrieved successfully",
		bind: func(r *http.Request) (eventsByTagInput, error) {
			return eventsByTagInput{
				Tag:  chi.URLParam(r, "tag"),
				Page: chi.URLParam(r, "page"),
			}, nil
		},
		run: func(ctx context.Context, in eventsByTagInput) ([]models.Event, error) {
			page, err := query.ParsePage(in.Page)
			if err != nil {
				return nil, err
			}
			return h.events.ListByTag(ctx, in.Tag, page)
		},
		payload: list[models.Event]("events"),
	}.ServeHTTP(w, r)
}

type eventInput struct {
	EventID string `path:"eventID" validate:"required,id"`
}

// Get handles GET /events/{eventID}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	endpoint[eventInput, *models.Event]{
		name:    "get event",
		message: "Event retrieved successfully",
		bind: func(r *http.Request) (eventInput, error) {
			return eventInput{EventID: chi.URLParam(r, "eventID")}, nil
		},
		run: func(ctx context.Context, in eventInput) (*models.Event, error) {
			return h.events.GetByID(ctx, in.EventID)
		},
		payload: object[models.Event]("event"),
	}.ServeHTTP(w, r)
}
