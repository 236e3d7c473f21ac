package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
	"humspot-backend/internal/repository"
)

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	activities *repository.ActivityRepository
	ratings    *repository.RatingRepository
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activities *repository.ActivityRepository, ratings *repository.RatingRepository) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		ratings:    ratings,
	}
}

type submissionsInput struct {
	UserID string `path:"userID" validate:"required"`
	Page   string `path:"page" validate:"required"`
}

// ListSubmissions handles GET /submissions/{userID}/{page}
func (h *ActivityHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	endpoint[submissionsInput, []models.Submission]{
		name:    "list submissions",
		message: "Submissions retrieved successfully",
		bind: func(r *http.Request) (submissionsInput, error) {
			return submissionsInput{
				UserID: chi.URLParam(r, "userID"),
				Page:   chi.URLParam(r, "page"),
			}, nil
		},
		run: func(ctx context.Context, in submissionsInput) ([]models.Submission, error) {
			page, err := query.ParsePage(in.Page)
			if err != nil {
				return nil, err
			}
			return h.activities.ListSubmissions(ctx, in.UserID, page)
		},
		payload: list[models.Submission]("submissions"),
	}.ServeHTTP(w, r)
}

type searchInput struct {
	QueryString string `path:"queryString" validate:"required"`
}

// Search handles GET /search/{queryString}
func (h *ActivityHandler) Search(w http.ResponseWriter, r *http.Request) {
	endpoint[searchInput, []models.SearchResult]{
		name:    "search activities",
		message: "Search results retrieved successfully",
		bind: func(r *http.Request) (searchInput, error) {
			return searchInput{QueryString: chi.URLParam(r, "queryString")}, nil
		},
		run: func(ctx context.Context, in searchInput) ([]models.SearchResult, error) {
			return h.activities.Search(ctx, in.QueryString)
		},
		payload: list[models.SearchResult]("results"),
	}.ServeHTTP(w, r)
}

type ratingInput struct {
	ActivityID string `path:"activityID" validate:"required,id"`
	UserID     string `path:"userID" validate:"required"`
}

// GetRating handles GET /ratings/{activityID}/{userID}
func (h *ActivityHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	endpoint[ratingInput, models.RatingInfo]{
		name:    "get rating",
		message: "Rating info retrieved successfully",
		bind: func(r *http.Request) (ratingInput, error) {
			return ratingInput{
				ActivityID: chi.URLParam(r, "activityID"),
				UserID:     chi.URLParam(r, "userID"),
			}, nil
		},
		run: func(ctx context.Context, in ratingInput) (models.RatingInfo, error) {
			return h.ratings.Get(ctx, in.ActivityID, in.UserID)
		},
		payload: value[models.RatingInfo]("ratingInfo"),
	}.ServeHTTP(w, r)
}

type rateRequest struct {
	UserID     bodyID `json:"userID" validate:"required"`
	ActivityID bodyID `json:"activityID" validate:"required,id"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
}

// Rate handles POST /rate-activity
func (h *ActivityHandler) Rate(w http.ResponseWriter, r *http.Request) {
	endpoint[rateRequest, none]{
		name:    "rate activity",
		message: "Activity rated successfully",
		bind: func(r *http.Request) (rateRequest, error) {
			var req rateRequest
			err := decodeBody(r, &req)
			return req, err
		},
		run: func(ctx context.Context, in rateRequest) (none, error) {
			return none{}, h.ratings.Upsert(ctx, string(in.ActivityID), string(in.UserID), in.Rating)
		},
	}.ServeHTTP(w, r)
}
