package repository

import (
	"context"
	"fmt"

	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
)

var (
	getRating = query.Statement{
		Name: "get rating",
		SQL: `
			SELECT rating
			FROM activityratings
			WHERE activityid = $1 AND userid = $2
			LIMIT 1
		`,
	}
	upsertRating = query.Statement{
		Name: "upsert rating",
		SQL: `
			INSERT INTO activityratings (activityid, userid, rating)
			VALUES ($1, $2, $3)
			ON CONFLICT (activityid, userid) DO UPDATE SET rating = EXCLUDED.rating
		`,
	}
)

type ratingRow struct {
	Rating int `db:"rating"`
}

// RatingRepository handles database operations for activity ratings
type RatingRepository struct {
	exec *query.Executor
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(exec *query.Executor) *RatingRepository {
	return &RatingRepository{exec: exec}
}

// Get retrieves the rating userID gave activityID. No rating is reported as HasRated false.
func (r *RatingRepository) Get(ctx context.Context, activityID, userID string) (models.RatingInfo, error) {
	rows, err := query.List[ratingRow](ctx, r.exec, getRating, activityID, userID)
	if err != nil {
		return models.RatingInfo{}, fmt.Errorf("failed to get rating: %w", err)
	}
	if len(rows) == 0 {
		return models.RatingInfo{}, nil
	}
	return models.RatingInfo{Rating: rows[0].Rating, HasRated: true}, nil
}

// Upsert records userID's rating of activityID, replacing any previous one
func (r *RatingRepository) Upsert(ctx context.Context, activityID, userID string, rating int) error {
	if _, err := query.Exec(ctx, r.exec, upsertRating, activityID, userID, rating); err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}
