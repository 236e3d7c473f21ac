package repository

import (
	"context"
	"fmt"

	"humspot-backend/internal/models"
	"humspot-backend/internal/query"
)

var (
	insertBlock = query.Statement{
		Name: "block user",
		SQL:  `INSERT INTO blockedusers (blockeruserid, blockeduserid) VALUES ($1, $2)`,
	}
	deleteBlock = query.Statement{
		Name: "unblock user",
		SQL:  `DELETE FROM blockedusers WHERE blockeruserid = $1 AND blockeduserid = $2`,
	}
	countBlocks = query.Statement{
		Name: "check block",
		SQL:  `SELECT COUNT(*) FROM blockedusers WHERE blockeruserid = $1 AND blockeduserid = $2`,
	}
)

// BlockRepository handles database operations for user blocks
type BlockRepository struct {
	exec *query.Executor
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(exec *query.Executor) *BlockRepository {
	return &BlockRepository{exec: exec}
}

// Block records that the blocker blocked the blocked user
func (r *BlockRepository) Block(ctx context.Context, b models.Block) error {
	if _, err := query.Exec(ctx, r.exec, insertBlock, b.BlockerUserID, b.BlockedUserID); err != nil {
		return fmt.Errorf("failed to block user: %w", err)
	}
	return nil
}

// Unblock removes the edge; a missing edge is not an error
func (r *BlockRepository) Unblock(ctx context.Context, b models.Block) error {
	if _, err := query.Exec(ctx, r.exec, deleteBlock, b.BlockerUserID, b.BlockedUserID); err != nil {
		return fmt.Errorf("failed to unblock user: %w", err)
	}
	return nil
}

// IsBlocked reports whether the blocker has blocked the blocked user
func (r *BlockRepository) IsBlocked(ctx context.Context, b models.Block) (bool, error) {
	n, err := query.Value[int64](ctx, r.exec, countBlocks, b.BlockerUserID, b.BlockedUserID)
	if err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return n > 0, nil
}
