package persistent

import (
	"errors"
	"fmt"

	"geodrop/internal/entity"
	"geodrop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	CastVote(userID, locationID string, dir entity.Direction, t entity.Thresholds) (*entity.VoteResult, error)
	GetByUserAndLocation(userID, locationID string) (*entity.Vote, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// CastVote runs the whole ledger mutation in one transaction: lock the
// location row, read the caller's prior vote, upsert the ledger entry, move
// the counters, recount total points and re-derive the verification status.
// No state is observable where the counters and total points disagree.
func (r *voteRepository) CastVote(userID, locationID string, dir entity.Direction, t entity.Thresholds) (*entity.VoteResult, error) {
	var result *entity.VoteResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var locModel model.LocationModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", locationID).
			First(&locModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("location %s: %w", locationID, entity.ErrNotFound)
			}
			return err
		}
		loc := ToLocationEntity(&locModel)

		prev := entity.DirectionNone
		var voteModel model.VoteModel
		err = tx.Where("user_id = ? AND location_id = ?", userID, locationID).
			First(&voteModel).Error
		switch {
		case err == nil:
			prev = entity.Direction(voteModel.Direction)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first vote from this user on this location
		default:
			return err
		}

		// Re-casting the same direction is an idempotent no-op.
		if prev == dir {
			result = &entity.VoteResult{
				Previous:    prev,
				Applied:     dir,
				Upvotes:     loc.Upvotes,
				Downvotes:   loc.Downvotes,
				TotalPoints: loc.TotalPoints,
				Status:      loc.Status,
				CreatorID:   loc.CreatorID,
			}
			return nil
		}

		if prev == entity.DirectionNone {
			voteModel = model.VoteModel{
				ID:         uuid.New().String(),
				UserID:     userID,
				LocationID: locationID,
				Direction:  string(dir),
			}
			if err := tx.Create(&voteModel).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Lost a race against another request by the same user.
					return fmt.Errorf("concurrent vote: %w", entity.ErrConflict)
				}
				return err
			}
		} else {
			if err := tx.Model(&voteModel).Update("direction", string(dir)).Error; err != nil {
				return err
			}
		}

		statusBefore := loc.Status
		loc.ApplyVote(prev, dir)
		loc.Status = entity.NextStatus(loc.Status, loc.TotalPoints, t)

		updates := map[string]interface{}{
			"upvotes":      loc.Upvotes,
			"downvotes":    loc.Downvotes,
			"total_points": loc.TotalPoints,
			"status":       string(loc.Status),
		}
		if err := tx.Model(&model.LocationModel{}).Where("id = ?", locationID).Updates(updates).Error; err != nil {
			return err
		}

		result = &entity.VoteResult{
			Previous:       prev,
			Applied:        dir,
			Upvotes:        loc.Upvotes,
			Downvotes:      loc.Downvotes,
			TotalPoints:    loc.TotalPoints,
			Status:         loc.Status,
			CreatorID:      loc.CreatorID,
			BecameVerified: statusBefore != entity.StatusVerified && loc.Status == entity.StatusVerified,
			BecameFlagged:  statusBefore != entity.StatusFlagged && loc.Status == entity.StatusFlagged,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *voteRepository) GetByUserAndLocation(userID, locationID string) (*entity.Vote, error) {
	var voteModel model.VoteModel
	err := r.db.Where("user_id = ? AND location_id = ?", userID, locationID).
		First(&voteModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToVoteEntity(&voteModel), nil
}
