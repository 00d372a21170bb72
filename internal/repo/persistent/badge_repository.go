package persistent

import (
	"geodrop/internal/entity"
	"geodrop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository interface {
	GetBadges(userID string) ([]*entity.Badge, error)
	GetBadgeIDs(userID string) ([]string, error)
	Grant(userID, badgeID string) (bool, error)
	Aggregate(userID string) (*entity.Aggregates, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) GetBadges(userID string) ([]*entity.Badge, error) {
	var badgeModels []model.BadgeModel
	err := r.db.Where("user_id = ?", userID).Order("granted_at ASC").Find(&badgeModels).Error
	if err != nil {
		return nil, err
	}

	badges := make([]*entity.Badge, len(badgeModels))
	for i := range badgeModels {
		badges[i] = ToBadgeEntity(&badgeModels[i])
	}
	return badges, nil
}

func (r *badgeRepository) GetBadgeIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.BadgeModel{}).
		Where("user_id = ?", userID).
		Order("granted_at ASC").
		Pluck("badge_id", &ids).Error
	return ids, err
}

// Grant appends a badge, once. Returns false when the user already holds it;
// the unique (user_id, badge_id) index makes this race-safe.
func (r *badgeRepository) Grant(userID, badgeID string) (bool, error) {
	badgeModel := &model.BadgeModel{
		ID:      uuid.New().String(),
		UserID:  userID,
		BadgeID: badgeID,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(badgeModel)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Aggregate recomputes the user's activity counters from the live data.
// Deliberately not cached: a stale or miscounted counter self-corrects on
// the next evaluation.
func (r *badgeRepository) Aggregate(userID string) (*entity.Aggregates, error) {
	agg := &entity.Aggregates{}

	err := r.db.Model(&model.LocationModel{}).
		Where("creator_id = ?", userID).
		Count(&agg.LocationsCreated).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&model.LocationModel{}).
		Where("creator_id = ? AND status = ?", userID, string(entity.StatusVerified)).
		Count(&agg.VerifiedLocations).Error
	if err != nil {
		return nil, err
	}

	row := r.db.Model(&model.LocationModel{}).
		Select("COALESCE(SUM(upvotes), 0), COALESCE(SUM(total_points), 0)").
		Where("creator_id = ?", userID).
		Row()
	if err := row.Scan(&agg.UpvotesReceived, &agg.NetPointsReceived); err != nil {
		return nil, err
	}

	err = r.db.Model(&model.VoteModel{}).
		Where("user_id = ?", userID).
		Count(&agg.VotesCast).Error
	if err != nil {
		return nil, err
	}

	row = r.db.Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND amount > 0", userID).
		Row()
	if err := row.Scan(&agg.CreditsEarned); err != nil {
		return nil, err
	}

	return agg, nil
}
