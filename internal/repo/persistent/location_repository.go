package persistent

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"geodrop/internal/entity"
	"geodrop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List(limit, offset int, status entity.VerificationStatus) ([]*entity.Location, error)
	GetByCreatorID(creatorID string, limit, offset int) ([]*entity.Location, error)
	Update(location *entity.Location) error
	UpdateStatus(id string, status entity.VerificationStatus) error
	Delete(id string) error
	Search(keyword string, status entity.VerificationStatus, limit, offset int) ([]*entity.Location, error)
	DeleteExpired(now time.Time) (int64, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// Create inserts the location and its media, and moves any assigned credits
// off the creator's balance, all in one transaction. Fails with InvalidInput
// when the creator cannot cover the assignment.
func (r *locationRepository) Create(location *entity.Location) error {
	locModel := ToLocationModel(location)
	if locModel.ID == "" {
		locModel.ID = uuid.New().String()
	}
	for i := range locModel.Media {
		if locModel.Media[i].ID == "" {
			locModel.Media[i].ID = uuid.New().String()
		}
		locModel.Media[i].LocationID = locModel.ID
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if location.Credits > 0 {
			var userModel model.UserModel
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", location.CreatorID).
				First(&userModel).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("creator %s: %w", location.CreatorID, entity.ErrNotFound)
				}
				return err
			}
			if userModel.Credits < location.Credits {
				return fmt.Errorf("insufficient credits: %w", entity.ErrInvalidInput)
			}

			balanceBefore := userModel.Credits
			balanceAfter := balanceBefore - location.Credits
			if err := tx.Model(&userModel).Update("credits", balanceAfter).Error; err != nil {
				return err
			}

			txModel := &model.TransactionModel{
				ID:            uuid.New().String(),
				UserID:        location.CreatorID,
				LocationID:    locModel.ID,
				Type:          string(entity.TransactionTypeAssign),
				Amount:        -location.Credits,
				BalanceBefore: balanceBefore,
				BalanceAfter:  balanceAfter,
			}
			if err := tx.Create(txModel).Error; err != nil {
				return err
			}
		}

		return tx.Create(locModel).Error
	})
	if err != nil {
		return err
	}

	*location = *ToLocationEntity(locModel)
	return nil
}

func (r *locationRepository) GetByID(id string) (*entity.Location, error) {
	var locModel model.LocationModel
	err := r.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("media_order ASC")
	}).Where("id = ?", id).First(&locModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToLocationEntity(&locModel), nil
}

func (r *locationRepository) List(limit, offset int, status entity.VerificationStatus) ([]*entity.Location, error) {
	var locModels []model.LocationModel
	query := r.db.Preload("Media").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&locModels).Error; err != nil {
		return nil, err
	}

	locations := make([]*entity.Location, len(locModels))
	for i := range locModels {
		locations[i] = ToLocationEntity(&locModels[i])
	}
	return locations, nil
}

func (r *locationRepository) GetByCreatorID(creatorID string, limit, offset int) ([]*entity.Location, error) {
	var locModels []model.LocationModel
	query := r.db.Preload("Media").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&locModels).Error; err != nil {
		return nil, err
	}

	locations := make([]*entity.Location, len(locModels))
	for i := range locModels {
		locations[i] = ToLocationEntity(&locModels[i])
	}
	return locations, nil
}

// Update writes the mutable fields only. Coordinates, counters, status and
// credits have their own paths and are never touched here.
func (r *locationRepository) Update(location *entity.Location) error {
	updates := map[string]interface{}{
		"text":      location.Text,
		"anonymous": location.Anonymous,
	}
	result := r.db.Model(&model.LocationModel{}).Where("id = ?", location.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *locationRepository) UpdateStatus(id string, status entity.VerificationStatus) error {
	result := r.db.Model(&model.LocationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *locationRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.LocationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// likeEscaper neutralizes LIKE metacharacters so a keyword matches
// literally inside the pattern. Postgres escapes with backslash by default.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search filters by keyword and status with bound parameters. Keyword input
// never reaches the SQL text itself.
func (r *locationRepository) Search(keyword string, status entity.VerificationStatus, limit, offset int) ([]*entity.Location, error) {
	var locModels []model.LocationModel
	query := r.db.Preload("Media").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if keyword != "" {
		query = query.Where("text ILIKE ?", "%"+likeEscaper.Replace(keyword)+"%")
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&locModels).Error; err != nil {
		return nil, err
	}

	locations := make([]*entity.Location, len(locModels))
	for i := range locModels {
		locations[i] = ToLocationEntity(&locModels[i])
	}
	return locations, nil
}

func (r *locationRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("auto_delete = ? AND delete_at IS NOT NULL AND delete_at <= ?", true, now).
		Delete(&model.LocationModel{})
	return result.RowsAffected, result.Error
}
