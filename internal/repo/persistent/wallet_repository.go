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

type WalletRepository interface {
	Balance(userID string) (int, error)
	TopUp(userID string, amount int) (*entity.Transaction, error)
	Award(userID, locationID string, amount int) (*entity.Transaction, error)
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Balance(userID string) (int, error) {
	var userModel model.UserModel
	if err := r.db.Select("credits").Where("id = ?", userID).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, entity.ErrNotFound
		}
		return 0, err
	}
	return userModel.Credits, nil
}

func (r *walletRepository) TopUp(userID string, amount int) (*entity.Transaction, error) {
	return r.credit(userID, "", amount, entity.TransactionTypeTopUp)
}

// Award credits a user for system events, e.g. a location reaching verified.
func (r *walletRepository) Award(userID, locationID string, amount int) (*entity.Transaction, error) {
	return r.credit(userID, locationID, amount, entity.TransactionTypeEarn)
}

func (r *walletRepository) credit(userID, locationID string, amount int, txType entity.TransactionType) (*entity.Transaction, error) {
	var created *entity.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var userModel model.UserModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&userModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %s: %w", userID, entity.ErrNotFound)
			}
			return err
		}

		balanceBefore := userModel.Credits
		balanceAfter := balanceBefore + amount
		if err := tx.Model(&userModel).Update("credits", balanceAfter).Error; err != nil {
			return err
		}

		txModel := &model.TransactionModel{
			ID:            uuid.New().String(),
			UserID:        userID,
			LocationID:    locationID,
			Type:          string(txType),
			Amount:        amount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  balanceAfter,
		}
		if err := tx.Create(txModel).Error; err != nil {
			return err
		}

		created = ToTransactionEntity(txModel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *walletRepository) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	var txModels []model.TransactionModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = ToTransactionEntity(&txModels[i])
	}
	return transactions, nil
}
