package usecase

import (
	"fmt"

	"geodrop/internal/entity"
	"geodrop/internal/repo/persistent"
	"geodrop/pkg/logger"
)

type WalletUseCase interface {
	GetBalance(userID string) (int, error)
	TopUp(userID string, amount int) (*entity.Transaction, error)
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
}

type walletUseCase struct {
	walletRepo persistent.WalletRepository
	logger     *logger.Logger
}

func NewWalletUseCase(walletRepo persistent.WalletRepository, logger *logger.Logger) WalletUseCase {
	return &walletUseCase{
		walletRepo: walletRepo,
		logger:     logger,
	}
}

func (uc *walletUseCase) GetBalance(userID string) (int, error) {
	return uc.walletRepo.Balance(userID)
}

func (uc *walletUseCase) TopUp(userID string, amount int) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("top-up amount must be positive: %w", entity.ErrInvalidInput)
	}

	transaction, err := uc.walletRepo.TopUp(userID, amount)
	if err != nil {
		uc.logger.Error("Failed to top up wallet: %v", err)
		return nil, err
	}
	return transaction, nil
}

func (uc *walletUseCase) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	return uc.walletRepo.GetTransactions(userID, limit, offset)
}
