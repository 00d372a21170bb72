package usecase

import (
	"fmt"

	"geodrop/internal/entity"
	"geodrop/internal/repo/persistent"
	"geodrop/pkg/logger"
)

type AdminUseCase interface {
	SearchLocations(keyword string, status string, limit, offset int) ([]*entity.Location, error)
	OverrideStatus(locationID, status string) (*entity.Location, error)
	ListUsers(limit, offset int) ([]*entity.User, error)
	SetUserActive(userID string, active bool) error
}

type adminUseCase struct {
	locationRepo persistent.LocationRepository
	userRepo     persistent.UserRepository
	logger       *logger.Logger
}

func NewAdminUseCase(
	locationRepo persistent.LocationRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		locationRepo: locationRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *adminUseCase) SearchLocations(keyword string, status string, limit, offset int) ([]*entity.Location, error) {
	var st entity.VerificationStatus
	if status != "" {
		st = entity.VerificationStatus(status)
		if !entity.IsValidStatus(st) {
			return nil, fmt.Errorf("unknown status %q: %w", status, entity.ErrInvalidInput)
		}
	}
	return uc.locationRepo.Search(keyword, st, limit, offset)
}

// OverrideStatus is the only path out of flagged or verified back to normal.
func (uc *adminUseCase) OverrideStatus(locationID, status string) (*entity.Location, error) {
	st := entity.VerificationStatus(status)
	if !entity.IsValidStatus(st) {
		return nil, fmt.Errorf("unknown status %q: %w", status, entity.ErrInvalidInput)
	}

	if err := uc.locationRepo.UpdateStatus(locationID, st); err != nil {
		return nil, err
	}

	uc.logger.Info("Admin set location %s status to %s", locationID, status)
	return uc.locationRepo.GetByID(locationID)
}

func (uc *adminUseCase) ListUsers(limit, offset int) ([]*entity.User, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

func (uc *adminUseCase) SetUserActive(userID string, active bool) error {
	return uc.userRepo.SetActive(userID, active)
}
