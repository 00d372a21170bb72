package usecase

import (
	"fmt"

	"geodrop/internal/entity"
	"geodrop/internal/repo/persistent"
	"geodrop/pkg/logger"
	"geodrop/pkg/queue"
)

type BadgeUseCase interface {
	Evaluate(userID string) ([]string, error)
	GetBadges(userID string) ([]*entity.Badge, error)
}

type badgeUseCase struct {
	badgeRepo   persistent.BadgeRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewBadgeUseCase(
	badgeRepo persistent.BadgeRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) BadgeUseCase {
	return &badgeUseCase{
		badgeRepo:   badgeRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Evaluate recomputes the user's aggregates from the store and grants every
// rule that is satisfied but not yet held. Returns only the newly granted
// badge identifiers; a repeat call with no intervening activity returns an
// empty list. Each grant is independently idempotent, so a failed run can be
// retried at any frequency without double-granting.
func (uc *badgeUseCase) Evaluate(userID string) ([]string, error) {
	agg, err := uc.badgeRepo.Aggregate(userID)
	if err != nil {
		uc.logger.Error("Failed to aggregate activity for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to evaluate badges: %w", err)
	}

	heldIDs, err := uc.badgeRepo.GetBadgeIDs(userID)
	if err != nil {
		uc.logger.Error("Failed to load badges for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to evaluate badges: %w", err)
	}
	held := make(map[string]bool, len(heldIDs))
	for _, id := range heldIDs {
		held[id] = true
	}

	granted := []string{}
	for _, rule := range entity.BadgeRules() {
		if held[rule.ID] || !rule.Satisfied(*agg) {
			continue
		}

		ok, err := uc.badgeRepo.Grant(userID, rule.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to grant badge %s: %w", rule.ID, err)
		}
		if !ok {
			// Another evaluation got there first.
			continue
		}

		granted = append(granted, rule.ID)

		if uc.queueClient != nil {
			if err := uc.queueClient.PublishEvent(queue.EventBadgeGranted, map[string]interface{}{
				"user_id":  userID,
				"badge_id": rule.ID,
			}); err != nil {
				uc.logger.Error("Failed to publish badge event: %v", err)
			}
		}
	}

	return granted, nil
}

func (uc *badgeUseCase) GetBadges(userID string) ([]*entity.Badge, error) {
	return uc.badgeRepo.GetBadges(userID)
}
