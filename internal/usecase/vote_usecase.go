package usecase

import (
	"context"
	"errors"
	"fmt"

	"geodrop/internal/entity"
	"geodrop/internal/repo/persistent"
	"geodrop/pkg/logger"
	"geodrop/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type VoteUseCase interface {
	CastVote(userID, locationID, direction string) (*entity.VoteResult, error)
	GetVote(userID, locationID string) (entity.Direction, error)
}

type voteUseCase struct {
	voteRepo      persistent.VoteRepository
	walletRepo    persistent.WalletRepository
	redisClient   *redis.Client
	queueClient   *queue.Client
	thresholds    entity.Thresholds
	verifiedBonus int
	logger        *logger.Logger
}

func NewVoteUseCase(
	voteRepo persistent.VoteRepository,
	walletRepo persistent.WalletRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	thresholds entity.Thresholds,
	verifiedBonus int,
	logger *logger.Logger,
) VoteUseCase {
	return &voteUseCase{
		voteRepo:      voteRepo,
		walletRepo:    walletRepo,
		redisClient:   redisClient,
		queueClient:   queueClient,
		thresholds:    thresholds,
		verifiedBonus: verifiedBonus,
		logger:        logger,
	}
}

func (uc *voteUseCase) CastVote(userID, locationID, direction string) (*entity.VoteResult, error) {
	dir, err := entity.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	result, err := uc.voteRepo.CastVote(userID, locationID, dir, uc.thresholds)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Error("Failed to cast vote: %v", err)
		}
		return nil, err
	}

	// Refresh the cached score. The store already committed; the cache is
	// advisory and a failure here is not the caller's problem.
	if uc.redisClient != nil {
		ctx := context.Background()
		pointsKey := fmt.Sprintf("location:points:%s", locationID)
		if err := uc.redisClient.Set(ctx, pointsKey, result.TotalPoints, 0).Err(); err != nil {
			uc.logger.Warn("Failed to cache points for location %s: %v", locationID, err)
		}
	}

	if result.BecameVerified {
		if uc.verifiedBonus > 0 {
			if _, err := uc.walletRepo.Award(result.CreatorID, locationID, uc.verifiedBonus); err != nil {
				uc.logger.Error("Failed to award verification bonus: %v", err)
			}
		}
		uc.publishEvent(queue.EventLocationVerified, map[string]interface{}{
			"location_id":  locationID,
			"creator_id":   result.CreatorID,
			"total_points": result.TotalPoints,
		})
	}

	if result.BecameFlagged {
		uc.publishEvent(queue.EventLocationFlagged, map[string]interface{}{
			"location_id":  locationID,
			"creator_id":   result.CreatorID,
			"total_points": result.TotalPoints,
		})
	}

	return result, nil
}

func (uc *voteUseCase) GetVote(userID, locationID string) (entity.Direction, error) {
	vote, err := uc.voteRepo.GetByUserAndLocation(userID, locationID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.DirectionNone, nil
		}
		return entity.DirectionNone, err
	}
	return vote.Direction, nil
}

func (uc *voteUseCase) publishEvent(eventType string, payload map[string]interface{}) {
	if uc.queueClient == nil {
		return
	}
	if err := uc.queueClient.PublishEvent(eventType, payload); err != nil {
		uc.logger.Error("Failed to publish %s event: %v", eventType, err)
	}
}
