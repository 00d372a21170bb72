package usecase

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"geodrop/internal/entity"
	"geodrop/internal/repo/persistent"
	"geodrop/pkg/logger"
	"geodrop/pkg/s3"

	"github.com/google/uuid"
)

type CreateLocationInput struct {
	Longitude       float64
	Latitude        float64
	Text            string
	Anonymous       bool
	Credits         int
	AutoDeleteHours int
	MediaFiles      []*multipart.FileHeader
}

type UpdateLocationInput struct {
	Text      *string
	Anonymous *bool
}

type LocationUseCase interface {
	CreateLocation(userID string, input CreateLocationInput) (*entity.Location, error)
	GetLocation(locationID, requesterID string) (*entity.Location, entity.Direction, error)
	ListLocations(limit, offset int) ([]*entity.Location, error)
	GetCreatorLocations(creatorID string, limit, offset int) ([]*entity.Location, error)
	UpdateLocation(locationID, userID string, input UpdateLocationInput) (*entity.Location, error)
	DeleteLocation(locationID, userID string) error
}

type locationUseCase struct {
	locationRepo persistent.LocationRepository
	voteRepo     persistent.VoteRepository
	s3Client     *s3.Client
	logger       *logger.Logger
}

func NewLocationUseCase(
	locationRepo persistent.LocationRepository,
	voteRepo persistent.VoteRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) LocationUseCase {
	return &locationUseCase{
		locationRepo: locationRepo,
		voteRepo:     voteRepo,
		s3Client:     s3Client,
		logger:       logger,
	}
}

func (uc *locationUseCase) CreateLocation(userID string, input CreateLocationInput) (*entity.Location, error) {
	if input.Credits < 0 {
		return nil, fmt.Errorf("credits must not be negative: %w", entity.ErrInvalidInput)
	}
	if input.Longitude < -180 || input.Longitude > 180 || input.Latitude < -90 || input.Latitude > 90 {
		return nil, fmt.Errorf("coordinates out of range: %w", entity.ErrInvalidInput)
	}
	if len(input.MediaFiles) > 10 {
		return nil, fmt.Errorf("maximum 10 media files allowed per location: %w", entity.ErrInvalidInput)
	}

	var media []entity.MediaItem
	for i, file := range input.MediaFiles {
		mediaType, err := mediaTypeFor(file)
		if err != nil {
			return nil, err
		}

		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}

		fileKey := fmt.Sprintf("locations/%s/%s%s", userID, uuid.New().String(), fileExtension(file.Filename))
		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		url, err := uc.s3Client.UploadFile(fileKey, src, contentType)
		src.Close()
		if err != nil {
			uc.logger.Error("Failed to upload media: %v", err)
			return nil, fmt.Errorf("failed to upload media: %w", err)
		}

		media = append(media, entity.MediaItem{
			ID:    uuid.New().String(),
			URL:   url,
			Type:  mediaType,
			Order: i,
		})
	}

	location := &entity.Location{
		CreatorID:  userID,
		Longitude:  input.Longitude,
		Latitude:   input.Latitude,
		Text:       input.Text,
		Anonymous:  input.Anonymous,
		Status:     entity.StatusNormal,
		Credits:    input.Credits,
		AutoDelete: input.AutoDeleteHours > 0,
		Media:      media,
	}

	// The deletion deadline is fixed at write time; the sweeper only reads it.
	if input.AutoDeleteHours > 0 {
		deleteAt := time.Now().Add(time.Duration(input.AutoDeleteHours) * time.Hour)
		location.DeleteAt = &deleteAt
	}

	if err := uc.locationRepo.Create(location); err != nil {
		uc.logger.Error("Failed to create location: %v", err)
		return nil, err
	}

	return location, nil
}

func (uc *locationUseCase) GetLocation(locationID, requesterID string) (*entity.Location, entity.Direction, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, entity.DirectionNone, err
	}

	ownDirection := entity.DirectionNone
	if requesterID != "" {
		if vote, err := uc.voteRepo.GetByUserAndLocation(requesterID, locationID); err == nil {
			ownDirection = vote.Direction
		}
	}

	hideCreator(location)
	return location, ownDirection, nil
}

func (uc *locationUseCase) ListLocations(limit, offset int) ([]*entity.Location, error) {
	locations, err := uc.locationRepo.List(limit, offset, "")
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		hideCreator(l)
	}
	return locations, nil
}

func (uc *locationUseCase) GetCreatorLocations(creatorID string, limit, offset int) ([]*entity.Location, error) {
	return uc.locationRepo.GetByCreatorID(creatorID, limit, offset)
}

func (uc *locationUseCase) UpdateLocation(locationID, userID string, input UpdateLocationInput) (*entity.Location, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}

	if location.CreatorID != userID {
		return nil, fmt.Errorf("only the creator may edit a location: %w", entity.ErrForbidden)
	}

	if input.Text != nil {
		location.Text = *input.Text
	}
	if input.Anonymous != nil {
		location.Anonymous = *input.Anonymous
	}

	if err := uc.locationRepo.Update(location); err != nil {
		uc.logger.Error("Failed to update location: %v", err)
		return nil, err
	}

	return location, nil
}

func (uc *locationUseCase) DeleteLocation(locationID, userID string) error {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return err
	}

	if location.CreatorID != userID {
		return fmt.Errorf("only the creator may delete a location: %w", entity.ErrForbidden)
	}

	if err := uc.locationRepo.Delete(locationID); err != nil {
		return err
	}

	// Media objects are removed best-effort; a failed delete leaves an
	// orphan in the bucket, not a broken API response.
	if uc.s3Client != nil {
		for _, media := range location.Media {
			key := uc.s3Client.KeyFromURL(media.URL)
			if key == "" {
				continue
			}
			if err := uc.s3Client.DeleteFile(key); err != nil {
				uc.logger.Warn("Failed to delete media object %s: %v", key, err)
			}
		}
	}

	return nil
}

func hideCreator(l *entity.Location) {
	if l.Anonymous {
		l.CreatorID = ""
	}
}

func mediaTypeFor(file *multipart.FileHeader) (entity.MediaType, error) {
	contentType := file.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return entity.MediaTypePhoto, nil
	case strings.HasPrefix(contentType, "video/"):
		return entity.MediaTypeVideo, nil
	}

	switch strings.ToLower(fileExtension(file.Filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return entity.MediaTypePhoto, nil
	case ".mp4", ".mov", ".avi", ".webm":
		return entity.MediaTypeVideo, nil
	}

	return "", fmt.Errorf("unsupported media type for %s: %w", file.Filename, entity.ErrInvalidInput)
}

func fileExtension(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}
