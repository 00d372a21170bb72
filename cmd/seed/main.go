package main

import (
	"fmt"

	"geodrop/internal/entity"
	"geodrop/internal/model"
	"geodrop/internal/repo/persistent"
	"geodrop/pkg/config"
	"geodrop/pkg/database"
	"geodrop/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, cfg, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	var count int64
	if err := db.Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.UserModel{
		Email:    "admin@geodrop.local",
		Username: "admin",
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
		Credits:  1000,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	users := make([]*model.UserModel, 0, 3)
	for i := 1; i <= 3; i++ {
		user := &model.UserModel{
			Email:    fmt.Sprintf("user%d@geodrop.local", i),
			Username: fmt.Sprintf("user%d", i),
			Password: string(hash),
			IsActive: true,
			Credits:  100,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
		users = append(users, user)
	}

	locationRepo := persistent.NewLocationRepository(db)
	voteRepo := persistent.NewVoteRepository(db)

	spots := []struct {
		lon, lat float64
		text     string
	}{
		{37.6173, 55.7558, "Hidden courtyard with street art"},
		{30.3141, 59.9386, "Rooftop view over the canal"},
		{13.4050, 52.5200, "Quiet reading spot in the park"},
		{2.3522, 48.8566, "Best coffee within three blocks"},
	}

	locations := make([]*entity.Location, 0, len(spots))
	for i, s := range spots {
		location := &entity.Location{
			CreatorID: users[i%len(users)].ID,
			Longitude: s.lon,
			Latitude:  s.lat,
			Text:      s.text,
			Status:    entity.StatusNormal,
		}
		if err := locationRepo.Create(location); err != nil {
			return err
		}
		locations = append(locations, location)
	}

	thresholds := entity.Thresholds{Flag: cfg.FlagThreshold, Verify: cfg.VerifyThreshold}

	// Everyone upvotes the first spot, the last one catches a downvote.
	for _, user := range users {
		if _, err := voteRepo.CastVote(user.ID, locations[0].ID, entity.DirectionUp, thresholds); err != nil {
			return err
		}
	}
	if _, err := voteRepo.CastVote(users[0].ID, locations[len(locations)-1].ID, entity.DirectionDown, thresholds); err != nil {
		return err
	}

	log.Info("Seeded %d users and %d locations", len(users)+1, len(locations))
	return nil
}
