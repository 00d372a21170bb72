package persistent

import (
	"geodrop/internal/entity"
	"geodrop/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		IsActive:  m.IsActive,
		Credits:   m.Credits,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Username:  e.Username,
		Password:  e.Password,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		Credits:   e.Credits,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToLocationEntity(m *model.LocationModel) *entity.Location {
	if m == nil {
		return nil
	}

	loc := &entity.Location{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Longitude:   m.Longitude,
		Latitude:    m.Latitude,
		Text:        m.Text,
		Anonymous:   m.Anonymous,
		Upvotes:     m.Upvotes,
		Downvotes:   m.Downvotes,
		TotalPoints: m.TotalPoints,
		Status:      entity.VerificationStatus(m.Status),
		Credits:     m.Credits,
		AutoDelete:  m.AutoDelete,
		DeleteAt:    m.DeleteAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.Media) > 0 {
		loc.Media = make([]entity.MediaItem, len(m.Media))
		for i, mm := range m.Media {
			loc.Media[i] = ToMediaEntity(&mm)
		}
	}

	return loc
}

func ToLocationModel(e *entity.Location) *model.LocationModel {
	if e == nil {
		return nil
	}

	loc := &model.LocationModel{
		ID:          e.ID,
		CreatorID:   e.CreatorID,
		Longitude:   e.Longitude,
		Latitude:    e.Latitude,
		Text:        e.Text,
		Anonymous:   e.Anonymous,
		Upvotes:     e.Upvotes,
		Downvotes:   e.Downvotes,
		TotalPoints: e.TotalPoints,
		Status:      string(e.Status),
		Credits:     e.Credits,
		AutoDelete:  e.AutoDelete,
		DeleteAt:    e.DeleteAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if len(e.Media) > 0 {
		loc.Media = make([]model.MediaModel, len(e.Media))
		for i, me := range e.Media {
			loc.Media[i] = *ToMediaModel(&me)
		}
	}

	return loc
}

func ToMediaEntity(m *model.MediaModel) entity.MediaItem {
	if m == nil {
		return entity.MediaItem{}
	}

	return entity.MediaItem{
		ID:         m.ID,
		LocationID: m.LocationID,
		URL:        m.URL,
		Type:       entity.MediaType(m.Type),
		Order:      m.Order,
		CreatedAt:  m.CreatedAt,
	}
}

func ToMediaModel(e *entity.MediaItem) *model.MediaModel {
	if e == nil {
		return nil
	}

	return &model.MediaModel{
		ID:         e.ID,
		LocationID: e.LocationID,
		URL:        e.URL,
		Type:       string(e.Type),
		Order:      e.Order,
		CreatedAt:  e.CreatedAt,
	}
}

func ToVoteEntity(m *model.VoteModel) *entity.Vote {
	if m == nil {
		return nil
	}

	return &entity.Vote{
		ID:         m.ID,
		UserID:     m.UserID,
		LocationID: m.LocationID,
		Direction:  entity.Direction(m.Direction),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToBadgeEntity(m *model.BadgeModel) *entity.Badge {
	if m == nil {
		return nil
	}

	return &entity.Badge{
		ID:        m.ID,
		UserID:    m.UserID,
		BadgeID:   m.BadgeID,
		GrantedAt: m.GrantedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		LocationID:    m.LocationID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:            e.ID,
		UserID:        e.UserID,
		LocationID:    e.LocationID,
		Type:          string(e.Type),
		Amount:        e.Amount,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		CreatedAt:     e.CreatedAt,
	}
}
