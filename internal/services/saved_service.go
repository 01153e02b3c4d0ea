package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
)

type SavedEventsService struct {
	savedRepo models.SavedEventsRepo
}

func NewSavedEventsService(savedRepo models.SavedEventsRepo) *SavedEventsService {
	return &SavedEventsService{
		savedRepo: savedRepo,
	}
}

func (ss *SavedEventsService) SaveEvent(ctx context.Context, userId uuid.UUID, eventId string) (*models.SavedEvents, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if strings.TrimSpace(eventId) == "" {
		return nil, fmt.Errorf("event ID cannot be empty")
	}
	if _, err := uuid.Parse(eventId); err != nil {
		return nil, fmt.Errorf("invalid event ID format")
	}

	return ss.savedRepo.SaveEvent(ctx, userId, eventId)
}

func (ss *SavedEventsService) UnsaveEvent(ctx context.Context, userId uuid.UUID, eventId string) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}
	if strings.TrimSpace(eventId) == "" {
		return fmt.Errorf("event ID cannot be empty")
	}

	return ss.savedRepo.UnsaveEvent(ctx, userId, eventId)
}

func (ss *SavedEventsService) GetSavedEvents(ctx context.Context, userId uuid.UUID) (*models.SavedEvents, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	return ss.savedRepo.GetSavedEventsByUserID(ctx, userId)
}
