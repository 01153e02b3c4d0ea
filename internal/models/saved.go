package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	SavedDbName  = "eventa"
	SavedColName = "saved_events"
)

type SavedItem struct {
	EventID string    `bson:"event_id" json:"event_id"`
	SavedAt time.Time `bson:"saved_at" json:"saved_at"`
}

// SavedEvents is one document per user holding every event they bookmarked,
// keyed by event id so saving twice is a no-op overwrite.
type SavedEvents struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID            `bson:"user_id" json:"user_id" validate:"required"`
	Items     map[string]SavedItem `bson:"items" json:"items"`
	CreatedAt time.Time            `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time            `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type SavedEventsRepo interface {
	SaveEvent(ctx context.Context, userId uuid.UUID, eventId string) (*SavedEvents, error)
	UnsaveEvent(ctx context.Context, userId uuid.UUID, eventId string) error
	GetSavedEventsByUserID(ctx context.Context, userId uuid.UUID) (*SavedEvents, error)
}

func (mdb *MongodbRepo) SaveEvent(ctx context.Context, userId uuid.UUID, eventId string) (*SavedEvents, error) {
	col, err := mdb.GetCollection(SavedDbName, SavedColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	now := time.Now()
	filter := bson.M{"user_id": userId}

	update := bson.M{
		"$set": bson.M{
			"updated_at": now,
			fmt.Sprintf("items.%s", eventId): SavedItem{
				EventID: eventId,
				SavedAt: now,
			},
		},
		"$setOnInsert": bson.M{
			"user_id":    userId,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result SavedEvents
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error upserting saved event: %v", err)
	}

	return &result, nil
}

func (mdb *MongodbRepo) UnsaveEvent(ctx context.Context, userId uuid.UUID, eventId string) error {
	col, err := mdb.GetCollection(SavedDbName, SavedColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user_id": userId}
	update := bson.M{
		"$unset": bson.M{
			fmt.Sprintf("items.%s", eventId): "",
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
	}

	_, err = col.UpdateOne(ctx, filter, update)
	return err
}

func (mdb *MongodbRepo) GetSavedEventsByUserID(ctx context.Context, userId uuid.UUID) (*SavedEvents, error) {
	col, err := mdb.GetCollection(SavedDbName, SavedColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var saved SavedEvents
	err = col.FindOne(ctx, bson.M{"user_id": userId}).Decode(&saved)
	if err == mongo.ErrNoDocuments {
		// A user with no saved events has no document yet
		return &SavedEvents{UserID: userId, Items: map[string]SavedItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding saved events: %v", err)
	}

	return &saved, nil
}
