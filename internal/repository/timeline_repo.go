package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careerdisha/internal/model"
)

type TimelineRepo interface {
	Create(ctx context.Context, event *model.TimelineEvent) error
	GetAll(ctx context.Context) ([]model.TimelineEvent, error)
}

type timelineRepo struct {
	collection *mongo.Collection
}

func NewTimelineRepo(db *mongo.Database) TimelineRepo {
	return &timelineRepo{
		collection: db.Collection("timeline"),
	}
}

func (r *timelineRepo) Create(ctx context.Context, event *model.TimelineEvent) error {
	if event.ID == "" {
		event.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *timelineRepo) GetAll(ctx context.Context) ([]model.TimelineEvent, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.TimelineEvent
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}
