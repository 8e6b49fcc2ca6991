package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"careerdisha/internal/model"
)

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateQuizResult(ctx context.Context, username string, result *model.QuizResult) error
	UpdateLocation(ctx context.Context, username string, lat, lng float64) error
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{
		collection: db.Collection("users"),
	}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // User not found
		}
		return nil, err
	}

	return &user, nil
}

// UpdateQuizResult overwrites the user's current quiz result. At most one
// result is kept per user; no history is retained.
func (r *userRepo) UpdateQuizResult(ctx context.Context, username string, result *model.QuizResult) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"quizResult": result}},
	)
	return err
}

func (r *userRepo) UpdateLocation(ctx context.Context, username string, lat, lng float64) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"profile.lat": lat, "profile.lng": lng}},
	)
	return err
}
