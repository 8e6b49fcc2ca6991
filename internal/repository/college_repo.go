package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"careerdisha/internal/model"
)

type CollegeRepo interface {
	Create(ctx context.Context, college *model.College) error
	GetAll(ctx context.Context) ([]model.College, error)
}

type collegeRepo struct {
	collection *mongo.Collection
}

func NewCollegeRepo(db *mongo.Database) CollegeRepo {
	return &collegeRepo{
		collection: db.Collection("colleges"),
	}
}

func (r *collegeRepo) Create(ctx context.Context, college *model.College) error {
	if college.ID == "" {
		college.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, college)
	return err
}

func (r *collegeRepo) GetAll(ctx context.Context) ([]model.College, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var colleges []model.College
	if err = cursor.All(ctx, &colleges); err != nil {
		return nil, err
	}

	return colleges, nil
}
