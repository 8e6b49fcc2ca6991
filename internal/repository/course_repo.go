package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"careerdisha/internal/model"
)

type CourseRepo interface {
	Create(ctx context.Context, course *model.Course) error
	GetAll(ctx context.Context) ([]model.Course, error)
}

type courseRepo struct {
	collection *mongo.Collection
}

func NewCourseRepo(db *mongo.Database) CourseRepo {
	return &courseRepo{
		collection: db.Collection("courses"),
	}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	if course.ID == "" {
		course.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, course)
	return err
}

func (r *courseRepo) GetAll(ctx context.Context) ([]model.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []model.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}

	return courses, nil
}
