package teachersRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"classcal/models"
)

// GetAll returns every teacher on the allow-list.
func (r *mongoTeacherRepo) GetAll(ctx context.Context) ([]models.Teacher, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teachers []models.Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// GetByEmail returns the teacher with the given email.
func (r *mongoTeacherRepo) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&teacher); err != nil {
		return nil, err
	}
	return &teacher, nil
}
