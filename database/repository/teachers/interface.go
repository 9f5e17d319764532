package teachersRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"classcal/models"
)

// TeacherRepository reads the externally seeded teachers collection. Teachers
// are never written by this service.
type TeacherRepository interface {
	GetAll(ctx context.Context) ([]models.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
}

type mongoTeacherRepo struct {
	coll *mongo.Collection
}

// NewMongoTeacherRepo returns a new TeacherRepository instance using MongoDB.
func NewMongoTeacherRepo(client *mongo.Client, dbName string) TeacherRepository {
	return &mongoTeacherRepo{
		coll: client.Database(dbName).Collection("teachers"),
	}
}
