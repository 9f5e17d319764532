package eventsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"classcal/models"
)

// EventRepository is the record-oriented contract of the remote events
// collection: select-all, insert-one, update-by-id, delete-by-id.
type EventRepository interface {
	GetAll(ctx context.Context) ([]models.ScheduleEvent, error)
	Insert(ctx context.Context, event models.ScheduleEvent) (*models.ScheduleEvent, error)
	UpdateByID(ctx context.Context, event models.ScheduleEvent) (*models.ScheduleEvent, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo returns a new EventRepository instance using MongoDB.
func NewMongoEventRepo(client *mongo.Client, dbName string) EventRepository {
	return &mongoEventRepo{
		coll: client.Database(dbName).Collection("events"),
	}
}
