package eventsRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classcal/models"
)

// GetAll returns every event in the collection.
func (r *mongoEventRepo) GetAll(ctx context.Context) ([]models.ScheduleEvent, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.ScheduleEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Insert stores a new event and returns the stored record. A blank ID is
// assigned server-side.
func (r *mongoEventRepo) Insert(ctx context.Context, event models.ScheduleEvent) (*models.ScheduleEvent, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateByID applies the event's populated fields to the record with the same
// ID and returns the updated record.
func (r *mongoEventRepo) UpdateByID(ctx context.Context, event models.ScheduleEvent) (*models.ScheduleEvent, error) {
	if event.ID == "" {
		return nil, errors.New("event id is required")
	}

	set := bson.M{"updatedAt": time.Now()}
	if event.Title != "" {
		set["title"] = event.Title
	}
	if event.Description != "" {
		set["description"] = event.Description
	}
	if !event.StartDateTime.IsZero() {
		set["startDateTime"] = event.StartDateTime
	}
	if !event.EndDateTime.IsZero() {
		set["endDateTime"] = event.EndDateTime
	}
	if event.MeetLink != "" {
		set["meetLink"] = event.MeetLink
	}
	if event.TeacherID != "" {
		set["teacherId"] = event.TeacherID
	}
	if event.TeacherName != "" {
		set["teacherName"] = event.TeacherName
	}
	if event.TeacherPhotoURL != "" {
		set["teacherPhotoUrl"] = event.TeacherPhotoURL
	}
	if event.Color != "" {
		set["color"] = event.Color
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ScheduleEvent
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": event.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes an event by ID.
func (r *mongoEventRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("event not found")
	}
	return nil
}
