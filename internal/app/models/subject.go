package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCoefficient is applied when a subject is created without one.
const DefaultCoefficient = 2

// Subject defines a subject document in the 'subjects' collection
type Subject struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Program     string             `bson:"program"`
	Coefficient int                `bson:"coefficient"`
	Color       string             `bson:"color,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
