package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default values applied when a student is created without them.
const (
	DefaultSchool   = "EMSI"
	DefaultTimezone = "Africa/Casablanca"
	DefaultRole     = "student"
)

// Student defines a student document in the 'students' collection
type Student struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Program   string             `bson:"program"`
	School    string             `bson:"school"`
	Timezone  string             `bson:"timezone"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// FullName returns the display name used by enrichment and analytics views.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
