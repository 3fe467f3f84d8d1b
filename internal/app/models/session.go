package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood values a session can carry.
const (
	MoodMotivated = "Motivé"
	MoodNeutral   = "Neutre"
	MoodTired     = "Fatigué"
	MoodStressed  = "Stressé"
	MoodHappy     = "Content"
)

// Period values a session can carry.
const (
	PeriodMorning   = "matin"
	PeriodAfternoon = "apres_midi"
	PeriodEvening   = "soir"
	PeriodNight     = "nuit"
)

// Session type values.
const (
	TypeCourse    = "cours"
	TypeExercises = "exercices"
	TypeSummary   = "resume"
	TypeQuiz      = "quiz"
)

// Moods lists every accepted mood value.
func Moods() []string {
	return []string{MoodMotivated, MoodNeutral, MoodTired, MoodStressed, MoodHappy}
}

// Periods lists every accepted period value.
func Periods() []string {
	return []string{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}
}

// SessionTypes lists every accepted session type value.
func SessionTypes() []string {
	return []string{TypeCourse, TypeExercises, TypeSummary, TypeQuiz}
}

// Session defines a study session document in the 'sessions' collection.
// StudentID and SubjectID are weak references: the referenced document may
// have been deleted, and reads must tolerate that.
type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	StudentID   primitive.ObjectID `bson:"studentId"`
	SubjectID   primitive.ObjectID `bson:"subjectId"`
	StartedAt   time.Time          `bson:"startedAt"`
	DurationMin int                `bson:"durationMin"`
	Difficulty  int                `bson:"difficulty"`
	Mood        string             `bson:"mood"`
	Period      string             `bson:"period"`
	Type        string             `bson:"type"`
	Tags        []string           `bson:"tags"`
	Notes       string             `bson:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
