package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studytrack/api/internal/pkg/apperrors"
)

// Default list sizes per entity
const (
	StudentListLimit    = 100
	SubjectListLimit    = 200
	SessionListDefault  = 100
	EnrichedListDefault = 50
)

// parseObjectID converts an external hex identifier into its store-native
// form. Malformed input fails with ErrInvalidID before any store access.
func parseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, hex)
	}
	return id, nil
}
