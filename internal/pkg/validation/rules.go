package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/studytrack/api/internal/app/models"
)

// Name validation min length, shared by student and subject create payloads
const NameMinLength = 2

// enum sets used by the custom binding rules
var (
	moodSet        = toSet(models.Moods())
	periodSet      = toSet(models.Periods())
	sessionTypeSet = toSet(models.SessionTypes())
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsMood reports whether v is an accepted mood value
func IsMood(v string) bool {
	_, ok := moodSet[v]
	return ok
}

// IsPeriod reports whether v is an accepted period value
func IsPeriod(v string) bool {
	_, ok := periodSet[v]
	return ok
}

// IsSessionType reports whether v is an accepted session type value
func IsSessionType(v string) bool {
	_, ok := sessionTypeSet[v]
	return ok
}

// RegisterRules attaches the custom enum rules (mood, period, sessiontype) to
// gin's validator engine so DTO binding tags can use them.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return IsMood(fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		return IsPeriod(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("sessiontype", func(fl validator.FieldLevel) bool {
		return IsSessionType(fl.Field().String())
	})
}
