package usecase

import (
	"strings"

	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
)

// parseID - id dari path/body, error validasi per field kalau bukan uuid
func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, utils.NewFieldError(field, "Must be a valid UUID")
	}
	return id, nil
}

func validate(req interface{}) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewValidationError(errs)
	}
	return nil
}
