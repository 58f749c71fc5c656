package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TopicParam is one manually supplied study topic.
type TopicParam struct {
	Name          string  `json:"name" validate:"required"`
	Difficulty    int     `json:"difficulty" validate:"omitempty,min=1,max=5"`
	HoursRequired float64 `json:"hours_required" validate:"omitempty,gte=0"`
}

// GenerateRequest is the body for POST /api/schedule/generate. DailyHours
// and Days fall back to the configured defaults when omitted.
type GenerateRequest struct {
	Topics     []TopicParam `json:"topics" validate:"required,min=1,dive"`
	DailyHours float64      `json:"daily_hours" validate:"omitempty,gt=0"`
	Days       int          `json:"days" validate:"omitempty,gt=0"`
}

var validate = validator.New()

// Validate returns field->reason for any failed validation tags, or nil.
func (req *GenerateRequest) Validate() map[string]string {
	if err := validate.Struct(req); err != nil {
		errs := err.(validator.ValidationErrors)
		fields := make(map[string]string)
		for _, e := range errs {
			fields[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return fields
	}
	return nil
}
