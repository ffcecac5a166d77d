package utils

import (
	"time"

	"TrackFit-Backend/domain"
	"TrackFit-Backend/pkg/nutrition"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	v := validator.New()

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})
	_ = v.RegisterValidation("weight_rate", func(fl validator.FieldLevel) bool {
		return nutrition.ValidWeightRate(fl.Field().Float())
	})
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		_, err := nutrition.ParseGender(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("activity_level", func(fl validator.FieldLevel) bool {
		_, err := nutrition.ParseActivityLevel(fl.Field().String())
		return err == nil
	})

	Validate = v
}

// IsDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}
