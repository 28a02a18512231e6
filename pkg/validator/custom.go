package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("score", validateScore)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// severity scores are always on the 0-100 scale
func validateScore(fl validator.FieldLevel) bool {
	score := fl.Field().Int()
	return score >= 0 && score <= 100
}
