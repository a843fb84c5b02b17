package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/loopi-routing/internal/domain"
	"github.com/loopi-routing/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("travelmode", func(fl validator.FieldLevel) bool {
		return domain.TravelMode(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("landmarktype", func(fl validator.FieldLevel) bool {
		return domain.LandmarkType(fl.Field().String()).IsValid()
	})
}

// Validate - валидация структуры.
// Ошибки валидатора превращаются в INVALID_REQUEST с описанием полей.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
