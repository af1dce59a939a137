package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/connectflx/discovery-service/internal/domain"
	apperrors "github.com/connectflx/discovery-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("location_type", func(fl validator.FieldLevel) bool {
		// Фильтры сравниваются без учёта регистра, поэтому "Winery" допустим
		return domain.IsValidLocationType(strings.ToLower(fl.Field().String()))
	})
	_ = validate.RegisterValidation("selection_source", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case domain.SelectionSourceMarker,
			domain.SelectionSourceListRow,
			domain.SelectionSourceDetailClose,
			domain.SelectionSourceBackground:
			return true
		}
		return false
	})
}

// Validate - валидация структуры. Ошибки валидатора приводятся к AppError с деталями по полям.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.ErrInvalidRequest
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fe.Tag()
	}

	return apperrors.ErrValidationFailed.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

// fieldPath убирает имя корневой структуры: "SetFiltersRequest.Types[0]" -> "Types[0]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
