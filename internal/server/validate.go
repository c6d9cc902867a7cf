package server

import (
	"errors"
	"fmt"
	"net/http"

	"lumiere/pkg/types"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Domain enumerations. Registration only fails on a nil func.
	_ = v.RegisterValidation("feature_icon", func(fl validator.FieldLevel) bool {
		return types.ValidFeatureIcon(fl.Field().String())
	})
	_ = v.RegisterValidation("service_day", func(fl validator.FieldLevel) bool {
		return types.ValidServiceDay(fl.Field().String())
	})
	_ = v.RegisterValidation("gallery_category", func(fl validator.FieldLevel) bool {
		return types.ValidGalleryCategory(fl.Field().String())
	})

	return v
}

// decodeAndValidate fills dst from the posted form values and applies its
// validate tags. The returned error is already human-readable and names the
// offending field.
func (s *Service) decodeAndValidate(r *http.Request, dst any) error {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			return errors.New("invalid form payload")
		}
	}

	if err := decoder.Decode(dst, r.PostForm); err != nil {
		return errors.New("invalid form payload")
	}

	if err := s.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errors.New(validationMessage(fieldErrs[0]))
		}
		return err
	}

	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "feature_icon":
		return fmt.Sprintf("%s is not one of the available icons", fe.Field())
	case "service_day":
		return fmt.Sprintf("%s is not a valid day", fe.Field())
	case "gallery_category":
		return fmt.Sprintf("%s is not a valid gallery category", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
