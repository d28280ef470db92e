package validate

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// borrowerEmailRE is a deliberately loose address check: local part of
// letters/digits/+_.-, an @, then a domain of letters/digits/.- with no
// TLD requirement.
var borrowerEmailRE = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// New returns a validator with the borroweremail rule registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("borroweremail", func(fl validator.FieldLevel) bool {
		return borrowerEmailRE.MatchString(fl.Field().String())
	})
	return v
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
