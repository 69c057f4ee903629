package bookings

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Registers the bookingstatus binding tag so admin DTOs validate status
// values against the lifecycle enum.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookingstatus", func(fl validator.FieldLevel) bool {
			return IsValidStatus(fl.Field().String())
		})
	}
}
