// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"theark/internal/ledger"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entry_kind", validateEntryKind)
		_ = v.RegisterValidation("period_key", validatePeriodKey)
	}
}

func validateEntryKind(fl validator.FieldLevel) bool {
	return ledger.Kind(fl.Field().String()).Valid()
}

func validatePeriodKey(fl validator.FieldLevel) bool {
	return ledger.ValidPeriod(int(fl.Field().Int()))
}
