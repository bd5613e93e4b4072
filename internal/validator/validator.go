// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
		_ = v.RegisterValidation("goal_status", validateGoalStatus)
	}
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "card", "cash", "transfer", "mobile":
		return true
	}
	return false
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cleared", "pending", "flagged":
		return true
	}
	return false
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "planning", "active", "completed", "paused":
		return true
	}
	return false
}
