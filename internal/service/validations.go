package service

import (
	"errors"
	"fmt"
	"sync"

	errorvalues "github.com/berkaychi/ClimbUpAPI-sub001/internal/error_values"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Rejects zero uuid. Works for uuid.UUID and *uuid.UUID fields
		validate.RegisterValidation("not_nil_uuid", func(fl validator.FieldLevel) bool {
			id, ok := fl.Field().Interface().(uuid.UUID)
			return ok && id != uuid.Nil
		})
	})
}

// validateStruct turns validator failures into ErrValidation with the failed fields listed.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace()+":"+fe.Tag())
		}
		return fmt.Errorf("%w: %v", errorvalues.ErrValidation, fields)
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, err.Error())
}
