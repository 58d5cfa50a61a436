package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var ErrInvalidRequestBody = BadRequest("Invalid request body.")

var MsgFavoriteAdded = fiber.Map{"results": "Favorite added"}
var MsgFavoriteRemoved = fiber.Map{"results": "Favorite was removed"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

type FavoriteRequest struct {
	UserId       *uint `json:"user_id" validate:"omitempty,gt=0"`
	CharactersId *uint `json:"characters_id" validate:"required_without=PlanetsId,excluded_with=PlanetsId"`
	PlanetsId    *uint `json:"planets_id" validate:"required_without=CharactersId,excluded_with=CharactersId"`
}

// ValidateRequest turns validator failures into a 400 listing every offending field.
func ValidateRequest(request interface{}) error {
	err := validate.Struct(request)

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make(fiber.Map, len(validationErrors))

	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = fmt.Sprintf("failed on %s", fieldError.Tag())
	}

	return &APIError{
		Message:    "Request validation failed.",
		StatusCode: fiber.StatusBadRequest,
		Payload:    fiber.Map{"fields": fields},
	}
}
