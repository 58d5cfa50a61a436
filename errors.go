package main

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var ErrInternalServerError = fiber.Map{"message": "Internal server error."}

// APIError is an application error carrying the HTTP status it should be
// answered with. Payload entries are merged into the response body.
type APIError struct {
	Message    string
	StatusCode int
	Payload    fiber.Map
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) ToMap() fiber.Map {
	m := fiber.Map{}

	for k, v := range e.Payload {
		m[k] = v
	}

	if _, ok := m["message"]; !ok {
		m["message"] = e.Message
	}

	return m
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Message: message, StatusCode: status}
}

func BadRequest(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, message)
}

func NotFound(message string) *APIError {
	return NewAPIError(http.StatusNotFound, message)
}

// resultError answers with the {"result": message} shape used for favorite
// existence checks.
func resultError(status int, message string) *APIError {
	return &APIError{
		Message:    message,
		StatusCode: status,
		Payload:    fiber.Map{"result": message},
	}
}

// ErrorHandler is the single place errors returned by handlers become JSON responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *APIError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &apiErr):
		return c.Status(apiErr.StatusCode).JSON(apiErr.ToMap())
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Record not found."})
	}

	return c.Status(http.StatusInternalServerError).JSON(ErrInternalServerError)
}

// statusOf reports the status ErrorHandler will answer err with.
func statusOf(err error) int {
	var apiErr *APIError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}
