// Package common holds the helpers shared by the webapi handler packages:
// the error body, the mapping from domain errors to HTTP statuses, request
// binding and path parameter parsing.
package common

import (
	"errors"

	"github.com/amirasaad/networth/pkg/currency"
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/domain/lineitem"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/middleware"
	"github.com/amirasaad/networth/pkg/service/export"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body of deletions.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Messaged lets a request DTO choose the message reported when it fails
// validation.
type Messaged interface {
	ValidationMessage() string
}

type errorStatus struct {
	err     error
	status  int
	message string
}

// Specific errors wrap generic ones, so they must come first.
var errorStatuses = []errorStatus{
	{snapshot.ErrInvalidDate, fiber.StatusBadRequest, "Invalid date"},
	{snapshot.ErrNoItems, fiber.StatusBadRequest, "At least one item is required"},
	{snapshot.ErrInvalidLineItems, fiber.StatusForbidden, "Invalid line items"},
	{snapshot.ErrValueOutOfRange, fiber.StatusBadRequest, "Value out of range"},
	{category.ErrNameAndTypeRequired, fiber.StatusBadRequest, "Name and type are required"},
	{category.ErrInvalidType, fiber.StatusBadRequest, "Invalid type"},
	{category.ErrNameRequired, fiber.StatusBadRequest, "Name is required"},
	{lineitem.ErrNameRequired, fiber.StatusBadRequest, "Name is required"},
	{lineitem.ErrCategoryAndNameRequired, fiber.StatusBadRequest, "categoryId and name are required"},
	{lineitem.ErrCategoryNotFound, fiber.StatusNotFound, "Category not found"},
	{currency.ErrInvalidCurrency, fiber.StatusBadRequest, "Invalid currency"},
	{export.ErrInvalidFormat, fiber.StatusBadRequest, "Invalid format"},
	{domain.ErrNotFound, fiber.StatusNotFound, "Not found"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "Unauthorized"},
	{domain.ErrForbidden, fiber.StatusForbidden, "Forbidden"},
	{domain.ErrAlreadyExists, fiber.StatusConflict, "Already exists"},
	{domain.ErrValidation, fiber.StatusBadRequest, "Invalid request"},
}

// ErrorToStatusCode maps domain errors to an HTTP status and the message
// shown to the client. Anything unknown is an internal error.
func ErrorToStatusCode(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, es.message
		}
	}
	return fiber.StatusInternalServerError, "Internal Server Error"
}

// ErrorJSON writes {"error": message} with status.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// HandleError writes the response for err. Internal errors are logged and
// reported without detail.
func HandleError(c *fiber.Ctx, err error) error {
	status, message := ErrorToStatusCode(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return ErrorJSON(c, status, message)
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure it writes the 400 response and
// returns a nil input; the handler then returns the error as is.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		message := "Validation failed"
		if m, ok := any(&input).(Messaged); ok {
			message = m.ValidationMessage()
		}
		return nil, ErrorJSON(c, fiber.StatusBadRequest, message)
	}
	return &input, nil
}

// ParseID reads a uuid path parameter. A malformed id cannot name any
// stored entity, so it is reported as not found.
func ParseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

// CurrentSession returns the session resolved by the auth middleware.
func CurrentSession(c *fiber.Ctx) (*dto.Session, error) {
	s, ok := middleware.Session(c)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

// CurrentUserID returns the id of the signed-in user.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	s, err := CurrentSession(c)
	if err != nil {
		return uuid.Nil, err
	}
	return s.User.ID, nil
}
