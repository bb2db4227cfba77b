package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"certgen/api-gateway/internal/store"
	"certgen/api-gateway/utils"
)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Store    store.Store
	Logger   *logrus.Logger
	validate *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(st store.Store, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Store:    st,
		Logger:   logger,
		validate: newValidator(),
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindBody parses and validates the JSON body into payload. When it returns
// false the error response has already been written and err is what the
// handler should return.
func (h *ApplicationHandler) bindBody(c *fiber.Ctx, payload interface{}) (ok bool, err error) {
	if err := c.BodyParser(payload); err != nil {
		h.Logger.Warnf("Error parsing request body for %s: %v", c.Path(), err)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return false, c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Status:  "error",
				Message: "Validation failed",
				Errors:  []string{fmt.Sprintf("Field '%s' must be of type %s", typeErr.Field, typeErr.Type)},
			})
		}
		return false, utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}

	if err := h.validate.Struct(payload); err != nil {
		h.Logger.Warnf("Validation error for %s: %v", c.Path(), err)
		return false, utils.RespondWithValidationError(c, err)
	}
	return true, nil
}
