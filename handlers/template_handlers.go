package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"certgen/api-gateway/internal/store"
	"certgen/api-gateway/models"
	"certgen/api-gateway/utils"
)

const templateNotFound = "Template not found"

// CreateTemplate godoc
// @Summary Create a template
// @Description Stores a certificate template. The server assigns the id, createdAt and any missing input ids and styling.
// @Tags templates
// @Accept  json
// @Produce  json
// @Param   template body models.TemplateCreate true "Template to create"
// @Success 200 {object} models.Template
// @Failure 400 {object} utils.ErrorResponse "Malformed JSON"
// @Failure 422 {object} utils.ErrorResponse "Missing or mistyped fields"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/templates [post]
func (h *ApplicationHandler) CreateTemplate(c *fiber.Ctx) error {
	payload := new(models.TemplateCreate)
	if ok, err := h.bindBody(c, payload); !ok {
		return err
	}

	template, err := payload.ToTemplate(time.Now())
	if err != nil {
		if errors.Is(err, models.ErrDuplicateInputID) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
				Status:  "error",
				Message: "Validation failed",
				Errors:  []string{err.Error()},
			})
		}
		return err
	}

	stored, err := h.Store.CreateTemplate(c.UserContext(), template)
	if err != nil {
		h.Logger.Errorf("Error creating template %q: %v", template.Name, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not create template: %v", err))
	}

	h.Logger.WithField("template_id", stored.ID).Infof("Template created with %d inputs", len(stored.Inputs))
	return c.Status(fiber.StatusOK).JSON(stored)
}

// ListTemplates godoc
// @Summary List templates
// @Description Returns up to 1000 templates in store order.
// @Tags templates
// @Produce  json
// @Success 200 {array} models.Template
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/templates [get]
func (h *ApplicationHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.Store.ListTemplates(c.UserContext())
	if err != nil {
		h.Logger.Errorf("Error listing templates: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve templates: %v", err))
	}

	h.Logger.Debugf("Successfully fetched %d templates", len(templates))
	return c.Status(fiber.StatusOK).JSON(templates)
}

// GetTemplate godoc
// @Summary Get a template
// @Tags templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Success 200 {object} models.Template
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/templates/{id} [get]
func (h *ApplicationHandler) GetTemplate(c *fiber.Ctx) error {
	templateID := c.Params("id")

	template, err := h.Store.GetTemplate(c.UserContext(), templateID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return utils.RespondWithError(c, fiber.StatusNotFound, templateNotFound)
	}
	if err != nil {
		h.Logger.Errorf("Error fetching template %s: %v", templateID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve template %s: %v", templateID, err))
	}
	return c.Status(fiber.StatusOK).JSON(template)
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Tags templates
// @Produce  json
// @Param   id path string true "Template ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/templates/{id} [delete]
func (h *ApplicationHandler) DeleteTemplate(c *fiber.Ctx) error {
	templateID := c.Params("id")

	err := h.Store.DeleteTemplate(c.UserContext(), templateID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return utils.RespondWithError(c, fiber.StatusNotFound, templateNotFound)
	}
	if err != nil {
		h.Logger.Errorf("Error deleting template %s: %v", templateID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not delete template %s: %v", templateID, err))
	}

	h.Logger.WithField("template_id", templateID).Info("Template deleted")
	return c.Status(fiber.StatusOK).JSON(utils.MessageResponse{Message: "Template deleted successfully"})
}
