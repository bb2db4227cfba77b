package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"certgen/api-gateway/internal/store"
	"certgen/api-gateway/models"
	"certgen/api-gateway/utils"
)

// GenerateCertificate godoc
// @Summary Compose certificate data
// @Description Pairs a stored template with the supplied input values. Rendering happens on the client; the values are echoed unchecked.
// @Tags certificates
// @Accept  json
// @Produce  json
// @Param   data body models.CertificateData true "Template id and values keyed by input id"
// @Success 200 {object} models.Certificate
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/certificates/generate [post]
func (h *ApplicationHandler) GenerateCertificate(c *fiber.Ctx) error {
	payload := new(models.CertificateData)
	if ok, err := h.bindBody(c, payload); !ok {
		return err
	}

	templateID := *payload.TemplateID
	template, err := h.Store.GetTemplate(c.UserContext(), templateID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return utils.RespondWithError(c, fiber.StatusNotFound, templateNotFound)
	}
	if err != nil {
		h.Logger.Errorf("Error fetching template %s for certificate: %v", templateID, err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve template %s: %v", templateID, err))
	}

	return c.Status(fiber.StatusOK).JSON(models.Certificate{
		Template:    template,
		InputValues: payload.InputValues,
	})
}
