package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"certgen/api-gateway/models"
	"certgen/api-gateway/utils"
)

// Root godoc
// @Summary Service banner
// @Tags status
// @Produce  json
// @Success 200 {object} utils.MessageResponse
// @Router /api/ [get]
func (h *ApplicationHandler) Root(c *fiber.Ctx) error {
	return c.JSON(utils.MessageResponse{Message: "Certificate Generator API"})
}

// CreateStatusCheck godoc
// @Summary Record a status check
// @Tags status
// @Accept  json
// @Produce  json
// @Param   status body models.StatusCheckCreate true "Client name"
// @Success 200 {object} models.StatusCheck
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/status [post]
func (h *ApplicationHandler) CreateStatusCheck(c *fiber.Ctx) error {
	payload := new(models.StatusCheckCreate)
	if ok, err := h.bindBody(c, payload); !ok {
		return err
	}

	check, err := h.Store.CreateStatusCheck(c.UserContext(), payload.ToStatusCheck(time.Now()))
	if err != nil {
		h.Logger.Errorf("Error creating status check: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not create status check: %v", err))
	}
	return c.Status(fiber.StatusOK).JSON(check)
}

// ListStatusChecks godoc
// @Summary List status checks
// @Description Returns up to 1000 status checks in store order.
// @Tags status
// @Produce  json
// @Success 200 {array} models.StatusCheck
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/status [get]
func (h *ApplicationHandler) ListStatusChecks(c *fiber.Ctx) error {
	checks, err := h.Store.ListStatusChecks(c.UserContext())
	if err != nil {
		h.Logger.Errorf("Error listing status checks: %v", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Could not retrieve status checks: %v", err))
	}
	return c.Status(fiber.StatusOK).JSON(checks)
}

// Health godoc
// @Summary Health check
// @Description Pings the document store. An unreachable cache does not fail the check.
// @Tags status
// @Produce  json
// @Success 200 {object} utils.StatusResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /health [get]
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		h.Logger.Errorf("Health check failed: %v", err)
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, "Document store unavailable")
	}
	return c.Status(fiber.StatusOK).JSON(utils.StatusResponse{
		Status:  "ok",
		Message: "Certificate Generator API is healthy",
	})
}
