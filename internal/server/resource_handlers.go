package server

import (
	"helphub/internal/repository"
	"helphub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListResources handles GET /api/resources
// @Summary List resources
// @Description Newest first
// @Tags resources
// @Produce json
// @Param type query string false "offer or request"
// @Param q query string false "Search name, description and location"
// @Success 200 {array} models.Resource
// @Router /resources [get]
func (s *Server) ListResources(c *fiber.Ctx) error {
	list, err := s.resourceService.List(c.UserContext(), repository.ResourceFilter{
		Type:  c.Query("type"),
		Query: c.Query("q"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// ListMyResources handles GET /api/resources/my-resources
// @Summary List my resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Resource
// @Router /resources/my-resources [get]
func (s *Server) ListMyResources(c *fiber.Ctx) error {
	list, err := s.resourceService.ListMine(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// CreateResource handles POST /api/resources
// @Summary Create resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateResourceInput true "Resource"
// @Success 201 {object} models.Resource
// @Failure 400 {object} models.ErrorResponse
// @Router /resources [post]
func (s *Server) CreateResource(c *fiber.Ctx) error {
	var req service.CreateResourceInput
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c)
	}
	req.UserID = currentUserID(c)

	resource, err := s.resourceService.Create(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resource)
}

// DeleteResource handles DELETE /api/resources/:id
// @Summary Delete my resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID"
// @Success 200 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /resources/{id} [delete]
func (s *Server) DeleteResource(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.resourceService.Delete(c.UserContext(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Resource removed"})
}
