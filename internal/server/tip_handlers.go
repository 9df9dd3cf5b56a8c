package server

import (
	"helphub/internal/models"
	"helphub/internal/repository"
	"helphub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListTips handles GET /api/community-tips
// @Summary List community tips
// @Description Newest first, each with its author
// @Tags community-tips
// @Produce json
// @Param category query string false "Exact category"
// @Success 200 {array} models.CommunityTip
// @Router /community-tips [get]
func (s *Server) ListTips(c *fiber.Ctx) error {
	tips, err := s.tipService.List(c.UserContext(), repository.TipFilter{Category: c.Query("category")})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tips)
}

// RandomTip handles GET /api/community-tips/random
// @Summary Random community tip
// @Tags community-tips
// @Produce json
// @Param category query string false "Exact category"
// @Success 200 {object} models.CommunityTip
// @Failure 404 {object} models.ErrorResponse
// @Router /community-tips/random [get]
func (s *Server) RandomTip(c *fiber.Ctx) error {
	tip, err := s.tipService.Random(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tip)
}

// CreateTip handles POST /api/community-tips
// @Summary Create community tip
// @Tags community-tips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTipInput true "Tip"
// @Success 201 {object} models.CommunityTip
// @Failure 400 {object} models.ErrorResponse
// @Router /community-tips [post]
func (s *Server) CreateTip(c *fiber.Ctx) error {
	var req service.CreateTipInput
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c)
	}
	user := currentUser(c)
	req.UserID = user.ID

	tip, err := s.tipService.Create(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	tip.Owner = &models.Owner{ID: user.ID, FullName: user.FullName}
	return c.Status(fiber.StatusCreated).JSON(tip)
}

// LikeTip handles PUT /api/community-tips/:id/like
// @Summary Like a community tip
// @Tags community-tips
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tip ID"
// @Success 200 {object} models.CommunityTip
// @Failure 404 {object} models.ErrorResponse
// @Router /community-tips/{id}/like [put]
func (s *Server) LikeTip(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tip, err := s.tipService.Like(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tip)
}
