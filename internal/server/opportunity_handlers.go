package server

import (
	"helphub/internal/repository"
	"helphub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListOpportunities handles GET /api/opportunities
// @Summary List opportunities
// @Description Ordered by date, soonest first
// @Tags opportunities
// @Produce json
// @Param category query string false "Exact category"
// @Param q query string false "Search title, description and location"
// @Success 200 {array} models.Opportunity
// @Router /opportunities [get]
func (s *Server) ListOpportunities(c *fiber.Ctx) error {
	list, err := s.opportunityService.List(c.UserContext(), repository.OpportunityFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// CreateOpportunity handles POST /api/opportunities
// @Summary Create opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateOpportunityInput true "Opportunity"
// @Success 201 {object} models.Opportunity
// @Failure 400 {object} models.ErrorResponse
// @Router /opportunities [post]
func (s *Server) CreateOpportunity(c *fiber.Ctx) error {
	var req service.CreateOpportunityInput
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c)
	}
	req.UserID = currentUserID(c)

	opportunity, err := s.opportunityService.Create(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(opportunity)
}

// ListMySignups handles GET /api/opportunities/signups
// @Summary List my signups
// @Description Newest first, each with its opportunity
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.VolunteerSignup
// @Router /opportunities/signups [get]
func (s *Server) ListMySignups(c *fiber.Ctx) error {
	signups, err := s.signupService.ListMine(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(signups)
}

// SignupRequest is the body of POST /api/opportunities/signup.
type SignupRequest struct {
	OpportunityID uint `json:"opportunity_id"`
}

// SignUpForOpportunity handles POST /api/opportunities/signup
// @Summary Sign up for an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SignupRequest true "Opportunity id"
// @Success 201 {object} models.VolunteerSignup
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /opportunities/signup [post]
func (s *Server) SignUpForOpportunity(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c)
	}

	signup, err := s.signupService.SignUp(c.UserContext(), currentUserID(c), req.OpportunityID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(signup)
}

// CancelSignup handles DELETE /api/opportunities/signup/:id
// @Summary Cancel my signup
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Signup ID"
// @Success 200 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /opportunities/signup/{id} [delete]
func (s *Server) CancelSignup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.signupService.Cancel(c.UserContext(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Signup cancelled"})
}
