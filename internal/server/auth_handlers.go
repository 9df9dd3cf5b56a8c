package server

import (
	"helphub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	ID       uint   `json:"_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Token    string `json:"token"`
}

func newAuthResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		ID:       res.User.ID,
		Email:    res.User.Email,
		FullName: res.User.FullName,
		Token:    res.Token,
	}
}

// Signup handles POST /api/auth/signup
// @Summary User signup
// @Description Register a new account and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterInput true "Signup request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c)
	}

	res, err := s.authService.Register(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newAuthResponse(res))
}

// Signin handles POST /api/auth/signin
// @Summary User signin
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "Signin request"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/signin [post]
func (s *Server) Signin(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c)
	}

	res, err := s.authService.Login(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(newAuthResponse(res))
}
