package controller

import (
	"net/http"
	"strings"

	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	api     *echo.Group
	gateway api.AuthGateway
}

func NewAuthController(apiGroup *echo.Group, gateway api.AuthGateway) *AuthController {
	return &AuthController{api: apiGroup, gateway: gateway}
}

// InitAuthRoutes initializes authentication pass-through routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/signup", controller.SignUp)
	controller.api.POST("/auth/signin", controller.SignIn)
	controller.api.POST("/auth/signout", controller.SignOut)
	controller.api.GET("/auth/user", controller.GetUser)
}

// SignUp godoc
// @Summary Register a new user
// @Description Pass-through registration against the external authentication provider
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.CredentialsDTO true "Email and password"
// @Success 201 {object} external.Session "Session for the new user"
// @Failure 400 {object} map[string]string "Invalid credentials payload"
// @Failure 502 {object} map[string]string "Provider rejected the request"
// @Router /auth/signup [post]
func (controller *AuthController) SignUp(c echo.Context) error {
	var dto model.CredentialsDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}

	session, err := controller.gateway.SignUp(dto.Email, dto.Password)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, session)
}

// SignIn godoc
// @Summary Sign in with email and password
// @Description Pass-through password sign-in against the external authentication provider
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.CredentialsDTO true "Email and password"
// @Success 200 {object} external.Session "Authenticated session"
// @Failure 400 {object} map[string]string "Invalid credentials payload"
// @Failure 401 {object} map[string]string "Provider rejected the credentials"
// @Router /auth/signin [post]
func (controller *AuthController) SignIn(c echo.Context) error {
	var dto model.CredentialsDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}

	session, err := controller.gateway.SignInWithPassword(dto.Email, dto.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, session)
}

// SignOut godoc
// @Summary Sign out
// @Description Revoke the session bound to the bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 204 "Session revoked"
// @Failure 401 {object} map[string]string "Missing bearer token"
// @Failure 502 {object} map[string]string "Provider rejected the request"
// @Router /auth/signout [post]
func (controller *AuthController) SignOut(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "bearer token is required"})
	}

	if err := controller.gateway.SignOut(token); err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUser godoc
// @Summary Get the authenticated user
// @Description Retrieve the identity bound to the bearer token; its id is the user id consumed by the saved-city routes
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} external.AuthUser "Authenticated user"
// @Failure 401 {object} map[string]string "Missing or rejected bearer token"
// @Router /auth/user [get]
func (controller *AuthController) GetUser(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "bearer token is required"})
	}

	user, err := controller.gateway.GetUser(token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, user)
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
