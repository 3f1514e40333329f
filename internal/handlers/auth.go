package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shawki99/Auth-Sys-BE/internal/auth"
	"github.com/shawki99/Auth-Sys-BE/internal/dto"
	"github.com/shawki99/Auth-Sys-BE/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, signin and welcome.
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "New account"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := h.svc.Signup(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		return
	}
	c.JSON(http.StatusCreated, dto.SignupResponse{Message: "User created successfully", UserID: userID})
}

// Signin godoc
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SigninRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.svc.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signin failed"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}

// Welcome godoc
// @Summary      Greet the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.WelcomeResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/welcome [get]
func (h *AuthHandler) Welcome(c *gin.Context) {
	// Token verification happened in RequireToken; the identity in
	// context is trusted as-is.
	id, ok := auth.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	c.JSON(http.StatusOK, dto.WelcomeResponse{Message: fmt.Sprintf("Welcome, %s!", id.Name)})
}
