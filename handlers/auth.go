package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nagulan1506/real-estate-app/models"
	"github.com/nagulan1506/real-estate-app/store"
	"github.com/nagulan1506/real-estate-app/utils"
)

type AuthController struct {
	users       store.UserStore
	mailer      *utils.Mailer
	frontendURL string
}

func NewAuthController(users store.UserStore, mailer *utils.Mailer, frontendURL string) *AuthController {
	return &AuthController{users: users, mailer: mailer, frontendURL: frontendURL}
}

func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}
	if !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid email address"})
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Registration failed"})
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	err = ac.users.CreateUser(c.Request().Context(), &user)
	switch {
	case err == store.ErrUnavailable:
		// Demo mode: hand back a transient identity.
		return c.JSON(http.StatusCreated, models.PublicUser{ID: "temp", Name: req.Name, Email: req.Email, Role: role})
	case err == store.ErrDuplicate:
		return c.JSON(http.StatusConflict, map[string]string{"message": "Email already registered"})
	case err != nil:
		c.Logger().Errorf("register failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Registration failed"})
	}

	return c.JSON(http.StatusCreated, models.PublicUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role})
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing required fields"})
	}

	user, err := ac.users.FindUserByEmail(c.Request().Context(), req.Email)
	if err == store.ErrUnavailable {
		// Demo mode: short-lived token, agents recognized by address.
		role := "user"
		if strings.Contains(strings.ToLower(req.Email), "agent") {
			role = "agent"
		}
		token, err := utils.GenerateJWTWithTTL("temp", role, 24*time.Hour)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Login failed"})
		}
		return c.JSON(http.StatusOK, models.LoginResponse{
			Token: token,
			User:  models.PublicUser{ID: "temp", Email: req.Email, Role: role},
		})
	}
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	}
	if utils.CheckPassword(user.PasswordHash, req.Password) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Login failed"})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  models.PublicUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

func (ac *AuthController) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email is required"})
	}

	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error processing request"})
	}
	token := hex.EncodeToString(buf)

	err := ac.users.SetResetToken(c.Request().Context(), req.Email, token, time.Now().Add(time.Hour))
	switch {
	case err == store.ErrUnavailable:
		log.Printf("[Mock DB] Setting reset token for %s: %s", req.Email, token)
	case err == store.ErrNotFound:
		return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
	case err != nil:
		c.Logger().Errorf("forgot password failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error processing request"})
	}

	resetURL := ac.frontendURL + "/reset-password/" + token
	if ac.mailer.SendResetLink(req.Email, resetURL) {
		return c.JSON(http.StatusOK, map[string]string{"message": "Password reset email sent"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset email sent (mock)"})
}

func (ac *AuthController) ResetPassword(c echo.Context) error {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.Token == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing fields"})
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error resetting password"})
	}

	err = ac.users.ResetPassword(c.Request().Context(), req.Token, hash)
	switch {
	case err == store.ErrUnavailable:
		log.Printf("[Mock DB] Password reset for token %s", req.Token)
	case err == store.ErrNotFound:
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid or expired token"})
	case err != nil:
		c.Logger().Errorf("reset password failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error resetting password"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset successful"})
}
