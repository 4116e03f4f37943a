package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/auth"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/httpx"
)

// registerHandler godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.RegisterRequest true "account details"
// @Success 201 {object} auth.SessionResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /auth/register [post]
func registerHandler(repo auth.Repository, secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
			httpx.Error(c, http.StatusBadRequest, "name, email and password are required")
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to create account")
			return
		}
		u := &auth.User{
			ID:           uuid.NewString(),
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}
		if err := repo.Create(c.Request.Context(), u); err != nil {
			if errors.Is(err, auth.ErrAlreadyExist) {
				httpx.Error(c, http.StatusConflict, "An account with this email already exists")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "Failed to create account")
			return
		}
		token, err := auth.IssueToken(secret, ttl, u)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to create session")
			return
		}
		c.JSON(http.StatusCreated, auth.SessionResponse{Token: token, User: u})
	}
}

// loginHandler godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body auth.LoginRequest true "credentials"
// @Success 200 {object} auth.SessionResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /auth/login [post]
func loginHandler(repo auth.Repository, secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			httpx.Error(c, http.StatusBadRequest, "email and password are required")
			return
		}
		u, err := repo.GetByEmail(c.Request.Context(), req.Email)
		if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
			httpx.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		token, err := auth.IssueToken(secret, ttl, u)
		if err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to create session")
			return
		}
		c.JSON(http.StatusOK, auth.SessionResponse{Token: token, User: u})
	}
}

// meHandler godoc
// @Summary Fetch the caller's profile
// @Tags auth
// @Produce json
// @Success 200 {object} auth.User
// @Failure 404 {object} httpx.ErrorBody
// @Security BearerAuth
// @Router /auth/me [get]
func meHandler(repo auth.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := repo.GetByID(c.Request.Context(), httpx.UserID(c))
		if err != nil {
			httpx.Error(c, http.StatusNotFound, "User not found")
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
