package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/store"
	"github.com/korbahq/korba-app/utils"
)

type UserController struct {
	Sessions *store.SessionStore
}

func NewUserController(sessions *store.SessionStore) *UserController {
	return &UserController{Sessions: sessions}
}

// Login -> always succeeds; the mock identity takes the supplied email.
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user := uc.Sessions.Login(req.Email, req.Password)

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User logged in: %s", user.Email)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Signup -> always succeeds with a fresh identity.
func (uc *UserController) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user := uc.Sessions.Signup(req.Name, req.Email, req.Password)

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user signed up: %s", user.Email)

	utils.RespondJSON(c, http.StatusCreated, "Signup successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout -> clears the session and blacklists the presented token.
func (uc *UserController) Logout(c *gin.Context) {
	uc.Sessions.Logout()

	if auth := c.GetHeader("Authorization"); auth != "" {
		utils.BlacklistToken(strings.TrimPrefix(auth, "Bearer "))
	}

	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetProfile -> the active session
func (uc *UserController) GetProfile(c *gin.Context) {
	user := uc.Sessions.Current()
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile data", user)
}

// UpdateProfile -> merge supplied fields into the active session
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user := uc.Sessions.UpdateProfile(req)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile updated", user)
}
