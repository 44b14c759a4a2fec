package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Lis-Kacper/BeautySaloon/internal/config"
	domain "github.com/Lis-Kacper/BeautySaloon/internal/domain/appointment"
	"github.com/Lis-Kacper/BeautySaloon/internal/httperr"
	"github.com/Lis-Kacper/BeautySaloon/internal/models"
)

type AuthHandler struct {
	repo   domain.Repository
	config *config.Config
}

func NewAuthHandler(repo domain.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{repo: repo, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Username and password are required.")
		return
	}

	username := models.NormalizeUsername(req.Username)

	admin, err := h.repo.GetAdminByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
			return
		}
		log.Error().Err(err).Msg("admin lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, err := h.generateToken(admin)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign token")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"sub":      admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
