package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

type AuthRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// AuthLogin verifies credentials against the stored hash and salt and issues
// an HS256 token carrying the login id and account type.
func AuthLogin(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var login models.Login
	if err := gormDB.Where("email = ?", req.Email).First(&login).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if !helpers.VerifyPasswordHash(req.Senha, login.PasswordHash, login.PasswordSalt) {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return
	}

	expireHours := 24
	if h, err := helpers.StringToInt(os.Getenv("JWT_EXPIRE_HOURS")); err == nil && h > 0 {
		expireHours = h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"idPessoa":  login.IDPessoa,
		"tipoConta": login.TipoConta,
		"exp":       time.Now().Add(time.Duration(expireHours) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		helpers.RespondWithInternalError(c, "Failed to generate token.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"login": gin.H{
			"idPessoa":  login.IDPessoa,
			"nome":      login.Nome,
			"email":     login.Email,
			"tipoConta": login.TipoConta,
		},
	})
}
