package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/middleware"
	"github.com/bairroconnect/api/internal/models"
)

func GetAllLogins(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var logins []models.Login
	if err := gormDB.Find(&logins).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving logins.", err)
		return
	}

	c.JSON(http.StatusOK, logins)
}

func GetLoginByID(c *gin.Context) {
	id, err := helpers.StringToInt(c.Query("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var login models.Login
	if err := gormDB.First(&login, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Login with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving login.", err)
		return
	}

	c.JSON(http.StatusOK, login)
}

func GetLoginByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Email is required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var login models.Login
	if err := gormDB.Where("email = ?", email).First(&login).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Login with email '%s' not found.", email))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving login by email.", err)
		return
	}

	c.JSON(http.StatusOK, login)
}

func AddLogin(c *gin.Context) {
	var login models.Login
	if err := c.ShouldBindJSON(&login); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var existing models.Login
	result := gormDB.Where("email = ?", login.Email).First(&existing)
	if result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, fmt.Sprintf("A login with email '%s' already exists.", login.Email))
		return
	}
	if result.Error != gorm.ErrRecordNotFound {
		helpers.RespondWithInternalError(c, "Error checking existing login.", result.Error)
		return
	}

	hash, salt, err := helpers.CreatePasswordHash(login.Senha)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Password must not be empty.")
		return
	}

	login.IDPessoa = 0
	login.Senha = ""
	login.Token = ""
	login.PasswordHash = hash
	login.PasswordSalt = salt
	if login.TipoConta == "" {
		login.TipoConta = models.AccountMunicipe
	}

	if err := gormDB.Create(&login).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to create login.", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/Logins/GetById?id=%d", login.IDPessoa))
	c.JSON(http.StatusCreated, login)
}

// UpdateLogin copies only the mutable profile fields; password hash and salt
// are untouched here and only change through UpdateSenha.
func UpdateLogin(c *gin.Context) {
	id, err := helpers.StringToInt(c.Query("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return
	}

	var updated models.Login
	if err := c.ShouldBindJSON(&updated); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if uint(id) != updated.IDPessoa {
		helpers.RespondWithError(c, http.StatusBadRequest, "Login id does not match the id in the request.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var login models.Login
	if err := gormDB.First(&login, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Login with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding login.", err)
		return
	}

	login.Nome = updated.Nome
	login.Sobrenome = updated.Sobrenome
	login.Email = updated.Email
	login.DataNasc = updated.DataNasc
	login.TipoConta = updated.TipoConta

	if err := gormDB.Save(&login).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to update login.", err)
		return
	}

	c.JSON(http.StatusOK, login)
}

type UpdateSenhaRequest struct {
	Senha string `json:"senha" binding:"required"`
}

// UpdateSenha re-keys the password of the authenticated login and returns the
// number of affected rows.
func UpdateSenha(c *gin.Context) {
	idPessoa := c.GetUint(middleware.ContextPersonID)
	if idPessoa == 0 {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Missing authenticated identity.")
		return
	}

	var req UpdateSenhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Password must not be empty.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var login models.Login
	if err := gormDB.First(&login, idPessoa).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Login with id %d not found.", idPessoa))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding login.", err)
		return
	}

	hash, salt, err := helpers.CreatePasswordHash(req.Senha)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Password must not be empty.")
		return
	}

	result := gormDB.Model(&login).Updates(map[string]interface{}{
		"password_hash": hash,
		"password_salt": salt,
	})
	if result.Error != nil {
		helpers.RespondWithInternalError(c, "Failed to update password.", result.Error)
		return
	}

	c.JSON(http.StatusOK, result.RowsAffected)
}

func DeleteLogin(c *gin.Context) {
	id, err := helpers.StringToInt(c.Query("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var login models.Login
	if err := gormDB.First(&login, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Login with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding login.", err)
		return
	}

	if err := gormDB.Delete(&login).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to delete login.", err)
		return
	}

	c.JSON(http.StatusOK, login)
}
