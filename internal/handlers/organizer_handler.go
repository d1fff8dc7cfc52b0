package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

func GetAllOrganizadores(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var organizadores []models.Organizer
	if err := gormDB.Find(&organizadores).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving organizers.", err)
		return
	}

	c.JSON(http.StatusOK, organizadores)
}

func GetOrganizadorByID(c *gin.Context) {
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

	var organizador models.Organizer
	if err := gormDB.First(&organizador, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Organizer with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving organizer.", err)
		return
	}

	c.JSON(http.StatusOK, organizador)
}

func AddOrganizador(c *gin.Context) {
	var organizador models.Organizer
	if err := c.ShouldBindJSON(&organizador); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	organizador.IDOrganizador = 0
	organizador.Logins = nil
	if err := gormDB.Create(&organizador).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to create organizer.", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/OrgEventos/GetById?id=%d", organizador.IDOrganizador))
	c.JSON(http.StatusCreated, organizador)
}

func UpdateOrganizador(c *gin.Context) {
	id, err := helpers.StringToInt(c.Query("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return
	}

	var organizador models.Organizer
	if err := c.ShouldBindJSON(&organizador); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if uint(id) != organizador.IDOrganizador {
		helpers.RespondWithError(c, http.StatusBadRequest, "Organizer id does not match the id in the request.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var existing models.Organizer
	if err := gormDB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Organizer with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding organizer.", err)
		return
	}

	organizador.Logins = nil
	if err := gormDB.Save(&organizador).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to update organizer.", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func DeleteOrganizador(c *gin.Context) {
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

	var organizador models.Organizer
	if err := gormDB.First(&organizador, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Organizer with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding organizer.", err)
		return
	}

	if err := gormDB.Delete(&organizador).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to delete organizer.", err)
		return
	}

	c.JSON(http.StatusOK, organizador)
}
