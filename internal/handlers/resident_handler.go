package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

func GetAllMunicipes(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var municipes []models.Resident
	if err := gormDB.Find(&municipes).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving residents.", err)
		return
	}

	c.JSON(http.StatusOK, municipes)
}

func GetMunicipeByID(c *gin.Context) {
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

	var municipe models.Resident
	if err := gormDB.First(&municipe, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Resident with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving resident.", err)
		return
	}

	c.JSON(http.StatusOK, municipe)
}

func AddMunicipe(c *gin.Context) {
	var municipe models.Resident
	if err := c.ShouldBindJSON(&municipe); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	municipe.IDMunicipe = 0
	municipe.Logins = nil
	if err := gormDB.Create(&municipe).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to create resident.", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/Municipe/GetById?id=%d", municipe.IDMunicipe))
	c.JSON(http.StatusCreated, municipe)
}

func UpdateMunicipe(c *gin.Context) {
	id, err := helpers.StringToInt(c.Query("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return
	}

	var municipe models.Resident
	if err := c.ShouldBindJSON(&municipe); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if uint(id) != municipe.IDMunicipe {
		helpers.RespondWithError(c, http.StatusBadRequest, "Resident id does not match the id in the request.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var existing models.Resident
	if err := gormDB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Resident with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding resident.", err)
		return
	}

	municipe.Logins = nil
	if err := gormDB.Save(&municipe).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to update resident.", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func DeleteMunicipe(c *gin.Context) {
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

	var municipe models.Resident
	if err := gormDB.First(&municipe, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Resident with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding resident.", err)
		return
	}

	if err := gormDB.Delete(&municipe).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to delete resident.", err)
		return
	}

	c.JSON(http.StatusOK, municipe)
}
