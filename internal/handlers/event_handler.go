package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

func GetAllEventos(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var eventos []models.Event
	if err := gormDB.Find(&eventos).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving events.", err)
		return
	}

	c.JSON(http.StatusOK, eventos)
}

func GetEventoByID(c *gin.Context) {
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

	var evento models.Event
	if err := gormDB.First(&evento, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving event.", err)
		return
	}

	c.JSON(http.StatusOK, evento)
}

// AddEvento relies on the foreign key constraints for organizer and category
// existence; no pre-check, single-statement semantics.
func AddEvento(c *gin.Context) {
	var evento models.Event
	if err := c.ShouldBindJSON(&evento); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	evento.IDEvento = 0
	evento.Organizador = nil
	evento.Categoria = nil
	if err := gormDB.Create(&evento).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to create event.", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/Evento/GetById?id=%d", evento.IDEvento))
	c.JSON(http.StatusCreated, evento)
}

func UpdateEvento(c *gin.Context) {
	id, err := helpers.StringToInt(c.Query("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return
	}

	var evento models.Event
	if err := c.ShouldBindJSON(&evento); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if uint(id) != evento.IDEvento {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event id does not match the id in the request.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var existing models.Event
	if err := gormDB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding event.", err)
		return
	}

	evento.Organizador = nil
	evento.Categoria = nil
	if err := gormDB.Save(&evento).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to update event.", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func DeleteEvento(c *gin.Context) {
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

	var evento models.Event
	if err := gormDB.First(&evento, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding event.", err)
		return
	}

	if err := gormDB.Delete(&evento).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to delete event.", err)
		return
	}

	c.Status(http.StatusNoContent)
}
