package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

func GetAllCategorias(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var categorias []models.Category
	if err := gormDB.Find(&categorias).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving categories.", err)
		return
	}

	c.JSON(http.StatusOK, categorias)
}

func GetCategoriaByID(c *gin.Context) {
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

	var categoria models.Category
	if err := gormDB.First(&categoria, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Category with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving category.", err)
		return
	}

	c.JSON(http.StatusOK, categoria)
}

func AddCategoria(c *gin.Context) {
	var categoria models.Category
	if err := c.ShouldBindJSON(&categoria); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoria.IDCategoria = 0
	if err := gormDB.Create(&categoria).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to create category.", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/Categoria/GetById?id=%d", categoria.IDCategoria))
	c.JSON(http.StatusCreated, categoria)
}

func UpdateCategoria(c *gin.Context) {
	id, err := helpers.StringToInt(c.Query("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid id.")
		return
	}

	var categoria models.Category
	if err := c.ShouldBindJSON(&categoria); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if uint(id) != categoria.IDCategoria {
		helpers.RespondWithError(c, http.StatusBadRequest, "Category id does not match the id in the request.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var existing models.Category
	if err := gormDB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Category with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding category.", err)
		return
	}

	if err := gormDB.Save(&categoria).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to update category.", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func DeleteCategoria(c *gin.Context) {
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

	var categoria models.Category
	if err := gormDB.First(&categoria, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Category with id %d not found.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding category.", err)
		return
	}

	if err := gormDB.Delete(&categoria).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to delete category.", err)
		return
	}

	c.JSON(http.StatusOK, categoria)
}
