package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

// Child records of an event (team, address, comments, participations,
// resident attendance) are only reachable through these routes; they have no
// top-level controllers.

func eventExists(gormDB *gorm.DB, idEvento uint) (bool, error) {
	var evento models.Event
	err := gormDB.First(&evento, idEvento).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetEquipe(c *gin.Context) {
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

	var equipe models.Team
	if err := gormDB.Where("id_evento = ?", id).First(&equipe).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event %d has no team.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving team.", err)
		return
	}

	c.JSON(http.StatusOK, equipe)
}

// SetEquipe creates or replaces the single team of an event.
func SetEquipe(c *gin.Context) {
	var equipe models.Team
	if err := c.ShouldBindJSON(&equipe); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	ok, err := eventExists(gormDB, equipe.IDEvento)
	if err != nil {
		helpers.RespondWithInternalError(c, "Error finding event.", err)
		return
	}
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", equipe.IDEvento))
		return
	}

	var existing models.Team
	err = gormDB.Where("id_evento = ?", equipe.IDEvento).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		equipe.ID = 0
		equipe.Evento = nil
		if err := gormDB.Create(&equipe).Error; err != nil {
			helpers.RespondWithInternalError(c, "Failed to create team.", err)
			return
		}
		c.JSON(http.StatusCreated, equipe)
		return
	}
	if err != nil {
		helpers.RespondWithInternalError(c, "Error finding team.", err)
		return
	}

	existing.RespoEquipe = equipe.RespoEquipe
	existing.TamanhoEquipe = equipe.TamanhoEquipe
	if err := gormDB.Save(&existing).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to update team.", err)
		return
	}

	c.JSON(http.StatusOK, existing)
}

func GetEndereco(c *gin.Context) {
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

	var endereco models.EventAddress
	if err := gormDB.Where("id_evento = ?", id).First(&endereco).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event %d has no address.", id))
			return
		}
		helpers.RespondWithInternalError(c, "Error retrieving address.", err)
		return
	}

	c.JSON(http.StatusOK, endereco)
}

// SetEndereco creates or replaces the single address of an event.
func SetEndereco(c *gin.Context) {
	var endereco models.EventAddress
	if err := c.ShouldBindJSON(&endereco); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	ok, err := eventExists(gormDB, endereco.IDEvento)
	if err != nil {
		helpers.RespondWithInternalError(c, "Error finding event.", err)
		return
	}
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", endereco.IDEvento))
		return
	}

	var existing models.EventAddress
	err = gormDB.Where("id_evento = ?", endereco.IDEvento).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		endereco.ID = 0
		endereco.Evento = nil
		if err := gormDB.Create(&endereco).Error; err != nil {
			helpers.RespondWithInternalError(c, "Failed to create address.", err)
			return
		}
		c.JSON(http.StatusCreated, endereco)
		return
	}
	if err != nil {
		helpers.RespondWithInternalError(c, "Error finding address.", err)
		return
	}

	endereco.ID = existing.ID
	endereco.Evento = nil
	if err := gormDB.Save(&endereco).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to update address.", err)
		return
	}

	c.JSON(http.StatusOK, endereco)
}

func GetComentarios(c *gin.Context) {
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

	var comentarios []models.EventComment
	if err := gormDB.Where("id_evento = ?", id).Find(&comentarios).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving comments.", err)
		return
	}

	c.JSON(http.StatusOK, comentarios)
}

func AddComentario(c *gin.Context) {
	var comentario models.EventComment
	if err := c.ShouldBindJSON(&comentario); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	ok, err := eventExists(gormDB, comentario.IDEvento)
	if err != nil {
		helpers.RespondWithInternalError(c, "Error finding event.", err)
		return
	}
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", comentario.IDEvento))
		return
	}

	comentario.ID = 0
	comentario.Evento = nil
	if err := gormDB.Create(&comentario).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to create comment.", err)
		return
	}

	c.JSON(http.StatusCreated, comentario)
}

func GetParticipantes(c *gin.Context) {
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

	var participantes []models.EventParticipant
	if err := gormDB.Where("id_evento = ?", id).Find(&participantes).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving participants.", err)
		return
	}

	c.JSON(http.StatusOK, participantes)
}

// AddParticipante registers a participation, stamping the time server-side
// and refusing once the event's participant limit is reached.
func AddParticipante(c *gin.Context) {
	var participante models.EventParticipant
	if err := c.ShouldBindJSON(&participante); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var evento models.Event
	if err := gormDB.First(&evento, participante.IDEvento).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", participante.IDEvento))
			return
		}
		helpers.RespondWithInternalError(c, "Error finding event.", err)
		return
	}

	var count int64
	if err := gormDB.Model(&models.EventParticipant{}).Where("id_evento = ?", participante.IDEvento).Count(&count).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error counting participants.", err)
		return
	}
	if evento.LimiteParticipantes > 0 && count >= int64(evento.LimiteParticipantes) {
		helpers.RespondWithError(c, http.StatusConflict, "Event has reached its participant limit.")
		return
	}

	participante.ID = 0
	participante.Evento = nil
	participante.HoraParticipacao = time.Now().UTC()
	if err := gormDB.Create(&participante).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to register participation.", err)
		return
	}

	c.JSON(http.StatusCreated, participante)
}

func GetEventoMunicipes(c *gin.Context) {
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

	var registros []models.EventResident
	if err := gormDB.Where("id_evento = ?", id).Find(&registros).Error; err != nil {
		helpers.RespondWithInternalError(c, "Error retrieving attendance records.", err)
		return
	}

	c.JSON(http.StatusOK, registros)
}

func AddEventoMunicipe(c *gin.Context) {
	var registro models.EventResident
	if err := c.ShouldBindJSON(&registro); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	ok, err := eventExists(gormDB, registro.IDEvento)
	if err != nil {
		helpers.RespondWithInternalError(c, "Error finding event.", err)
		return
	}
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Event with id %d not found.", registro.IDEvento))
		return
	}

	registro.IDEventoMunicipe = 0
	registro.Evento = nil
	registro.Municipe = nil
	if err := gormDB.Create(&registro).Error; err != nil {
		helpers.RespondWithInternalError(c, "Failed to create attendance record.", err)
		return
	}

	c.JSON(http.StatusCreated, registro)
}
