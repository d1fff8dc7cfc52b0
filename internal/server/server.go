package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/config"
	"github.com/bairroconnect/api/internal/handlers"
	"github.com/bairroconnect/api/internal/middleware"
)

func Start(logger *zap.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

// SetupRoutes registers the API surface. Route segments and casing follow the
// published client contract.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	auth := r.Group("/Auth")
	{
		auth.POST("/Login", handlers.AuthLogin)
	}

	categoria := r.Group("/Categoria")
	{
		categoria.GET("/GetAll", handlers.GetAllCategorias)
		categoria.GET("/GetById", handlers.GetCategoriaByID)
		categoria.POST("/Add", handlers.AddCategoria)
		categoria.PUT("/Update", handlers.UpdateCategoria)
		categoria.DELETE("/Delete", handlers.DeleteCategoria)
	}

	evento := r.Group("/Evento")
	{
		evento.GET("/GetAll", handlers.GetAllEventos)
		evento.GET("/GetById", handlers.GetEventoByID)
		evento.POST("/Add", handlers.AddEvento)
		evento.PUT("/Update", handlers.UpdateEvento)
		evento.DELETE("/Delete", handlers.DeleteEvento)

		evento.GET("/Equipe", handlers.GetEquipe)
		evento.POST("/Equipe", handlers.SetEquipe)
		evento.GET("/Endereco", handlers.GetEndereco)
		evento.POST("/Endereco", handlers.SetEndereco)
		evento.GET("/Comentarios", handlers.GetComentarios)
		evento.POST("/AddComentario", handlers.AddComentario)
		evento.GET("/Participantes", handlers.GetParticipantes)
		evento.POST("/AddParticipante", handlers.AddParticipante)
		evento.GET("/Municipes", handlers.GetEventoMunicipes)
		evento.POST("/AddMunicipe", handlers.AddEventoMunicipe)
	}

	orgEventos := r.Group("/OrgEventos")
	{
		orgEventos.GET("/GetAll", handlers.GetAllOrganizadores)
		orgEventos.GET("/GetById", handlers.GetOrganizadorByID)
		orgEventos.POST("/Add", handlers.AddOrganizador)
		orgEventos.PUT("/Update", handlers.UpdateOrganizador)
		orgEventos.DELETE("/Delete", handlers.DeleteOrganizador)
	}

	municipe := r.Group("/Municipe")
	{
		municipe.GET("/GetAll", handlers.GetAllMunicipes)
		municipe.GET("/GetById", handlers.GetMunicipeByID)
		municipe.POST("/Add", handlers.AddMunicipe)
		municipe.PUT("/Update", handlers.UpdateMunicipe)
		municipe.DELETE("/Delete", handlers.DeleteMunicipe)
	}

	logins := r.Group("/Logins")
	{
		logins.GET("/GetAll", handlers.GetAllLogins)
		logins.GET("/GetById", handlers.GetLoginByID)
		logins.GET("/GetByEmail", handlers.GetLoginByEmail)
		logins.POST("/Add", handlers.AddLogin)
		logins.PUT("/Update", handlers.UpdateLogin)
		logins.DELETE("/Delete", handlers.DeleteLogin)
		logins.PUT("/UpdateSenha", middleware.JWTAuthMiddleware(), handlers.UpdateSenha)
	}
}
