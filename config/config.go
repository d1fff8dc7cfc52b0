package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bairroconnect/api/internal/helpers"
	"github.com/bairroconnect/api/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "bairroconnect"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema and ensures the fixed reference rows exist.
// Safe to run against an already-seeded database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Login{},
		&models.Category{},
		&models.Organizer{},
		&models.Resident{},
		&models.Event{},
		&models.Team{},
		&models.EventComment{},
		&models.EventAddress{},
		&models.EventParticipant{},
		&models.EventResident{},
	)
	if err != nil {
		return err
	}

	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedAdminLogin(db); err != nil {
		return err
	}
	return advanceSerialSequences(db)
}

// Seed rows carry fixed primary keys, which bypasses the serial counters on
// postgres; realign them so the first post-seed insert does not collide.
// sqlite allocates max(rowid)+1 and needs no correction.
func advanceSerialSequences(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, stmt := range []string{
		`SELECT setval(pg_get_serial_sequence('"TB_CATEGORIA"','id_categoria'), (SELECT MAX(id_categoria) FROM "TB_CATEGORIA"))`,
		`SELECT setval(pg_get_serial_sequence('"TB_LOGINS"','id_pessoa'), (SELECT MAX(id_pessoa) FROM "TB_LOGINS"))`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Category id 6 was retired upstream; the gap is part of the fixed data set.
func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{IDCategoria: 1, NomeCategoria: "Esportivo", Descricao: "Atividades físicas e competições recreativas."},
		{IDCategoria: 2, NomeCategoria: "Entreterimento", Descricao: "Diversão e lazer para todos os gostos."},
		{IDCategoria: 3, NomeCategoria: "Cultaral", Descricao: "Exploração da arte, história e tradições."},
		{IDCategoria: 4, NomeCategoria: "Corporativo", Descricao: "Eventos voltados para negócios."},
		{IDCategoria: 5, NomeCategoria: "Religioso", Descricao: "Práticas e celebrações voltadas para a religião."},
		{IDCategoria: 7, NomeCategoria: "Educacional", Descricao: "Eventos voltados para educação."},
		{IDCategoria: 8, NomeCategoria: "Institucional", Descricao: "Eventos relacionados a organizações e instituições."},
	}

	for _, category := range categories {
		var existing models.Category
		result := db.Where("id_categoria = ?", category.IDCategoria).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := db.Create(&category).Error; err != nil {
				return err
			}
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

func seedAdminLogin(db *gorm.DB) error {
	var existing models.Login
	result := db.Where("id_pessoa = ?", 1).First(&existing)
	if result.Error == nil {
		return nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return result.Error
	}

	hash, salt, err := helpers.CreatePasswordHash("123456")
	if err != nil {
		return err
	}

	admin := models.Login{
		IDPessoa:     1,
		Nome:         "UsuarioAdmin",
		Sobrenome:    "",
		Email:        "seuEmail@gmail.com",
		TipoConta:    models.AccountOrganizador,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	return db.Create(&admin).Error
}
