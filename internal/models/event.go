package models

import (
	"time"
)

// Event always references exactly one Organizer and one Category.
type Event struct {
	IDEvento            uint       `json:"idEvento" gorm:"primaryKey;autoIncrement"`
	Titulo              string     `json:"titulo" gorm:"not null"`
	Descricao           string     `json:"descricao" gorm:"not null"`
	DataInicio          time.Time  `json:"dataInicio" gorm:"not null"`
	DataFim             time.Time  `json:"dataFim" gorm:"not null"`
	HoraInicio          time.Time  `json:"horaInicio" gorm:"not null"`
	HoraFim             time.Time  `json:"horaFim" gorm:"not null"`
	LimiteParticipantes int        `json:"limiteParticipantes" gorm:"not null"`
	ValorIngresso       float64    `json:"valorIngresso" gorm:"not null"`
	IDOrganizador       uint       `json:"idOrganizador" gorm:"not null"`
	IDCategoria         uint       `json:"idCategoria" gorm:"not null"`
	Organizador         *Organizer `json:"-" gorm:"foreignKey:IDOrganizador;references:IDOrganizador"`
	Categoria           *Category  `json:"-" gorm:"foreignKey:IDCategoria;references:IDCategoria"`
}

func (Event) TableName() string {
	return "TB_EVENTO"
}
