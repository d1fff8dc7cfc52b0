package models

import (
	"time"
)

// EventResident records a resident attending an event within a time window.
type EventResident struct {
	IDEventoMunicipe uint      `json:"idEventoMunicipe" gorm:"primaryKey;autoIncrement"`
	HoraInicio       time.Time `json:"horaInicio"`
	HoraFim          time.Time `json:"horaFim"`
	IDEvento         uint      `json:"idEvento" gorm:"not null"`
	IDMunicipe       uint      `json:"idMunicipe" gorm:"not null"`
	Evento           *Event    `json:"-" gorm:"foreignKey:IDEvento;references:IDEvento"`
	Municipe         *Resident `json:"-" gorm:"foreignKey:IDMunicipe;references:IDMunicipe"`
}

func (EventResident) TableName() string {
	return "TB_EVENTOMUNICIPE"
}
