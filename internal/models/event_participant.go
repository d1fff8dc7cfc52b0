package models

import (
	"time"
)

// EventParticipant is one participation record; HoraParticipacao is stamped
// by the server at registration time.
type EventParticipant struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	HoraParticipacao time.Time `json:"horaParticipacao"`
	IDEvento         uint      `json:"idEvento" gorm:"not null"`
	Evento           *Event    `json:"-" gorm:"foreignKey:IDEvento;references:IDEvento"`
}

func (EventParticipant) TableName() string {
	return "TB_EVENTOPARTICIPANTE"
}
