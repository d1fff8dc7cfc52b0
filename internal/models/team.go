package models

// Team is the staff record of an event. The source schema kept it keyless;
// it carries a synthetic id here so the row can be updated in place, but it
// stays owned by its event and is only reachable through the event routes.
type Team struct {
	ID            uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	RespoEquipe   string `json:"respoEquipe" gorm:"size:100"`
	TamanhoEquipe int    `json:"tamanhoEquipe"`
	IDEvento      uint   `json:"idEvento" gorm:"not null"`
	Evento        *Event `json:"-" gorm:"foreignKey:IDEvento;references:IDEvento"`
}

func (Team) TableName() string {
	return "TB_EQUIPE"
}
