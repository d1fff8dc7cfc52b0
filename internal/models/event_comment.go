package models

type EventComment struct {
	ID         uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Comentario string  `json:"comentario" gorm:"size:255"`
	Avaliacao  float64 `json:"avaliacao"`
	IDEvento   uint    `json:"idEvento" gorm:"not null"`
	Evento     *Event  `json:"-" gorm:"foreignKey:IDEvento;references:IDEvento"`
}

func (EventComment) TableName() string {
	return "TB_EVENTOCOMENTARIO"
}
