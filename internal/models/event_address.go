package models

type EventAddress struct {
	ID             uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Endereco       string `json:"endereco" gorm:"size:255"`
	NroEndereco    string `json:"nroEndereco" gorm:"size:20"`
	Complemento    string `json:"complemento" gorm:"size:100"`
	BairroEndereco string `json:"bairroEndereco" gorm:"size:100"`
	CidadeEndereco string `json:"cidadeEndereco" gorm:"size:100"`
	UFEndereco     string `json:"ufEndereco" gorm:"size:2"`
	CEPEndereco    string `json:"cepEndereco" gorm:"size:8"`
	IDEvento       uint   `json:"idEvento" gorm:"not null"`
	Evento         *Event `json:"-" gorm:"foreignKey:IDEvento;references:IDEvento"`
}

func (EventAddress) TableName() string {
	return "TB_EVENTOENDERECO"
}
