package models

// Organizer is an event organizer profile tied one-to-one to a Login.
type Organizer struct {
	IDOrganizador  uint   `json:"idOrganizador" gorm:"primaryKey;autoIncrement"`
	Profissao      string `json:"profissao" gorm:"size:100"`
	Empresa        string `json:"empresa" gorm:"size:100"`
	TelOrganizador string `json:"telOrganizador" gorm:"size:20"`
	IDPessoa       uint   `json:"idPessoa" gorm:"not null"`
	Logins         *Login `json:"logins,omitempty" gorm:"foreignKey:IDPessoa;references:IDPessoa"`
}

func (Organizer) TableName() string {
	return "TB_ORGEVENTOS"
}
