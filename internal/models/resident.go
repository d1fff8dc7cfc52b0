package models

// Resident is a municipal resident profile tied one-to-one to a Login.
type Resident struct {
	IDMunicipe uint   `json:"idMunicipe" gorm:"primaryKey;autoIncrement"`
	Estado     string `json:"estado" gorm:"size:100"`
	Cidade     string `json:"cidade" gorm:"size:100"`
	IDPessoa   uint   `json:"idPessoa" gorm:"not null"`
	Logins     *Login `json:"logins,omitempty" gorm:"foreignKey:IDPessoa;references:IDPessoa"`
}

func (Resident) TableName() string {
	return "TB_MUNICIPE"
}
