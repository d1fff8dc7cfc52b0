package models

import (
	"time"
)

// AccountType is the stored account kind, persisted as its string name.
type AccountType string

const (
	AccountOrganizador AccountType = "Organizador"
	AccountMunicipe    AccountType = "Municipe"
)

// Login holds a person's credentials. Senha is only populated while a
// create/update request is in flight; the database keeps hash and salt.
type Login struct {
	IDPessoa     uint        `json:"idPessoa" gorm:"primaryKey;autoIncrement"`
	Nome         string      `json:"nome" gorm:"size:50"`
	Sobrenome    string      `json:"sobrenome" gorm:"size:50"`
	Email        string      `json:"email" gorm:"size:100"`
	DataNasc     time.Time   `json:"dataNasc" gorm:"type:date"`
	TipoConta    AccountType `json:"tipoConta" gorm:"size:20;default:'Municipe'"`
	Senha        string      `json:"senha,omitempty" gorm:"-"`
	Token        string      `json:"token,omitempty" gorm:"-"`
	PasswordHash []byte      `json:"passwordHash,omitempty" gorm:"size:255"`
	PasswordSalt []byte      `json:"passwordSalt,omitempty" gorm:"size:255"`
}

func (Login) TableName() string {
	return "TB_LOGINS"
}
