package models

type Category struct {
	IDCategoria   uint   `json:"idCategoria" gorm:"primaryKey;autoIncrement"`
	NomeCategoria string `json:"nomeCategoria" gorm:"size:100"`
	Descricao     string `json:"descricao" gorm:"size:255"`
}

func (Category) TableName() string {
	return "TB_CATEGORIA"
}
