package model

// TipoCompensacao is a category of environmental compensation
// (e.g. SNUC, Mata Atlântica). Parent of zero or more modalidades.
type TipoCompensacao struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome string `gorm:"type:varchar(255)" json:"nome"`
}

func (TipoCompensacao) TableName() string {
	return "tipos_compensacao"
}
