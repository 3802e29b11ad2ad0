package model

// Norma represents a legal or regulatory document (law, decree, resolution)
// that governs one or more compensation types.
type Norma struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome      string `gorm:"type:varchar(255)" json:"nome"`
	Link      string `gorm:"type:text" json:"link"`
	Preambulo string `gorm:"type:text" json:"preambulo"`
}

func (Norma) TableName() string {
	return "normas"
}

// NormaTipoCompensacao links a Norma to a TipoCompensacao (many-to-many).
// Duplicate links are allowed; the layer above does not deduplicate.
type NormaTipoCompensacao struct {
	ID      uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TipoID  uint `gorm:"column:tipo_id;index" json:"tipo_id"`
	NormaID uint `gorm:"column:norma_id;index" json:"norma_id"`
}

func (NormaTipoCompensacao) TableName() string {
	return "normas_tipos_compensacao"
}
