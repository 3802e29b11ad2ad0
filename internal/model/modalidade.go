package model

// Modalidade is a concrete compensation method belonging to a
// TipoCompensacao. Every descriptive attribute is free text; the store only
// enforces the tipo_id foreign key.
type Modalidade struct {
	ID                    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TipoID                uint   `gorm:"column:tipo_id;not null;index" json:"tipo_id"`
	Nome                  string `gorm:"type:varchar(255)" json:"nome"`
	Proporcao             string `gorm:"type:text" json:"proporcao"`
	Forma                 string `gorm:"type:text" json:"forma"`
	Especificidades       string `gorm:"type:text" json:"especificidades"`
	Vantagens             string `gorm:"type:text" json:"vantagens"`
	Desvantagens          string `gorm:"type:text" json:"desvantagens"`
	Observacao            string `gorm:"type:text" json:"observacao"`
	DocumentosNecessarios string `gorm:"type:text" json:"documentos_necessarios"`

	Tipo *TipoCompensacao `gorm:"foreignKey:TipoID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Modalidade) TableName() string {
	return "modalidades"
}
