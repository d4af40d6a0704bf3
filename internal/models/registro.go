package models

// RegistroUsuario is the row of the local cadastro table (SQLite). This table
// is an independent side-channel: it is NOT the `usuarios` collection of the
// store and nothing else in the portal reads it.
type RegistroUsuario struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nome  string `gorm:"not null" json:"nome"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Senha string `gorm:"not null" json:"-"`
	Tipo  string `gorm:"default:'colaborador'" json:"tipo"`
}

func (RegistroUsuario) TableName() string { return "usuarios" }
