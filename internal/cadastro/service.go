// Package cadastro is the registration side-channel: a standalone insert into
// a local SQLite table. It is deliberately NOT wired to the usuarios
// collection of the store — the two views never read this table.
package cadastro

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/utils"
)

// ErrCamposObrigatorios blocks the insert before any database call.
var ErrCamposObrigatorios = errors.New("Preencha todos os campos.")

const TipoDefault = "colaborador"

type Service struct {
	DB        *gorm.DB
	HashSenha bool // legacy behavior stores the password as received; opt-in bcrypt
	Logger    *zap.Logger
}

func NewService(db *gorm.DB, hashSenha bool, logger *zap.Logger) *Service {
	return &Service{DB: db, HashSenha: hashSenha, Logger: logger}
}

// Migrate creates the usuarios table on first use, like the original backend.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(&models.RegistroUsuario{})
}

// Registrar validates and inserts one registration row. Email uniqueness is a
// real constraint on this table (unlike the store collection); a violation
// surfaces as the insert error.
func (s *Service) Registrar(nome, email, senha, tipo string) (models.RegistroUsuario, error) {
	nome = strings.TrimSpace(nome)
	email = strings.ToLower(strings.TrimSpace(email))
	senha = strings.TrimSpace(senha)
	if tipo == "" {
		tipo = TipoDefault
	}

	if nome == "" || email == "" || senha == "" {
		return models.RegistroUsuario{}, ErrCamposObrigatorios
	}

	if s.HashSenha {
		hashed, err := utils.HashPassword(senha)
		if err != nil {
			return models.RegistroUsuario{}, err
		}
		senha = hashed
	}

	reg := models.RegistroUsuario{
		Nome:  nome,
		Email: email,
		Senha: senha,
		Tipo:  tipo,
	}
	if err := s.DB.Create(&reg).Error; err != nil {
		return models.RegistroUsuario{}, err
	}

	s.Logger.Info("cadastro realizado",
		zap.Uint("id", reg.ID),
		zap.String("email", reg.Email),
		zap.String("tipo", reg.Tipo))
	return reg, nil
}
