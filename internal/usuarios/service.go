// Package usuarios holds the user-management operations of the admin panel.
package usuarios

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/store"
)

// ErrEmailDuplicado is returned by Criar when the pre-insert existence check
// finds the email already in the store. The check is two round trips apart
// from the insert, so it is race-prone; the store has no uniqueness constraint
// of its own. Documented gap, kept as-is.
var ErrEmailDuplicado = errors.New("já existe um usuário com este email")

type Service struct {
	Store  *store.Client
	Logger *zap.Logger
}

func NewService(st *store.Client, logger *zap.Logger) *Service {
	return &Service{Store: st, Logger: logger}
}

func (s *Service) List(ctx context.Context) ([]models.Usuario, error) {
	recs, err := s.Store.List(ctx, store.ColUsuarios, nil)
	if err != nil {
		return nil, err
	}
	var out []models.Usuario
	if err := store.DecodeList(recs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id uint) (models.Usuario, error) {
	rec, err := s.Store.Get(ctx, store.ColUsuarios, id)
	if err != nil {
		return models.Usuario{}, err
	}
	var u models.Usuario
	if err := store.Decode(rec, &u); err != nil {
		return models.Usuario{}, err
	}
	return u, nil
}

// Criar inserts a new usuario after the duplicate-email pre-check. On a
// duplicate no create call is issued at all.
func (s *Service) Criar(ctx context.Context, u models.Usuario) (models.Usuario, error) {
	existentes, err := s.Store.List(ctx, store.ColUsuarios, url.Values{"email": {u.Email}})
	if err != nil {
		return models.Usuario{}, err
	}
	if len(existentes) > 0 {
		if id, ok := existentes[0].ID(); ok {
			s.Logger.Warn("email já cadastrado",
				zap.String("email", u.Email),
				zap.Uint("existente", id))
		}
		return models.Usuario{}, ErrEmailDuplicado
	}

	u.ID = 0
	rec, err := s.Store.Create(ctx, store.ColUsuarios, u)
	if err != nil {
		return models.Usuario{}, err
	}
	var created models.Usuario
	if err := store.Decode(rec, &created); err != nil {
		return models.Usuario{}, err
	}
	s.Logger.Info("usuário criado",
		zap.Uint("id", created.ID),
		zap.String("email", created.Email),
		zap.String("role", string(created.Role)))
	return created, nil
}

// Editar saves an edit with a full replace over the pre-edit record. The email
// is immutable in the edit form and is taken from the stored record.
func (s *Service) Editar(ctx context.Context, id uint, nome string, role models.Role, ativo bool) (models.Usuario, error) {
	atual, err := s.Get(ctx, id)
	if err != nil {
		return models.Usuario{}, err
	}

	atual.Nome = nome
	atual.Role = role
	atual.Ativo = ativo

	rec, err := s.Store.Replace(ctx, store.ColUsuarios, id, atual)
	if err != nil {
		return models.Usuario{}, err
	}
	var saved models.Usuario
	if err := store.Decode(rec, &saved); err != nil {
		return models.Usuario{}, err
	}
	return saved, nil
}

// Ativar patches only the ativo flag to true. Not confirmation-gated.
func (s *Service) Ativar(ctx context.Context, id uint) error {
	if _, err := s.Store.Patch(ctx, store.ColUsuarios, id, map[string]any{"ativo": true}); err != nil {
		return err
	}
	s.Logger.Info("usuário ativado", zap.Uint("id", id))
	return nil
}

// Desativar patches only the ativo flag to false. The confirmation gate lives
// in the handler layer.
func (s *Service) Desativar(ctx context.Context, id uint) error {
	if _, err := s.Store.Patch(ctx, store.ColUsuarios, id, map[string]any{"ativo": false}); err != nil {
		return err
	}
	s.Logger.Info("usuário desativado", zap.Uint("id", id))
	return nil
}

// Excluir removes a usuario. Callers must consult AvailableActions first:
// admin-role users are never offered this action.
func (s *Service) Excluir(ctx context.Context, id uint) error {
	if err := s.Store.Delete(ctx, store.ColUsuarios, id); err != nil {
		return err
	}
	s.Logger.Info("usuário excluído", zap.Uint("id", id))
	return nil
}
