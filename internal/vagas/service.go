package vagas

import (
	"context"
	"net/url"
	"sort"

	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/models"
	"github.com/trabalha-floriano/portal-backend/internal/store"
)

type Service struct {
	Store  *store.Client
	Logger *zap.Logger
}

func NewService(st *store.Client, logger *zap.Logger) *Service {
	return &Service{Store: st, Logger: logger}
}

// ListAprovadas fetches the public board set (store-side exact-match filter).
func (s *Service) ListAprovadas(ctx context.Context) ([]models.Vaga, error) {
	recs, err := s.Store.List(ctx, store.ColVagas, url.Values{"status": {string(StatusAprovada)}})
	if err != nil {
		return nil, err
	}
	var out []models.Vaga
	if err := store.DecodeList(recs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAdmin fetches every vaga, pendentes first (the admin table ordering),
// keeping store order inside each group.
func (s *Service) ListAdmin(ctx context.Context) ([]models.Vaga, error) {
	recs, err := s.Store.List(ctx, store.ColVagas, nil)
	if err != nil {
		return nil, err
	}
	var out []models.Vaga
	if err := store.DecodeList(recs, &out); err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status == string(StatusPendente) && out[j].Status != string(StatusPendente)
	})
	return out, nil
}

// Get fetches one vaga; a missing id is an error.
func (s *Service) Get(ctx context.Context, id uint) (models.Vaga, error) {
	rec, err := s.Store.Get(ctx, store.ColVagas, id)
	if err != nil {
		return models.Vaga{}, err
	}
	var v models.Vaga
	if err := store.Decode(rec, &v); err != nil {
		return models.Vaga{}, err
	}
	return v, nil
}

// Publicar creates a vaga from the public board. The status is forced to
// pendente regardless of what the submission carried.
func (s *Service) Publicar(ctx context.Context, v models.Vaga) (models.Vaga, error) {
	v.ID = 0
	v.Status = string(StatusPendente)
	rec, err := s.Store.Create(ctx, store.ColVagas, v)
	if err != nil {
		return models.Vaga{}, err
	}
	var created models.Vaga
	if err := store.Decode(rec, &created); err != nil {
		return models.Vaga{}, err
	}
	s.Logger.Info("vaga publicada",
		zap.Uint("id", created.ID),
		zap.String("title", created.Title),
		zap.String("status", created.Status))
	return created, nil
}

// CriarAdmin creates a vaga from the admin panel, honoring the form-selected
// status (the panel may create an already approved vaga directly).
func (s *Service) CriarAdmin(ctx context.Context, v models.Vaga, status Status) (models.Vaga, error) {
	v.ID = 0
	v.Status = string(status)
	rec, err := s.Store.Create(ctx, store.ColVagas, v)
	if err != nil {
		return models.Vaga{}, err
	}
	var created models.Vaga
	if err := store.Decode(rec, &created); err != nil {
		return models.Vaga{}, err
	}
	return created, nil
}

// Aprovar reads the current record, then patches only the status field.
// The read is not optional: the confirmation prompt shows the current title,
// and the write must never touch anything but status.
func (s *Service) Aprovar(ctx context.Context, id uint) (models.Vaga, error) {
	atual, err := s.Get(ctx, id)
	if err != nil {
		return models.Vaga{}, err
	}
	if _, err := s.Store.Patch(ctx, store.ColVagas, id, map[string]any{
		"status": string(StatusAprovada),
	}); err != nil {
		return models.Vaga{}, err
	}
	s.Logger.Info("vaga aprovada", zap.Uint("id", id), zap.String("title", atual.Title))
	return atual, nil
}

// Editar saves an edited vaga with a full replace (PUT). The written status
// goes through ResolveEditStatus against the pre-edit record, so an approved
// vaga can never be downgraded by the form.
func (s *Service) Editar(ctx context.Context, id uint, edit models.Vaga, formStatus Status) (models.Vaga, error) {
	atual, err := s.Get(ctx, id)
	if err != nil {
		return models.Vaga{}, err
	}

	atual.Title = edit.Title
	atual.Empresa = edit.Empresa
	atual.Local = edit.Local
	atual.Description = edit.Description
	if edit.Area != "" {
		atual.Area = edit.Area
	}
	atual.Status = string(ResolveEditStatus(Status(atual.Status), formStatus))

	rec, err := s.Store.Replace(ctx, store.ColVagas, id, atual)
	if err != nil {
		return models.Vaga{}, err
	}
	var saved models.Vaga
	if err := store.Decode(rec, &saved); err != nil {
		return models.Vaga{}, err
	}
	return saved, nil
}

// Excluir removes a vaga. No soft delete.
func (s *Service) Excluir(ctx context.Context, id uint) error {
	if err := s.Store.Delete(ctx, store.ColVagas, id); err != nil {
		return err
	}
	s.Logger.Info("vaga excluída", zap.Uint("id", id))
	return nil
}

// Areas lists the distinct area values of the approved vagas, for the board
// search affordance.
func (s *Service) Areas(ctx context.Context) ([]string, error) {
	aprovadas, err := s.ListAprovadas(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var areas []string
	for _, v := range aprovadas {
		if v.Area == "" || seen[v.Area] {
			continue
		}
		seen[v.Area] = true
		areas = append(areas, v.Area)
	}
	sort.Strings(areas)
	return areas, nil
}
