package dashboard

import (
	"context"
	"sync"

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

// Load fetches both full collections in parallel and computes the stats once
// both reads settle. Either failure fails the whole view — the dashboard never
// renders half its figures.
func (s *Service) Load(ctx context.Context) (Stats, error) {
	var (
		wg      sync.WaitGroup
		vs      []models.Vaga
		us      []models.Usuario
		errVaga error
		errUser error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		recs, err := s.Store.List(ctx, store.ColVagas, nil)
		if err != nil {
			errVaga = err
			return
		}
		errVaga = store.DecodeList(recs, &vs)
	}()
	go func() {
		defer wg.Done()
		recs, err := s.Store.List(ctx, store.ColUsuarios, nil)
		if err != nil {
			errUser = err
			return
		}
		errUser = store.DecodeList(recs, &us)
	}()
	wg.Wait()

	if errVaga != nil {
		s.Logger.Error("dashboard: falha ao buscar vagas", zap.Error(errVaga))
		return Stats{}, errVaga
	}
	if errUser != nil {
		s.Logger.Error("dashboard: falha ao buscar usuários", zap.Error(errUser))
		return Stats{}, errUser
	}

	return Compute(vs, us), nil
}
