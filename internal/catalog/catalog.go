package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Catalog é o acesso de leitura/escrita aos serviços com cache.
// Escritas invalidam o cache.
type Catalog struct {
	repo  Repository
	cache Cache
}

func New(repo Repository, cache Cache) *Catalog {
	return &Catalog{repo: repo, cache: cache}
}

// Services lista todos os serviços, inclusive inativos: agendamentos
// antigos ainda precisam da duração do serviço.
func (c *Catalog) Services(ctx context.Context) ([]models.Service, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	services, err := c.repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, services); err != nil {
			log.Warn().Err(err).Msg("catalog cache set failed")
		}
	}

	return services, nil
}

func (c *Catalog) Active(ctx context.Context) ([]models.Service, error) {
	all, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Service, 0, len(all))
	for _, s := range all {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

// Lookup devolve o catálogo no formato usado pelo motor de
// disponibilidade.
func (c *Catalog) Lookup(ctx context.Context) (availability.ServiceMap, error) {
	services, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}
	return availability.NewServiceMap(services), nil
}

// Get busca um serviço ativo para novos agendamentos.
func (c *Catalog) Get(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := c.repo.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return svc, nil
}

func (c *Catalog) Create(ctx context.Context, svc *models.Service) error {
	if err := c.repo.CreateService(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	c.Invalidate(ctx)
	return nil
}

func (c *Catalog) Update(ctx context.Context, svc *models.Service) error {
	if err := c.repo.UpdateService(ctx, svc); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	c.Invalidate(ctx)
	return nil
}

// Find busca qualquer serviço (ativo ou não) para edição.
func (c *Catalog) Find(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := c.repo.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return svc, nil
}

func (c *Catalog) Invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog cache invalidate failed")
	}
}
