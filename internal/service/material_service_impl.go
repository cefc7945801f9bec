package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sitedesk/sitedesk/internal/domain"
	"github.com/sitedesk/sitedesk/internal/repository"
)

type materialService struct {
	materials repository.MaterialRepo
	observer  UseCaseObserver
}

// NewMaterialService creates the inventory service.
func NewMaterialService(materials repository.MaterialRepo, observers ...UseCaseObserver) MaterialService {
	return &materialService{
		materials: materials,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *materialService) List(ctx context.Context) []domain.Material {
	return s.materials.List()
}

func (s *materialService) Add(ctx context.Context, m domain.Material) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "material_add", started, err, map[string]any{"name": m.Name})
	}()

	m.Name = strings.TrimSpace(m.Name)
	if m.Status == "" {
		m.Status = domain.StockIn
	}
	if err = m.Validate(); err != nil {
		return err
	}
	return s.materials.Add(ctx, m)
}

func (s *materialService) ToggleStatus(ctx context.Context, index int) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "material_toggle", started, err, map[string]any{"index": index})
	}()
	return s.materials.ToggleStatus(ctx, index)
}

func (s *materialService) SetQuantity(ctx context.Context, index, quantity int) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "material_quantity", started, err, map[string]any{"index": index, "quantity": quantity})
	}()
	if quantity < 0 {
		return fmt.Errorf("%w: material quantity cannot be negative", domain.ErrValidation)
	}
	return s.materials.SetQuantity(ctx, index, quantity)
}
