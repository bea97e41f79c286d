package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// CustomersStore defines the database operations required by CustomersProcessor
type CustomersStore interface {
	CreateClient(ctx context.Context, params store.CreateClientParams) (store.Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (store.Client, error)
	GetClientByName(ctx context.Context, name string) (store.Client, error)
	ListClients(ctx context.Context) ([]store.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, params store.UpdateClientParams) (store.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	CountCampaignsByClient(ctx context.Context, clientID uuid.UUID) (int, error)

	CreateCategory(ctx context.Context, name string) (store.Category, error)
	GetCategoryByName(ctx context.Context, name string) (store.Category, error)
	ListCategories(ctx context.Context) ([]store.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (store.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

var (
	ErrClientNotFound   = fmt.Errorf("client not found: %w", domain.ErrNotFound)
	ErrClientExists     = fmt.Errorf("a client with this name already exists: %w", domain.ErrConflict)
	ErrClientInUse      = fmt.Errorf("client still has campaigns: %w", domain.ErrConflict)
	ErrNameRequired     = fmt.Errorf("name is required: %w", domain.ErrBadInput)
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", domain.ErrNotFound)
	ErrCategoryExists   = fmt.Errorf("category already exists: %w", domain.ErrConflict)
)

type CustomersProcessor struct {
	store  CustomersStore
	logger *observability.Logger
}

func New(store CustomersStore, logger *observability.Logger) CustomersProcessor {
	return CustomersProcessor{
		store:  store,
		logger: logger,
	}
}

type ClientParams struct {
	Name    string
	CNPJ    *string
	Contact *string
	Email   *string
}

func (p *CustomersProcessor) CreateClient(ctx context.Context, params ClientParams) (store.Client, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return store.Client{}, ErrNameRequired
	}
	if err := p.ensureClientNameFree(ctx, name, uuid.Nil); err != nil {
		return store.Client{}, err
	}

	client, err := p.store.CreateClient(ctx, store.CreateClientParams{
		Name:    name,
		CNPJ:    trimmed(params.CNPJ),
		Contact: trimmed(params.Contact),
		Email:   trimmed(params.Email),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create client", err)
		return store.Client{}, err
	}
	return client, nil
}

func (p *CustomersProcessor) GetClient(ctx context.Context, id uuid.UUID) (store.Client, error) {
	client, err := p.store.GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Client{}, ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to get client", err)
		return store.Client{}, err
	}
	return client, nil
}

func (p *CustomersProcessor) ListClients(ctx context.Context) ([]store.Client, error) {
	clients, err := p.store.ListClients(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list clients", err)
		return nil, err
	}
	return clients, nil
}

type UpdateClientParams struct {
	Name    *string
	CNPJ    *string
	Contact *string
	Email   *string
}

// UpdateClient merges the non-nil fields of params. An empty Name keeps the
// current one.
func (p *CustomersProcessor) UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (store.Client, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: id.String()})

	upd := store.UpdateClientParams{
		CNPJ:    trimmed(params.CNPJ),
		Contact: trimmed(params.Contact),
		Email:   trimmed(params.Email),
	}
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return store.Client{}, ErrNameRequired
		}
		if err := p.ensureClientNameFree(ctx, name, id); err != nil {
			return store.Client{}, err
		}
		upd.Name = &name
	}

	client, err := p.store.UpdateClient(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Client{}, ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to update client", err)
		return store.Client{}, err
	}
	return client, nil
}

// DeleteClient refuses while campaigns still reference the client.
func (p *CustomersProcessor) DeleteClient(ctx context.Context, id uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "client_id", Value: id.String()})

	n, err := p.store.CountCampaignsByClient(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to count client campaigns", err)
		return err
	}
	if n > 0 {
		return ErrClientInUse
	}
	if err := p.store.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		p.logger.Error(ctx, "failed to delete client", err)
		return err
	}
	p.logger.Info(ctx, "client deleted")
	return nil
}

func (p *CustomersProcessor) ensureClientNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := p.store.GetClientByName(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		p.logger.Error(ctx, "failed to look up client name", err)
		return err
	case existing.ID != self:
		return ErrClientExists
	}
	return nil
}

func (p *CustomersProcessor) CreateCategory(ctx context.Context, name string) (store.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.Category{}, ErrNameRequired
	}
	if err := p.ensureCategoryFree(ctx, name, uuid.Nil); err != nil {
		return store.Category{}, err
	}
	cat, err := p.store.CreateCategory(ctx, name)
	if err != nil {
		p.logger.Error(ctx, "failed to create category", err)
		return store.Category{}, err
	}
	return cat, nil
}

func (p *CustomersProcessor) ListCategories(ctx context.Context) ([]store.Category, error) {
	cats, err := p.store.ListCategories(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list categories", err)
		return nil, err
	}
	return cats, nil
}

// RenameCategory changes the catalogue entry only. Edges keep the category
// string they were saved with.
func (p *CustomersProcessor) RenameCategory(ctx context.Context, id uuid.UUID, name string) (store.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.Category{}, ErrNameRequired
	}
	if err := p.ensureCategoryFree(ctx, name, id); err != nil {
		return store.Category{}, err
	}
	cat, err := p.store.UpdateCategory(ctx, id, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Category{}, ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to rename category", err)
		return store.Category{}, err
	}
	return cat, nil
}

func (p *CustomersProcessor) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to delete category", err)
		return err
	}
	return nil
}

func (p *CustomersProcessor) ensureCategoryFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := p.store.GetCategoryByName(ctx, name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		p.logger.Error(ctx, "failed to look up category", err)
		return err
	case existing.ID != self:
		return ErrCategoryExists
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
