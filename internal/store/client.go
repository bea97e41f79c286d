package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type CreateClientParams struct {
	Name    string
	CNPJ    *string
	Contact *string
	Email   *string
}

type UpdateClientParams struct {
	Name    *string
	CNPJ    *string
	Contact *string
	Email   *string
}

const clientColumns = `id, name, cnpj, contact, email, created_at, updated_at`

const sqlCreateClient = `
INSERT INTO clients (id, name, cnpj, contact, email, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (s *Store) CreateClient(ctx context.Context, params CreateClientParams) (Client, error) {
	id := uuid.New()
	ts := now()
	if _, err := s.exec(ctx, s.db, sqlCreateClient, id, params.Name, params.CNPJ, params.Contact, params.Email, ts, ts); err != nil {
		s.logger.Error(ctx, "failed to create client", err)
		return Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	return s.GetClientByID(ctx, id)
}

const sqlGetClientByID = `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`

func (s *Store) GetClientByID(ctx context.Context, id uuid.UUID) (Client, error) {
	var c Client
	if err := s.get(ctx, s.reader(ctx), &c, sqlGetClientByID, id); err != nil {
		return Client{}, s.notFound(ctx, err, "get client by id")
	}
	return c, nil
}

const sqlGetClientByName = `SELECT ` + clientColumns + ` FROM clients WHERE LOWER(name) = LOWER(?)`

func (s *Store) GetClientByName(ctx context.Context, name string) (Client, error) {
	var c Client
	if err := s.get(ctx, s.db, &c, sqlGetClientByName, name); err != nil {
		return Client{}, s.notFound(ctx, err, "get client by name")
	}
	return c, nil
}

const sqlListClients = `SELECT ` + clientColumns + ` FROM clients ORDER BY name`

func (s *Store) ListClients(ctx context.Context) ([]Client, error) {
	clients := []Client{}
	if err := s.sel(ctx, s.db, &clients, sqlListClients); err != nil {
		s.logger.Error(ctx, "failed to list clients", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

const sqlUpdateClient = `
UPDATE clients SET
    name = COALESCE(?, name),
    cnpj = COALESCE(?, cnpj),
    contact = COALESCE(?, contact),
    email = COALESCE(?, email),
    updated_at = ?
WHERE id = ?`

func (s *Store) UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (Client, error) {
	res, err := s.exec(ctx, s.db, sqlUpdateClient, params.Name, params.CNPJ, params.Contact, params.Email, now(), id)
	if err != nil {
		s.logger.Error(ctx, "failed to update client", err)
		return Client{}, fmt.Errorf("failed to update client: %w", err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return Client{}, err
	}
	return s.GetClientByID(ctx, id)
}

const sqlDeleteClient = `DELETE FROM clients WHERE id = ?`

func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteClient, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete client", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlCountClients = `SELECT COUNT(*) FROM clients`

func (s *Store) CountClients(ctx context.Context) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountClients); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return n, nil
}

const sqlCountCampaignsByClient = `SELECT COUNT(*) FROM campaigns WHERE client_id = ?`

func (s *Store) CountCampaignsByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountCampaignsByClient, clientID); err != nil {
		return 0, fmt.Errorf("failed to count client campaigns: %w", err)
	}
	return n, nil
}
