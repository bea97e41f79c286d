package store

import (
	"context"
	"fmt"
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrInviteUsed is returned when an invite was already redeemed.
var ErrInviteUsed = fmt.Errorf("invite already used: %w", domain.ErrConflict)

type CreateInviteParams struct {
	Token        string
	CreatedBy    uuid.UUID
	InviteeEmail *string
	ExpiresAt    time.Time
}

const inviteColumns = `id, token, created_by, invitee_email, expires_at, used_at, used_by, created_at`

const sqlCreateInvite = `
INSERT INTO invites (id, token, created_by, invitee_email, expires_at, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

func (s *Store) CreateInvite(ctx context.Context, params CreateInviteParams) (Invite, error) {
	id := uuid.New()
	_, err := s.exec(ctx, s.db, sqlCreateInvite,
		id, params.Token, params.CreatedBy, params.InviteeEmail, params.ExpiresAt.UTC(), now())
	if err != nil {
		s.logger.Error(ctx, "failed to create invite", err)
		return Invite{}, fmt.Errorf("failed to create invite: %w", err)
	}
	return s.GetInviteByID(ctx, id)
}

const sqlGetInviteByID = `SELECT ` + inviteColumns + ` FROM invites WHERE id = ?`

func (s *Store) GetInviteByID(ctx context.Context, id uuid.UUID) (Invite, error) {
	var inv Invite
	if err := s.get(ctx, s.db, &inv, sqlGetInviteByID, id); err != nil {
		return Invite{}, s.notFound(ctx, err, "get invite by id")
	}
	return inv, nil
}

const sqlGetInviteByToken = `SELECT ` + inviteColumns + ` FROM invites WHERE token = ?`

func (s *Store) GetInviteByToken(ctx context.Context, token string) (Invite, error) {
	var inv Invite
	if err := s.get(ctx, s.db, &inv, sqlGetInviteByToken, token); err != nil {
		return Invite{}, s.notFound(ctx, err, "get invite by token")
	}
	return inv, nil
}

const sqlListInvites = `SELECT ` + inviteColumns + ` FROM invites ORDER BY created_at DESC`

func (s *Store) ListInvites(ctx context.Context) ([]Invite, error) {
	invites := []Invite{}
	if err := s.sel(ctx, s.db, &invites, sqlListInvites); err != nil {
		s.logger.Error(ctx, "failed to list invites", err)
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, nil
}

const sqlRedeemInvite = `UPDATE invites SET used_at = ?, used_by = ? WHERE id = ? AND used_at IS NULL`

// RedeemInviteWithUser creates the invited user and marks the invite used in
// one transaction. A concurrent or repeated redemption fails with ErrInviteUsed.
func (s *Store) RedeemInviteWithUser(ctx context.Context, inviteID uuid.UUID, params CreateUserParams) (User, error) {
	var user User
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		user, err = s.createUser(ctx, tx, params)
		if err != nil {
			return err
		}
		res, err := s.exec(ctx, tx, sqlRedeemInvite, now(), user.ID, inviteID)
		if err != nil {
			return fmt.Errorf("failed to redeem invite: %w", err)
		}
		if err := affectedOrNotFound(res); err != nil {
			return ErrInviteUsed
		}
		return nil
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

const sqlDeleteInvite = `DELETE FROM invites WHERE id = ?`

func (s *Store) DeleteInvite(ctx context.Context, id uuid.UUID) error {
	res, err := s.exec(ctx, s.db, sqlDeleteInvite, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete invite", err)
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	return affectedOrNotFound(res)
}

const sqlListUnusedInvites = `SELECT ` + inviteColumns + ` FROM invites WHERE used_at IS NULL`

// PurgeExpiredInvites hard-deletes unused invites whose expiry is before cutoff.
// Expiry is compared in Go, not in SQL.
func (s *Store) PurgeExpiredInvites(ctx context.Context, cutoff time.Time) (int, error) {
	var unused []Invite
	if err := s.sel(ctx, s.db, &unused, sqlListUnusedInvites); err != nil {
		s.logger.Error(ctx, "failed to list unused invites", err)
		return 0, fmt.Errorf("failed to list unused invites: %w", err)
	}
	purged := 0
	for _, inv := range unused {
		if !inv.ExpiresAt.Before(cutoff) {
			continue
		}
		if _, err := s.exec(ctx, s.db, sqlDeleteInvite, inv.ID); err != nil {
			s.logger.Error(ctx, "failed to purge invite", err)
			return purged, fmt.Errorf("failed to purge invite: %w", err)
		}
		purged++
	}
	return purged, nil
}

const sqlCountInvites = `SELECT COUNT(*) FROM invites`

func (s *Store) CountInvites(ctx context.Context) (int, error) {
	var n int
	if err := s.get(ctx, s.db, &n, sqlCountInvites); err != nil {
		return 0, fmt.Errorf("failed to count invites: %w", err)
	}
	return n, nil
}
