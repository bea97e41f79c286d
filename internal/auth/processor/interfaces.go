package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"air-relatorios/internal/store"

	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (store.User, error)
	CreateUser(ctx context.Context, params store.CreateUserParams) (store.User, error)
	ListUsers(ctx context.Context) ([]store.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, params store.UpdateUserParams) (store.User, error)
	CountUsers(ctx context.Context) (int, error)
	TouchUserLogin(ctx context.Context, id uuid.UUID) error
	CreateInvite(ctx context.Context, params store.CreateInviteParams) (store.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (store.Invite, error)
	ListInvites(ctx context.Context) ([]store.Invite, error)
	DeleteInvite(ctx context.Context, id uuid.UUID) error
	RedeemInviteWithUser(ctx context.Context, inviteID uuid.UUID, params store.CreateUserParams) (store.User, error)
}

// EmailService defines the email operations required by AuthProcessor
type EmailService interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}
