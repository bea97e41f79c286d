package processor

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"air-relatorios/internal/domain"
	"air-relatorios/internal/observability"
	"air-relatorios/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	ErrUserInactive        = fmt.Errorf("user is inactive: %w", domain.ErrUnauthorized)
	ErrEmailAlreadyExists  = fmt.Errorf("email already exists: %w", domain.ErrConflict)
	ErrInvalidInvite       = fmt.Errorf("invalid invite: %w", domain.ErrBadInput)
	ErrInviteExpired       = fmt.Errorf("invite expired: %w", domain.ErrBadInput)
	ErrInviteUsed          = store.ErrInviteUsed
	ErrInviteEmailMismatch = fmt.Errorf("invite was issued for another email: %w", domain.ErrBadInput)
	ErrUserNotFound        = fmt.Errorf("user not found: %w", domain.ErrNotFound)
	ErrInvalidJWTToken     = fmt.Errorf("invalid jwt token: %w", domain.ErrUnauthorized)
	ErrParseJWTToken       = fmt.Errorf("failed to parse jwt token: %w", domain.ErrUnauthorized)
	ErrExpiredToken        = fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
	ErrFailedSignIn        = errors.New("failed to sign in")
)

const (
	DefaultInviteTTL = 7 * 24 * time.Hour
	sessionTTL       = 24 * time.Hour
	jwtIssuer        = "air-relatorios"
)

type AuthConfig struct {
	JWTSecret string
	WebAppURI string
	InviteTTL time.Duration
}

type AuthProcessor struct {
	store      AuthStore
	authConfig AuthConfig
	email      EmailService
	logger     *observability.Logger
	now        func() time.Time
}

// New wires the processor. email may be nil when invites are not mailed.
func New(store AuthStore, authConfig AuthConfig, email EmailService, logger *observability.Logger) AuthProcessor {
	if authConfig.InviteTTL <= 0 {
		authConfig.InviteTTL = DefaultInviteTTL
	}
	return AuthProcessor{
		store:      store,
		authConfig: authConfig,
		email:      email,
		logger:     logger,
		now:        time.Now,
	}
}

type LoggedInUser struct {
	Token string     `json:"token"`
	User  store.User `json:"user"`
}

// IssuedInvite is an invite plus the link the invitee opens.
type IssuedInvite struct {
	store.Invite
	URL string `json:"url"`
}

// Login checks the credentials and issues a session token.
func (p *AuthProcessor) Login(ctx context.Context, email, password string) (LoggedInUser, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoggedInUser{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return LoggedInUser{}, err
	}
	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		p.logger.Error(ctx, "failed to verify password hash", err)
		return LoggedInUser{}, ErrInvalidCredentials
	}
	if !ok {
		return LoggedInUser{}, ErrInvalidCredentials
	}
	if !user.Active {
		return LoggedInUser{}, ErrUserInactive
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return LoggedInUser{}, err
	}
	if err := p.store.TouchUserLogin(ctx, user.ID); err != nil {
		p.logger.WarnWithError(ctx, "failed to record last login", err)
	}
	return LoggedInUser{Token: token, User: user}, nil
}

// GetUser returns the user behind a session.
func (p *AuthProcessor) GetUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return store.User{}, err
	}
	return user, nil
}

func (p *AuthProcessor) ListUsers(ctx context.Context) ([]store.User, error) {
	users, err := p.store.ListUsers(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list users", err)
		return nil, err
	}
	return users, nil
}

// SetUserActive toggles the soft delete flag of a user.
func (p *AuthProcessor) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (store.User, error) {
	user, err := p.store.UpdateUser(ctx, userID, store.UpdateUserParams{Active: &active})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to update user", err)
		return store.User{}, err
	}
	return user, nil
}

// ChangePassword replaces the password after checking the current one.
func (p *AuthProcessor) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := p.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := VerifyPassword(current, user.PasswordHash)
	if err != nil || !ok {
		return ErrInvalidCredentials
	}
	hash, err := HashPassword(next)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return err
	}
	if _, err := p.store.UpdateUser(ctx, userID, store.UpdateUserParams{PasswordHash: &hash}); err != nil {
		p.logger.Error(ctx, "failed to update password", err)
		return err
	}
	return nil
}

// SeedAdmin creates the first administrator when there are no users yet.
// It reports whether a user was created.
func (p *AuthProcessor) SeedAdmin(ctx context.Context, email, password, name string) (bool, error) {
	count, err := p.store.CountUsers(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count users", err)
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if email == "" || password == "" {
		p.logger.Warn(ctx, "no users and no seed admin credentials configured")
		return false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return false, err
	}
	if _, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         string(domain.RoleAdmin),
	}); err != nil {
		p.logger.Error(ctx, "failed to create seed admin", err)
		return false, err
	}
	p.logger.Info(ctx, "seed admin created", observability.Field{Key: "email", Value: email})
	return true, nil
}

// CreateInvite issues a one-shot invite. When inviteeEmail is set and mail is
// configured the link is also e-mailed; a mail failure does not fail the invite.
func (p *AuthProcessor) CreateInvite(ctx context.Context, createdBy uuid.UUID, inviteeEmail string, ttl time.Duration) (IssuedInvite, error) {
	if ttl <= 0 {
		ttl = p.authConfig.InviteTTL
	}
	token, err := domain.NewOpaqueToken()
	if err != nil {
		p.logger.Error(ctx, "failed to generate invite token", err)
		return IssuedInvite{}, err
	}

	params := store.CreateInviteParams{
		Token:     token,
		CreatedBy: createdBy,
		ExpiresAt: p.now().Add(ttl),
	}
	if e := strings.ToLower(strings.TrimSpace(inviteeEmail)); e != "" {
		params.InviteeEmail = &e
	}
	inv, err := p.store.CreateInvite(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create invite", err)
		return IssuedInvite{}, err
	}

	issued := IssuedInvite{Invite: inv, URL: p.link("convite", token)}
	if inv.InviteeEmail != nil && p.email != nil {
		body := fmt.Sprintf(`<p>Você foi convidado para o AIR Relatórios.</p><p><a href="%s">Criar minha conta</a></p>`,
			html.EscapeString(issued.URL))
		if _, err := p.email.SendEmail(ctx, *inv.InviteeEmail, "Convite AIR Relatórios", body); err != nil {
			p.logger.WarnWithError(ctx, "failed to send invite email", err)
		}
	}
	return issued, nil
}

func (p *AuthProcessor) link(param, token string) string {
	return strings.TrimRight(p.authConfig.WebAppURI, "/") + "/?" + url.Values{param: {token}}.Encode()
}

// ValidateInvite returns the invite when it can still be redeemed.
func (p *AuthProcessor) ValidateInvite(ctx context.Context, token string) (store.Invite, error) {
	inv, err := p.store.GetInviteByToken(ctx, strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Invite{}, ErrInvalidInvite
		}
		p.logger.Error(ctx, "failed to get invite", err)
		return store.Invite{}, err
	}
	if inv.UsedAt != nil {
		return store.Invite{}, ErrInviteUsed
	}
	if !p.now().Before(inv.ExpiresAt) {
		return store.Invite{}, ErrInviteExpired
	}
	return inv, nil
}

// AcceptInvite redeems token and creates a user account. The email defaults
// to the invitee email and must match it when both are set.
func (p *AuthProcessor) AcceptInvite(ctx context.Context, token, email, name, password string) (LoggedInUser, error) {
	inv, err := p.ValidateInvite(ctx, token)
	if err != nil {
		return LoggedInUser{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if inv.InviteeEmail != nil {
		if email != "" && email != *inv.InviteeEmail {
			return LoggedInUser{}, ErrInviteEmailMismatch
		}
		email = *inv.InviteeEmail
	}
	if email == "" {
		return LoggedInUser{}, fmt.Errorf("email is required: %w", domain.ErrBadInput)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	if _, err := p.store.GetUserByEmail(ctx, email); err == nil {
		return LoggedInUser{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check email", err)
		return LoggedInUser{}, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return LoggedInUser{}, err
	}
	user, err := p.store.RedeemInviteWithUser(ctx, inv.ID, store.CreateUserParams{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         string(domain.RoleUser),
	})
	if err != nil {
		if !errors.Is(err, store.ErrInviteUsed) {
			p.logger.Error(ctx, "failed to redeem invite", err)
		}
		return LoggedInUser{}, err
	}

	token, err = p.generateJWTToken(ctx, user)
	if err != nil {
		return LoggedInUser{}, err
	}
	return LoggedInUser{Token: token, User: user}, nil
}

func (p *AuthProcessor) ListInvites(ctx context.Context) ([]store.Invite, error) {
	invites, err := p.store.ListInvites(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list invites", err)
		return nil, err
	}
	return invites, nil
}

func (p *AuthProcessor) DeleteInvite(ctx context.Context, id uuid.UUID) error {
	if err := p.store.DeleteInvite(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidInvite
		}
		p.logger.Error(ctx, "failed to delete invite", err)
		return err
	}
	return nil
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	Role           string           `json:"role"`
}
