package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/patrickmn/go-cache"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/internal/repository"
	pkgauth "github.com/rbdtech/afc-portal-api/pkg/auth"
	"github.com/rbdtech/afc-portal-api/pkg/security"
)

var (
	// ErrInvalidCredentials is returned for both a wrong password and
	// an unknown email; callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)

// Service is the session/identity layer: it resolves who is acting,
// backed by a JWT the client persists plus a lookup into the store.
type Service struct {
	users    repository.Store
	jwtSvc   pkgauth.JWTService
	demoHash string
	sessions *cache.Cache
}

// NewService hashes the single demo password once at construction; the
// portal has no per-user credentials.
func NewService(users repository.Store, jwtSvc pkgauth.JWTService, demoPassword string) (*Service, error) {
	demoHash, err := security.HashDemoPassword(demoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	return &Service{
		users:    users,
		jwtSvc:   jwtSvc,
		demoHash: demoHash,
		sessions: cache.New(jwtSvc.AccessExpiry(), 2*jwtSvc.AccessExpiry()),
	}, nil
}

type LoginResult struct {
	User   *model.User          `json:"user"`
	Tokens *model.TokenResponse `json:"tokens"`
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := security.CompareDemoPassword(s.demoHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.sessions.Set(user.ID, *user, cache.DefaultExpiration)

	return &LoginResult{User: user, Tokens: tokens}, nil
}

func (s *Service) Logout(ctx context.Context, userID string) {
	s.sessions.Delete(userID)
}

// Restore re-resolves a persisted session token against the store. If
// the user behind the token is gone the session is evicted so a stale
// token is discarded, mirroring the startup cleanup of the portal.
func (s *Service) Restore(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		s.sessions.Delete(claims.UserID)
		return nil, fmt.Errorf("%w: user no longer exists", ErrSessionExpired)
	}

	s.sessions.Set(user.ID, *user, cache.DefaultExpiration)
	return user, nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	claims, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokens(user)
}

// Register creates a Patient record with a masked SSN. As in the demo
// flow it reports success unconditionally and never stores a password.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Patient, error) {
	patient := &model.Patient{
		User: model.User{
			Email: req.Email,
			Name:  req.Name,
			Role:  model.RolePatient,
			Phone: req.Phone,
		},
		SSN:            security.MaskSSN(req.SSN),
		MedicalHistory: []string{},
	}

	created, err := s.users.AddPatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}
	return created, nil
}

// UpdateUser merges the partial update into the store record and then
// refreshes the cached session blob. Store first, session second.
func (s *Service) UpdateUser(ctx context.Context, userID string, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.users.UpdateUser(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if _, found := s.sessions.Get(userID); found {
		s.sessions.Set(userID, *user, cache.DefaultExpiration)
	}
	return user, nil
}

// CurrentUser prefers the cached session blob and falls back to the
// store for sessions restored on another instance.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	if v, found := s.sessions.Get(userID); found {
		u := v.(model.User)
		return &u, nil
	}
	return s.users.GetUserByID(ctx, userID)
}

func (s *Service) ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error) {
	return s.jwtSvc.ValidateToken(token)
}

func (s *Service) generateTokens(user *model.User) (*model.TokenResponse, error) {
	access, err := s.jwtSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtSvc.AccessExpiry().Seconds()),
	}, nil
}
