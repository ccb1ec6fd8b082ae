// Package auth contiene los casos de uso de autenticación: registro, login
// con bcrypt + JWT y la sesión activa persistida en la colección tanerp_auth.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tanerp/internal/application/dto"
	"github.com/tu-usuario/tanerp/internal/domain"
	"github.com/tu-usuario/tanerp/internal/domain/entity"
	"github.com/tu-usuario/tanerp/internal/domain/repository"
	"github.com/tu-usuario/tanerp/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro, login, logout y sesión actual.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, jwtCfg: jwtCfg}
}

// Register crea un usuario con el password hasheado con bcrypt. Email
// duplicado retorna ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVentas
	}
	now := time.Now()
	user := &entity.User{
		ID:           entity.ID(uuid.New().String()),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica credenciales, genera el JWT y persiste el snapshot de
// sesión en tanerp_auth.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.String(), user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Session{
		ID:        entity.ID(uuid.New().String()),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Logout borra la sesión activa; idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear(ctx)
}

// CurrentSession retorna la sesión activa, o ErrUnauthorized si no hay o si
// ya expiró.
func (uc *AuthUseCase) CurrentSession(ctx context.Context) (*entity.Session, error) {
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
