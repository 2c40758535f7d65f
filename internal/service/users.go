// internal/service/users.go
package service

import (
	"context"
	"fmt"
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/storage"
)

type NewUser struct {
	Name     string
	Email    string
	Password string
}

// UserChanges: nil-поля не меняются. Пароль приходит в открытом виде.
type UserChanges struct {
	Name     *string
	Email    *string
	Password *string
}

type UserService struct {
	store  storage.UserStorage
	hasher *auth.PasswordHasher
}

func NewUserService(store storage.UserStorage, hasher *auth.PasswordHasher) *UserService {
	return &UserService{store: store, hasher: hasher}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *UserService) GetOne(ctx context.Context, id int) (*domain.User, error) {
	return s.store.FindUser(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.store.FindUserByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, in NewUser) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.store.CreateUser(ctx, domain.UserCreate{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
}

func (s *UserService) Update(ctx context.Context, id int, in UserChanges) (*domain.User, error) {
	upd := domain.UserUpdate{Name: in.Name, Email: in.Email}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("update user %d: %w", id, err)
		}
		upd.PasswordHash = &hash
	}
	return s.store.UpdateUser(ctx, id, upd)
}

func (s *UserService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteUser(ctx, id)
}

// Authenticate возвращает auth.ErrInvalidCredentials и для неизвестного email, и для неверного пароля.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if user == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, err
	}
	return user, nil
}
