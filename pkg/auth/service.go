package auth

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	RegisterAdmin(ctx context.Context, username string, password string) error
	AdminLogin(ctx context.Context, username string, password string) (string, Admin, error)
	UserLogin(ctx context.Context, username string, department string, group string) (string, User, error)
	Logout(token string) error
	// Authenticate checks the revocation list and then the token signature,
	// returning the caller identity. All failure causes collapse into a
	// uniform ErrInvalidToken/ErrMissingToken so the response does not leak
	// which check failed.
	Authenticate(token string) (Identity, error)
}

type ServiceImpl struct {
	repo       Repo
	tokens     *TokenManager
	revoked    RevocationStore
	bcryptCost int
}

func NewService(repo Repo, tokens *TokenManager, revoked RevocationStore, bcryptCost int) *ServiceImpl {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &ServiceImpl{repo: repo, tokens: tokens, revoked: revoked, bcryptCost: bcryptCost}
}

func (s *ServiceImpl) RegisterAdmin(ctx context.Context, username string, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if _, err := s.repo.StoreAdmin(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("failed to store admin: %w", err)
	}
	return nil
}

func (s *ServiceImpl) AdminLogin(ctx context.Context, username string, password string) (string, Admin, error) {
	admin, err := s.repo.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUnknownUser) {
			return "", Admin{}, ErrUnknownUser
		}
		return "", Admin{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", Admin{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID, admin.Username)
	if err != nil {
		return "", Admin{}, err
	}
	return token, admin, nil
}

// UserLogin finds the identity record for username or creates one with the
// supplied department/group, then issues a token either way.
func (s *ServiceImpl) UserLogin(ctx context.Context, username string, department string, group string) (string, User, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if errors.Is(err, ErrUnknownUser) {
		id, storeErr := s.repo.StoreUser(ctx, User{Username: username, Department: department, Group: group})
		if storeErr != nil {
			return "", User{}, storeErr
		}
		user, err = s.repo.FindUserByID(ctx, id)
	}
	if err != nil {
		return "", User{}, err
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return "", User{}, err
	}
	return token, user, nil
}

func (s *ServiceImpl) Logout(token string) error {
	if token == "" {
		return ErrMissingToken
	}
	s.revoked.Revoke(token, s.tokens.Expiry(token))
	log.Debug("token revoked")
	return nil
}

func (s *ServiceImpl) Authenticate(token string) (Identity, error) {
	if token == "" || s.revoked.IsRevoked(token) {
		return Identity{}, ErrMissingToken
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
