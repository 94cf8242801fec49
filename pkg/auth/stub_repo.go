package auth

import (
	"context"
)

type StubRepo struct {
	nextId int
	admins map[string]Admin
	users  map[int]User
}

func NewStubRepo() *StubRepo {
	return &StubRepo{
		nextId: 0,
		admins: map[string]Admin{},
		users:  map[int]User{},
	}
}

func (s *StubRepo) StoreAdmin(ctx context.Context, username string, passwordHash string) (int, error) {
	s.nextId++
	s.admins[username] = Admin{ID: s.nextId, Username: username, PasswordHash: passwordHash}
	return s.nextId, nil
}

func (s *StubRepo) FindAdminByUsername(ctx context.Context, username string) (Admin, error) {
	admin, ok := s.admins[username]
	if !ok {
		return Admin{}, ErrUnknownUser
	}
	return admin, nil
}

func (s *StubRepo) StoreUser(ctx context.Context, user User) (int, error) {
	s.nextId++
	user.ID = s.nextId
	s.users[user.ID] = user
	return user.ID, nil
}

func (s *StubRepo) FindUserByUsername(ctx context.Context, username string) (User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return User{}, ErrUnknownUser
}

func (s *StubRepo) FindUserByID(ctx context.Context, id int) (User, error) {
	user, ok := s.users[id]
	if !ok {
		return User{}, ErrUnknownUser
	}
	return user, nil
}
