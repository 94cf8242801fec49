package associate

import (
	"context"
	"errors"
)

var ErrEmptyRoster = errors.New("no associates supplied")

type AssociateService interface {
	AddAll(ctx context.Context, associates []Associate, dept string, team string) (int, error)
	GetByTeam(ctx context.Context, team string) ([]Associate, error)
	OptionsByTeam(ctx context.Context, team string) ([]Option, error)
	Update(ctx context.Context, associate Associate) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type AssociateServiceImpl struct {
	repo AssociateRepo
}

func NewAssociateService(repo AssociateRepo) *AssociateServiceImpl {
	return &AssociateServiceImpl{repo: repo}
}

// AddAll stores a batch of roster rows that share one department and team.
func (s *AssociateServiceImpl) AddAll(ctx context.Context, associates []Associate, dept string, team string) (int, error) {
	if len(associates) == 0 {
		return 0, ErrEmptyRoster
	}
	for i := range associates {
		associates[i].EmployeeDept = dept
		associates[i].EmployeeTeam = team
	}
	return s.repo.StoreAll(ctx, associates)
}

func (s *AssociateServiceImpl) GetByTeam(ctx context.Context, team string) ([]Associate, error) {
	return s.repo.GetByTeam(ctx, team)
}

func (s *AssociateServiceImpl) OptionsByTeam(ctx context.Context, team string) ([]Option, error) {
	return s.repo.OptionsByTeam(ctx, team)
}

func (s *AssociateServiceImpl) Update(ctx context.Context, associate Associate) (bool, error) {
	return s.repo.Update(ctx, associate)
}

func (s *AssociateServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}
