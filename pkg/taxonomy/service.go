package taxonomy

import (
	"context"
	"errors"
)

var ErrIncompleteMapping = errors.New("group and team are required")

type Service interface {
	Groups(ctx context.Context) ([]string, error)
	AllTeams(ctx context.Context) ([]string, error)
	TeamsByGroup(ctx context.Context, group string) ([]string, error)
	AddGroupTeam(ctx context.Context, gt GroupTeam) (int, error)

	AllGRMs(ctx context.Context) ([]GRMInfo, error)
	AddGRM(ctx context.Context, grm GRMInfo) (int, error)
	UpdateGRM(ctx context.Context, grm GRMInfo) (bool, error)
	DeleteGRM(ctx context.Context, grmID int) (bool, error)
	GRMByDept(ctx context.Context, dept string) (GRMInfo, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Groups(ctx context.Context) ([]string, error) {
	return s.repo.Groups(ctx)
}

func (s *ServiceImpl) AllTeams(ctx context.Context) ([]string, error) {
	return s.repo.AllTeams(ctx)
}

func (s *ServiceImpl) TeamsByGroup(ctx context.Context, group string) ([]string, error) {
	return s.repo.TeamsByGroup(ctx, group)
}

func (s *ServiceImpl) AddGroupTeam(ctx context.Context, gt GroupTeam) (int, error) {
	if gt.Group == "" || gt.Team == "" {
		return 0, ErrIncompleteMapping
	}
	return s.repo.StoreGroupTeam(ctx, gt)
}

func (s *ServiceImpl) AllGRMs(ctx context.Context) ([]GRMInfo, error) {
	return s.repo.AllGRMs(ctx)
}

func (s *ServiceImpl) AddGRM(ctx context.Context, grm GRMInfo) (int, error) {
	return s.repo.StoreGRM(ctx, grm)
}

func (s *ServiceImpl) UpdateGRM(ctx context.Context, grm GRMInfo) (bool, error) {
	return s.repo.UpdateGRM(ctx, grm)
}

func (s *ServiceImpl) DeleteGRM(ctx context.Context, grmID int) (bool, error) {
	return s.repo.DeleteGRM(ctx, grmID)
}

func (s *ServiceImpl) GRMByDept(ctx context.Context, dept string) (GRMInfo, error) {
	return s.repo.GRMByDept(ctx, dept)
}
