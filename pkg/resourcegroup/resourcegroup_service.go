package resourcegroup

import (
	"context"

	"github.com/pmodesk/pmodesk/pkg/auth"
)

type ResourceGroupService interface {
	GetAll(ctx context.Context) ([]ResourceGroup, error)
	Save(ctx context.Context, group ResourceGroup) (int, error)
	Update(ctx context.Context, group ResourceGroup) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ResourceGroupServiceImpl struct {
	repo ResourceGroupRepo
}

func NewResourceGroupService(repo ResourceGroupRepo) *ResourceGroupServiceImpl {
	return &ResourceGroupServiceImpl{repo}
}

func (s *ResourceGroupServiceImpl) GetAll(ctx context.Context) ([]ResourceGroup, error) {
	return s.repo.GetAll(ctx)
}

// Save records the authenticated submitter alongside the mapping.
func (s *ResourceGroupServiceImpl) Save(ctx context.Context, group ResourceGroup) (int, error) {
	group.Username = auth.SubmittedBy(ctx)
	return s.repo.Store(ctx, group)
}

func (s *ResourceGroupServiceImpl) Update(ctx context.Context, group ResourceGroup) (bool, error) {
	return s.repo.Update(ctx, group)
}

func (s *ResourceGroupServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}
