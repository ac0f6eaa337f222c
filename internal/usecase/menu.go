package usecase

import (
	"context"
	"errors"

	"food-preorder/internal/domain/menu"
	reqdto "food-preorder/internal/handler/dto/request"
	"food-preorder/internal/infra"
	"food-preorder/internal/infra/db"
	"food-preorder/internal/pkg/errs"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("menu category not found")
)

type MenuRepository interface {
	ListCatalog(ctx context.Context) ([]readmodel.MenuCategoryRM, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*readmodel.MenuItemRM, error)
	FindItemsByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]readmodel.MenuItemRM, error)
	CreateItem(ctx context.Context, item *menu.Item) (*readmodel.MenuItemRM, error)
	UpdateItem(ctx context.Context, id uuid.UUID, patch menu.ItemPatch) (*readmodel.MenuItemRM, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type MenuUseCase interface {
	GetCatalog(ctx context.Context) ([]readmodel.MenuCategoryRM, error)
	CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (*readmodel.MenuItemRM, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) (*readmodel.MenuItemRM, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type menuUseCaseImpl struct {
	menuRepo MenuRepository
}

func NewMenuUseCase(menuRepo MenuRepository) MenuUseCase {
	return &menuUseCaseImpl{menuRepo: menuRepo}
}

func (m *menuUseCaseImpl) GetCatalog(ctx context.Context) ([]readmodel.MenuCategoryRM, error) {
	catalog, err := m.menuRepo.ListCatalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return catalog, nil
}

func (m *menuUseCaseImpl) CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (*readmodel.MenuItemRM, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	created, err := m.menuRepo.CreateItem(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (m *menuUseCaseImpl) UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) (*readmodel.MenuItemRM, error) {
	patch := req.ToPatch()
	if err := patch.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	updated, err := m.menuRepo.UpdateItem(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func (m *menuUseCaseImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := m.menuRepo.DeleteItem(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMenuItemNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
