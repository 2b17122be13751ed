package service

import (
	"errors"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

var ErrItemNotFound = errors.New("food not found")

type MenuService struct {
	menu MenuRepository
}

func NewMenuService(menu MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) List() ([]domain.MenuItem, error) {
	return s.menu.ListItems()
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if item.Name == "" || item.Category == "" || item.Price == 0 {
		return ErrMissingFields
	}
	return s.menu.CreateItem(item)
}

// Update overwrites every editable field, mirroring the admin form
// which always submits the full item.
func (s *MenuService) Update(item *domain.MenuItem) error {
	affected, err := s.menu.UpdateItem(item)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *MenuService) Delete(id int) error {
	affected, err := s.menu.DeleteItem(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
