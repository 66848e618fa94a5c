package catalog

import (
	"errors"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/gorm"
)

// ShopStore owns the shop directory referenced by invoice headers.
type ShopStore struct {
	db *gorm.DB
}

func NewShopStore(db *gorm.DB) *ShopStore {
	return &ShopStore{db: db}
}

type ShopInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

func (s *ShopStore) Create(in ShopInput) (*models.Shop, error) {
	if in.Name == "" || in.Address == "" || in.Phone == "" {
		return nil, apperr.Validationf("Name, address and phone are required")
	}
	shop := models.Shop{Name: in.Name, Address: in.Address, Phone: in.Phone, Email: in.Email}
	if err := s.db.Create(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (s *ShopStore) List() ([]models.Shop, error) {
	var shops []models.Shop
	if err := s.db.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

type ShopPatch struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

func (s *ShopStore) Update(id uint, patch ShopPatch) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Shop not found")
		}
		return nil, err
	}
	if patch.Name != nil {
		shop.Name = *patch.Name
	}
	if patch.Address != nil {
		shop.Address = *patch.Address
	}
	if patch.Phone != nil {
		shop.Phone = *patch.Phone
	}
	if patch.Email != nil {
		shop.Email = *patch.Email
	}
	if err := s.db.Save(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (s *ShopStore) Delete(id uint) error {
	res := s.db.Delete(&models.Shop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Shop not found")
	}
	return nil
}
