package catalog

import (
	"errors"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/gorm"
)

// SellingProductStore and RepairingProductStore cover the two simple product
// tables. No stock deltas here, just counts.

type SellingProductStore struct {
	db *gorm.DB
}

func NewSellingProductStore(db *gorm.DB) *SellingProductStore {
	return &SellingProductStore{db: db}
}

type SellingProductInput struct {
	Name     string
	Type     string
	Price    float64
	Quantity int
}

type SellingProductPatch struct {
	Name     *string
	Type     *string
	Price    *float64
	Quantity *int
}

func (s *SellingProductStore) Create(in SellingProductInput) (*models.SellingProduct, error) {
	if in.Name == "" || in.Type == "" {
		return nil, apperr.Validationf("All fields are required")
	}
	p := models.SellingProduct{Name: in.Name, Type: in.Type, Price: in.Price, Quantity: in.Quantity}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SellingProductStore) List() ([]models.SellingProduct, error) {
	var ps []models.SellingProduct
	if err := s.db.Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *SellingProductStore) Update(id uint, patch SellingProductPatch) (*models.SellingProduct, error) {
	var p models.SellingProduct
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Product not found")
		}
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SellingProductStore) Delete(id uint) error {
	res := s.db.Delete(&models.SellingProduct{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Product not found")
	}
	return nil
}

type RepairingProductStore struct {
	db *gorm.DB
}

func NewRepairingProductStore(db *gorm.DB) *RepairingProductStore {
	return &RepairingProductStore{db: db}
}

type RepairingProductInput struct {
	Name     string
	Type     string
	Company  string
	Model    string
	Quantity int
}

type RepairingProductPatch struct {
	Name     *string
	Type     *string
	Company  *string
	Model    *string
	Quantity *int
}

func (s *RepairingProductStore) Create(in RepairingProductInput) (*models.RepairingProduct, error) {
	if in.Name == "" || in.Type == "" || in.Company == "" || in.Model == "" {
		return nil, apperr.Validationf("All fields are required")
	}
	p := models.RepairingProduct{Name: in.Name, Type: in.Type, Company: in.Company, Model: in.Model, Quantity: in.Quantity}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *RepairingProductStore) List() ([]models.RepairingProduct, error) {
	var ps []models.RepairingProduct
	if err := s.db.Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *RepairingProductStore) Update(id uint, patch RepairingProductPatch) (*models.RepairingProduct, error) {
	var p models.RepairingProduct
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Product not found")
		}
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Company != nil {
		p.Company = *patch.Company
	}
	if patch.Model != nil {
		p.Model = *patch.Model
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *RepairingProductStore) Delete(id uint) error {
	res := s.db.Delete(&models.RepairingProduct{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Product not found")
	}
	return nil
}
