package catalog

import (
	"errors"
	"time"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/gorm"
)

// AccessoryStore owns the sellable spare-part table and its stock counters.
type AccessoryStore struct {
	db *gorm.DB
}

func NewAccessoryStore(db *gorm.DB) *AccessoryStore {
	return &AccessoryStore{db: db}
}

type AccessoryInput struct {
	Name         string
	Type         string
	Company      string
	Category     string
	InitialStock int
	MinimumStock int
	UnitPrice    float64
}

// AccessoryPatch mixes plain overwrites with two stock deltas:
// LastPurchaseQuantity deducts stock and AddedStock restocks. When both are
// present the deduction is applied first.
type AccessoryPatch struct {
	Name                 *string
	Type                 *string
	Company              *string
	Category             *string
	InitialStock         *int
	MinimumStock         *int
	UnitPrice            *float64
	LastPurchaseQuantity *int // delta: stock out
	AddedStock           *int // delta: restock
}

func (s *AccessoryStore) Create(in AccessoryInput) (*models.Accessory, error) {
	if in.Name == "" || in.Type == "" || in.Company == "" {
		return nil, apperr.Validationf("All fields are required")
	}
	if in.InitialStock < 0 || in.MinimumStock < 0 {
		return nil, apperr.Validationf("Stock values must not be negative")
	}

	acc := models.Accessory{
		Name:         in.Name,
		Type:         in.Type,
		Company:      in.Company,
		Category:     in.Category,
		InitialStock: in.InitialStock,
		AddedStock:   in.InitialStock, // on-hand starts at the initial count
		MinimumStock: in.MinimumStock,
		UnitPrice:    in.UnitPrice,
	}
	if err := s.db.Create(&acc).Error; err != nil {
		return nil, err
	}
	acc.Alert = acc.LowStock()
	return &acc, nil
}

func (s *AccessoryStore) List() ([]models.Accessory, error) {
	var accs []models.Accessory
	if err := s.db.Find(&accs).Error; err != nil {
		return nil, err
	}
	for i := range accs {
		accs[i].Alert = accs[i].LowStock()
	}
	return accs, nil
}

func (s *AccessoryStore) Get(id uint) (*models.Accessory, error) {
	var acc models.Accessory
	if err := s.db.First(&acc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Accessory not found")
		}
		return nil, err
	}
	acc.Alert = acc.LowStock()
	return &acc, nil
}

func (s *AccessoryStore) Update(id uint, patch AccessoryPatch) (*models.Accessory, error) {
	var acc models.Accessory
	if err := s.db.First(&acc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Accessory not found")
		}
		return nil, err
	}

	// Validate the deltas before mutating anything.
	if patch.LastPurchaseQuantity != nil {
		if *patch.LastPurchaseQuantity < 0 {
			return nil, apperr.Validationf("last_purchase_quantity must not be negative")
		}
		if *patch.LastPurchaseQuantity > acc.AddedStock {
			return nil, apperr.Conflictf("Insufficient stock")
		}
	}
	if patch.AddedStock != nil && *patch.AddedStock < 0 {
		return nil, apperr.Validationf("added_stock must not be negative")
	}

	if patch.Name != nil {
		acc.Name = *patch.Name
	}
	if patch.Type != nil {
		acc.Type = *patch.Type
	}
	if patch.Company != nil {
		acc.Company = *patch.Company
	}
	if patch.Category != nil {
		acc.Category = *patch.Category
	}
	if patch.InitialStock != nil {
		acc.InitialStock = *patch.InitialStock
	}
	if patch.MinimumStock != nil {
		acc.MinimumStock = *patch.MinimumStock
	}
	if patch.UnitPrice != nil {
		acc.UnitPrice = *patch.UnitPrice
	}

	// Purchase deduction first, restock after.
	if patch.LastPurchaseQuantity != nil && *patch.LastPurchaseQuantity > 0 {
		q := *patch.LastPurchaseQuantity
		acc.AddedStock -= q
		acc.StockOut += q
		acc.LastPurchaseQuantity = q
		now := time.Now()
		acc.LastPurchaseDate = &now
	}
	if patch.AddedStock != nil && *patch.AddedStock > 0 {
		acc.AddedStock += *patch.AddedStock
	}

	if err := s.db.Save(&acc).Error; err != nil {
		return nil, err
	}
	acc.Alert = acc.LowStock()
	return &acc, nil
}

func (s *AccessoryStore) Delete(id uint) error {
	res := s.db.Delete(&models.Accessory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Accessory not found")
	}
	return nil
}
