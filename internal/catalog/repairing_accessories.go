package catalog

import (
	"errors"
	"time"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/gorm"
)

// RepairingAccessoryStore owns the repair-bench part table. The alert flag is
// persisted here, unlike the sales accessories.
type RepairingAccessoryStore struct {
	db *gorm.DB
}

func NewRepairingAccessoryStore(db *gorm.DB) *RepairingAccessoryStore {
	return &RepairingAccessoryStore{db: db}
}

type RepairingAccessoryInput struct {
	Name          string
	Type          string
	Company       string
	Model         string
	CurrentStock  int
	MinimumStock  int
	RepairingCost float64
	SellingCost   float64
}

// RepairingAccessoryPatch carries three independent stock deltas applied in
// order: AddStock (restock), LastPurchaseQuantity (out), LastRepairingQuantity
// (out). Everything else is a plain overwrite.
type RepairingAccessoryPatch struct {
	Name                  *string
	Type                  *string
	Company               *string
	Model                 *string
	MinimumStock          *int
	RepairingCost         *float64
	SellingCost           *float64
	AddStock              *int
	LastPurchaseQuantity  *int
	LastRepairingQuantity *int
}

func (s *RepairingAccessoryStore) Create(in RepairingAccessoryInput) (*models.RepairingAccessory, error) {
	if in.Name == "" || in.Type == "" || in.Company == "" || in.Model == "" {
		return nil, apperr.Validationf("All fields are required")
	}
	if in.CurrentStock < 0 || in.MinimumStock < 0 {
		return nil, apperr.Validationf("Stock values must not be negative")
	}

	var existing models.RepairingAccessory
	err := s.db.Where("name = ? AND type = ? AND company = ? AND model = ?",
		in.Name, in.Type, in.Company, in.Model).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflictf("Repairing accessory already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	acc := models.RepairingAccessory{
		Name:          in.Name,
		Type:          in.Type,
		Company:       in.Company,
		Model:         in.Model,
		CurrentStock:  in.CurrentStock,
		AddStock:      in.CurrentStock,
		MinimumStock:  in.MinimumStock,
		RepairingCost: in.RepairingCost,
		SellingCost:   in.SellingCost,
		Alert:         in.CurrentStock < in.MinimumStock,
	}
	if err := s.db.Create(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *RepairingAccessoryStore) List() ([]models.RepairingAccessory, error) {
	var accs []models.RepairingAccessory
	if err := s.db.Find(&accs).Error; err != nil {
		return nil, err
	}
	return accs, nil
}

func (s *RepairingAccessoryStore) Update(id uint, patch RepairingAccessoryPatch) (*models.RepairingAccessory, error) {
	var acc models.RepairingAccessory
	if err := s.db.First(&acc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Repairing accessory not found")
		}
		return nil, err
	}

	for _, d := range []*int{patch.AddStock, patch.LastPurchaseQuantity, patch.LastRepairingQuantity} {
		if d != nil && *d < 0 {
			return nil, apperr.Validationf("Stock deltas must not be negative")
		}
	}
	// The two deductions run after the restock; check against the post-restock
	// count so a combined restock+deduction call is judged as a whole.
	projected := acc.CurrentStock
	if patch.AddStock != nil {
		projected += *patch.AddStock
	}
	if patch.LastPurchaseQuantity != nil {
		projected -= *patch.LastPurchaseQuantity
	}
	if patch.LastRepairingQuantity != nil {
		projected -= *patch.LastRepairingQuantity
	}
	if projected < 0 {
		return nil, apperr.Conflictf("Insufficient stock")
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
	if patch.Model != nil {
		acc.Model = *patch.Model
	}
	if patch.MinimumStock != nil {
		acc.MinimumStock = *patch.MinimumStock
	}
	if patch.RepairingCost != nil {
		acc.RepairingCost = *patch.RepairingCost
	}
	if patch.SellingCost != nil {
		acc.SellingCost = *patch.SellingCost
	}

	now := time.Now()
	if patch.AddStock != nil && *patch.AddStock > 0 {
		acc.CurrentStock += *patch.AddStock
		acc.AddStock += *patch.AddStock
	}
	if patch.LastPurchaseQuantity != nil && *patch.LastPurchaseQuantity > 0 {
		q := *patch.LastPurchaseQuantity
		acc.CurrentStock -= q
		acc.TotalOutStock += q
		acc.LastPurchaseQuantity = q
		acc.LastPurchaseDate = &now
	}
	if patch.LastRepairingQuantity != nil && *patch.LastRepairingQuantity > 0 {
		q := *patch.LastRepairingQuantity
		acc.CurrentStock -= q
		acc.TotalOutStock += q
		acc.LastRepairingQuantity = q
		acc.LastRepairingDate = &now
	}

	acc.Alert = acc.CurrentStock < acc.MinimumStock

	if err := s.db.Save(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *RepairingAccessoryStore) Delete(id uint) error {
	res := s.db.Delete(&models.RepairingAccessory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Repairing accessory not found")
	}
	return nil
}
