package invoicing

import (
	"errors"
	"time"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessorySaleInput carries one accessory sale.
type AccessorySaleInput struct {
	CustomerName  string
	CustomerPhone string
	AccessoryID   uint
	ShopID        uint
	Quantity      int
}

// GenerateAccessoryInvoice sells a quantity of one accessory. The stock
// mutation happens exactly once: on-hand down, stock-out and times-sold up,
// purchase bookkeeping stamped, all in the same write as the invoice row.
func (s *Service) GenerateAccessoryInvoice(in AccessorySaleInput) (*AccessoryInvoiceView, error) {
	if in.Quantity <= 0 {
		return nil, apperr.Validationf("quantity must be greater than zero")
	}

	var view AccessoryInvoiceView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var acc models.Accessory
		if err := tx.First(&acc, in.AccessoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Accessory not found")
			}
			return err
		}
		var shop models.Shop
		if err := tx.First(&shop, in.ShopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Shop not found")
			}
			return err
		}
		if in.Quantity > acc.AddedStock {
			return apperr.Conflictf("Insufficient stock")
		}

		now := time.Now()
		acc.AddedStock -= in.Quantity
		acc.StockOut += in.Quantity
		acc.TimesSold += in.Quantity
		acc.LastPurchaseQuantity = in.Quantity
		acc.LastPurchaseDate = &now
		if err := tx.Save(&acc).Error; err != nil {
			return err
		}

		inv := models.AccessoryInvoice{
			InvoiceNumber: "AI-" + uuid.NewString(),
			AccessoryID:   acc.ID,
			ShopID:        shop.ID,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			Quantity:      in.Quantity,
			UnitPrice:     acc.UnitPrice,
			TotalPrice:    acc.UnitPrice * float64(in.Quantity),
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}

		acc.Alert = acc.LowStock()
		view = AccessoryInvoiceView{Invoice: inv, Accessory: acc, Shop: shop}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// AccessoryHistory lists accessory sale records with their accessory and
// shop, omitting records whose references have since been deleted.
func (s *Service) AccessoryHistory() ([]AccessoryInvoiceView, error) {
	var invs []models.AccessoryInvoice
	if err := s.db.Find(&invs).Error; err != nil {
		return nil, err
	}

	views := make([]AccessoryInvoiceView, 0, len(invs))
	for _, inv := range invs {
		var acc models.Accessory
		if err := s.db.First(&acc, inv.AccessoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		var shop models.Shop
		if err := s.db.First(&shop, inv.ShopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		acc.Alert = acc.LowStock()
		views = append(views, AccessoryInvoiceView{Invoice: inv, Accessory: acc, Shop: shop})
	}
	return views, nil
}
