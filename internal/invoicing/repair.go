package invoicing

import (
	"errors"
	"fmt"
	"time"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateRepairInvoice snapshots a repair ticket's current billing state.
// Calling it again for the same device creates another snapshot with its own
// invoice number; nothing dedupes repeated calls.
func (s *Service) GenerateRepairInvoice(deviceID, shopID uint) (*RepairInvoiceView, error) {
	var view RepairInvoiceView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var dev models.RepairingDevice
		if err := tx.First(&dev, deviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Repairing device not found")
			}
			return err
		}
		var shop models.Shop
		if err := tx.First(&shop, shopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Shop not found")
			}
			return err
		}

		inv := models.RepairingInvoice{
			InvoiceNumber:     repairInvoiceNumber(dev.ID),
			RepairingDeviceID: dev.ID,
			ShopID:            shop.ID,
			CustomerName:      dev.CustomerName,
			CustomerPhone:     dev.CustomerPhone,
			DeviceModel:       dev.DeviceModel,
			RepairingCost:     dev.RepairingCost,
			AdvancePayment:    dev.AdvancePayment,
			DuePrice:          dev.DuePrice,
			BillStatus:        dev.BillStatus,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}

		view = RepairInvoiceView{Invoice: inv, Device: dev, Shop: shop}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RepairHistory lists repair invoice snapshots with their device and shop,
// omitting snapshots whose device or shop has since been deleted.
func (s *Service) RepairHistory() ([]RepairInvoiceView, error) {
	var invs []models.RepairingInvoice
	if err := s.db.Find(&invs).Error; err != nil {
		return nil, err
	}

	views := make([]RepairInvoiceView, 0, len(invs))
	for _, inv := range invs {
		var dev models.RepairingDevice
		if err := s.db.First(&dev, inv.RepairingDeviceID).Error; err != nil {
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
		views = append(views, RepairInvoiceView{Invoice: inv, Device: dev, Shop: shop})
	}
	return views, nil
}

// repairInvoiceNumber keeps the device id and wall clock visible for the
// paper trail; the uuid fragment keeps same-second duplicates distinct.
func repairInvoiceNumber(deviceID uint) string {
	return fmt.Sprintf("RI-%d-%d-%s", deviceID, time.Now().Unix(), uuid.NewString()[:8])
}
