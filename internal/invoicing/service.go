package invoicing

import (
	"errors"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/gorm"
)

// Service runs the invoicing workflows. Every multi-entity write happens in
// one gorm transaction so a failure can never leave a sold phone without an
// invoice or an invoice without its payment row. The system assumes a single
// logical writer; there is no cross-request locking.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SaleInput carries one phone sale.
type SaleInput struct {
	CustomerName     string
	CustomerPhone    string
	CustomerLocation string
	IMEI             string
	ShopID           uint
	PaidAmount       float64
}

// GenerateInvoice sells a phone: creates the invoice and its initial payment
// row, and marks the phone sold, all or nothing. Overpayment is rejected so
// the due amount can never go negative.
func (s *Service) GenerateInvoice(in SaleInput) (*InvoiceView, error) {
	if in.CustomerName == "" || in.IMEI == "" {
		return nil, apperr.Validationf("Customer name and IMEI are required")
	}
	if in.PaidAmount < 0 {
		return nil, apperr.Validationf("paid_amount must not be negative")
	}

	var view InvoiceView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := tx.First(&shop, in.ShopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Shop not found")
			}
			return err
		}

		var phone models.Phone
		if err := tx.Where("imei = ?", in.IMEI).First(&phone).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Phone not found")
			}
			return err
		}
		if phone.Status == models.PhoneSoldOut {
			return apperr.Conflictf("Phone is already sold out")
		}
		if in.PaidAmount > phone.Price {
			return apperr.Conflictf("Paid amount exceeds phone price")
		}

		invoice := models.Invoice{
			PhoneID:          phone.ID,
			ShopID:           shop.ID,
			CustomerName:     in.CustomerName,
			CustomerPhone:    in.CustomerPhone,
			CustomerLocation: in.CustomerLocation,
			TotalAmount:      phone.Price,
			PaidAmount:       in.PaidAmount,
			DueAmount:        phone.Price - in.PaidAmount,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		due := models.Due{
			InvoiceID: invoice.ID,
			Amount:    in.PaidAmount,
			Remaining: invoice.DueAmount,
		}
		if err := tx.Create(&due).Error; err != nil {
			return err
		}

		phone.Status = models.PhoneSoldOut
		if err := tx.Save(&phone).Error; err != nil {
			return err
		}

		view = InvoiceView{
			Invoice: invoice,
			Phone:   phone,
			Shop:    shop,
			Dues:    []models.Due{due},
			History: summarize(invoice, []models.Due{due}),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// AddPayment records an additional payment against an invoice. The payment
// must be positive and must not exceed the outstanding due amount.
func (s *Service) AddPayment(invoiceID uint, payment float64) (*models.Invoice, error) {
	if payment <= 0 {
		return nil, apperr.Validationf("payment must be greater than zero")
	}

	var invoice models.Invoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&invoice, invoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("Invoice not found")
			}
			return err
		}
		if payment > invoice.DueAmount {
			return apperr.Conflictf("Payment exceeds due amount")
		}

		invoice.PaidAmount += payment
		invoice.DueAmount -= payment
		if err := tx.Save(&invoice).Error; err != nil {
			return err
		}

		due := models.Due{
			InvoiceID: invoice.ID,
			Amount:    payment,
			Remaining: invoice.DueAmount,
		}
		return tx.Create(&due).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// History lists every sale invoice with its phone, shop, payment log and
// computed summary. Invoices whose phone or shop row has since been deleted
// are omitted rather than failing the whole listing.
func (s *Service) History() ([]InvoiceView, error) {
	var invoices []models.Invoice
	if err := s.db.Find(&invoices).Error; err != nil {
		return nil, err
	}

	views := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		var phone models.Phone
		if err := s.db.First(&phone, inv.PhoneID).Error; err != nil {
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
		var dues []models.Due
		if err := s.db.Where("invoice_id = ?", inv.ID).Find(&dues).Error; err != nil {
			return nil, err
		}
		views = append(views, InvoiceView{
			Invoice: inv,
			Phone:   phone,
			Shop:    shop,
			Dues:    dues,
			History: summarize(inv, dues),
		})
	}
	return views, nil
}
