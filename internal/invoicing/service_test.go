package invoicing

import (
	"errors"
	"testing"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedShop(t *testing.T, db *gorm.DB) models.Shop {
	t.Helper()
	shop := models.Shop{Name: "Main", Address: "1 St", Phone: "555"}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("seed shop: %v", err)
	}
	return shop
}

func seedPhone(t *testing.T, db *gorm.DB, imei string, price float64) models.Phone {
	t.Helper()
	phone := models.Phone{IMEI: imei, ModelName: "A1", Company: "Acme", IsNew: true, Price: price, Status: models.PhoneAvailable}
	if err := db.Create(&phone).Error; err != nil {
		t.Fatalf("seed phone: %v", err)
	}
	return phone
}

func TestGenerateInvoiceScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	shop := seedShop(t, db)
	seedPhone(t, db, "123456789012345", 200)

	view, err := svc.GenerateInvoice(SaleInput{
		CustomerName: "Karim",
		IMEI:         "123456789012345",
		ShopID:       shop.ID,
		PaidAmount:   50,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	inv := view.Invoice
	if inv.TotalAmount != 200 || inv.PaidAmount != 50 || inv.DueAmount != 150 {
		t.Fatalf("amounts wrong: %+v", inv)
	}
	if inv.DueAmount != inv.TotalAmount-inv.PaidAmount {
		t.Fatalf("due invariant broken: %+v", inv)
	}
	if view.Phone.Status != models.PhoneSoldOut {
		t.Fatalf("phone not sold out: %q", view.Phone.Status)
	}
	if len(view.Dues) != 1 || view.Dues[0].Amount != 50 || view.Dues[0].Remaining != 150 {
		t.Fatalf("initial due row wrong: %+v", view.Dues)
	}
	if view.History.TotalPaid != 50 || view.History.TotalDue != 150 {
		t.Fatalf("history summary wrong: %+v", view.History)
	}

	// Selling the same phone again must fail.
	_, err = svc.GenerateInvoice(SaleInput{CustomerName: "X", IMEI: "123456789012345", ShopID: shop.ID, PaidAmount: 10})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on resale, got %v", err)
	}
}

func TestGenerateInvoiceRollsBackOnMissingShop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	seedPhone(t, db, "222222222222222", 100)

	_, err := svc.GenerateInvoice(SaleInput{CustomerName: "X", IMEI: "222222222222222", ShopID: 99, PaidAmount: 10})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// No partial state: phone still available, no invoice rows.
	var phone models.Phone
	db.Where("imei = ?", "222222222222222").First(&phone)
	if phone.Status != models.PhoneAvailable {
		t.Fatalf("phone status mutated: %q", phone.Status)
	}
	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	if count != 0 {
		t.Fatalf("invoice leaked: %d", count)
	}
}

func TestGenerateInvoiceRejectsOverpayment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	shop := seedShop(t, db)
	seedPhone(t, db, "333333333333333", 100)

	_, err := svc.GenerateInvoice(SaleInput{CustomerName: "X", IMEI: "333333333333333", ShopID: shop.ID, PaidAmount: 150})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on overpayment, got %v", err)
	}

	var phone models.Phone
	db.Where("imei = ?", "333333333333333").First(&phone)
	if phone.Status != models.PhoneAvailable {
		t.Fatalf("phone sold by rejected invoice")
	}
}

func TestAddPaymentBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	shop := seedShop(t, db)
	seedPhone(t, db, "123456789012345", 200)

	view, err := svc.GenerateInvoice(SaleInput{CustomerName: "Karim", IMEI: "123456789012345", ShopID: shop.ID, PaidAmount: 50})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	id := view.Invoice.ID

	if _, err := svc.AddPayment(id, 0); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation on zero payment, got %v", err)
	}
	if _, err := svc.AddPayment(id, -5); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation on negative payment, got %v", err)
	}
	if _, err := svc.AddPayment(id, 151); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on payment > due, got %v", err)
	}

	inv, err := svc.AddPayment(id, 150)
	if err != nil {
		t.Fatalf("pay off: %v", err)
	}
	if inv.DueAmount != 0 || inv.PaidAmount != 200 {
		t.Fatalf("amounts after payoff: %+v", inv)
	}

	// Fully paid: any further payment exceeds due.
	if _, err := svc.AddPayment(id, 1); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict after payoff, got %v", err)
	}

	var dues []models.Due
	db.Where("invoice_id = ?", id).Find(&dues)
	if len(dues) != 2 {
		t.Fatalf("expected 2 due rows, got %d", len(dues))
	}
	if dues[1].Amount != 150 || dues[1].Remaining != 0 {
		t.Fatalf("second due row wrong: %+v", dues[1])
	}

	if _, err := svc.AddPayment(999, 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for unknown invoice, got %v", err)
	}
}

func TestHistorySkipsOrphanedInvoices(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	shop := seedShop(t, db)
	seedPhone(t, db, "444444444444444", 100)
	seedPhone(t, db, "555555555555555", 120)

	if _, err := svc.GenerateInvoice(SaleInput{CustomerName: "A", IMEI: "444444444444444", ShopID: shop.ID, PaidAmount: 100}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	v2, err := svc.GenerateInvoice(SaleInput{CustomerName: "B", IMEI: "555555555555555", ShopID: shop.ID, PaidAmount: 60})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Delete the second phone; its invoice should be silently omitted.
	if err := db.Delete(&models.Phone{}, v2.Phone.ID).Error; err != nil {
		t.Fatalf("delete phone: %v", err)
	}

	views, err := svc.History()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	if views[0].Invoice.CustomerName != "A" {
		t.Fatalf("wrong invoice survived: %+v", views[0].Invoice)
	}
	if views[0].History.TotalDue != 0 {
		t.Fatalf("summary wrong: %+v", views[0].History)
	}
}

func TestGenerateRepairInvoiceSnapshots(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	shop := seedShop(t, db)

	dev := models.RepairingDevice{CustomerName: "Rahim", CustomerPhone: "017", DeviceModel: "S10", RepairingCost: 80, AdvancePayment: 20, DuePrice: 60, BillStatus: "Due"}
	if err := db.Create(&dev).Error; err != nil {
		t.Fatalf("seed device: %v", err)
	}

	v1, err := svc.GenerateRepairInvoice(dev.ID, shop.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if v1.Invoice.RepairingCost != 80 || v1.Invoice.DuePrice != 60 {
		t.Fatalf("snapshot wrong: %+v", v1.Invoice)
	}

	// Repeated generation is allowed but each row is distinct.
	v2, err := svc.GenerateRepairInvoice(dev.ID, shop.ID)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if v1.Invoice.InvoiceNumber == v2.Invoice.InvoiceNumber {
		t.Fatalf("invoice numbers collide: %s", v1.Invoice.InvoiceNumber)
	}

	views, err := svc.RepairHistory()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(views))
	}

	if _, err := svc.GenerateRepairInvoice(999, shop.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found for unknown device, got %v", err)
	}
}

func TestGenerateAccessoryInvoice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	shop := seedShop(t, db)

	acc := models.Accessory{Name: "Screen", Type: "Display", Company: "Acme", InitialStock: 10, AddedStock: 10, MinimumStock: 5, UnitPrice: 20}
	if err := db.Create(&acc).Error; err != nil {
		t.Fatalf("seed accessory: %v", err)
	}

	// Insufficient stock fails and leaves everything untouched.
	_, err := svc.GenerateAccessoryInvoice(AccessorySaleInput{CustomerName: "X", AccessoryID: acc.ID, ShopID: shop.ID, Quantity: 12})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	var check models.Accessory
	db.First(&check, acc.ID)
	if check.AddedStock != 10 || check.TimesSold != 0 || check.StockOut != 0 {
		t.Fatalf("stock mutated by rejected sale: %+v", check)
	}

	view, err := svc.GenerateAccessoryInvoice(AccessorySaleInput{CustomerName: "X", CustomerPhone: "018", AccessoryID: acc.ID, ShopID: shop.ID, Quantity: 6})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if view.Invoice.TotalPrice != 120 {
		t.Fatalf("total price wrong: %v", view.Invoice.TotalPrice)
	}
	if view.Invoice.InvoiceNumber == "" {
		t.Fatalf("missing invoice number")
	}

	// The stock decrement happens exactly once.
	db.First(&check, acc.ID)
	if check.AddedStock != 4 {
		t.Fatalf("expected 4 on hand after selling 6, got %d", check.AddedStock)
	}
	if check.TimesSold != 6 || check.StockOut != 6 {
		t.Fatalf("counters wrong: sold=%d out=%d", check.TimesSold, check.StockOut)
	}
	if check.LastPurchaseQuantity != 6 || check.LastPurchaseDate == nil {
		t.Fatalf("bookkeeping not stamped: %+v", check)
	}
	if !view.Accessory.Alert {
		t.Fatalf("alert should be on at 4 < 5")
	}

	if _, err := svc.GenerateAccessoryInvoice(AccessorySaleInput{CustomerName: "X", AccessoryID: acc.ID, ShopID: shop.ID, Quantity: 0}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation on zero quantity, got %v", err)
	}

	views, err := svc.AccessoryHistory()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(views) != 1 || views[0].Invoice.Quantity != 6 {
		t.Fatalf("history wrong: %+v", views)
	}
}
