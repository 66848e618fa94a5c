package catalog

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
	// Unique in-memory database per test to avoid cross-test collisions.
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

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestPhoneCreateRejectsDuplicateIMEI(t *testing.T) {
	db := setupTestDB(t)
	s := NewPhoneStore(db)

	in := PhoneInput{IMEI: "123456789012345", ModelName: "A1", Company: "Acme", IsNew: true, Price: 200, IsAvailable: true}
	if _, err := s.Create(in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.ModelName = "A2"
	_, err := s.Create(in)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	phones, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(phones) != 1 {
		t.Fatalf("store changed by failed create: %d phones", len(phones))
	}
	if phones[0].Status != models.PhoneAvailable {
		t.Fatalf("unexpected status %q", phones[0].Status)
	}
}

func TestPhonePatchLeavesAbsentFieldsUntouched(t *testing.T) {
	db := setupTestDB(t)
	s := NewPhoneStore(db)

	p, err := s.Create(PhoneInput{IMEI: "111111111111111", ModelName: "A1", Company: "Acme", IsNew: true, Price: 150, IsAvailable: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Update(p.ID, PhonePatch{Price: floatPtr(175)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != 175 {
		t.Fatalf("price not applied: %v", got.Price)
	}
	if got.ModelName != "A1" || got.Company != "Acme" || !got.IsNew {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	// Flip availability back after a sellout, the one legal reverse transition.
	got, err = s.Update(p.ID, PhonePatch{IsAvailable: boolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != models.PhoneSoldOut {
		t.Fatalf("expected Sold Out, got %q", got.Status)
	}
	got, err = s.Update(p.ID, PhonePatch{IsAvailable: boolPtr(true)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != models.PhoneAvailable {
		t.Fatalf("expected Available, got %q", got.Status)
	}
}

func TestPhoneDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	s := NewPhoneStore(db)

	if err := s.Delete(42); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAccessoryPurchaseDelta(t *testing.T) {
	db := setupTestDB(t)
	s := NewAccessoryStore(db)

	acc, err := s.Create(AccessoryInput{Name: "Screen", Type: "Display", Company: "Acme", Category: "Parts", InitialStock: 10, MinimumStock: 5, UnitPrice: 20})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if acc.AddedStock != 10 {
		t.Fatalf("on-hand should start at initial stock, got %d", acc.AddedStock)
	}

	// A purchase of 3: on-hand down by exactly 3, stock_out up by exactly 3.
	got, err := s.Update(acc.ID, AccessoryPatch{LastPurchaseQuantity: intPtr(3)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AddedStock != 7 || got.StockOut != 3 {
		t.Fatalf("after purchase: added=%d out=%d", got.AddedStock, got.StockOut)
	}
	if got.LastPurchaseDate == nil || got.LastPurchaseQuantity != 3 {
		t.Fatalf("purchase bookkeeping not stamped: %+v", got)
	}
	if got.Alert {
		t.Fatalf("alert should be off at 7 >= 5")
	}

	// Second purchase drops below minimum: alert turns on.
	got, err = s.Update(acc.ID, AccessoryPatch{LastPurchaseQuantity: intPtr(3)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AddedStock != 4 || got.StockOut != 6 {
		t.Fatalf("after second purchase: added=%d out=%d", got.AddedStock, got.StockOut)
	}
	if !got.Alert {
		t.Fatalf("alert should be on at 4 < 5")
	}
}

func TestAccessoryPurchaseThenRestockSameCall(t *testing.T) {
	db := setupTestDB(t)
	s := NewAccessoryStore(db)

	acc, err := s.Create(AccessoryInput{Name: "Battery", Type: "Power", Company: "Acme", InitialStock: 5, MinimumStock: 2, UnitPrice: 15})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Deduction applies before the restock: 5 - 4 + 10 = 11.
	got, err := s.Update(acc.ID, AccessoryPatch{LastPurchaseQuantity: intPtr(4), AddedStock: intPtr(10)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AddedStock != 11 {
		t.Fatalf("expected 11 on hand, got %d", got.AddedStock)
	}
	if got.StockOut != 4 {
		t.Fatalf("expected stock_out 4, got %d", got.StockOut)
	}
}

func TestAccessoryPurchaseExceedingStockRejected(t *testing.T) {
	db := setupTestDB(t)
	s := NewAccessoryStore(db)

	acc, err := s.Create(AccessoryInput{Name: "Case", Type: "Cover", Company: "Acme", InitialStock: 2, MinimumStock: 1, UnitPrice: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = s.Update(acc.ID, AccessoryPatch{LastPurchaseQuantity: intPtr(3)})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	got, err := s.Get(acc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AddedStock != 2 || got.StockOut != 0 {
		t.Fatalf("stock mutated by rejected update: %+v", got)
	}
}

func TestRepairingAccessoryDuplicateTuple(t *testing.T) {
	db := setupTestDB(t)
	s := NewRepairingAccessoryStore(db)

	in := RepairingAccessoryInput{Name: "Flex", Type: "Cable", Company: "Acme", Model: "X1", CurrentStock: 4, MinimumStock: 2, RepairingCost: 3, SellingCost: 6}
	if _, err := s.Create(in); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(in); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on duplicate tuple, got %v", err)
	}

	// Same name but a different model is a different part.
	in.Model = "X2"
	if _, err := s.Create(in); err != nil {
		t.Fatalf("create distinct model: %v", err)
	}
}

func TestRepairingAccessoryThreeDeltasInOrder(t *testing.T) {
	db := setupTestDB(t)
	s := NewRepairingAccessoryStore(db)

	acc, err := s.Create(RepairingAccessoryInput{Name: "Glass", Type: "Display", Company: "Acme", Model: "G1", CurrentStock: 5, MinimumStock: 3, RepairingCost: 2, SellingCost: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Restock 6, purchase out 4, repair out 3: 5 + 6 - 4 - 3 = 4.
	got, err := s.Update(acc.ID, RepairingAccessoryPatch{
		AddStock:              intPtr(6),
		LastPurchaseQuantity:  intPtr(4),
		LastRepairingQuantity: intPtr(3),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.CurrentStock != 4 {
		t.Fatalf("expected 4 on hand, got %d", got.CurrentStock)
	}
	if got.AddStock != 5+6 {
		t.Fatalf("cumulative add_stock wrong: %d", got.AddStock)
	}
	if got.TotalOutStock != 7 {
		t.Fatalf("cumulative out wrong: %d", got.TotalOutStock)
	}
	if got.LastPurchaseDate == nil || got.LastRepairingDate == nil {
		t.Fatalf("delta dates not stamped")
	}
	if got.Alert {
		t.Fatalf("alert should be off at 4 >= 3")
	}

	// Persisted alert flips once stock drops below the minimum.
	got, err = s.Update(acc.ID, RepairingAccessoryPatch{LastRepairingQuantity: intPtr(2)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.Alert {
		t.Fatalf("alert should persist on at 2 < 3")
	}
	var stored models.RepairingAccessory
	if err := db.First(&stored, acc.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.Alert {
		t.Fatalf("alert not persisted")
	}
}

func TestRepairingDeviceDueTracksCostAndAdvance(t *testing.T) {
	db := setupTestDB(t)
	s := NewRepairingDeviceStore(db)

	dev, err := s.Create(RepairingDeviceInput{
		CustomerName:   "Rahim",
		CustomerPhone:  "017000",
		DeviceModel:    "S10",
		RepairingCost:  100,
		AdvancePayment: 30,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dev.DuePrice != 70 {
		t.Fatalf("expected due 70, got %v", dev.DuePrice)
	}
	if dev.RepairingStatus != "Pending" {
		t.Fatalf("default status missing: %q", dev.RepairingStatus)
	}

	got, err := s.Update(dev.ID, RepairingDevicePatch{AdvancePayment: floatPtr(60)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DuePrice != 40 {
		t.Fatalf("expected due 40, got %v", got.DuePrice)
	}

	if _, err := s.Update(dev.ID, RepairingDevicePatch{AdvancePayment: floatPtr(200)}); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict on advance > cost, got %v", err)
	}
}

func TestSellingProductRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	s := NewSellingProductStore(db)

	p, err := s.Create(SellingProductInput{Name: "Charger", Type: "Power", Price: 9.5, Quantity: 12})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ps, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ps) != 1 || ps[0].ID != p.ID || ps[0].Name != "Charger" || ps[0].Price != 9.5 || ps[0].Quantity != 12 {
		t.Fatalf("round trip lost fields: %+v", ps)
	}

	if _, err := s.Update(p.ID, SellingProductPatch{Name: strPtr("Fast Charger")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	ps, _ = s.List()
	if ps[0].Name != "Fast Charger" || ps[0].Type != "Power" {
		t.Fatalf("patch semantics broken: %+v", ps[0])
	}

	if err := s.Delete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
