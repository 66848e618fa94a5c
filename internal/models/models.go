package models

import (
	"time"
)

// Phone status values. A sale flips Available -> Sold Out; only an explicit
// /phone/edit can flip it back.
const (
	PhoneAvailable = "Available"
	PhoneSoldOut   = "Sold Out"
)

// User - shop staff. The AuthKey is the bearer credential checked on every
// protected request.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	AuthKey      string    `gorm:"uniqueIndex;size:100" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Phone - a handset in the sales inventory, keyed by IMEI.
type Phone struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IMEI      string    `gorm:"uniqueIndex;size:15" json:"imei"`
	ModelName string    `gorm:"size:100" json:"model_name"`
	Company   string    `gorm:"size:100" json:"company"`
	IsNew     bool      `json:"is_new"`
	Price     float64   `json:"price"`
	Status    string    `gorm:"size:20" json:"status"`
	DateAdded time.Time `json:"date_added"`
}

// Accessory - a sellable spare part. AddedStock is the current on-hand count;
// StockOut and TimesSold are running totals. Alert is derived, never stored.
type Accessory struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	Name                 string     `gorm:"size:100" json:"name"`
	Type                 string     `gorm:"size:100" json:"type"`
	Company              string     `gorm:"size:100" json:"company"`
	Category             string     `gorm:"size:100" json:"category"`
	InitialStock         int        `json:"initial_stock"`
	AddedStock           int        `json:"added_stock"`
	MinimumStock         int        `json:"minimum_stock"`
	StockOut             int        `json:"stock_out"`
	TimesSold            int        `json:"times_sold"`
	UnitPrice            float64    `json:"unit_price"`
	LastPurchaseQuantity int        `json:"last_purchase_quantity"`
	LastPurchaseDate     *time.Time `json:"last_purchase_date"`
	Alert                bool       `gorm:"-" json:"alert"`
}

// LowStock reports whether on-hand stock has fallen below the minimum.
func (a *Accessory) LowStock() bool {
	return a.AddedStock < a.MinimumStock
}

// RepairingAccessory - a repair-bench part. Unlike Accessory, the alert flag
// is persisted and recomputed on every update. The name/type/company/model
// tuple is the natural key.
type RepairingAccessory struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	Name                  string     `gorm:"size:100;uniqueIndex:idx_repair_acc_key" json:"name"`
	Type                  string     `gorm:"size:100;uniqueIndex:idx_repair_acc_key" json:"type"`
	Company               string     `gorm:"size:100;uniqueIndex:idx_repair_acc_key" json:"company"`
	Model                 string     `gorm:"size:100;uniqueIndex:idx_repair_acc_key" json:"model"`
	CurrentStock          int        `json:"current_stock"`
	AddStock              int        `json:"add_stock"`
	TotalOutStock         int        `json:"total_out_stock"`
	MinimumStock          int        `json:"minimum_stock"`
	RepairingCost         float64    `json:"repairing_cost"`
	SellingCost           float64    `json:"selling_cost"`
	LastPurchaseQuantity  int        `json:"last_purchase_quantity"`
	LastPurchaseDate      *time.Time `json:"last_purchase_date"`
	LastRepairingQuantity int        `json:"last_repairing_quantity"`
	LastRepairingDate     *time.Time `json:"last_repairing_date"`
	Alert                 bool       `json:"alert"`
}

// RepairingDevice - a repair job ticket, mutable through the repair lifecycle.
type RepairingDevice struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	CustomerName          string     `gorm:"size:100" json:"customer_name"`
	CustomerPhone         string     `gorm:"size:20" json:"customer_phone"`
	CustomerLocation      string     `gorm:"size:200" json:"customer_location"`
	DeviceModel           string     `gorm:"size:100" json:"device_model"`
	DeviceCompany         string     `gorm:"size:100" json:"device_company"`
	Problem               string     `gorm:"size:500" json:"problem"`
	RepairingStatus       string     `gorm:"size:50" json:"repairing_status"`
	RepairingCost         float64    `json:"repairing_cost"`
	AdvancePayment        float64    `json:"advance_payment"`
	DuePrice              float64    `json:"due_price"`
	BillStatus            string     `gorm:"size:50" json:"bill_status"`
	Technician            string     `gorm:"size:100" json:"technician"`
	DeliveryStatus        string     `gorm:"size:50" json:"delivery_status"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// RepairingProduct - simple repair-side product row.
type RepairingProduct struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100" json:"name"`
	Type     string `gorm:"size:100" json:"type"`
	Company  string `gorm:"size:100" json:"company"`
	Model    string `gorm:"size:100" json:"model"`
	Quantity int    `json:"quantity"`
}

// SellingProduct - simple sales-side product row.
type SellingProduct struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100" json:"name"`
	Type     string  `gorm:"size:100" json:"type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Shop - static reference data stamped onto invoice headers.
type Shop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100" json:"name"`
	Address string `gorm:"size:200" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email,omitempty"`
}

// Invoice - a phone sale. DueAmount is maintained as TotalAmount - PaidAmount
// inside the same transaction that touches PaidAmount.
type Invoice struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	PhoneID          uint      `gorm:"index" json:"phone_id"`
	ShopID           uint      `gorm:"index" json:"shop_id"`
	CustomerName     string    `gorm:"size:100" json:"customer_name"`
	CustomerPhone    string    `gorm:"size:20" json:"customer_phone"`
	CustomerLocation string    `gorm:"size:200" json:"customer_location"`
	TotalAmount      float64   `json:"total_amount"`
	PaidAmount       float64   `json:"paid_amount"`
	DueAmount        float64   `json:"due_amount"`
	CreatedAt        time.Time `json:"created_at"`
}

// Due - append-only payment event. One row per payment, including the initial
// payment taken at invoice generation.
type Due struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	InvoiceID uint      `gorm:"index" json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Remaining float64   `json:"remaining"`
	CreatedAt time.Time `json:"created_at"`
}

// RepairingInvoice - immutable snapshot of a repair ticket's billing state at
// invoice-generation time.
type RepairingInvoice struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	InvoiceNumber     string    `gorm:"uniqueIndex;size:64" json:"invoice_number"`
	RepairingDeviceID uint      `gorm:"index" json:"repairing_device_id"`
	ShopID            uint      `gorm:"index" json:"shop_id"`
	CustomerName      string    `gorm:"size:100" json:"customer_name"`
	CustomerPhone     string    `gorm:"size:20" json:"customer_phone"`
	DeviceModel       string    `gorm:"size:100" json:"device_model"`
	RepairingCost     float64   `json:"repairing_cost"`
	AdvancePayment    float64   `json:"advance_payment"`
	DuePrice          float64   `json:"due_price"`
	BillStatus        string    `gorm:"size:50" json:"bill_status"`
	CreatedAt         time.Time `json:"created_at"`
}

// AccessoryInvoice - immutable record of one accessory sale transaction.
type AccessoryInvoice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"uniqueIndex;size:64" json:"invoice_number"`
	AccessoryID   uint      `gorm:"index" json:"accessory_id"`
	ShopID        uint      `gorm:"index" json:"shop_id"`
	CustomerName  string    `gorm:"size:100" json:"customer_name"`
	CustomerPhone string    `gorm:"size:20" json:"customer_phone"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	TotalPrice    float64   `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}

// All returns every persisted model, in migration order.
func All() []any {
	return []any{
		&User{},
		&Phone{},
		&Accessory{},
		&RepairingAccessory{},
		&RepairingDevice{},
		&RepairingProduct{},
		&SellingProduct{},
		&Shop{},
		&Invoice{},
		&Due{},
		&RepairingInvoice{},
		&AccessoryInvoice{},
	}
}
