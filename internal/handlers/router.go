package handlers

import (
	"time"

	"go-repairshop/internal/auth"
	"go-repairshop/internal/catalog"
	"go-repairshop/internal/config"
	"go-repairshop/internal/invoicing"
	"go-repairshop/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires every handler onto a gin engine. The DB handle flows in
// from main; no package keeps its own.
func NewRouter(cfg config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	gate := auth.NewGate(db)
	authH := NewAuthHandler(gate)
	phoneH := NewPhoneHandler(catalog.NewPhoneStore(db))
	sellingH := NewSellingProductHandler(catalog.NewSellingProductStore(db))
	repairProdH := NewRepairingProductHandler(catalog.NewRepairingProductStore(db))
	accessoryH := NewAccessoryHandler(catalog.NewAccessoryStore(db))
	repairAccH := NewRepairingAccessoryHandler(catalog.NewRepairingAccessoryStore(db))
	deviceH := NewRepairingDeviceHandler(catalog.NewRepairingDeviceStore(db))
	shopH := NewShopHandler(catalog.NewShopStore(db))
	invoiceH := NewInvoiceHandler(invoicing.NewService(db))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })

	if cfg.AllowRegistration {
		r.GET("/register", authH.Register)
	}
	r.GET("/login", authH.Login)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuthKey(gate))
	{
		protected.GET("/phone/add", phoneH.Add)
		protected.GET("/phone/edit", phoneH.Edit)
		protected.GET("/phone/delete", phoneH.Delete)
		protected.GET("/phone/view", phoneH.View)

		protected.GET("/selling/add", sellingH.Add)
		protected.GET("/selling/edit", sellingH.Edit)
		protected.GET("/selling/delete", sellingH.Delete)
		protected.GET("/selling/view", sellingH.View)

		protected.GET("/repairing/add", repairProdH.Add)
		protected.GET("/repairing/edit", repairProdH.Edit)
		protected.GET("/repairing/delete", repairProdH.Delete)
		protected.GET("/repairing/view", repairProdH.View)

		protected.GET("/accessory/add", accessoryH.Add)
		protected.GET("/accessory/update", accessoryH.Update)
		protected.GET("/accessory/delete", accessoryH.Delete)
		protected.GET("/accessory/view", accessoryH.View)

		protected.GET("/repairing_accessory/add", repairAccH.Add)
		protected.GET("/repairing_accessory/update", repairAccH.Update)
		protected.GET("/repairing_accessory/delete", repairAccH.Delete)
		protected.GET("/repairing_accessory/view", repairAccH.View)

		protected.GET("/repairingdevice/add", deviceH.Add)
		protected.GET("/repairingdevice/edit", deviceH.Edit)
		protected.GET("/repairingdevice/delete", deviceH.Delete)
		protected.GET("/repairingdevice/view", deviceH.View)

		protected.GET("/add_shop", shopH.Add)
		protected.GET("/shop/edit", shopH.Edit)
		protected.GET("/shop/delete", shopH.Delete)
		protected.GET("/shop/view", shopH.View)

		protected.GET("/generate_invoice", invoiceH.Generate)
		protected.GET("/add_payment", invoiceH.AddPayment)
		protected.GET("/invoice_history", invoiceH.History)

		protected.GET("/repairingdevice/invoice", invoiceH.GenerateRepair)
		protected.GET("/repairinginvoice/history", invoiceH.RepairHistory)

		protected.GET("/generate_accessorie_invoice", invoiceH.GenerateAccessory)
		protected.GET("/accessorieinvoice/history", invoiceH.AccessoryHistory)
	}

	return r
}
