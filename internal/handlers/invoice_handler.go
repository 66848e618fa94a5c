package handlers

import (
	"net/http"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/invoicing"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	svc *invoicing.Service
}

func NewInvoiceHandler(svc *invoicing.Service) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// Generate: GET /generate_invoice - phone sale.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	shopID, err := reqUint(c, "shop_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	paid, err := reqFloat(c, "paid_amount")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	view, err := h.svc.GenerateInvoice(invoicing.SaleInput{
		CustomerName:     c.Query("customer_name"),
		CustomerPhone:    c.Query("customer_phone"),
		CustomerLocation: c.Query("customer_location"),
		IMEI:             c.Query("imei"),
		ShopID:           shopID,
		PaidAmount:       paid,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Invoice generated successfully",
		"invoice": view,
	})
}

// AddPayment: GET /add_payment
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	invoiceID, err := reqUint(c, "invoice_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	payment, err := reqFloat(c, "payment")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	invoice, err := h.svc.AddPayment(invoiceID, payment)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Payment added successfully",
		"due_amount": invoice.DueAmount,
		"invoice":    invoice,
	})
}

// History: GET /invoice_history
func (h *InvoiceHandler) History(c *gin.Context) {
	views, err := h.svc.History()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": views})
}

// GenerateRepair: GET /repairingdevice/invoice
func (h *InvoiceHandler) GenerateRepair(c *gin.Context) {
	deviceID, err := reqUint(c, "device_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	shopID, err := reqUint(c, "shop_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	view, err := h.svc.GenerateRepairInvoice(deviceID, shopID)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Repairing invoice generated successfully",
		"invoice": view,
	})
}

// RepairHistory: GET /repairinginvoice/history
func (h *InvoiceHandler) RepairHistory(c *gin.Context) {
	views, err := h.svc.RepairHistory()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repairing_invoices": views})
}

// GenerateAccessory: GET /generate_accessorie_invoice
func (h *InvoiceHandler) GenerateAccessory(c *gin.Context) {
	accessoryID, err := reqUint(c, "accessory_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	shopID, err := reqUint(c, "shop_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	quantity, err := reqInt(c, "quantity")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	view, err := h.svc.GenerateAccessoryInvoice(invoicing.AccessorySaleInput{
		CustomerName:  c.Query("user_name"),
		CustomerPhone: c.Query("user_phone"),
		AccessoryID:   accessoryID,
		ShopID:        shopID,
		Quantity:      quantity,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Accessory invoice generated successfully",
		"invoice": view,
	})
}

// AccessoryHistory: GET /accessorieinvoice/history
func (h *InvoiceHandler) AccessoryHistory(c *gin.Context) {
	views, err := h.svc.AccessoryHistory()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessory_invoices": views})
}
