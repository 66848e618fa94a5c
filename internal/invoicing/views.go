package invoicing

import (
	"go-repairshop/internal/models"
)

// HistorySummary is the aggregated payment state of one invoice, computed
// from the invoice and its Due rows at read time. It replaces the manually
// synchronized history table the earlier system carried, so it cannot drift
// from the payment log.
type HistorySummary struct {
	TotalAmount float64 `json:"total_amount"`
	TotalPaid   float64 `json:"total_paid"`
	TotalDue    float64 `json:"total_due"`
	Payments    int     `json:"payments"`
}

func summarize(inv models.Invoice, dues []models.Due) HistorySummary {
	h := HistorySummary{TotalAmount: inv.TotalAmount, Payments: len(dues)}
	for _, d := range dues {
		h.TotalPaid += d.Amount
	}
	h.TotalDue = h.TotalAmount - h.TotalPaid
	return h
}

// InvoiceView is the composed response for a phone sale.
type InvoiceView struct {
	Invoice models.Invoice `json:"invoice"`
	Phone   models.Phone   `json:"phone"`
	Shop    models.Shop    `json:"shop"`
	Dues    []models.Due   `json:"dues"`
	History HistorySummary `json:"history"`
}

// RepairInvoiceView is the composed response for a repair job invoice.
type RepairInvoiceView struct {
	Invoice models.RepairingInvoice `json:"invoice"`
	Device  models.RepairingDevice  `json:"device"`
	Shop    models.Shop             `json:"shop"`
}

// AccessoryInvoiceView is the composed response for an accessory sale.
type AccessoryInvoiceView struct {
	Invoice   models.AccessoryInvoice `json:"invoice"`
	Accessory models.Accessory        `json:"accessory"`
	Shop      models.Shop             `json:"shop"`
}
