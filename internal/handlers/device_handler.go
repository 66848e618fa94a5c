package handlers

import (
	"net/http"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/catalog"

	"github.com/gin-gonic/gin"
)

// RepairingDeviceHandler: /repairingdevice/* routes (repair tickets).
type RepairingDeviceHandler struct {
	store *catalog.RepairingDeviceStore
}

func NewRepairingDeviceHandler(store *catalog.RepairingDeviceStore) *RepairingDeviceHandler {
	return &RepairingDeviceHandler{store: store}
}

func (h *RepairingDeviceHandler) Add(c *gin.Context) {
	repairingCost, err := reqFloat(c, "repairing_cost")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	advancePayment, err := optFloat(c, "advance_payment")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	estDelivery, err := optDate(c, "estimated_delivery_date")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	in := catalog.RepairingDeviceInput{
		CustomerName:          c.Query("customer_name"),
		CustomerPhone:         c.Query("customer_phone"),
		CustomerLocation:      c.Query("customer_location"),
		DeviceModel:           c.Query("device_model"),
		DeviceCompany:         c.Query("device_company"),
		Problem:               c.Query("problem"),
		RepairingStatus:       c.Query("repairing_status"),
		RepairingCost:         repairingCost,
		BillStatus:            c.Query("bill_status"),
		Technician:            c.Query("technician"),
		DeliveryStatus:        c.Query("delivery_status"),
		EstimatedDeliveryDate: estDelivery,
	}
	if advancePayment != nil {
		in.AdvancePayment = *advancePayment
	}

	dev, err := h.store.Create(in)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Repairing device for '" + dev.CustomerName + "' added successfully",
		"device":  dev,
	})
}

func (h *RepairingDeviceHandler) Edit(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	patch := catalog.RepairingDevicePatch{
		CustomerName:     optString(c, "customer_name"),
		CustomerPhone:    optString(c, "customer_phone"),
		CustomerLocation: optString(c, "customer_location"),
		DeviceModel:      optString(c, "device_model"),
		DeviceCompany:    optString(c, "device_company"),
		Problem:          optString(c, "problem"),
		RepairingStatus:  optString(c, "repairing_status"),
		BillStatus:       optString(c, "bill_status"),
		Technician:       optString(c, "technician"),
		DeliveryStatus:   optString(c, "delivery_status"),
	}
	if patch.RepairingCost, err = optFloat(c, "repairing_cost"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.AdvancePayment, err = optFloat(c, "advance_payment"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.EstimatedDeliveryDate, err = optDate(c, "estimated_delivery_date"); err != nil {
		apperr.Abort(c, err)
		return
	}

	dev, err := h.store.Update(id, patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Repairing device updated successfully",
		"device":  dev,
	})
}

func (h *RepairingDeviceHandler) Delete(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repairing device deleted successfully"})
}

func (h *RepairingDeviceHandler) View(c *gin.Context) {
	devs, err := h.store.List()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repairing_devices": devs})
}
