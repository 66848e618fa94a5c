package handlers

import (
	"net/http"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/catalog"

	"github.com/gin-gonic/gin"
)

type PhoneHandler struct {
	store *catalog.PhoneStore
}

func NewPhoneHandler(store *catalog.PhoneStore) *PhoneHandler {
	return &PhoneHandler{store: store}
}

// Add: GET /phone/add
func (h *PhoneHandler) Add(c *gin.Context) {
	isNew, err := reqBool01(c, "is_new")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	price, err := reqFloat(c, "price")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	isAvailable, err := reqBool01(c, "is_available")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	phone, err := h.store.Create(catalog.PhoneInput{
		IMEI:        c.Query("imei"),
		ModelName:   c.Query("model_name"),
		Company:     c.Query("company"),
		IsNew:       isNew,
		Price:       price,
		IsAvailable: isAvailable,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	kind := "Old"
	if phone.IsNew {
		kind = "New"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": kind + " phone '" + phone.ModelName + "' by " + phone.Company + " added successfully",
		"phone":   phone,
	})
}

// Edit: GET /phone/edit
func (h *PhoneHandler) Edit(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	patch := catalog.PhonePatch{
		IMEI:      optString(c, "imei"),
		ModelName: optString(c, "model_name"),
		Company:   optString(c, "company"),
	}
	if patch.IsNew, err = optBool01(c, "is_new"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.Price, err = optFloat(c, "price"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.IsAvailable, err = optBool01(c, "is_available"); err != nil {
		apperr.Abort(c, err)
		return
	}

	phone, err := h.store.Update(id, patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Phone '" + phone.ModelName + "' updated successfully",
		"phone":   phone,
	})
}

// Delete: GET /phone/delete
func (h *PhoneHandler) Delete(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Phone deleted successfully"})
}

// View: GET /phone/view
func (h *PhoneHandler) View(c *gin.Context) {
	phones, err := h.store.List()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"phones": phones})
}
