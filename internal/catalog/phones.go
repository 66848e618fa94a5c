package catalog

import (
	"errors"
	"time"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/gorm"
)

// PhoneStore owns the phone inventory table.
type PhoneStore struct {
	db *gorm.DB
}

func NewPhoneStore(db *gorm.DB) *PhoneStore {
	return &PhoneStore{db: db}
}

// PhoneInput carries a complete new phone. Numeric parsing happens at the
// boundary; here every field is already typed.
type PhoneInput struct {
	IMEI        string
	ModelName   string
	Company     string
	IsNew       bool
	Price       float64
	IsAvailable bool
}

// PhonePatch applies field-by-field; nil means leave untouched.
type PhonePatch struct {
	IMEI        *string
	ModelName   *string
	Company     *string
	IsNew       *bool
	Price       *float64
	IsAvailable *bool
}

func (s *PhoneStore) Create(in PhoneInput) (*models.Phone, error) {
	if in.IMEI == "" || in.ModelName == "" || in.Company == "" {
		return nil, apperr.Validationf("All fields are required (IMEI, model_name, company, is_new, price, is_available)")
	}

	var existing models.Phone
	if err := s.db.Where("imei = ?", in.IMEI).First(&existing).Error; err == nil {
		return nil, apperr.Conflictf("Phone with this IMEI already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := models.PhoneSoldOut
	if in.IsAvailable {
		status = models.PhoneAvailable
	}
	phone := models.Phone{
		IMEI:      in.IMEI,
		ModelName: in.ModelName,
		Company:   in.Company,
		IsNew:     in.IsNew,
		Price:     in.Price,
		Status:    status,
		DateAdded: time.Now(),
	}
	if err := s.db.Create(&phone).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

func (s *PhoneStore) List() ([]models.Phone, error) {
	var phones []models.Phone
	if err := s.db.Find(&phones).Error; err != nil {
		return nil, err
	}
	return phones, nil
}

func (s *PhoneStore) Update(id uint, patch PhonePatch) (*models.Phone, error) {
	var phone models.Phone
	if err := s.db.First(&phone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Phone not found")
		}
		return nil, err
	}

	if patch.IMEI != nil && *patch.IMEI != phone.IMEI {
		var other models.Phone
		if err := s.db.Where("imei = ?", *patch.IMEI).First(&other).Error; err == nil {
			return nil, apperr.Conflictf("Phone with this IMEI already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		phone.IMEI = *patch.IMEI
	}
	if patch.ModelName != nil {
		phone.ModelName = *patch.ModelName
	}
	if patch.Company != nil {
		phone.Company = *patch.Company
	}
	if patch.IsNew != nil {
		phone.IsNew = *patch.IsNew
	}
	if patch.Price != nil {
		phone.Price = *patch.Price
	}
	if patch.IsAvailable != nil {
		if *patch.IsAvailable {
			phone.Status = models.PhoneAvailable
		} else {
			phone.Status = models.PhoneSoldOut
		}
	}

	if err := s.db.Save(&phone).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

func (s *PhoneStore) Delete(id uint) error {
	res := s.db.Delete(&models.Phone{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Phone not found")
	}
	return nil
}
