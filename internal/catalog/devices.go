package catalog

import (
	"errors"
	"time"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/models"

	"gorm.io/gorm"
)

// RepairingDeviceStore owns repair job tickets.
type RepairingDeviceStore struct {
	db *gorm.DB
}

func NewRepairingDeviceStore(db *gorm.DB) *RepairingDeviceStore {
	return &RepairingDeviceStore{db: db}
}

type RepairingDeviceInput struct {
	CustomerName          string
	CustomerPhone         string
	CustomerLocation      string
	DeviceModel           string
	DeviceCompany         string
	Problem               string
	RepairingStatus       string
	RepairingCost         float64
	AdvancePayment        float64
	BillStatus            string
	Technician            string
	DeliveryStatus        string
	EstimatedDeliveryDate *time.Time
}

type RepairingDevicePatch struct {
	CustomerName          *string
	CustomerPhone         *string
	CustomerLocation      *string
	DeviceModel           *string
	DeviceCompany         *string
	Problem               *string
	RepairingStatus       *string
	RepairingCost         *float64
	AdvancePayment        *float64
	BillStatus            *string
	Technician            *string
	DeliveryStatus        *string
	EstimatedDeliveryDate *time.Time
}

func (s *RepairingDeviceStore) Create(in RepairingDeviceInput) (*models.RepairingDevice, error) {
	if in.CustomerName == "" || in.CustomerPhone == "" || in.DeviceModel == "" {
		return nil, apperr.Validationf("Customer name, customer phone and device model are required")
	}
	if in.RepairingCost < 0 || in.AdvancePayment < 0 {
		return nil, apperr.Validationf("Cost values must not be negative")
	}
	if in.AdvancePayment > in.RepairingCost {
		return nil, apperr.Conflictf("Advance payment exceeds repairing cost")
	}

	dev := models.RepairingDevice{
		CustomerName:          in.CustomerName,
		CustomerPhone:         in.CustomerPhone,
		CustomerLocation:      in.CustomerLocation,
		DeviceModel:           in.DeviceModel,
		DeviceCompany:         in.DeviceCompany,
		Problem:               in.Problem,
		RepairingStatus:       in.RepairingStatus,
		RepairingCost:         in.RepairingCost,
		AdvancePayment:        in.AdvancePayment,
		DuePrice:              in.RepairingCost - in.AdvancePayment,
		BillStatus:            in.BillStatus,
		Technician:            in.Technician,
		DeliveryStatus:        in.DeliveryStatus,
		EstimatedDeliveryDate: in.EstimatedDeliveryDate,
	}
	if dev.RepairingStatus == "" {
		dev.RepairingStatus = "Pending"
	}
	if dev.DeliveryStatus == "" {
		dev.DeliveryStatus = "Not Delivered"
	}
	if err := s.db.Create(&dev).Error; err != nil {
		return nil, err
	}
	return &dev, nil
}

func (s *RepairingDeviceStore) List() ([]models.RepairingDevice, error) {
	var devs []models.RepairingDevice
	if err := s.db.Find(&devs).Error; err != nil {
		return nil, err
	}
	return devs, nil
}

func (s *RepairingDeviceStore) Update(id uint, patch RepairingDevicePatch) (*models.RepairingDevice, error) {
	var dev models.RepairingDevice
	if err := s.db.First(&dev, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Repairing device not found")
		}
		return nil, err
	}

	if patch.CustomerName != nil {
		dev.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		dev.CustomerPhone = *patch.CustomerPhone
	}
	if patch.CustomerLocation != nil {
		dev.CustomerLocation = *patch.CustomerLocation
	}
	if patch.DeviceModel != nil {
		dev.DeviceModel = *patch.DeviceModel
	}
	if patch.DeviceCompany != nil {
		dev.DeviceCompany = *patch.DeviceCompany
	}
	if patch.Problem != nil {
		dev.Problem = *patch.Problem
	}
	if patch.RepairingStatus != nil {
		dev.RepairingStatus = *patch.RepairingStatus
	}
	if patch.RepairingCost != nil {
		if *patch.RepairingCost < 0 {
			return nil, apperr.Validationf("repairing_cost must not be negative")
		}
		dev.RepairingCost = *patch.RepairingCost
	}
	if patch.AdvancePayment != nil {
		if *patch.AdvancePayment < 0 {
			return nil, apperr.Validationf("advance_payment must not be negative")
		}
		dev.AdvancePayment = *patch.AdvancePayment
	}
	if patch.AdvancePayment != nil || patch.RepairingCost != nil {
		if dev.AdvancePayment > dev.RepairingCost {
			return nil, apperr.Conflictf("Advance payment exceeds repairing cost")
		}
		dev.DuePrice = dev.RepairingCost - dev.AdvancePayment
	}
	if patch.BillStatus != nil {
		dev.BillStatus = *patch.BillStatus
	}
	if patch.Technician != nil {
		dev.Technician = *patch.Technician
	}
	if patch.DeliveryStatus != nil {
		dev.DeliveryStatus = *patch.DeliveryStatus
	}
	if patch.EstimatedDeliveryDate != nil {
		dev.EstimatedDeliveryDate = patch.EstimatedDeliveryDate
	}

	if err := s.db.Save(&dev).Error; err != nil {
		return nil, err
	}
	return &dev, nil
}

func (s *RepairingDeviceStore) Delete(id uint) error {
	res := s.db.Delete(&models.RepairingDevice{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("Repairing device not found")
	}
	return nil
}
