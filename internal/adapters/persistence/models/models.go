package models

import (
	"assetguard/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Row models: one table per entity kind, primary key = id.
// Dates are stored as ISO-8601 date strings (YYYY-MM-DD) so
// rows round-trip without timezone loss.
// ============================================================

// Asset represents the assets table
type Asset struct {
	ID           string  `gorm:"primaryKey;size:50" json:"id"`
	Tag          string  `gorm:"size:50" json:"tag"`
	Name         string  `gorm:"size:255" json:"name"`
	SerialNumber string  `gorm:"size:100" json:"serialNumber"`
	Category     string  `gorm:"size:100;index" json:"category"`
	Vendor       string  `gorm:"size:255" json:"vendor"`
	PurchaseDate string  `gorm:"size:10" json:"purchaseDate"`
	Cost         float64 `json:"cost"`
	Status       string  `gorm:"size:20;index" json:"status"`
	Condition    string  `gorm:"size:50" json:"condition"`
	Location     string  `gorm:"size:255" json:"location"`
	AssignedTo   string  `gorm:"size:50" json:"assignedTo"`
	Image        string  `gorm:"size:512" json:"image"`
}

func (Asset) TableName() string {
	return "assets"
}

func (a *Asset) ToDomain() domain.Asset {
	return domain.Asset{
		ID:           a.ID,
		Tag:          a.Tag,
		Name:         a.Name,
		SerialNumber: a.SerialNumber,
		Category:     a.Category,
		Vendor:       a.Vendor,
		PurchaseDate: a.PurchaseDate,
		Cost:         a.Cost,
		Status:       domain.AssetStatus(a.Status),
		Condition:    a.Condition,
		Location:     a.Location,
		AssignedTo:   a.AssignedTo,
		Image:        a.Image,
	}
}

// AssetFromDomain maps a domain asset to its row model
func AssetFromDomain(a domain.Asset) Asset {
	return Asset{
		ID:           a.ID,
		Tag:          a.Tag,
		Name:         a.Name,
		SerialNumber: a.SerialNumber,
		Category:     a.Category,
		Vendor:       a.Vendor,
		PurchaseDate: a.PurchaseDate,
		Cost:         a.Cost,
		Status:       string(a.Status),
		Condition:    a.Condition,
		Location:     a.Location,
		AssignedTo:   a.AssignedTo,
		Image:        a.Image,
	}
}

// Employee represents the employees table
type Employee struct {
	ID         string `gorm:"primaryKey;size:50" json:"id"`
	Name       string `gorm:"size:255" json:"name"`
	Email      string `gorm:"size:255" json:"email"`
	Department string `gorm:"size:100" json:"department"`
	Role       string `gorm:"size:100" json:"role"`
	JoinDate   string `gorm:"size:10" json:"joinDate"`
	Avatar     string `gorm:"size:512" json:"avatar"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) ToDomain() domain.Employee {
	return domain.Employee{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Role:       e.Role,
		JoinDate:   e.JoinDate,
		Avatar:     e.Avatar,
	}
}

// EmployeeFromDomain maps a domain employee to its row model
func EmployeeFromDomain(e domain.Employee) Employee {
	return Employee{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Role:       e.Role,
		JoinDate:   e.JoinDate,
		Avatar:     e.Avatar,
	}
}

// Assignment represents the assignments table
type Assignment struct {
	ID                 string `gorm:"primaryKey;size:50" json:"id"`
	AssetID            string `gorm:"size:50;index" json:"assetId"`
	EmployeeID         string `gorm:"size:50;index" json:"employeeId"`
	BorrowDate         string `gorm:"size:10" json:"borrowDate"`
	ExpectedReturnDate string `gorm:"size:10" json:"expectedReturnDate"`
	ReturnedDate       string `gorm:"size:10" json:"returnedDate"`
	Notes              string `gorm:"size:512" json:"notes"`
	IsActive           bool   `gorm:"index" json:"isActive"`
}

func (Assignment) TableName() string {
	return "assignments"
}

func (a *Assignment) ToDomain() domain.Assignment {
	return domain.Assignment{
		ID:                 a.ID,
		AssetID:            a.AssetID,
		EmployeeID:         a.EmployeeID,
		BorrowDate:         a.BorrowDate,
		ExpectedReturnDate: a.ExpectedReturnDate,
		ReturnedDate:       a.ReturnedDate,
		Notes:              a.Notes,
		IsActive:           a.IsActive,
	}
}

// AssignmentFromDomain maps a domain assignment to its row model
func AssignmentFromDomain(a domain.Assignment) Assignment {
	return Assignment{
		ID:                 a.ID,
		AssetID:            a.AssetID,
		EmployeeID:         a.EmployeeID,
		BorrowDate:         a.BorrowDate,
		ExpectedReturnDate: a.ExpectedReturnDate,
		ReturnedDate:       a.ReturnedDate,
		Notes:              a.Notes,
		IsActive:           a.IsActive,
	}
}

// MaintenanceLog represents the maintenance_logs table
type MaintenanceLog struct {
	ID          string  `gorm:"primaryKey;size:50" json:"id"`
	AssetID     string  `gorm:"size:50;index" json:"assetId"`
	Description string  `gorm:"size:512" json:"description"`
	Vendor      string  `gorm:"size:255" json:"vendor"`
	Cost        float64 `json:"cost"`
	Date        string  `gorm:"size:10" json:"date"`
	Status      string  `gorm:"size:20" json:"status"`
}

func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}

func (m *MaintenanceLog) ToDomain() domain.MaintenanceLog {
	return domain.MaintenanceLog{
		ID:          m.ID,
		AssetID:     m.AssetID,
		Description: m.Description,
		Vendor:      m.Vendor,
		Cost:        m.Cost,
		Date:        m.Date,
		Status:      m.Status,
	}
}

// MaintenanceLogFromDomain maps a domain maintenance log to its row model
func MaintenanceLogFromDomain(m domain.MaintenanceLog) MaintenanceLog {
	return MaintenanceLog{
		ID:          m.ID,
		AssetID:     m.AssetID,
		Description: m.Description,
		Vendor:      m.Vendor,
		Cost:        m.Cost,
		Date:        m.Date,
		Status:      m.Status,
	}
}

// AssetRequest represents the requests table
type AssetRequest struct {
	ID          string `gorm:"primaryKey;size:50" json:"id"`
	EmployeeID  string `gorm:"size:50;index" json:"employeeId"`
	Category    string `gorm:"size:100" json:"category"`
	Reason      string `gorm:"size:512" json:"reason"`
	Status      string `gorm:"size:20;index" json:"status"`
	RequestDate string `gorm:"size:10" json:"requestDate"`
}

func (AssetRequest) TableName() string {
	return "requests"
}

func (r *AssetRequest) ToDomain() domain.AssetRequest {
	return domain.AssetRequest{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Category:    r.Category,
		Reason:      r.Reason,
		Status:      r.Status,
		RequestDate: r.RequestDate,
	}
}

// AssetRequestFromDomain maps a domain request to its row model
func AssetRequestFromDomain(r domain.AssetRequest) AssetRequest {
	return AssetRequest{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Category:    r.Category,
		Reason:      r.Reason,
		Status:      r.Status,
		RequestDate: r.RequestDate,
	}
}

// AutoMigrate runs auto migration for all entity tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Asset{},
		&Employee{},
		&Assignment{},
		&MaintenanceLog{},
		&AssetRequest{},
	)
}
