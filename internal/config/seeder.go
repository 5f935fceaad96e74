package config

import (
	"log"

	"assetguard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedDemoData inserts a small demonstration dataset the first time the
// application starts against an empty database. Seeding is keyed on the
// assets table: if it holds any rows at all, nothing is touched.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demonstration data...")

	assets := []models.Asset{
		{
			ID: "AST-001", Tag: "IT-LAP-001", Name: "MacBook Pro 14\"",
			SerialNumber: "C02XK1JGQ05N", Category: "Laptop", Vendor: "Apple",
			PurchaseDate: "2024-03-12", Cost: 1999.00, Status: "ASSIGNED",
			Condition: "Good", Location: "HQ - Floor 2", AssignedTo: "EMP-001",
		},
		{
			ID: "AST-002", Tag: "IT-LAP-002", Name: "ThinkPad X1 Carbon",
			SerialNumber: "PF3XKQ8R", Category: "Laptop", Vendor: "Lenovo",
			PurchaseDate: "2024-06-02", Cost: 1549.00, Status: "AVAILABLE",
			Condition: "New", Location: "HQ - Storage",
		},
		{
			ID: "AST-003", Tag: "IT-MON-001", Name: "Dell U2723QE Monitor",
			SerialNumber: "CN0J4T2M", Category: "Monitor", Vendor: "Dell",
			PurchaseDate: "2023-11-20", Cost: 629.00, Status: "AVAILABLE",
			Condition: "Good", Location: "HQ - Floor 1",
		},
		{
			ID: "AST-004", Tag: "IT-PRJ-001", Name: "Epson EB-2250U Projector",
			SerialNumber: "X3LF8900123", Category: "Projector", Vendor: "Epson",
			PurchaseDate: "2022-08-15", Cost: 1099.00, Status: "IN_REPAIR",
			Condition: "Fair", Location: "Service Center",
		},
	}

	employees := []models.Employee{
		{
			ID: "EMP-001", Name: "Sarah Chen", Email: "sarah.chen@example.com",
			Department: "Engineering", Role: "Senior Developer", JoinDate: "2021-04-01",
		},
		{
			ID: "EMP-002", Name: "Marcus Webb", Email: "marcus.webb@example.com",
			Department: "Design", Role: "Product Designer", JoinDate: "2022-09-15",
		},
		{
			ID: "EMP-003", Name: "Priya Nair", Email: "priya.nair@example.com",
			Department: "Operations", Role: "Office Manager", JoinDate: "2020-01-20",
		},
	}

	assignments := []models.Assignment{
		{
			ID: "ASG-0001", AssetID: "AST-001", EmployeeID: "EMP-001",
			BorrowDate: "2024-03-15", ExpectedReturnDate: "2025-03-15", IsActive: true,
		},
		{
			ID: "ASG-0002", AssetID: "AST-003", EmployeeID: "EMP-002",
			BorrowDate: "2024-01-10", ReturnedDate: "2024-05-30",
			Notes: "Returned after project wrap-up", IsActive: false,
		},
	}

	maintenanceLogs := []models.MaintenanceLog{
		{
			ID: "MNT-0001", AssetID: "AST-004", Description: "Lamp replacement",
			Vendor: "Epson Service", Cost: 180.00, Date: "2025-07-02",
			Status: "In Progress",
		},
	}

	requests := []models.AssetRequest{
		{
			ID: "REQ-0001", EmployeeID: "EMP-002", Category: "Laptop",
			Reason: "Current machine too slow for design tooling",
			Status: "Pending", RequestDate: "2025-08-20",
		},
	}

	if err := db.Create(&assets).Error; err != nil {
		return err
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}
	if err := db.Create(&assignments).Error; err != nil {
		return err
	}
	if err := db.Create(&maintenanceLogs).Error; err != nil {
		return err
	}
	if err := db.Create(&requests).Error; err != nil {
		return err
	}

	log.Printf("✅ Demo data seeded: %d assets, %d employees", len(assets), len(employees))
	return nil
}
