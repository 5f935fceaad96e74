package models

import (
	"testing"

	"assetguard/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestAssetMappingKeepsOptionalFieldsAbsent(t *testing.T) {
	asset := domain.Asset{
		ID:           "AST-007",
		Tag:          "IT-LAP-007",
		Name:         "XPS 13",
		SerialNumber: "SN007",
		Category:     "Laptop",
		Vendor:       "Dell",
		PurchaseDate: "2024-02-29",
		Cost:         1349.99,
		Status:       domain.AssetAvailable,
		Condition:    "New",
		Location:     "HQ",
		// AssignedTo and Image deliberately absent
	}

	row := AssetFromDomain(asset)
	assert.Empty(t, row.AssignedTo)
	assert.Equal(t, asset, row.ToDomain())
}

func TestAssignmentMappingRoundTrip(t *testing.T) {
	open := domain.Assignment{
		ID:         "ASG-1",
		AssetID:    "AST-007",
		EmployeeID: "EMP-001",
		BorrowDate: "2025-01-10",
		IsActive:   true,
	}
	closed := domain.Assignment{
		ID:                 "ASG-2",
		AssetID:            "AST-007",
		EmployeeID:         "EMP-002",
		BorrowDate:         "2024-01-10",
		ExpectedReturnDate: "2024-06-10",
		ReturnedDate:       "2024-06-09",
		Notes:              "early return",
		IsActive:           false,
	}

	openRow := AssignmentFromDomain(open)
	assert.Empty(t, openRow.ReturnedDate, "open assignment has no returned date")
	assert.Equal(t, open, openRow.ToDomain())

	closedRow := AssignmentFromDomain(closed)
	assert.Equal(t, closed, closedRow.ToDomain())
}
