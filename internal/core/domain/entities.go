package domain

// AssetStatus represents the lifecycle status of an asset
type AssetStatus string

const (
	AssetAvailable AssetStatus = "AVAILABLE"
	AssetAssigned  AssetStatus = "ASSIGNED"
	AssetInRepair  AssetStatus = "IN_REPAIR"
)

// Maintenance log statuses. Creation accepts any string, but only these two
// participate in asset status transitions.
const (
	MaintenanceInProgress = "In Progress"
	MaintenanceCompleted  = "Completed"
)

// Asset request statuses. Pending → Approved and Pending → Rejected are
// one-way and terminal.
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestRejected = "Rejected"
)

// Asset represents a trackable physical item.
// Dates are ISO-8601 date strings (YYYY-MM-DD); optional string fields use
// "" for absent. AssignedTo is set iff Status == ASSIGNED.
type Asset struct {
	ID           string      `json:"id"`
	Tag          string      `json:"tag"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serialNumber"`
	Category     string      `json:"category"`
	Vendor       string      `json:"vendor"`
	PurchaseDate string      `json:"purchaseDate"`
	Cost         float64     `json:"cost"`
	Status       AssetStatus `json:"status"`
	Condition    string      `json:"condition"`
	Location     string      `json:"location"`
	AssignedTo   string      `json:"assignedTo,omitempty"`
	Image        string      `json:"image,omitempty"`
}

// Employee represents a staff member who can hold assets
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	JoinDate   string `json:"joinDate"`
	Avatar     string `json:"avatar,omitempty"`
}

// Assignment records one asset being held by one employee over an interval.
// At most one assignment per asset has IsActive == true. ReturnedDate is set
// only when the assignment was closed through a return.
type Assignment struct {
	ID                 string `json:"id"`
	AssetID            string `json:"assetId"`
	EmployeeID         string `json:"employeeId"`
	BorrowDate         string `json:"borrowDate"`
	ExpectedReturnDate string `json:"expectedReturnDate,omitempty"`
	ReturnedDate       string `json:"returnedDate,omitempty"`
	Notes              string `json:"notes,omitempty"`
	IsActive           bool   `json:"isActive"`
}

// MaintenanceLog represents a service event for an asset
type MaintenanceLog struct {
	ID          string  `json:"id"`
	AssetID     string  `json:"assetId"`
	Description string  `json:"description"`
	Vendor      string  `json:"vendor"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
}

// AssetRequest represents an employee's request for an asset of a category
type AssetRequest struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Category    string `json:"category"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	RequestDate string `json:"requestDate"`
}
