package services

import "assetguard/internal/core/domain"

// Snapshot is the full current contents of the in-memory state, as exposed
// to the presentation layer. Collections keep insertion order.
type Snapshot struct {
	Assets          []domain.Asset          `json:"assets"`
	Employees       []domain.Employee       `json:"employees"`
	Assignments     []domain.Assignment     `json:"assignments"`
	MaintenanceLogs []domain.MaintenanceLog `json:"maintenanceLogs"`
	Requests        []domain.AssetRequest   `json:"requests"`
	Loading         bool                    `json:"loading"`
}

// stateCache is the authoritative in-memory view of the five entity
// collections, loaded once at startup. The lifecycle engine is its only
// writer and guards it with a single mutex; writes are queued under that
// lock but performed outside it.
// activeByAsset is an incrementally maintained index assetID → id of the
// assignment with IsActive == true, replacing repeated linear scans.
type stateCache struct {
	assets     map[string]domain.Asset
	assetOrder []string

	employees     map[string]domain.Employee
	employeeOrder []string

	assignments     map[string]domain.Assignment
	assignmentOrder []string

	maintenance      map[string]domain.MaintenanceLog
	maintenanceOrder []string

	requests     map[string]domain.AssetRequest
	requestOrder []string

	activeByAsset map[string]string

	loading bool
}

func newStateCache() *stateCache {
	return &stateCache{
		assets:        make(map[string]domain.Asset),
		employees:     make(map[string]domain.Employee),
		assignments:   make(map[string]domain.Assignment),
		maintenance:   make(map[string]domain.MaintenanceLog),
		requests:      make(map[string]domain.AssetRequest),
		activeByAsset: make(map[string]string),
		loading:       true,
	}
}

func (c *stateCache) asset(id string) (domain.Asset, bool) {
	a, ok := c.assets[id]
	return a, ok
}

func (c *stateCache) putAsset(a domain.Asset) {
	if _, ok := c.assets[a.ID]; !ok {
		c.assetOrder = append(c.assetOrder, a.ID)
	}
	c.assets[a.ID] = a
}

func (c *stateCache) removeAsset(id string) {
	if _, ok := c.assets[id]; !ok {
		return
	}
	delete(c.assets, id)
	for i, existing := range c.assetOrder {
		if existing == id {
			c.assetOrder = append(c.assetOrder[:i], c.assetOrder[i+1:]...)
			break
		}
	}
}

func (c *stateCache) listAssets() []domain.Asset {
	out := make([]domain.Asset, 0, len(c.assetOrder))
	for _, id := range c.assetOrder {
		out = append(out, c.assets[id])
	}
	return out
}

func (c *stateCache) employee(id string) (domain.Employee, bool) {
	e, ok := c.employees[id]
	return e, ok
}

func (c *stateCache) putEmployee(e domain.Employee) {
	if _, ok := c.employees[e.ID]; !ok {
		c.employeeOrder = append(c.employeeOrder, e.ID)
	}
	c.employees[e.ID] = e
}

func (c *stateCache) listEmployees() []domain.Employee {
	out := make([]domain.Employee, 0, len(c.employeeOrder))
	for _, id := range c.employeeOrder {
		out = append(out, c.employees[id])
	}
	return out
}

// putAssignment stores an assignment and keeps the active-assignment index
// in step: an active assignment claims its asset's slot, a closed one
// releases it if it was the holder.
func (c *stateCache) putAssignment(a domain.Assignment) {
	if _, ok := c.assignments[a.ID]; !ok {
		c.assignmentOrder = append(c.assignmentOrder, a.ID)
	}
	c.assignments[a.ID] = a

	if a.IsActive {
		c.activeByAsset[a.AssetID] = a.ID
	} else if c.activeByAsset[a.AssetID] == a.ID {
		delete(c.activeByAsset, a.AssetID)
	}
}

// activeAssignment resolves the currently-active assignment for an asset
func (c *stateCache) activeAssignment(assetID string) (domain.Assignment, bool) {
	id, ok := c.activeByAsset[assetID]
	if !ok {
		return domain.Assignment{}, false
	}
	a, ok := c.assignments[id]
	return a, ok
}

func (c *stateCache) listAssignments() []domain.Assignment {
	out := make([]domain.Assignment, 0, len(c.assignmentOrder))
	for _, id := range c.assignmentOrder {
		out = append(out, c.assignments[id])
	}
	return out
}

func (c *stateCache) maintenanceLog(id string) (domain.MaintenanceLog, bool) {
	m, ok := c.maintenance[id]
	return m, ok
}

func (c *stateCache) putMaintenanceLog(m domain.MaintenanceLog) {
	if _, ok := c.maintenance[m.ID]; !ok {
		c.maintenanceOrder = append(c.maintenanceOrder, m.ID)
	}
	c.maintenance[m.ID] = m
}

func (c *stateCache) listMaintenanceLogs() []domain.MaintenanceLog {
	out := make([]domain.MaintenanceLog, 0, len(c.maintenanceOrder))
	for _, id := range c.maintenanceOrder {
		out = append(out, c.maintenance[id])
	}
	return out
}

func (c *stateCache) request(id string) (domain.AssetRequest, bool) {
	r, ok := c.requests[id]
	return r, ok
}

func (c *stateCache) putRequest(r domain.AssetRequest) {
	if _, ok := c.requests[r.ID]; !ok {
		c.requestOrder = append(c.requestOrder, r.ID)
	}
	c.requests[r.ID] = r
}

func (c *stateCache) listRequests() []domain.AssetRequest {
	out := make([]domain.AssetRequest, 0, len(c.requestOrder))
	for _, id := range c.requestOrder {
		out = append(out, c.requests[id])
	}
	return out
}

func (c *stateCache) snapshot() Snapshot {
	return Snapshot{
		Assets:          c.listAssets(),
		Employees:       c.listEmployees(),
		Assignments:     c.listAssignments(),
		MaintenanceLogs: c.listMaintenanceLogs(),
		Requests:        c.listRequests(),
		Loading:         c.loading,
	}
}
