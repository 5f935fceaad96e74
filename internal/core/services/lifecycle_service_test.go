package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"assetguard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory EntityStore with per-call failure injection
type fakeStore struct {
	mu sync.Mutex

	assets      map[string]domain.Asset
	employees   map[string]domain.Employee
	assignments map[string]domain.Assignment
	logs        map[string]domain.MaintenanceLog
	requests    map[string]domain.AssetRequest

	loadErr map[string]error // kind → error returned by GetX
	saveErr map[string]error // kind → error returned by SaveX/DeleteX

	beforeSaveAsset func() // runs at the top of SaveAsset when set
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		assets:      make(map[string]domain.Asset),
		employees:   make(map[string]domain.Employee),
		assignments: make(map[string]domain.Assignment),
		logs:        make(map[string]domain.MaintenanceLog),
		requests:    make(map[string]domain.AssetRequest),
		loadErr:     make(map[string]error),
		saveErr:     make(map[string]error),
	}
}

func (f *fakeStore) GetAssets(context.Context) ([]domain.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadErr[KindAsset]; err != nil {
		return nil, err
	}
	out := make([]domain.Asset, 0, len(f.assets))
	for _, a := range f.assets {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) SaveAsset(_ context.Context, a domain.Asset) error {
	if f.beforeSaveAsset != nil {
		f.beforeSaveAsset()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.saveErr[KindAsset]; err != nil {
		return err
	}
	f.assets[a.ID] = a
	return nil
}

func (f *fakeStore) DeleteAsset(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.saveErr[KindAsset]; err != nil {
		return err
	}
	delete(f.assets, id)
	return nil
}

func (f *fakeStore) GetEmployees(context.Context) ([]domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadErr[KindEmployee]; err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) SaveEmployee(_ context.Context, e domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.saveErr[KindEmployee]; err != nil {
		return err
	}
	f.employees[e.ID] = e
	return nil
}

func (f *fakeStore) GetAssignments(context.Context) ([]domain.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadErr[KindAssignment]; err != nil {
		return nil, err
	}
	out := make([]domain.Assignment, 0, len(f.assignments))
	for _, a := range f.assignments {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) SaveAssignment(_ context.Context, a domain.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.saveErr[KindAssignment]; err != nil {
		return err
	}
	f.assignments[a.ID] = a
	return nil
}

func (f *fakeStore) GetMaintenanceLogs(context.Context) ([]domain.MaintenanceLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadErr[KindMaintenanceLog]; err != nil {
		return nil, err
	}
	out := make([]domain.MaintenanceLog, 0, len(f.logs))
	for _, m := range f.logs {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStore) SaveMaintenanceLog(_ context.Context, m domain.MaintenanceLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.saveErr[KindMaintenanceLog]; err != nil {
		return err
	}
	f.logs[m.ID] = m
	return nil
}

func (f *fakeStore) GetRequests(context.Context) ([]domain.AssetRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadErr[KindRequest]; err != nil {
		return nil, err
	}
	out := make([]domain.AssetRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) SaveRequest(_ context.Context, r domain.AssetRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.saveErr[KindRequest]; err != nil {
		return err
	}
	f.requests[r.ID] = r
	return nil
}

func (f *fakeStore) asset(id string) (domain.Asset, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assets[id]
	return a, ok
}

func (f *fakeStore) assignment(id string) (domain.Assignment, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assignments[id]
	return a, ok
}

func (f *fakeStore) setSaveErr(kind string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.saveErr, kind)
		return
	}
	f.saveErr[kind] = err
}

const testToday = "2025-09-01"

// newTestEngine returns a loaded engine with a fixed clock and sequential
// assignment ids
func newTestEngine(t *testing.T, store *fakeStore) *LifecycleService {
	t.Helper()
	s := NewLifecycleService(store)
	fixed, err := time.Parse("2006-01-02", testToday)
	require.NoError(t, err)
	s.now = func() time.Time { return fixed }
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("ASG-%04d", seq)
	}
	s.Load(context.Background())
	return s
}

func availableAsset(id string) domain.Asset {
	return domain.Asset{
		ID:           id,
		Tag:          "IT-" + id,
		Name:         "Test Laptop " + id,
		SerialNumber: "SN-" + id,
		Category:     "Laptop",
		Vendor:       "Lenovo",
		PurchaseDate: "2024-01-15",
		Cost:         1299.50,
		Status:       domain.AssetAvailable,
		Condition:    "Good",
		Location:     "HQ",
	}
}

func testEmployee(id string) domain.Employee {
	return domain.Employee{
		ID:         id,
		Name:       "Employee " + id,
		Email:      id + "@example.com",
		Department: "Engineering",
		Role:       "Developer",
		JoinDate:   "2022-05-01",
	}
}

func TestAssignAsset(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))
	s.CreateEmployee(testEmployee("E1"))

	assignment, result := s.AssignAsset("A1", "E1", "2025-12-01")

	assert.True(t, assignment.IsActive)
	assert.Equal(t, "A1", assignment.AssetID)
	assert.Equal(t, "E1", assignment.EmployeeID)
	assert.Equal(t, testToday, assignment.BorrowDate)
	assert.Equal(t, "2025-12-01", assignment.ExpectedReturnDate)
	assert.Empty(t, assignment.ReturnedDate)
	assert.True(t, result.AppliedKind(KindAsset))
	assert.True(t, result.AppliedKind(KindAssignment))
	assert.Empty(t, result.Skipped)

	snap := s.Snapshot()
	require.Len(t, snap.Assets, 1)
	assert.Equal(t, domain.AssetAssigned, snap.Assets[0].Status)
	assert.Equal(t, "E1", snap.Assets[0].AssignedTo)
	require.Len(t, snap.Assignments, 1)

	s.Flush()
	persisted, ok := store.asset("A1")
	require.True(t, ok)
	assert.Equal(t, domain.AssetAssigned, persisted.Status)
	_, ok = store.assignment(assignment.ID)
	assert.True(t, ok)
}

func TestAssignAssetMissingAssetStillCreatesAssignment(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)

	assignment, result := s.AssignAsset("GHOST", "E1", "")

	assert.True(t, result.AppliedKind(KindAssignment))
	assert.Contains(t, result.Skipped, EntityRef{Kind: KindAsset, ID: "GHOST"})

	s.Flush()
	_, ok := store.assignment(assignment.ID)
	assert.True(t, ok, "assignment row is written even when the asset is missing")
	_, ok = store.asset("GHOST")
	assert.False(t, ok)
}

func TestReturnAsset(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))
	assignment, _ := s.AssignAsset("A1", "E1", "")

	result := s.ReturnAsset("A1", "scratched lid")

	assert.True(t, result.AppliedKind(KindAsset))
	assert.True(t, result.AppliedKind(KindAssignment))

	snap := s.Snapshot()
	assert.Equal(t, domain.AssetAvailable, snap.Assets[0].Status)
	assert.Empty(t, snap.Assets[0].AssignedTo)
	require.Len(t, snap.Assignments, 1)
	closed := snap.Assignments[0]
	assert.Equal(t, assignment.ID, closed.ID)
	assert.False(t, closed.IsActive)
	assert.Equal(t, testToday, closed.ReturnedDate)
	assert.Equal(t, "scratched lid", closed.Notes)

	s.Flush()
	persisted, _ := store.assignment(assignment.ID)
	assert.False(t, persisted.IsActive)
}

func TestReturnAssetWithoutActiveAssignment(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))

	result := s.ReturnAsset("A1", "")

	assert.True(t, result.AppliedKind(KindAsset))
	assert.Contains(t, result.Skipped, EntityRef{Kind: KindAssignment, ID: "A1"})
}

func TestAtMostOneActiveAssignmentPerAsset(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))

	s.AssignAsset("A1", "E1", "")
	s.ReturnAsset("A1", "")
	s.AssignAsset("A1", "E2", "")

	snap := s.Snapshot()
	require.Len(t, snap.Assignments, 2)
	active := 0
	for _, a := range snap.Assignments {
		if a.IsActive {
			active++
			assert.Equal(t, "E2", a.EmployeeID)
		}
	}
	assert.Equal(t, 1, active)
	assert.Equal(t, "E2", snap.Assets[0].AssignedTo)
}

func TestMaintenanceLifecycle(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))

	maintenanceLog := domain.MaintenanceLog{
		ID: "M1", AssetID: "A1", Description: "Fan replacement",
		Vendor: "Repair Co", Cost: 80, Date: testToday,
		Status: domain.MaintenanceInProgress,
	}
	s.AddMaintenanceLog(maintenanceLog)

	snap := s.Snapshot()
	assert.Equal(t, domain.AssetInRepair, snap.Assets[0].Status)
	require.Len(t, snap.MaintenanceLogs, 1)

	result := s.UpdateMaintenanceLog("M1", domain.MaintenanceCompleted)
	assert.True(t, result.AppliedKind(KindMaintenanceLog))
	assert.True(t, result.AppliedKind(KindAsset))

	snap = s.Snapshot()
	assert.Equal(t, domain.AssetAvailable, snap.Assets[0].Status)
	assert.Equal(t, domain.MaintenanceCompleted, snap.MaintenanceLogs[0].Status)
}

func TestMaintenanceOnAssignedAssetDiscardsHolder(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))
	s.AssignAsset("A1", "E1", "")

	s.AddMaintenanceLog(domain.MaintenanceLog{
		ID: "M1", AssetID: "A1", Status: domain.MaintenanceInProgress,
	})

	snap := s.Snapshot()
	assert.Equal(t, domain.AssetInRepair, snap.Assets[0].Status)
	assert.Empty(t, snap.Assets[0].AssignedTo)

	// Completing hands the asset back to the pool, not to its previous holder.
	s.UpdateMaintenanceLog("M1", domain.MaintenanceCompleted)
	snap = s.Snapshot()
	assert.Equal(t, domain.AssetAvailable, snap.Assets[0].Status)
	assert.Empty(t, snap.Assets[0].AssignedTo)
}

func TestUpdateMaintenanceLogUnknownIDIsNoOp(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))

	before := s.Snapshot()
	result := s.UpdateMaintenanceLog("GHOST", domain.MaintenanceCompleted)

	assert.True(t, result.NoOp())
	assert.Equal(t, before, s.Snapshot())
}

func TestApproveRequest(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A2"))
	s.CreateEmployee(testEmployee("E1"))
	s.CreateRequest(domain.AssetRequest{
		ID: "R1", EmployeeID: "E1", Category: "Laptop",
		Reason: "replacement", Status: domain.RequestPending, RequestDate: testToday,
	})

	result := s.ApproveRequest("R1", "A2")

	assert.True(t, result.AppliedKind(KindRequest))
	assert.True(t, result.AppliedKind(KindAssignment))
	assert.True(t, result.AppliedKind(KindAsset))

	snap := s.Snapshot()
	assert.Equal(t, domain.RequestApproved, snap.Requests[0].Status)
	assert.Equal(t, domain.AssetAssigned, snap.Assets[0].Status)
	assert.Equal(t, "E1", snap.Assets[0].AssignedTo)
	require.Len(t, snap.Assignments, 1)
	assert.Equal(t, "A2", snap.Assignments[0].AssetID)
	assert.Equal(t, "E1", snap.Assignments[0].EmployeeID)
	assert.True(t, snap.Assignments[0].IsActive)
}

func TestApproveRequestUnknownIDIsNoOp(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))

	before := s.Snapshot()
	result := s.ApproveRequest("GHOST", "A1")

	assert.True(t, result.NoOp())
	assert.Equal(t, before, s.Snapshot())

	s.Flush()
	persisted, _ := store.asset("A1")
	assert.Equal(t, domain.AssetAvailable, persisted.Status)
}

func TestRejectRequest(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))
	s.CreateRequest(domain.AssetRequest{
		ID: "R1", EmployeeID: "E1", Category: "Laptop", Status: domain.RequestPending,
	})

	result := s.RejectRequest("R1")

	assert.True(t, result.AppliedKind(KindRequest))
	snap := s.Snapshot()
	assert.Equal(t, domain.RequestRejected, snap.Requests[0].Status)
	assert.Equal(t, domain.AssetAvailable, snap.Assets[0].Status)
	assert.Empty(t, snap.Assignments)
}

func TestUpdateAssetIsIdempotent(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))

	updated := availableAsset("A1")
	updated.Location = "Branch Office"

	s.UpdateAsset(updated)
	first := s.Snapshot()
	s.UpdateAsset(updated)

	assert.Equal(t, first, s.Snapshot())
}

func TestUpdateAssetUnknownIDSkipsMemoryButWrites(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)

	ghost := availableAsset("GHOST")
	result := s.UpdateAsset(ghost)

	assert.Contains(t, result.Skipped, EntityRef{Kind: KindAsset, ID: "GHOST"})
	assert.Empty(t, s.Snapshot().Assets)

	// The durable write is still attempted.
	s.Flush()
	_, ok := store.asset("GHOST")
	assert.True(t, ok)
}

func TestDeleteAssetLeavesDanglingReferences(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	s.CreateAsset(availableAsset("A1"))
	s.AssignAsset("A1", "E1", "")

	s.DeleteAsset("A1")

	snap := s.Snapshot()
	assert.Empty(t, snap.Assets)
	require.Len(t, snap.Assignments, 1, "assignments are not cascaded")
	assert.True(t, snap.Assignments[0].IsActive)

	// The dangling reference resolves as absent: a return still closes the
	// assignment and skips the asset side.
	result := s.ReturnAsset("A1", "")
	assert.True(t, result.AppliedKind(KindAssignment))
	assert.Contains(t, result.Skipped, EntityRef{Kind: KindAsset, ID: "A1"})

	s.Flush()
	_, ok := store.asset("A1")
	assert.False(t, ok)
}

func TestCreateAssetRoundTrip(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)

	asset := availableAsset("A1")
	asset.Image = "https://images.example.com/a1.png"
	s.CreateAsset(asset)
	s.Flush()

	reloaded := newTestEngine(t, store)
	snap := reloaded.Snapshot()
	require.Len(t, snap.Assets, 1)
	assert.Equal(t, asset, snap.Assets[0])
}

func TestWriteFailureKeepsMemoryAndReportsError(t *testing.T) {
	store := newFakeStore()
	s := newTestEngine(t, store)
	store.setSaveErr(KindAsset, errors.New("disk full"))

	s.CreateAsset(availableAsset("A1"))
	s.Flush()

	// In-memory state is authoritative and unchanged.
	require.Len(t, s.Snapshot().Assets, 1)
	_, ok := store.asset("A1")
	assert.False(t, ok)

	select {
	case werr := <-s.Errors():
		assert.Equal(t, KindAsset, werr.Kind)
		assert.Equal(t, "A1", werr.ID)
		assert.Equal(t, "save", werr.Op)
	default:
		t.Fatal("expected a write error on the channel")
	}

	// The next successful write re-synchronizes the same entity.
	store.setSaveErr(KindAsset, nil)
	s.UpdateAsset(availableAsset("A1"))
	s.Flush()
	_, ok = store.asset("A1")
	assert.True(t, ok)
}

func TestSameAssetWritesReachStoreInOrder(t *testing.T) {
	store := newFakeStore()
	release := make(chan struct{})
	var hookMu sync.Mutex
	first := true
	store.beforeSaveAsset = func() {
		hookMu.Lock()
		stall := first
		first = false
		hookMu.Unlock()
		if stall {
			<-release
		}
	}
	s := newTestEngine(t, store)

	asset := availableAsset("A1")
	s.CreateAsset(asset) // this write stalls inside the store

	moved := asset
	moved.Location = "Branch Office"
	s.UpdateAsset(moved)

	close(release)
	s.Flush()

	// The second write must land second even though the first one was slow;
	// the store ends at the same state as memory.
	got, ok := store.asset("A1")
	require.True(t, ok)
	assert.Equal(t, "Branch Office", got.Location)

	snap := s.Snapshot()
	require.Len(t, snap.Assets, 1)
	assert.Equal(t, snap.Assets[0].Location, got.Location)

	select {
	case werr := <-s.Errors():
		t.Fatalf("unexpected write error: %v", werr)
	default:
	}
}

func TestLoadFailureLeavesCollectionEmpty(t *testing.T) {
	store := newFakeStore()
	store.assets["A1"] = availableAsset("A1")
	store.employees["E1"] = testEmployee("E1")
	store.loadErr[KindAsset] = errors.New("table missing")

	s := newTestEngine(t, store)

	assert.False(t, s.Loading())
	snap := s.Snapshot()
	assert.Empty(t, snap.Assets, "failed kind starts empty")
	require.Len(t, snap.Employees, 1, "other kinds load independently")
}

func TestLoadRebuildsActiveAssignmentIndex(t *testing.T) {
	store := newFakeStore()
	store.assets["A1"] = func() domain.Asset {
		a := availableAsset("A1")
		a.Status = domain.AssetAssigned
		a.AssignedTo = "E1"
		return a
	}()
	store.assignments["ASG-X"] = domain.Assignment{
		ID: "ASG-X", AssetID: "A1", EmployeeID: "E1",
		BorrowDate: "2025-01-01", IsActive: true,
	}
	store.assignments["ASG-Y"] = domain.Assignment{
		ID: "ASG-Y", AssetID: "A1", EmployeeID: "E2",
		BorrowDate: "2024-01-01", ReturnedDate: "2024-06-01", IsActive: false,
	}

	s := newTestEngine(t, store)
	result := s.ReturnAsset("A1", "")

	assert.True(t, result.AppliedKind(KindAssignment))
	snap := s.Snapshot()
	for _, a := range snap.Assignments {
		assert.False(t, a.IsActive)
		if a.ID == "ASG-X" {
			assert.Equal(t, testToday, a.ReturnedDate)
		}
	}
}
