package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"assetguard/internal/core/domain"

	"github.com/google/uuid"
)

// Entity kinds reported in transition results and write errors
const (
	KindAsset          = "asset"
	KindEmployee       = "employee"
	KindAssignment     = "assignment"
	KindMaintenanceLog = "maintenance_log"
	KindRequest        = "request"
)

// EntityRef identifies one entity touched (or looked for) by an operation.
// For a skipped sub-update the ID is the lookup key that found nothing.
type EntityRef struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// TransitionResult reports which per-entity sub-updates an operation applied
// in memory and which it skipped because the referenced entity was missing.
// Multi-entity operations are best-effort: a skip on one side never blocks
// the other sides, so callers use this to tell partial application from
// full success.
type TransitionResult struct {
	Applied []EntityRef `json:"applied"`
	Skipped []EntityRef `json:"skipped"`
}

// NoOp reports whether the operation touched nothing in memory
func (r TransitionResult) NoOp() bool {
	return len(r.Applied) == 0
}

// AppliedKind reports whether a sub-update of the given kind was applied
func (r TransitionResult) AppliedKind(kind string) bool {
	for _, ref := range r.Applied {
		if ref.Kind == kind {
			return true
		}
	}
	return false
}

func (r *TransitionResult) applied(kind, id string) {
	r.Applied = append(r.Applied, EntityRef{Kind: kind, ID: id})
}

func (r *TransitionResult) skipped(kind, id string) {
	r.Skipped = append(r.Skipped, EntityRef{Kind: kind, ID: id})
}

// WriteError reports a failed durable write. In-memory state stays
// authoritative; the persisted copy is stale until the next successful write
// for the same entity (or a reconcile pass).
type WriteError struct {
	Kind string
	ID   string
	Op   string
	Err  error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Kind, e.ID, e.Err)
}

// writeOp is one durable write queued by a transition, executed after the
// state lock is released
type writeOp struct {
	kind string
	id   string
	op   string
	fn   func(ctx context.Context) error
}

// LifecycleService is the consistency engine over the five entity
// collections. Every operation applies its full in-memory transition first
// (lookups, next states and mutations all under one lock acquisition, no
// I/O) and then launches the corresponding durable writes as detached
// goroutines. Writes for the same entity are chained in transition order so
// the store converges to the latest in-memory state; writes for different
// entities still run in parallel. A failed durable write is logged and
// published on the error channel; the in-memory transition is never rolled
// back. This trades strict durability for caller responsiveness, which is
// the intended behavior for a single-admin tool.
//
// Referential misses are not hard failures: an operation silently skips the
// sub-update for a missing entity while still applying the rest, and reports
// the skip in its TransitionResult.
type LifecycleService struct {
	mu    sync.RWMutex
	state *stateCache

	// tails holds the latest queued write per (kind, id), guarded by mu.
	tails map[string]chan struct{}
	store EntityStore

	writes sync.WaitGroup
	errs   chan WriteError

	now   func() time.Time
	newID func() string
}

// NewLifecycleService creates the engine over a durable store. Call Load
// before serving operations.
func NewLifecycleService(store EntityStore) *LifecycleService {
	return &LifecycleService{
		state: newStateCache(),
		tails: make(map[string]chan struct{}),
		store: store,
		errs:  make(chan WriteError, 64),
		now:   time.Now,
		newID: func() string { return "ASG-" + uuid.NewString() },
	}
}

// Errors exposes failed durable writes. The channel is buffered and never
// blocks a write goroutine; when full, failures are only logged.
func (s *LifecycleService) Errors() <-chan WriteError {
	return s.errs
}

// Flush waits for all in-flight durable writes. Used during shutdown so a
// clean exit does not abandon queued writes.
func (s *LifecycleService) Flush() {
	s.writes.Wait()
}

// Load populates the state cache with one parallel read per entity kind.
// A failed read is logged and leaves that collection empty; loading ends
// once all five reads settle. The active-assignment index is rebuilt from
// the loaded assignments.
func (s *LifecycleService) Load(ctx context.Context) {
	var (
		wg          sync.WaitGroup
		assets      []domain.Asset
		employees   []domain.Employee
		assignments []domain.Assignment
		logs        []domain.MaintenanceLog
		requests    []domain.AssetRequest
	)

	load := func(kind string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Printf("⚠️ Failed to load %s, starting empty: %v", kind, err)
			}
		}()
	}

	load("assets", func() (err error) {
		assets, err = s.store.GetAssets(ctx)
		return
	})
	load("employees", func() (err error) {
		employees, err = s.store.GetEmployees(ctx)
		return
	})
	load("assignments", func() (err error) {
		assignments, err = s.store.GetAssignments(ctx)
		return
	})
	load("maintenance logs", func() (err error) {
		logs, err = s.store.GetMaintenanceLogs(ctx)
		return
	})
	load("requests", func() (err error) {
		requests, err = s.store.GetRequests(ctx)
		return
	})

	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range assets {
		s.state.putAsset(a)
	}
	for _, e := range employees {
		s.state.putEmployee(e)
	}
	for _, a := range assignments {
		s.state.putAssignment(a)
	}
	for _, m := range logs {
		s.state.putMaintenanceLog(m)
	}
	for _, r := range requests {
		s.state.putRequest(r)
	}
	s.state.loading = false

	log.Printf("✅ State loaded: %d assets, %d employees, %d assignments, %d maintenance logs, %d requests",
		len(assets), len(employees), len(assignments), len(logs), len(requests))
}

// Snapshot returns a copy of the current state of all five collections
func (s *LifecycleService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.snapshot()
}

// Loading reports whether the startup load is still in flight
func (s *LifecycleService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.loading
}

// CreateAsset appends a new asset. The id is caller-assigned.
func (s *LifecycleService) CreateAsset(asset domain.Asset) TransitionResult {
	var res TransitionResult

	s.mu.Lock()
	s.state.putAsset(asset)
	res.applied(KindAsset, asset.ID)
	s.dispatch(s.saveAssetOp(asset))
	s.mu.Unlock()

	return res
}

// UpdateAsset replaces the asset with the same id. The in-memory update is
// skipped when the id is unknown, but the durable write is still attempted.
func (s *LifecycleService) UpdateAsset(asset domain.Asset) TransitionResult {
	var res TransitionResult

	s.mu.Lock()
	if _, ok := s.state.asset(asset.ID); ok {
		s.state.putAsset(asset)
		res.applied(KindAsset, asset.ID)
	} else {
		res.skipped(KindAsset, asset.ID)
	}
	s.dispatch(s.saveAssetOp(asset))
	s.mu.Unlock()

	return res
}

// DeleteAsset removes an asset. Assignments, maintenance logs and requests
// referencing the id are left in place; lookups treat the missing id as
// absent.
func (s *LifecycleService) DeleteAsset(id string) TransitionResult {
	var res TransitionResult

	s.mu.Lock()
	if _, ok := s.state.asset(id); ok {
		s.state.removeAsset(id)
		res.applied(KindAsset, id)
	} else {
		res.skipped(KindAsset, id)
	}
	s.dispatch(writeOp{
		kind: KindAsset,
		id:   id,
		op:   "delete",
		fn:   func(ctx context.Context) error { return s.store.DeleteAsset(ctx, id) },
	})
	s.mu.Unlock()

	return res
}

// CreateEmployee appends a new employee. The id is caller-assigned.
// Employees are never updated or deleted through the engine.
func (s *LifecycleService) CreateEmployee(employee domain.Employee) TransitionResult {
	var res TransitionResult

	s.mu.Lock()
	s.state.putEmployee(employee)
	res.applied(KindEmployee, employee.ID)
	s.dispatch(writeOp{
		kind: KindEmployee,
		id:   employee.ID,
		op:   "save",
		fn:   func(ctx context.Context) error { return s.store.SaveEmployee(ctx, employee) },
	})
	s.mu.Unlock()

	return res
}

// AssignAsset opens a new active assignment for the asset and marks the
// asset ASSIGNED. A missing asset skips the asset-side update; the
// assignment is created regardless.
func (s *LifecycleService) AssignAsset(assetID, employeeID, expectedReturn string) (domain.Assignment, TransitionResult) {
	var res TransitionResult

	s.mu.Lock()
	assignment, ops := s.assignLocked(assetID, employeeID, expectedReturn, &res)
	s.dispatch(ops...)
	s.mu.Unlock()

	return assignment, res
}

// assignLocked performs the assign transition. Caller holds the lock and
// dispatches the returned ops before releasing it.
func (s *LifecycleService) assignLocked(assetID, employeeID, expectedReturn string, res *TransitionResult) (domain.Assignment, []writeOp) {
	assignment := domain.Assignment{
		ID:                 s.newID(),
		AssetID:            assetID,
		EmployeeID:         employeeID,
		BorrowDate:         s.today(),
		ExpectedReturnDate: expectedReturn,
		IsActive:           true,
	}
	s.state.putAssignment(assignment)
	res.applied(KindAssignment, assignment.ID)
	ops := []writeOp{s.saveAssignmentOp(assignment)}

	if asset, ok := s.state.asset(assetID); ok {
		asset.Status = domain.AssetAssigned
		asset.AssignedTo = employeeID
		s.state.putAsset(asset)
		res.applied(KindAsset, assetID)
		ops = append(ops, s.saveAssetOp(asset))
	} else {
		res.skipped(KindAsset, assetID)
	}
	return assignment, ops
}

// ReturnAsset closes the asset's active assignment and marks the asset
// AVAILABLE. Each side is skipped independently when its entity is missing.
func (s *LifecycleService) ReturnAsset(assetID, notes string) TransitionResult {
	var res TransitionResult
	var ops []writeOp

	s.mu.Lock()
	if assignment, ok := s.state.activeAssignment(assetID); ok {
		assignment.IsActive = false
		assignment.ReturnedDate = s.today()
		assignment.Notes = notes
		s.state.putAssignment(assignment)
		res.applied(KindAssignment, assignment.ID)
		ops = append(ops, s.saveAssignmentOp(assignment))
	} else {
		res.skipped(KindAssignment, assetID)
	}

	if asset, ok := s.state.asset(assetID); ok {
		asset.Status = domain.AssetAvailable
		asset.AssignedTo = ""
		s.state.putAsset(asset)
		res.applied(KindAsset, assetID)
		ops = append(ops, s.saveAssetOp(asset))
	} else {
		res.skipped(KindAsset, assetID)
	}
	s.dispatch(ops...)
	s.mu.Unlock()

	return res
}

// AddMaintenanceLog appends a service log as given (caller supplies the
// status) and forces the asset into IN_REPAIR, clearing its holder. Any
// active assignment stays open; maintenance discards assignment context.
func (s *LifecycleService) AddMaintenanceLog(maintenanceLog domain.MaintenanceLog) TransitionResult {
	var res TransitionResult
	var ops []writeOp

	s.mu.Lock()
	s.state.putMaintenanceLog(maintenanceLog)
	res.applied(KindMaintenanceLog, maintenanceLog.ID)
	ops = append(ops, s.saveMaintenanceLogOp(maintenanceLog))

	if asset, ok := s.state.asset(maintenanceLog.AssetID); ok {
		asset.Status = domain.AssetInRepair
		asset.AssignedTo = ""
		s.state.putAsset(asset)
		res.applied(KindAsset, asset.ID)
		ops = append(ops, s.saveAssetOp(asset))
	} else {
		res.skipped(KindAsset, maintenanceLog.AssetID)
	}
	s.dispatch(ops...)
	s.mu.Unlock()

	return res
}

// UpdateMaintenanceLog sets the log's status. Completing a log returns the
// asset to AVAILABLE even if it was ASSIGNED before maintenance began; the
// asset is not handed back to its pre-maintenance holder. A missing log id
// makes the whole operation a no-op.
func (s *LifecycleService) UpdateMaintenanceLog(id, status string) TransitionResult {
	var res TransitionResult
	var ops []writeOp

	s.mu.Lock()
	maintenanceLog, ok := s.state.maintenanceLog(id)
	if !ok {
		s.mu.Unlock()
		res.skipped(KindMaintenanceLog, id)
		return res
	}

	maintenanceLog.Status = status
	s.state.putMaintenanceLog(maintenanceLog)
	res.applied(KindMaintenanceLog, id)
	ops = append(ops, s.saveMaintenanceLogOp(maintenanceLog))

	if status == domain.MaintenanceCompleted {
		if asset, ok := s.state.asset(maintenanceLog.AssetID); ok {
			asset.Status = domain.AssetAvailable
			asset.AssignedTo = ""
			s.state.putAsset(asset)
			res.applied(KindAsset, asset.ID)
			ops = append(ops, s.saveAssetOp(asset))
		} else {
			res.skipped(KindAsset, maintenanceLog.AssetID)
		}
	}
	s.dispatch(ops...)
	s.mu.Unlock()

	return res
}

// CreateRequest appends an asset request as given (caller supplies the
// status, expected Pending)
func (s *LifecycleService) CreateRequest(req domain.AssetRequest) TransitionResult {
	var res TransitionResult

	s.mu.Lock()
	s.state.putRequest(req)
	res.applied(KindRequest, req.ID)
	s.dispatch(s.saveRequestOp(req))
	s.mu.Unlock()

	return res
}

// ApproveRequest marks the request Approved and assigns the
// operator-selected asset to the requesting employee, inheriting all of the
// assign semantics including its skips. A missing request id makes the whole
// operation a no-op with no partial effects.
func (s *LifecycleService) ApproveRequest(requestID, assetID string) TransitionResult {
	var res TransitionResult
	var ops []writeOp

	s.mu.Lock()
	req, ok := s.state.request(requestID)
	if !ok {
		s.mu.Unlock()
		res.skipped(KindRequest, requestID)
		return res
	}

	req.Status = domain.RequestApproved
	s.state.putRequest(req)
	res.applied(KindRequest, requestID)
	ops = append(ops, s.saveRequestOp(req))

	_, assignOps := s.assignLocked(assetID, req.EmployeeID, "", &res)
	ops = append(ops, assignOps...)
	s.dispatch(ops...)
	s.mu.Unlock()

	return res
}

// RejectRequest marks the request Rejected. No asset or assignment is
// touched. No-op if the request id is unknown.
func (s *LifecycleService) RejectRequest(requestID string) TransitionResult {
	var res TransitionResult

	s.mu.Lock()
	req, ok := s.state.request(requestID)
	if !ok {
		s.mu.Unlock()
		res.skipped(KindRequest, requestID)
		return res
	}
	req.Status = domain.RequestRejected
	s.state.putRequest(req)
	res.applied(KindRequest, requestID)
	s.dispatch(s.saveRequestOp(req))
	s.mu.Unlock()

	return res
}

func (s *LifecycleService) today() string {
	return s.now().Format("2006-01-02")
}

func (s *LifecycleService) saveAssetOp(asset domain.Asset) writeOp {
	return writeOp{
		kind: KindAsset,
		id:   asset.ID,
		op:   "save",
		fn:   func(ctx context.Context) error { return s.store.SaveAsset(ctx, asset) },
	}
}

func (s *LifecycleService) saveAssignmentOp(assignment domain.Assignment) writeOp {
	return writeOp{
		kind: KindAssignment,
		id:   assignment.ID,
		op:   "save",
		fn:   func(ctx context.Context) error { return s.store.SaveAssignment(ctx, assignment) },
	}
}

func (s *LifecycleService) saveMaintenanceLogOp(maintenanceLog domain.MaintenanceLog) writeOp {
	return writeOp{
		kind: KindMaintenanceLog,
		id:   maintenanceLog.ID,
		op:   "save",
		fn:   func(ctx context.Context) error { return s.store.SaveMaintenanceLog(ctx, maintenanceLog) },
	}
}

func (s *LifecycleService) saveRequestOp(req domain.AssetRequest) writeOp {
	return writeOp{
		kind: KindRequest,
		id:   req.ID,
		op:   "save",
		fn:   func(ctx context.Context) error { return s.store.SaveRequest(ctx, req) },
	}
}

// dispatch launches each durable write as a detached goroutine. Writes that
// touch the same (kind, id) are chained behind the previous queued write for
// that entity, so they hit the store in the order the transitions were
// applied; unrelated writes still run in parallel. Called with the state
// lock held, which keeps queue order identical to transition order. Failures
// go to the error channel and the log, never back to the operation caller.
func (s *LifecycleService) dispatch(ops ...writeOp) {
	for _, op := range ops {
		op := op
		key := op.kind + "/" + op.id
		prev := s.tails[key]
		done := make(chan struct{})
		s.tails[key] = done
		s.writes.Add(1)
		go func() {
			defer s.writes.Done()
			if prev != nil {
				<-prev
			}
			if err := op.fn(context.Background()); err != nil {
				werr := WriteError{Kind: op.kind, ID: op.id, Op: op.op, Err: err}
				log.Printf("⚠️ Durable write failed (%s), in-memory state stays authoritative: %v", op.op, werr)
				select {
				case s.errs <- werr:
				default:
				}
			}
			s.mu.Lock()
			if s.tails[key] == done {
				delete(s.tails, key)
			}
			s.mu.Unlock()
			close(done)
		}()
	}
}
