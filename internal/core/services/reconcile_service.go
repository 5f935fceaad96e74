package services

import (
	"context"
	"log"

	"assetguard/internal/core/domain"

	"github.com/robfig/cron/v3"
)

// ReconcileReport summarizes one consistency-repair pass
type ReconcileReport struct {
	Checked  int `json:"checked"`
	Repaired int `json:"repaired"`
	Failed   int `json:"failed"`
}

// Reconcile re-reads every entity kind from the durable store and re-issues
// the save for each in-memory entity whose persisted copy is missing or
// differs. This is the repair path for writes that failed after an
// optimistic transition. Rows present only in the store are left untouched:
// the engine does not track deletions, and a collection that came up empty
// after a failed startup load must not wipe its table.
func (s *LifecycleService) Reconcile(ctx context.Context) ReconcileReport {
	var report ReconcileReport
	snap := s.Snapshot()

	reconcileAssets(ctx, s.store, snap.Assets, &report)
	reconcileEmployees(ctx, s.store, snap.Employees, &report)
	reconcileAssignments(ctx, s.store, snap.Assignments, &report)
	reconcileMaintenanceLogs(ctx, s.store, snap.MaintenanceLogs, &report)
	reconcileRequests(ctx, s.store, snap.Requests, &report)

	log.Printf("✅ Reconcile pass done: %d checked, %d repaired, %d failed",
		report.Checked, report.Repaired, report.Failed)
	return report
}

func reconcileAssets(ctx context.Context, store EntityStore, memory []domain.Asset, report *ReconcileReport) {
	persisted, err := store.GetAssets(ctx)
	if err != nil {
		log.Printf("⚠️ Reconcile: reading assets failed, kind skipped: %v", err)
		report.Failed++
		return
	}
	byID := make(map[string]domain.Asset, len(persisted))
	for _, p := range persisted {
		byID[p.ID] = p
	}
	for _, m := range memory {
		report.Checked++
		if p, ok := byID[m.ID]; ok && p == m {
			continue
		}
		if err := store.SaveAsset(ctx, m); err != nil {
			log.Printf("⚠️ Reconcile: re-saving asset %s failed: %v", m.ID, err)
			report.Failed++
			continue
		}
		report.Repaired++
	}
}

func reconcileEmployees(ctx context.Context, store EntityStore, memory []domain.Employee, report *ReconcileReport) {
	persisted, err := store.GetEmployees(ctx)
	if err != nil {
		log.Printf("⚠️ Reconcile: reading employees failed, kind skipped: %v", err)
		report.Failed++
		return
	}
	byID := make(map[string]domain.Employee, len(persisted))
	for _, p := range persisted {
		byID[p.ID] = p
	}
	for _, m := range memory {
		report.Checked++
		if p, ok := byID[m.ID]; ok && p == m {
			continue
		}
		if err := store.SaveEmployee(ctx, m); err != nil {
			log.Printf("⚠️ Reconcile: re-saving employee %s failed: %v", m.ID, err)
			report.Failed++
			continue
		}
		report.Repaired++
	}
}

func reconcileAssignments(ctx context.Context, store EntityStore, memory []domain.Assignment, report *ReconcileReport) {
	persisted, err := store.GetAssignments(ctx)
	if err != nil {
		log.Printf("⚠️ Reconcile: reading assignments failed, kind skipped: %v", err)
		report.Failed++
		return
	}
	byID := make(map[string]domain.Assignment, len(persisted))
	for _, p := range persisted {
		byID[p.ID] = p
	}
	for _, m := range memory {
		report.Checked++
		if p, ok := byID[m.ID]; ok && p == m {
			continue
		}
		if err := store.SaveAssignment(ctx, m); err != nil {
			log.Printf("⚠️ Reconcile: re-saving assignment %s failed: %v", m.ID, err)
			report.Failed++
			continue
		}
		report.Repaired++
	}
}

func reconcileMaintenanceLogs(ctx context.Context, store EntityStore, memory []domain.MaintenanceLog, report *ReconcileReport) {
	persisted, err := store.GetMaintenanceLogs(ctx)
	if err != nil {
		log.Printf("⚠️ Reconcile: reading maintenance logs failed, kind skipped: %v", err)
		report.Failed++
		return
	}
	byID := make(map[string]domain.MaintenanceLog, len(persisted))
	for _, p := range persisted {
		byID[p.ID] = p
	}
	for _, m := range memory {
		report.Checked++
		if p, ok := byID[m.ID]; ok && p == m {
			continue
		}
		if err := store.SaveMaintenanceLog(ctx, m); err != nil {
			log.Printf("⚠️ Reconcile: re-saving maintenance log %s failed: %v", m.ID, err)
			report.Failed++
			continue
		}
		report.Repaired++
	}
}

func reconcileRequests(ctx context.Context, store EntityStore, memory []domain.AssetRequest, report *ReconcileReport) {
	persisted, err := store.GetRequests(ctx)
	if err != nil {
		log.Printf("⚠️ Reconcile: reading requests failed, kind skipped: %v", err)
		report.Failed++
		return
	}
	byID := make(map[string]domain.AssetRequest, len(persisted))
	for _, p := range persisted {
		byID[p.ID] = p
	}
	for _, m := range memory {
		report.Checked++
		if p, ok := byID[m.ID]; ok && p == m {
			continue
		}
		if err := store.SaveRequest(ctx, m); err != nil {
			log.Printf("⚠️ Reconcile: re-saving request %s failed: %v", m.ID, err)
			report.Failed++
			continue
		}
		report.Repaired++
	}
}

// ReconcileService schedules periodic reconcile passes
type ReconcileService struct {
	engine *LifecycleService
	spec   string
	cron   *cron.Cron
}

// NewReconcileService creates a scheduler for the repair pass. The spec is
// a cron expression, e.g. "@every 15m".
func NewReconcileService(engine *LifecycleService, spec string) *ReconcileService {
	return &ReconcileService{
		engine: engine,
		spec:   spec,
		cron:   cron.New(),
	}
}

// Start begins scheduled reconcile passes
func (s *ReconcileService) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.engine.Reconcile(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("🚀 ReconcileService started [%s]", s.spec)
	return nil
}

// Stop halts scheduling; a pass already running finishes
func (s *ReconcileService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReconcileService stopped")
}
