// file: internals/features/school/maintenance/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	orgModel "classhub_backend/internals/features/organizations/model"
	attendanceSvc "classhub_backend/internals/features/school/attendance/service"
	lessonSvc "classhub_backend/internals/features/school/lessons/service"
)

const (
	completionInterval     = 1 * time.Minute
	reconciliationInterval = 10 * time.Minute
)

// Each sweep runs on its own single goroutine loop, so a sweep can never
// overlap with itself. A slow tick simply delays the next one.

func loadOrganizations(db *gorm.DB) []orgModel.OrganizationModel {
	var orgs []orgModel.OrganizationModel
	if err := db.Find(&orgs).Error; err != nil {
		log.Printf("[ERROR] scheduler: load organizations: %v", err)
		return nil
	}
	return orgs
}

// StartCompletionLoop marks past lessons completed, every minute, for every
// organization in its own local timezone.
func StartCompletionLoop(ctx context.Context, db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(completionInterval)
		defer ticker.Stop()
		log.Printf("[SWEEP] completion loop started (every %s)", completionInterval)
		for {
			select {
			case <-ctx.Done():
				log.Println("[SWEEP] completion loop stopped")
				return
			case <-ticker.C:
				results := lessonSvc.MarkCompletedLessons(db, loadOrganizations(db))
				if len(results) > 0 {
					log.Printf("[SWEEP] completion: %s", lessonSvc.DescribeSweep(results))
				}
			}
		}
	}()
}

// StartReconciliationLoop back-fills absent attendance rows for completed
// group lessons, every ten minutes.
func StartReconciliationLoop(ctx context.Context, db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(reconciliationInterval)
		defer ticker.Stop()
		log.Printf("[SWEEP] reconciliation loop started (every %s)", reconciliationInterval)
		for {
			select {
			case <-ctx.Done():
				log.Println("[SWEEP] reconciliation loop stopped")
				return
			case <-ticker.C:
				results := attendanceSvc.ReconcileAttendance(db, loadOrganizations(db))
				for orgID, n := range results {
					if n > 0 {
						log.Printf("[SWEEP] reconciliation: org=%s absences=%d", orgID, n)
					}
				}
			}
		}
	}()
}
