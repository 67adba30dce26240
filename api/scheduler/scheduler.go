// Package scheduler runs the periodic background jobs of the practice
// manager. There is currently one job: a daily digest of past-due briefs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/advocatehq/advocate-practice-api/databases"
)

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron *cron.Cron
	BDB  databases.BriefDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(bDB databases.BriefDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		BDB:  bDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Log the past-due digest daily at 5 AM UTC, before the working day starts
	_, err := s.cron.AddFunc("0 5 * * *", s.logPastDueDigest)
	if err != nil {
		zap.S().Errorw("failed to register past-due digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Practice scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Practice scheduler stopped")
}

// logPastDueDigest counts the briefs dated before today per user and logs the
// totals. This feeds the ops dashboard; users see their own past-due list on
// the app dashboard instead.
func (s *Scheduler) logPastDueDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	today := time.Now().UTC().Format("2006-01-02")
	briefs, err := s.BDB.Find(ctx, bson.M{
		"date":      bson.M{"$lt": today},
		"completed": false,
	})
	if err != nil {
		zap.S().Errorw("failed to find past-due briefs", "error", err)
		return
	}

	perUser := make(map[string]int)
	for _, brief := range briefs {
		perUser[brief.UserID]++
	}

	for userID, count := range perUser {
		zap.S().Infow("past-due briefs", "userId", userID, "count", count)
	}
	zap.S().Infow("Past-due digest complete", "users", len(perUser), "totalPastDue", len(briefs))
}
