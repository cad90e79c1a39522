package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// sessionSweeper removes expired checkout sessions in bulk.
type sessionSweeper interface {
	Sweep() int
}

// SessionSweeperJob manages the scheduled cleanup of expired checkout
// sessions. Expiry is also enforced on read, so the sweeper only reclaims
// memory held by sessions nobody came back for.
type SessionSweeperJob struct {
	store  sessionSweeper
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSessionSweeperJob creates a new job for sweeping expired sessions.
// Runs every minute against the session store.
func NewSessionSweeperJob(store sessionSweeper, logger *slog.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		store:  store,
		cron:   cron.New(),
		logger: logger.With("component", "session_sweeper_job"),
	}
}

// Start begins the session sweeper job to run every minute.
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		if removed := j.store.Sweep(); removed > 0 {
			j.logger.InfoContext(context.Background(), "Swept expired checkout sessions", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweeper job started (running every minute)")
	return nil
}

// Stop stops the session sweeper job.
func (j *SessionSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweeper job stopped")
}
