package diagnostics

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler prunes the store on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	store  *Store
	maxAge time.Duration
	logger *zap.Logger
}

func NewScheduler(store *Store, maxAge time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		store:  store,
		maxAge: maxAge,
		logger: logger,
	}
}

// Start registers the prune job under spec (e.g. "@every 1h") and starts the cron.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Diagnostics pruning scheduled", zap.String("spec", spec), zap.Duration("max_age", s.maxAge))
	return nil
}

func (s *Scheduler) RunOnce() {
	if removed := s.store.Prune(s.maxAge); removed > 0 {
		s.logger.Info("Pruned diagnostics entries", zap.Int("removed", removed))
	}
}

// Stop halts the cron and waits for a running prune to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
