package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs background maintenance jobs on cron schedules.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler using the standard five-field cron syntax.
func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// AddJob registers a named job. The name only shows up in logs.
func (s *Scheduler) AddJob(schedule, name string, fn func()) error {
	_, err := s.cron.AddFunc(schedule, func() {
		log.Printf("running job %s", name)
		fn()
	})
	if err != nil {
		return err
	}
	log.Printf("registered job %s (%s)", name, schedule)
	return nil
}

// Start begins running registered jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
