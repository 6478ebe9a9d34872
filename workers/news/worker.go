package news

import (
	"context"

	"github.com/aguichard/persosite/log"
	"github.com/robfig/cron/v3"
)

// Worker owns the digest generator and its refresh schedule
type Worker struct {
	gen      *Generator
	schedule string
	cron     *cron.Cron
}

// NewWorker creates a news worker. An empty schedule disables the
// periodic refresh; manual triggers still work.
func NewWorker(gen *Generator, schedule string) *Worker {
	return &Worker{
		gen:      gen,
		schedule: schedule,
	}
}

// Generator returns the underlying digest generator
func (w *Worker) Generator() *Generator {
	return w.gen
}

// Interests returns the current ordered topic list
func (w *Worker) Interests() []string {
	return w.gen.interests.Interests()
}

// Start begins the scheduled refresh, if configured
func (w *Worker) Start() {
	if w.schedule == "" {
		log.Info().Msg("news refresh schedule disabled")
		return
	}

	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.schedule, func() {
		log.Info().Msg("scheduled news refresh")
		w.gen.Generate(context.Background())
	}); err != nil {
		log.Error().Err(err).Str("schedule", w.schedule).Msg("invalid news refresh schedule")
		w.cron = nil
		return
	}

	w.cron.Start()
	log.Info().Str("schedule", w.schedule).Msg("news worker started")
}

// Stop halts the schedule and waits for a running refresh job to return
func (w *Worker) Stop() {
	if w.cron == nil {
		return
	}
	ctx := w.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("news worker stopped")
}

// Refresh starts an asynchronous generation pass. Returns false without
// starting anything when a pass is already running; duplicate triggers are
// rejected, not queued.
func (w *Worker) Refresh() bool {
	if w.gen.IsGenerating() {
		return false
	}

	go w.gen.Generate(context.Background())
	return true
}
