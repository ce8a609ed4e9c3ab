package widget

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Refresher rebuilds the widget entry on a cron schedule, standing in for
// the host scheduler that periodically re-renders a home-screen widget.
// The default cadence is hourly.
type Refresher struct {
	cron     *cron.Cron
	provider *EntryProviderImpl
}

func NewRefresher(provider *EntryProviderImpl) *Refresher {
	return &Refresher{cron: cron.New(), provider: provider}
}

// Start schedules the refresh with the given cron spec (e.g. "@hourly")
// and begins running it in the background.
func (r *Refresher) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		if _, err := r.provider.Refresh(context.Background()); err != nil {
			log.Errorf("widget refresh failed: %v", err)
			return
		}
		log.Debug("widget entry refreshed")
	})
	if err != nil {
		return fmt.Errorf("invalid widget refresh schedule %q: %w", spec, err)
	}
	r.cron.Start()
	log.Infof("widget refresh scheduled: %s", spec)
	return nil
}

// Stop halts the schedule; a refresh already in flight finishes.
func (r *Refresher) Stop() {
	r.cron.Stop()
}
