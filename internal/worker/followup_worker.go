package worker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/events"
	"github.com/spec-kit/showroom-crm/internal/repository"
)

const scanTimeout = 30 * time.Second

// FollowUpWorker publishes follow_up_due events for open interactions whose
// follow-up date has passed. Each interaction and date pair fires once.
type FollowUpWorker struct {
	interactions repository.InteractionRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	now          func() time.Time

	mu       sync.Mutex
	notified map[string]time.Time
	cron     *cron.Cron
}

// NewFollowUpWorker builds a worker. It does nothing until Start or Scan.
func NewFollowUpWorker(interactions repository.InteractionRepository, dispatcher events.Dispatcher, logger *zap.Logger) *FollowUpWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FollowUpWorker{
		interactions: interactions,
		dispatcher:   dispatcher,
		logger:       logger,
		now:          time.Now,
		notified:     make(map[string]time.Time),
	}
}

// Start runs Scan on the given five-field cron schedule. "off" or an empty
// schedule leaves the worker idle.
func (w *FollowUpWorker) Start(schedule string) error {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" || strings.EqualFold(schedule, "off") {
		return nil
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	parsed, err := parser.Parse(schedule)
	if err != nil {
		return fmt.Errorf("invalid follow-up schedule %q: %w", schedule, err)
	}

	c := cron.New(cron.WithParser(parser))
	c.Schedule(parsed, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()
		if _, err := w.Scan(ctx); err != nil {
			w.logger.Warn("follow-up scan failed", zap.Error(err))
		}
	}))

	w.mu.Lock()
	w.cron = c
	w.mu.Unlock()
	c.Start()
	return nil
}

// Stop halts the schedule and waits for a running scan.
func (w *FollowUpWorker) Stop() {
	w.mu.Lock()
	c := w.cron
	w.cron = nil
	w.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// Scan publishes an event for every newly due follow-up and returns how many
// were published.
func (w *FollowUpWorker) Scan(ctx context.Context) (int, error) {
	records, err := w.interactions.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list interactions: %w", err)
	}

	now := w.now()
	published := 0
	for _, interaction := range records {
		if !w.due(interaction, now) {
			continue
		}
		event := events.New(events.EventFollowUpDue, interaction.ID, events.SystemActor, events.FollowUpDuePayload{
			CustomerID:   interaction.CustomerID,
			CustomerName: interaction.CustomerName,
			AssignedTo:   interaction.AssignedTo,
			FollowUpDate: *interaction.FollowUpDate,
		})
		if err := w.dispatcher.Publish(ctx, event); err != nil {
			w.logger.Warn("follow-up notification failed",
				zap.String("interaction_id", interaction.ID), zap.Error(err))
			continue
		}
		w.markNotified(interaction)
		published++
	}
	return published, nil
}

func (w *FollowUpWorker) due(interaction domain.Interaction, now time.Time) bool {
	if interaction.FollowUpDate == nil || interaction.FollowUpDate.After(now) {
		return false
	}
	if interaction.Status == domain.InteractionStatusCompleted {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	last, ok := w.notified[interaction.ID]
	return !ok || !last.Equal(*interaction.FollowUpDate)
}

func (w *FollowUpWorker) markNotified(interaction domain.Interaction) {
	w.mu.Lock()
	w.notified[interaction.ID] = *interaction.FollowUpDate
	w.mu.Unlock()
}
