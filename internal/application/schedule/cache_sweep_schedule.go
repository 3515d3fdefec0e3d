package schedule

import (
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

type CacheSweepScheduler struct {
	cron    *cron.Cron
	useCase weather.UseCase
}

func NewCacheSweepScheduler(useCase weather.UseCase) *CacheSweepScheduler {
	return &CacheSweepScheduler{cron: cron.New(), useCase: useCase}
}

// InitCacheSweepScheduleTasks initializes the periodic cache sweep task
func (scheduler *CacheSweepScheduler) InitCacheSweepScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.cache.sweep.cron"), scheduler.SweepExpiredEntries)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

// SweepExpiredEntries removes every expired entry from both cache tiers
func (scheduler *CacheSweepScheduler) SweepExpiredEntries() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("cache.sweep.start"), zap.String("request_id", requestID))

	snapshots, cities := scheduler.useCase.SweepCaches()

	log.Info(msg.GetMessage("cache.sweep.end", snapshots, cities),
		zap.String("request_id", requestID),
		zap.Int("raw_removed", snapshots),
		zap.Int("formatted_removed", cities),
	)
}

// Stop gracefully stops the scheduler
func (scheduler *CacheSweepScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}
