package schedule

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

// CacheWarmScheduler periodically refreshes the formatted weather of every
// catalog city so dashboard reads stay warm between user requests.
type CacheWarmScheduler struct {
	scheduler gocron.Scheduler
	useCase   weather.UseCase
}

func NewCacheWarmScheduler(useCase weather.UseCase) (*CacheWarmScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &CacheWarmScheduler{scheduler: scheduler, useCase: useCase}, nil
}

// InitCacheWarmScheduleTasks initializes the periodic cache warm task
func (s *CacheWarmScheduler) InitCacheWarmScheduleTasks() error {
	interval := resource.GetDuration("app.cache.warm.interval")

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.WarmAllCities),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	return nil
}

// WarmAllCities resolves the full catalog so every city lands in the formatted cache
func (s *CacheWarmScheduler) WarmAllCities() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("cache.warm.start"), zap.String("request_id", requestID))

	records, err := s.useCase.GetAllCitiesWeather()
	if err != nil {
		log.Error(msg.GetMessage("cache.warm.failed", err), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	degraded := 0
	for _, record := range records {
		if record.Error != "" {
			degraded++
		}
	}

	log.Info(msg.GetMessage("cache.warm.end", len(records), degraded),
		zap.String("request_id", requestID),
		zap.Int("cities", len(records)),
		zap.Int("degraded", degraded),
	)
}

// Stop gracefully stops the scheduler
func (s *CacheWarmScheduler) Stop() {
	if s.scheduler != nil {
		_ = s.scheduler.Shutdown()
	}
}
