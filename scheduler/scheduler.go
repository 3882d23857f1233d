// Package scheduler implements background job scheduling
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"weekendly.app/config"
	"weekendly.app/service"
)

// Scheduler manages periodic tasks for the application
type Scheduler struct {
	config         *config.Config
	weatherService service.WeatherServiceInterface
	stopCh         chan struct{}
}

// NewScheduler creates and configures a new task scheduler
func NewScheduler(config *config.Config, weatherService service.WeatherServiceInterface) *Scheduler {
	return &Scheduler{
		config:         config,
		weatherService: weatherService,
		stopCh:         make(chan struct{}),
	}
}

// Start begins the scheduler's operations
func (s *Scheduler) Start() {
	if s.config.Scheduler.EnableWeatherRefresh && s.weatherService != nil {
		interval := time.Duration(s.config.Scheduler.WeatherRefreshMinutes) * time.Minute
		go s.scheduleInterval(interval, s.refreshDefaultCityWeather)
	}
}

// Stop terminates all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

func (s *Scheduler) scheduleInterval(interval time.Duration, job func()) {
	job()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			job()
		case <-s.stopCh:
			return
		}
	}
}

// refreshDefaultCityWeather keeps the snapshot cache warm for the default city
func (s *Scheduler) refreshDefaultCityWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot, err := s.weatherService.GetDefaultCityWeather(ctx)
	if err != nil {
		slog.Error("Error refreshing default city weather", "error", err)
		return
	}

	slog.Debug("Refreshed default city weather",
		"city", snapshot.City,
		"condition", snapshot.Condition,
		"temperature", snapshot.Temperature)
}
