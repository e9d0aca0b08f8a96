package background

import (
	"context"
	"log"
	"sync"
	"time"

	"supplysight/internal/jobs"
	"supplysight/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages the recurring forecast and alert jobs.
type JobScheduler struct {
	scheduler   gocron.Scheduler
	forecastSvc services.ForecastService
	alertSvc    *jobs.PredictiveAlertService
	jobHandles  map[string]gocron.Job
	mu          sync.RWMutex
}

func NewJobScheduler(forecastSvc services.ForecastService, alertSvc *jobs.PredictiveAlertService) *JobScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		forecastSvc: forecastSvc,
		alertSvc:    alertSvc,
		jobHandles:  make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// registerJobs registers all background jobs
func (js *JobScheduler) registerJobs() {
	js.mu.Lock()
	defer js.mu.Unlock()

	// Predictive alert scan - every 30 minutes
	alertJob, err := js.scheduler.NewJob(
		gocron.DurationJob(30*time.Minute),
		gocron.NewTask(js.runAlertScan, context.Background()),
		gocron.WithName("predictive-alert-scan"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create alert scan job: %v", err)
	} else {
		js.jobHandles["alerts"] = alertJob
	}

	// Forecast refresh - daily
	forecastJob, err := js.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(js.runForecastRefresh, context.Background()),
		gocron.WithName("forecast-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create forecast refresh job: %v", err)
	} else {
		js.jobHandles["forecasts"] = forecastJob
	}
}

func (js *JobScheduler) runAlertScan(ctx context.Context) {
	created, err := js.alertSvc.GenerateAlerts(ctx)
	if err != nil {
		log.Printf("Predictive alert scan failed: %v", err)
		return
	}
	log.Printf("Predictive alert scan created %d alerts", created)
}

func (js *JobScheduler) runForecastRefresh(ctx context.Context) {
	forecasted, err := js.forecastSvc.GenerateAll(ctx)
	if err != nil {
		log.Printf("Forecast refresh failed: %v", err)
		return
	}
	log.Printf("Forecast refresh covered %d products", forecasted)
}
