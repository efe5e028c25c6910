// Package jobs holds background maintenance tasks scheduled with cron.
package jobs

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"mlops-hub-backend/internal/core/domain"
	ports "mlops-hub-backend/internal/core/ports/output"
)

// HealthSync polls the health endpoint of every registered inference service
// and reconciles the stored status. Stopped services are left alone so an
// operator's explicit stop is never overwritten by the poller.
type HealthSync struct {
	repo     ports.InferenceServiceRepository
	client   *http.Client
	cron     *cron.Cron
	schedule string
}

func NewHealthSync(repo ports.InferenceServiceRepository, schedule string) *HealthSync {
	return &HealthSync{
		repo:     repo,
		client:   &http.Client{Timeout: 10 * time.Second},
		cron:     cron.New(),
		schedule: schedule,
	}
}

func (j *HealthSync) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}
	j.cron.Start()
	log.WithField("schedule", j.schedule).Info("health sync job started")
	return nil
}

func (j *HealthSync) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *HealthSync) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	services, err := j.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("health sync: failed to list inference services")
		return
	}

	for _, svc := range services {
		if svc.Status == domain.ServiceStatusStopped {
			continue
		}
		if strings.TrimSpace(svc.BaseURL) == "" {
			continue
		}

		status := domain.ServiceStatusRunning
		if !j.probe(ctx, svc.BaseURL) {
			status = domain.ServiceStatusError
		}

		if status == svc.Status {
			continue
		}
		if err := j.repo.UpdateStatus(ctx, svc.ID, status); err != nil {
			log.WithError(err).WithField("service", svc.Name).Warn("health sync: failed to update status")
			continue
		}
		log.WithFields(log.Fields{
			"service": svc.Name,
			"status":  status,
		}).Info("health sync: status changed")
	}
}

func (j *HealthSync) probe(ctx context.Context, baseURL string) bool {
	url := strings.TrimSuffix(baseURL, "/") + "/health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
