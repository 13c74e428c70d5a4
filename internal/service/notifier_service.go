package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/careerconnect/backend/internal/config"
	"github.com/careerconnect/backend/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type NotifierServiceInterface interface {
	NotifyStatusChange(ctx context.Context, app *model.Application) error
}

// WebhookNotifier posts application status changes to the host product's
// notification endpoint, which turns them into applicant-facing emails.
// With no URL configured every call is a no-op.
type WebhookNotifier struct {
	client *resty.Client
	url    string
	token  string
}

func NewWebhookNotifier() *WebhookNotifier {
	cfg := config.LoadNotifierConfig()
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &WebhookNotifier{
		client: client,
		url:    cfg.WebhookURL,
		token:  cfg.WebhookToken,
	}
}

func (s *WebhookNotifier) NotifyStatusChange(ctx context.Context, app *model.Application) error {
	if s.url == "" {
		return nil
	}

	req := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"event":          "application.status_changed",
			"application_id": app.ID.String(),
			"job_id":         app.JobID.String(),
			"applicant_id":   app.ApplicantID.String(),
			"status":         string(app.Status),
			"updated_at":     app.UpdatedAt.Format(time.RFC3339),
		})
	if s.token != "" {
		req.SetHeader("Authorization", "Bearer "+s.token)
	}

	resp, err := req.Post(s.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("notification webhook returned %d: %s", resp.StatusCode(), resp.String())
	}

	if delivered := gjson.Get(resp.String(), "delivered"); delivered.Exists() && !delivered.Bool() {
		log.Printf("notification webhook accepted but not delivered for application %s", app.ID)
	}
	return nil
}
