package config

import (
	"os"
	"sync"
)

type NotifierConfig struct {
	WebhookURL   string
	WebhookToken string
}

var (
	notifierConfig *NotifierConfig
	notifierOnce   sync.Once
)

func LoadNotifierConfig() *NotifierConfig {
	notifierOnce.Do(func() {
		notifierConfig = &NotifierConfig{
			WebhookURL:   os.Getenv("NOTIFY_WEBHOOK_URL"),
			WebhookToken: os.Getenv("NOTIFY_WEBHOOK_TOKEN"),
		}
	})
	return notifierConfig
}
