package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"pnexus/config"
)

// NotifyNewRegistration pings the ops webhook about a submitted
// registration. Fire-and-forget: failures are logged, never surfaced.
func NotifyNewRegistration(registrationID uint, fullName, email string) {
	url := config.AppConfig.NotifyWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":           "registration.submitted",
			"registration_id": registrationID,
			"full_name":       fullName,
			"email":           email,
		}).
		Post(url)
	if err != nil {
		log.Printf("Error calling registration webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Registration webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}
