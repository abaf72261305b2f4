package logginghelper

import (
	"github.com/logtide/logtide/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogReceived(event *domain.LogEvent, via string) {
	log.WithFields(log.Fields{
		"service": event.Service,
		"level":   event.Level,
		"message": event.Message,
	}).Infof("Received log event via %s", via)
}

func LogError(event *domain.LogEvent, err error) {
	log.WithFields(log.Fields{
		"service": event.Service,
		"level":   event.Level,
		"error":   err,
	}).Error("Failed to ingest log event")
}
