// Package logger configures the process wide logrus logger.
package logger

import (
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Init sets level and output format of the standard logrus logger.
// Unknown levels fall back to info; format "json" selects the JSON
// formatter, anything else the text formatter.
func Init(level, format string) {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339})
		return
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// Component returns an entry tagged with the component name.
func Component(name string) *log.Entry {
	return log.WithField("component", name)
}
