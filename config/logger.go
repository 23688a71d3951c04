package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// SetupLogger configures the standard logrus logger used across the app.
// Unknown levels fall back to info.
func SetupLogger(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("config: unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
