// Package logging builds the structured logger shared by the camera pipeline.
package logging

import (
	"io"
	"os"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Field keys attached to every pipeline log line.
const (
	ComponentKey = "component"
	SessionKey   = "session"
)

// Fields is an alias so callers don't need to import logrus for field maps.
type Fields = logrus.Fields

// New returns a logger writing bracketed, human readable lines to w.
// A nil writer means stderr.
func New(w io.Writer) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(w)
	logger.SetFormatter(&formatter.Formatter{
		NoColors:        true,
		HideKeys:        true,
		TimestampFormat: "15:04:05",
		FieldsOrder:     []string{SessionKey, ComponentKey},
	})

	return logger
}

// NewSession returns a short identifier for one run of the pipeline.
func NewSession() string {
	return uuid.NewString()[:8]
}

// Component returns an entry tagged with the session and component name.
func Component(logger *logrus.Logger, session, component string) *logrus.Entry {
	return logger.WithFields(Fields{
		SessionKey:   session,
		ComponentKey: component,
	})
}
