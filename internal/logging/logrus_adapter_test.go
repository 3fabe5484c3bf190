package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newCapturedLogger() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	return NewLogrusAdapterFromLogger(l), buf
}

func TestNewLogrusAdapter_InvalidLevelFallsBackToInfo(t *testing.T) {
	adapter, ok := NewLogrusAdapter("nonsense", "text").(*LogrusAdapter)
	assert.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestLogrusAdapter_FieldsAppearInOutput(t *testing.T) {
	log, buf := newCapturedLogger()

	log.Info("calculation complete", F("scenario", "base"), F("tax_benefit", 8112.0))

	out := buf.String()
	assert.Contains(t, out, "calculation complete")
	assert.Contains(t, out, "scenario")
	assert.Contains(t, out, "base")
}

func TestLogrusAdapter_WithErrorAndField(t *testing.T) {
	log, buf := newCapturedLogger()

	log.WithError(errors.New("boom")).WithField("file", "scenario.yaml").Error("load failed")

	out := buf.String()
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "scenario.yaml")
}

func TestSetDefault(t *testing.T) {
	original := GetLogger()
	defer SetDefault(original)

	replacement, _ := newCapturedLogger()
	SetDefault(replacement)
	assert.Equal(t, replacement, GetLogger())

	// nil is ignored
	SetDefault(nil)
	assert.Equal(t, replacement, GetLogger())
}
