package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsComponentName(t *testing.T) {
	var buf bytes.Buffer
	l := New("", "INFO", false).Output(&buf)
	l.Infof("hello %s", "world")
	assert.Contains(t, buf.String(), "originals")
	assert.Contains(t, buf.String(), "hello world")
}

func TestLevelGatingSuppressesBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New("svc", "ERROR", false).Output(&buf)

	l.Infof("should not appear")
	assert.Empty(t, buf.String())

	l.Errorf("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestDebugLevelAllowsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New("svc", "DEBUG", false).Output(&buf)

	l.Debugf("debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestNoopDiscardsEverything(t *testing.T) {
	n := Noop()
	assert.NotPanics(t, func() {
		n.Debugf("x")
		n.Infof("x")
		n.Warnf("x")
		n.Errorf("x")
	})
}
