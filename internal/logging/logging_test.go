package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel logrus.Level
		wantErr   bool
	}{
		{name: "default", level: "", wantLevel: logrus.InfoLevel},
		{name: "debug", level: "debug", wantLevel: logrus.DebugLevel},
		{name: "warning", level: "warn", wantLevel: logrus.WarnLevel},
		{name: "invalid", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := NewLogger(&buf, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, log.Logger.GetLevel())
		})
	}
}

func TestNewLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "info")
	require.NoError(t, err)

	log.WithField("model", "workloads.SAPVirtualInstance").Warn("unknown enum value")
	log.Debug("dropped")

	out := buf.String()
	assert.Contains(t, out, "unknown enum value")
	assert.Contains(t, out, "model=workloads.SAPVirtualInstance")
	assert.NotContains(t, out, "dropped")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing happens")
	assert.NotNil(t, log.Logger)
}
