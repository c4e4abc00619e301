package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelFatal, ParseLevel(" fatal "))
	assert.Equal(t, LevelOff, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "OFF", LevelOff.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "", Level(42).String())
}

func TestZeroLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, Fields{"service": "country-config"})

	l.Info("configuration created", Fields{"country_code": "IN"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "configuration created", entry["message"])
	assert.Equal(t, "country-config", entry["service"])
	assert.Equal(t, "IN", entry["country_code"])
}

func TestZeroLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, nil)

	l.Error(errors.New("boom"), Fields{"handler": "GetConfiguration"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "GetConfiguration", entry["handler"])
}

func TestZeroLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, nil)

	assert.NotPanics(t, func() { l.Error(nil, nil) })
	assert.Contains(t, buf.String(), "unknown error")
}

func TestZeroLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelError, nil)

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	assert.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	l.Debug("visible", nil)
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	l.SetLevel(LevelOff)
	l.Error(errors.New("hidden"), nil)
	assert.Empty(t, buf.String())
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	assert.NotPanics(t, func() {
		l.Info("x", nil)
		l.Debug("x", nil)
		l.Error(errors.New("x"), nil)
		l.Fatal(errors.New("x"), nil)
		l.SetLevel(LevelDebug)
	})
}
