package logger

// NullLogger discards every entry. It is the logger of tests and of
// components constructed without one.
type NullLogger struct{}

var _ Logger = NullLogger{}

func NewNullLogger() Logger {
	return NullLogger{}
}

func (NullLogger) Info(string, map[string]interface{}) {}

func (NullLogger) Error(error, map[string]interface{}) {}

func (NullLogger) Fatal(error, map[string]interface{}) {}

func (NullLogger) Debug(string, map[string]interface{}) {}

func (NullLogger) SetLevel(Level) {}
