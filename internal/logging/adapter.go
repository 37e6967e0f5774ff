// Package logging provides a logger adapter for the relevance service.
package logging

import (
	"fmt"

	"github.com/pustakadigital/relevance/internal/logger"
)

// keyValuePairSize represents the number of elements in a key-value pair.
const keyValuePairSize = 2

// Logger defines the interface for structured logging in the relevance
// service. Engine and API code log through this looser keysAndValues form.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
}

// Adapter wraps the structured logger to match the service Logger interface.
type Adapter struct {
	log logger.Logger
}

// NewAdapter creates a new logger adapter.
func NewAdapter(log logger.Logger) *Adapter {
	return &Adapter{log: log}
}

// Info logs an info message with key-value pairs.
func (a *Adapter) Info(msg string, keysAndValues ...any) {
	a.log.Info(msg, toFields(keysAndValues)...)
}

// Error logs an error message with key-value pairs.
func (a *Adapter) Error(msg string, keysAndValues ...any) {
	a.log.Error(msg, toFields(keysAndValues)...)
}

// Warn logs a warning message with key-value pairs.
func (a *Adapter) Warn(msg string, keysAndValues ...any) {
	a.log.Warn(msg, toFields(keysAndValues)...)
}

// Debug logs a debug message with key-value pairs.
func (a *Adapter) Debug(msg string, keysAndValues ...any) {
	a.log.Debug(msg, toFields(keysAndValues)...)
}

// Nop returns an adapter that discards everything. Handy in tests.
func Nop() *Adapter {
	return &Adapter{log: logger.NewNop()}
}

// toFields converts key-value pairs to logger.Field slice. Malformed call
// sites stay visible in the output: a trailing key without a value is logged
// under "dangling_key" and a non-string key gets a positional name, so bad
// pairs surface in logs instead of vanishing.
func toFields(keysAndValues []any) []logger.Field {
	fields := make([]logger.Field, 0, (len(keysAndValues)+1)/keyValuePairSize)
	for i := 0; i < len(keysAndValues); i += keyValuePairSize {
		if i+1 >= len(keysAndValues) {
			fields = append(fields, logger.Any("dangling_key", keysAndValues[i]))
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("invalid_key_%d", i)
		}
		fields = append(fields, logger.Any(key, keysAndValues[i+1]))
	}
	return fields
}
