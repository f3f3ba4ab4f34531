package logger

import "go.uber.org/zap"

// New returns a JSON production logger, or a console development logger
// with debug level when debug is set.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
