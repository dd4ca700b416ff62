package ensemblrest

import "go.uber.org/zap"

// Logger receives the client's diagnostic output. *zap.Logger satisfies it, as
// does the gofulmen logger used by the ensemblrest CLI.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

func nopLogger() Logger {
	return zap.NewNop()
}
