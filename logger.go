package urdf

// Logger is the logging capability the parsers accept. Log calls never
// affect control flow; they surface the informational and debug events
// of the documented defaulting rules.
//
// *zap.SugaredLogger satisfies Logger directly.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

// nopLogger discards everything; it is the default when ParseOptions
// carries no logger.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
