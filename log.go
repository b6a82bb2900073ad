package bump

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logok = int64(0)

var logger atomic.Pointer[logrus.Logger]

func init() {
	logger.Store(logrus.StandardLogger())
}

// LogComponents enable logging. By default logging is disabled,
// if applications want log information for arena lifecycle events
// call this function with "self" or "all" or "bump" as argument.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "bump", "self", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

// SetLogger replaces the logrus logger used once logging is enabled.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger.Store(l)
}

func entry() *logrus.Entry {
	return logger.Load().WithField("component", "bump")
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		entry().Debugf(format, v...)
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		entry().Infof(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		entry().Warnf(format, v...)
	}
}

func errorf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		entry().Errorf(format, v...)
	}
}
