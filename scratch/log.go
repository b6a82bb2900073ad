package scratch

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var logok = int64(0)

// LogComponents enable logging. By default logging is disabled,
// if applications want log information for pool events
// call this function with "self" or "all" or "scratch" as argument.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "scratch", "self", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

func entry() *logrus.Entry {
	return logrus.WithField("component", "scratch")
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

func errorf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		entry().Errorf(format, v...)
	}
}
