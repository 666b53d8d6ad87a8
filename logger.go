package bptree

import (
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// debugLog is the package-level logger used for structural tracing when a
// Tree is constructed with Debug: true. Construction mirrors the
// teacher's util/logger.L: timestamped, force-formatted prefixed text to
// stderr at debug level.
var debugLog = &logrus.Logger{
	Out:   os.Stderr,
	Level: logrus.DebugLevel,
	Formatter: &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	},
}

func (t *Tree[Item]) logf(format string, args ...interface{}) {
	if !t.debug {
		return
	}
	debugLog.Debugf(format, args...)
}
