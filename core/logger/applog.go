package logger

import (
	"io"
	"log"
)

// AppLogPrefix is prepended to every application log line.
const AppLogPrefix = "yarp: "

// NewAppLogger creates the human readable application log. Output is copied
// to every non-nil writer, with no writers the log is discarded.
func NewAppLogger(writers ...io.Writer) *log.Logger {
	var out []io.Writer
	for _, w := range writers {
		if w != nil {
			out = append(out, w)
		}
	}

	switch len(out) {
	case 0:
		return log.New(io.Discard, AppLogPrefix, log.LstdFlags)
	case 1:
		return log.New(out[0], AppLogPrefix, log.LstdFlags)
	default:
		return log.New(io.MultiWriter(out...), AppLogPrefix, log.LstdFlags)
	}
}
