package host

import (
	"io"

	"github.com/op/go-logging"
)

var logFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`)

// SetupLogging sends all log output to w. Debug messages are only written when verbose is set.
func SetupLogging(w io.Writer, verbose bool) {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat))
	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}
