// Package log provides the logging abstraction used by sigcrop components.
//
// This package defines a Logger interface that can be implemented by any
// logging library. A zerolog adapter and a no-op logger are provided.
//
// # Usage
//
// Build the run logger, which writes every event to the console and, as
// plain text lines, to the run log file:
//
//	f, err := log.OpenRunLog("/var/log/sigcrop.log")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	logger := log.NewZerologAdapterWithLogger(log.NewRunLogger(os.Stderr, f))
//
// Or use the no-op logger for testing:
//
//	logger := log.NewNoopLogger()
package log
