package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned by Init without log.appName.
	ErrAppNameIsEmpty = errors.New("log.appName must be set")

	// ErrServiceNameIsEmpty is returned by Init without log.serviceName.
	ErrServiceNameIsEmpty = errors.New("log.serviceName must be set")

	// ErrUnknownLevel is returned by Init for levels zerolog can't parse.
	ErrUnknownLevel = errors.New("unknown log level")
)

// errorOutput receives the reports of events zerolog failed to write.
var errorOutput io.Writer = os.Stderr //nolint:gochecknoglobals

// ErrorHandler reports a failed log write. The event itself is lost.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(errorOutput, "storefront-admin: log event dropped: %v\n", err)
}
