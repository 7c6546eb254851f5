package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownSettingsBackend error if settings.backend is not supported.
	ErrUnknownSettingsBackend = errors.New("config settings.backend is unknown")

	// ErrSettingsFileEmpty error if the file backend has no settings.file.
	ErrSettingsFileEmpty = errors.New("config settings.file can not be empty for the file backend")

	// ErrUnknownGormEngine error if db.gormEngine is not supported.
	ErrUnknownGormEngine = errors.New("config db.gormEngine is unknown")
)
