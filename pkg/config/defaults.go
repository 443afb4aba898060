package config

import "eventbook/pkg/logger"

const (
	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.TEXT
)
