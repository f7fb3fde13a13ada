// Package common holds the configuration and logging setup shared by the
// network layer and the command line tools.
//
// Logging is routed through dragonboat's logger package so every package
// obtains its logger with logger.GetLogger(name) and InitLoggers installs one
// formatter and level for all of them.
package common
