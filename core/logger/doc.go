// Package logger is a standardized event logging framework for the shell.
//
// Events are written as newline delimited JSON, one LogEntry per line, each
// carrying exactly one event type. The schema lives in log.proto.
package logger

//go:generate protoc --go_out=. --go_opt=paths=source_relative  log.proto
//go:generate protoc --go-json_out=paths=source_relative:. log.proto
