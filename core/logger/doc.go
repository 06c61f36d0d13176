// Package logger is the standardized audit logging framework for the
// interpreter. Events are appended as JSON lines so they can be aggregated
// offline by the events command.
package logger
