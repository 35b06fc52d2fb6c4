// Package jobs contains background jobs that run alongside the HTTP
// server. Each job owns its goroutine and supports graceful Start/Stop.
package jobs
