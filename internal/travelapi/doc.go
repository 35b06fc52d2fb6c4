// Package travelapi is the client for the external travel search API.
//
// The API is job based: a preference submission returns either an
// immediate package list or a job id, and results are polled per job.
// Authentication uses form-encoded credentials exchanged for a bearer
// token, cached locally for a fixed TTL.
//
// Callers should treat ErrUnavailable as a signal to degrade to local
// recommendation matching rather than fail the request.
package travelapi
