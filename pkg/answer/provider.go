// Package answer defines the request/response contract between the chat flow
// and the answering backend. The flow only sees this interface, so the
// shipped simulator can be swapped for a real retrieval service without
// touching the state machine.
package answer

import (
	"context"

	"hananav-be/internal/entity"
)

// Request carries one submitted query with its session-scoped filters.
type Request struct {
	Text    string
	Files   []string
	Mode    string
	Filters entity.FilterState
}

// Result is the resolved answer payload a provider returns.
type Result struct {
	Content        string
	EvidenceIds    []string
	LatencySeconds float64
	HasPII         bool
	IsEvidenceLow  bool
}

// Provider answers queries asynchronously from the caller's point of view:
// SubmitQuery blocks until the answer is ready or ctx is done.
type Provider interface {
	SubmitQuery(ctx context.Context, req Request) (*Result, error)
}
