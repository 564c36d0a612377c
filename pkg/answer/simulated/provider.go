// Package simulated is the canned answering backend: a fixed delay followed
// by a catalog-matched response. It stands in for the retrieval service the
// prototype does not include.
package simulated

import (
	"context"
	"time"

	"hananav-be/pkg/answer"
	"hananav-be/pkg/catalog"
)

type Provider struct {
	delay time.Duration
}

func NewProvider(delay time.Duration) *Provider {
	return &Provider{delay: delay}
}

// SubmitQuery waits out the configured delay, then serves the canned answer
// matching the query. Honors ctx cancellation during the wait.
func (p *Provider) SubmitQuery(ctx context.Context, req answer.Request) (*answer.Result, error) {
	started := time.Now()

	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	canned := catalog.MatchAnswer(req.Text)
	return &answer.Result{
		Content:        canned.Content,
		EvidenceIds:    canned.EvidenceIds,
		LatencySeconds: time.Since(started).Seconds(),
		HasPII:         canned.HasPII,
		IsEvidenceLow:  canned.IsEvidenceLow,
	}, nil
}
