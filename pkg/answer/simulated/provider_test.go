package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hananav-be/pkg/answer"
)

func TestSubmitQueryMatchesCannedAnswer(t *testing.T) {
	p := NewProvider(time.Millisecond)

	res, err := p.SubmitQuery(context.Background(), answer.Request{Text: "육아휴직 급여 기준이 궁금해요"})
	require.NoError(t, err)
	assert.Contains(t, res.Content, "육아휴직")
	assert.Equal(t, []string{"1", "2"}, res.EvidenceIds)
	assert.False(t, res.IsEvidenceLow)
	assert.Greater(t, res.LatencySeconds, 0.0)
}

func TestSubmitQueryUnmatchedFallsBackToDefault(t *testing.T) {
	p := NewProvider(time.Millisecond)

	res, err := p.SubmitQuery(context.Background(), answer.Request{Text: "점심 메뉴 추천"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Content)
	assert.Empty(t, res.EvidenceIds)
	assert.True(t, res.IsEvidenceLow)
}

func TestSubmitQueryHonorsContextCancellation(t *testing.T) {
	p := NewProvider(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.SubmitQuery(ctx, answer.Request{Text: "육아휴직"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
