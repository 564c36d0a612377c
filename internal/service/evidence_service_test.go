package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/repository/memory"
	"hananav-be/pkg/store"
)

func TestEvidenceSelectOpensPanelWithCatalogItem(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewEvidenceService(repo, nopLogger{})
	ctx := context.Background()

	sess := store.NewSession()
	repo.Save(sess)

	// Panel starts closed.
	panel, err := svc.GetPanel(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, panel.Open)
	assert.Nil(t, panel.Selected)

	res, err := svc.Select(ctx, sess.ID, "1")
	require.NoError(t, err)
	assert.True(t, res.Open)
	require.NotNil(t, res.Selected)
	assert.Equal(t, "1", res.Selected.Id)
	assert.Contains(t, res.Selected.Title, "HR_휴가정책")

	// Selecting again with a different id swaps the panel content.
	res, err = svc.Select(ctx, sess.ID, "3")
	require.NoError(t, err)
	assert.Equal(t, "3", res.Selected.Id)

	require.NoError(t, svc.ClosePanel(ctx, sess.ID))
	panel, err = svc.GetPanel(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, panel.Open)
	assert.Nil(t, panel.Selected)
}

func TestEvidenceSelectUnknownId(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewEvidenceService(repo, nopLogger{})
	ctx := context.Background()

	sess := store.NewSession()
	repo.Save(sess)

	_, err := svc.Select(ctx, sess.ID, "999")
	assert.ErrorIs(t, err, serverutils.ErrEvidenceNotFound)

	// Session state is untouched after a failed selection.
	panel, err := svc.GetPanel(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, panel.Open)
}

func TestEvidenceDetailIncludesFullTextAndHighlights(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	svc := NewEvidenceService(repo, nopLogger{})
	ctx := context.Background()

	detail, err := svc.GetDetail(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", detail.Item.Id)
	assert.NotEmpty(t, detail.FullText)
	assert.NotEmpty(t, detail.Highlights)

	_, err = svc.GetDetail(ctx, "999")
	assert.ErrorIs(t, err, serverutils.ErrEvidenceNotFound)
}
