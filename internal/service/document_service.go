package service

import (
	"context"

	"hananav-be/internal/entity"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/pkg/catalog"
)

type IDocumentService interface {
	GetDocument(ctx context.Context, id string) (*entity.DocumentMeta, error)
	GetBookmarks(ctx context.Context, id string) ([]entity.DocumentBookmark, error)
	GetTables(ctx context.Context, id string) ([]entity.DocumentTable, error)
	SearchPages(ctx context.Context, id, keyword string) ([]entity.DocumentPageHit, error)
}

// documentService serves the viewer for the fixed sample document. Missing
// ids map onto the evidence error since documents are reached from evidence
// links.
type documentService struct{}

func NewDocumentService() IDocumentService {
	return &documentService{}
}

func (ds *documentService) GetDocument(ctx context.Context, id string) (*entity.DocumentMeta, error) {
	doc, found := catalog.Document(id)
	if !found {
		return nil, serverutils.ErrEvidenceNotFound
	}
	return &doc, nil
}

func (ds *documentService) GetBookmarks(ctx context.Context, id string) ([]entity.DocumentBookmark, error) {
	bookmarks, found := catalog.DocumentBookmarks(id)
	if !found {
		return nil, serverutils.ErrEvidenceNotFound
	}
	return bookmarks, nil
}

func (ds *documentService) GetTables(ctx context.Context, id string) ([]entity.DocumentTable, error) {
	tables, found := catalog.DocumentTables(id)
	if !found {
		return nil, serverutils.ErrEvidenceNotFound
	}
	return tables, nil
}

func (ds *documentService) SearchPages(ctx context.Context, id, keyword string) ([]entity.DocumentPageHit, error) {
	hits, found := catalog.SearchDocumentPages(id, keyword)
	if !found {
		return nil, serverutils.ErrEvidenceNotFound
	}
	return hits, nil
}
