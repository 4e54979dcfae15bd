package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"afterReach/internal/models"
)

const ResourceDocument = "document"

const bytesPerMB = 1024 * 1024

// DocumentService keeps the metadata of simulated uploads. No file bytes are stored.
type DocumentService struct {
	*ListController[models.DocumentItem, *models.DocumentItem]
	clock Clock
}

func NewDocumentService(clock Clock) *DocumentService {
	return &DocumentService{
		ListController: NewListController[models.DocumentItem, *models.DocumentItem](ListConfig[models.DocumentItem]{
			Resource:  ResourceDocument,
			Placement: PlaceHead,
			Validate:  validateDocument,
			SearchText: func(d *models.DocumentItem) []string {
				return []string{d.Name, d.Type}
			},
			Facet: func(d *models.DocumentItem) string { return string(d.Category) },
		}),
		clock: clock.orDefault(),
	}
}

func validateDocument(d *models.DocumentItem) []FieldIssue {
	var is issues
	is.required("name", d.Name)
	if !d.Category.Valid() {
		is.add("category", "must be one of Essential, Financial, Personal")
	}
	is.date("uploadDate", d.UploadDate)
	return is
}

// Upload describes a file picked for upload.
type Upload struct {
	Name      string                  `json:"name"`
	SizeBytes int64                   `json:"sizeBytes"`
	Category  models.DocumentCategory `json:"category"`
}

// FileType is the uppercased extension of name, or FILE when it has none.
func FileType(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return "FILE"
	}
	return strings.ToUpper(ext)
}

// FormatSize renders a byte count to one decimal in MB. Sizes that round
// to zero show as "< 0.1 MB".
func FormatSize(bytes int64) string {
	size := fmt.Sprintf("%.1f MB", float64(bytes)/bytesPerMB)
	if size == "0.0 MB" {
		return "< 0.1 MB"
	}
	return size
}

func (s *DocumentService) Upload(ctx context.Context, up Upload) (models.DocumentItem, error) {
	if up.SizeBytes < 0 {
		return models.DocumentItem{}, NewValidationError("sizeBytes", "must not be negative")
	}
	if up.Category == "" {
		up.Category = models.DocumentEssential
	}
	name := strings.TrimSpace(up.Name)
	return s.Add(ctx, models.DocumentItem{
		Name:       name,
		Type:       FileType(name),
		UploadDate: s.clock.Today(),
		Size:       FormatSize(up.SizeBytes),
		Category:   up.Category,
	})
}

// Counts returns the number of documents in every category, including empty ones.
func (s *DocumentService) Counts(ctx context.Context) map[models.DocumentCategory]int {
	counts := make(map[models.DocumentCategory]int, len(models.DocumentCategories))
	for _, c := range models.DocumentCategories {
		counts[c] = 0
	}
	for _, d := range s.List(ctx) {
		counts[d.Category]++
	}
	return counts
}

// ByCategory filters on category; "All" or empty keeps everything.
func (s *DocumentService) ByCategory(category string) []models.DocumentItem {
	return s.Search("", category)
}

// Download returns the placeholder text served for a document.
func (s *DocumentService) Download(ctx context.Context, id string) (models.DocumentItem, string, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return d, "", err
	}
	content := fmt.Sprintf("This is a placeholder content for the file: %s\n\nCategory: %s\nUpload Date: %s",
		d.Name, d.Category, d.UploadDate)
	return d, content, nil
}
