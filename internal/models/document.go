package models

type DocumentCategory string

const (
	DocumentEssential DocumentCategory = "Essential"
	DocumentFinancial DocumentCategory = "Financial"
	DocumentPersonal  DocumentCategory = "Personal"
)

var DocumentCategories = []DocumentCategory{DocumentEssential, DocumentFinancial, DocumentPersonal}

func (c DocumentCategory) Valid() bool {
	switch c {
	case DocumentEssential, DocumentFinancial, DocumentPersonal:
		return true
	}
	return false
}

// DocumentItem is upload metadata only; no file content is stored.
type DocumentItem struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Type       string           `json:"type" yaml:"type"`
	UploadDate string           `json:"uploadDate" yaml:"uploadDate"`
	Size       string           `json:"size" yaml:"size"`
	Category   DocumentCategory `json:"category" yaml:"category"`
}

func (d *DocumentItem) GetID() string   { return d.ID }
func (d *DocumentItem) SetID(id string) { d.ID = id }
