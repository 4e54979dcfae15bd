package models

// LegalTask is one item of the legal/administrative checklist.
type LegalTask struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	Completed    bool   `json:"completed" yaml:"completed"`
	DueDate      string `json:"dueDate,omitempty" yaml:"dueDate"`
	ExternalLink string `json:"externalLink,omitempty" yaml:"externalLink"`
}

func (t *LegalTask) GetID() string   { return t.ID }
func (t *LegalTask) SetID(id string) { t.ID = id }

func (t *LegalTask) SetCompleted(completed bool) { t.Completed = completed }
func (t *LegalTask) IsCompleted() bool           { return t.Completed }
