package models

const (
	DefaultAssignee = "Unassigned"
	DefaultCategory = "Personal"
)

// PersonalTask is a family to-do. Assignee is free text; AssigneeID, when set,
// points at a FamilyMember whose current name takes precedence on read.
type PersonalTask struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Assignee   string `json:"assignee" yaml:"assignee"`
	AssigneeID string `json:"assigneeId,omitempty" yaml:"assigneeId"`
	Category   string `json:"category" yaml:"category"`
	Completed  bool   `json:"completed" yaml:"completed"`
	Date       string `json:"date" yaml:"date"`
}

func (t *PersonalTask) GetID() string   { return t.ID }
func (t *PersonalTask) SetID(id string) { t.ID = id }

func (t *PersonalTask) SetCompleted(completed bool) { t.Completed = completed }
func (t *PersonalTask) IsCompleted() bool           { return t.Completed }
