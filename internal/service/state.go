package service

import (
	"time"

	"afterReach/internal/models"
)

// DefaultCategories are the personal task categories every state starts with.
var DefaultCategories = []string{"Personal", "Household", "Pet", "Admin"}

type Deps struct {
	Clock       Clock
	Assistant   Assistant
	ChatTimeout time.Duration
	Profile     models.UserProfile
}

// State is the whole application state. Services that depend on one another
// are wired here, including the rename cascades of the name lists.
type State struct {
	Checklist  *ChecklistService
	Tasks      *TaskService
	Family     *FamilyService
	Directory  *DirectoryService
	Documents  *DocumentService
	Calendar   *CalendarService
	Categories *NameListService
	Roles      *NameListService
	Profile    *ProfileService
	Chat       *ChatService
}

func NewState(deps Deps) *State {
	clock := deps.Clock.orDefault()

	st := &State{
		Checklist:  NewChecklistService(),
		Family:     NewFamilyService(),
		Documents:  NewDocumentService(clock),
		Categories: NewNameListService(ListCategories, DefaultCategories...),
		Roles:      NewNameListService(ListRoles),
		Profile:    NewProfileService(deps.Profile),
	}
	st.Tasks = NewTaskService(clock, st.Family)
	st.Directory = NewDirectoryService(clock, st.Profile)
	st.Calendar = NewCalendarService(clock, st.Tasks)
	st.Chat = NewChatService(deps.Assistant, deps.ChatTimeout, clock)

	st.Categories.OnRename(st.Tasks.RenameCategory)
	st.Roles.OnRename(st.Directory.RenameRole)
	return st
}
