package handlers

import (
	"afterReach/internal/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts every feature route of st onto r.
func Register(r chi.Router, st *service.State) {
	checklist := NewChecklistHandler(st.Checklist, st.Profile)

	r.Get("/health", HealthCheck)
	r.Get("/dashboard", checklist.Dashboard)

	r.Route("/checklist", checklist.Routes)
	r.Route("/tasks", NewTaskHandler(st.Tasks).Routes)
	r.Route("/family", NewFamilyHandler(st.Family).Routes)
	r.Route("/professionals", NewDirectoryHandler(st.Directory).Routes)
	r.Route("/documents", NewDocumentHandler(st.Documents).Routes)
	r.Route("/calendar", NewCalendarHandler(st.Calendar).Routes)
	r.Route("/categories", NewNamesHandler(st.Categories, "categories").Routes)
	r.Route("/roles", NewNamesHandler(st.Roles, "roles").Routes)
	r.Route("/profile", NewProfileHandler(st.Profile).Routes)
	r.Route("/chat", NewChatHandler(st.Chat).Routes)
}
