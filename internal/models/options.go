package models

import "slices"

// Option mutates one field of a record during an edit. Edits skip nil options,
// so an absent field is simply never turned into an Option.
type Option[T any] func(*T)

// Legal tasks

func WithLegalTitle(title string) Option[LegalTask] {
	return func(t *LegalTask) { t.Title = title }
}

func WithLegalDescription(description string) Option[LegalTask] {
	return func(t *LegalTask) { t.Description = description }
}

func WithLegalDueDate(dueDate string) Option[LegalTask] {
	return func(t *LegalTask) { t.DueDate = dueDate }
}

func WithLegalExternalLink(link string) Option[LegalTask] {
	return func(t *LegalTask) { t.ExternalLink = link }
}

// Personal tasks

func WithTaskTitle(title string) Option[PersonalTask] {
	return func(t *PersonalTask) { t.Title = title }
}

func WithTaskAssignee(assignee string) Option[PersonalTask] {
	return func(t *PersonalTask) { t.Assignee = assignee }
}

func WithTaskAssigneeID(id string) Option[PersonalTask] {
	return func(t *PersonalTask) { t.AssigneeID = id }
}

func WithTaskCategory(category string) Option[PersonalTask] {
	return func(t *PersonalTask) { t.Category = category }
}

func WithTaskDate(date string) Option[PersonalTask] {
	return func(t *PersonalTask) { t.Date = date }
}

// Family members

func WithMemberFullName(name string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.FullName = name }
}

func WithMemberRelationship(relationship string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.Relationship = relationship }
}

func WithMemberPhone(phone string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.Phone = phone }
}

func WithMemberEmail(email string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.Email = email }
}

func WithMemberAddress(address string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.Address = address }
}

func WithMemberProfileImage(image string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.ProfileImage = image }
}

func WithMemberBio(bio string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.Bio = bio }
}

func WithMemberSkills(skills []string) Option[FamilyMember] {
	skills = slices.Clone(skills)
	return func(m *FamilyMember) { m.Skills = skills }
}

func WithMemberAvailability(availability string) Option[FamilyMember] {
	return func(m *FamilyMember) { m.Availability = availability }
}

// Professionals

func WithProfFullName(name string) Option[Professional] {
	return func(p *Professional) { p.FullName = name }
}

func WithProfRole(role string) Option[Professional] {
	return func(p *Professional) { p.Role = role }
}

func WithProfBusinessName(name string) Option[Professional] {
	return func(p *Professional) { p.BusinessName = name }
}

func WithProfPhone(phone string) Option[Professional] {
	return func(p *Professional) { p.Phone = phone }
}

func WithProfEmail(email string) Option[Professional] {
	return func(p *Professional) { p.Email = email }
}

func WithProfAddress(address string) Option[Professional] {
	return func(p *Professional) { p.Address = address }
}

func WithProfBio(bio string) Option[Professional] {
	return func(p *Professional) { p.Bio = bio }
}

func WithProfProfileImage(image string) Option[Professional] {
	return func(p *Professional) { p.ProfileImage = image }
}

func WithProfServices(services []string) Option[Professional] {
	services = slices.Clone(services)
	return func(p *Professional) { p.Services = services }
}

func WithProfAvailability(availability string) Option[Professional] {
	return func(p *Professional) { p.Availability = availability }
}

// Calendar events

func WithEventTitle(title string) Option[CalendarEvent] {
	return func(e *CalendarEvent) { e.Title = title }
}

func WithEventDate(date string) Option[CalendarEvent] {
	return func(e *CalendarEvent) { e.Date = date }
}

func WithEventType(eventType EventType) Option[CalendarEvent] {
	return func(e *CalendarEvent) { e.Type = eventType }
}

func WithEventTime(hhmm string) Option[CalendarEvent] {
	return func(e *CalendarEvent) { e.Time = hhmm }
}
