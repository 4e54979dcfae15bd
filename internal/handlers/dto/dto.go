package dto

import (
	"afterReach/internal/models"
)

// option turns a present field into an edit option; absent fields become nil
// and are skipped by the edit.
func option[T, V any](v *V, with func(V) models.Option[T]) models.Option[T] {
	if v == nil {
		return nil
	}
	return with(*v)
}

type CreateLegalTaskRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DueDate      string `json:"dueDate"`
	ExternalLink string `json:"externalLink"`
}

func (r CreateLegalTaskRequest) ToModel() models.LegalTask {
	return models.LegalTask{
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		ExternalLink: r.ExternalLink,
	}
}

type UpdateLegalTaskRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	DueDate      *string `json:"dueDate,omitempty"`
	ExternalLink *string `json:"externalLink,omitempty"`
}

func (r UpdateLegalTaskRequest) Options() []models.Option[models.LegalTask] {
	return []models.Option[models.LegalTask]{
		option(r.Title, models.WithLegalTitle),
		option(r.Description, models.WithLegalDescription),
		option(r.DueDate, models.WithLegalDueDate),
		option(r.ExternalLink, models.WithLegalExternalLink),
	}
}

type CreatePersonalTaskRequest struct {
	Title      string `json:"title"`
	Assignee   string `json:"assignee"`
	AssigneeID string `json:"assigneeId"`
	Category   string `json:"category"`
	Date       string `json:"date"`
}

func (r CreatePersonalTaskRequest) ToModel() models.PersonalTask {
	return models.PersonalTask{
		Title:      r.Title,
		Assignee:   r.Assignee,
		AssigneeID: r.AssigneeID,
		Category:   r.Category,
		Date:       r.Date,
	}
}

type UpdatePersonalTaskRequest struct {
	Title      *string `json:"title,omitempty"`
	Assignee   *string `json:"assignee,omitempty"`
	AssigneeID *string `json:"assigneeId,omitempty"`
	Category   *string `json:"category,omitempty"`
	Date       *string `json:"date,omitempty"`
}

func (r UpdatePersonalTaskRequest) Options() []models.Option[models.PersonalTask] {
	return []models.Option[models.PersonalTask]{
		option(r.Title, models.WithTaskTitle),
		option(r.Assignee, models.WithTaskAssignee),
		option(r.AssigneeID, models.WithTaskAssigneeID),
		option(r.Category, models.WithTaskCategory),
		option(r.Date, models.WithTaskDate),
	}
}

type CreateFamilyMemberRequest struct {
	FullName     string   `json:"fullName"`
	Relationship string   `json:"relationship"`
	ProfileImage string   `json:"profileImage"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
}

func (r CreateFamilyMemberRequest) ToModel() models.FamilyMember {
	return models.FamilyMember{
		FullName:     r.FullName,
		Relationship: r.Relationship,
		ProfileImage: r.ProfileImage,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		Bio:          r.Bio,
		Skills:       r.Skills,
		Availability: r.Availability,
	}
}

type UpdateFamilyMemberRequest struct {
	FullName     *string   `json:"fullName,omitempty"`
	Relationship *string   `json:"relationship,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
	Availability *string   `json:"availability,omitempty"`
}

func (r UpdateFamilyMemberRequest) Options() []models.Option[models.FamilyMember] {
	return []models.Option[models.FamilyMember]{
		option(r.FullName, models.WithMemberFullName),
		option(r.Relationship, models.WithMemberRelationship),
		option(r.ProfileImage, models.WithMemberProfileImage),
		option(r.Phone, models.WithMemberPhone),
		option(r.Email, models.WithMemberEmail),
		option(r.Address, models.WithMemberAddress),
		option(r.Bio, models.WithMemberBio),
		option(r.Skills, models.WithMemberSkills),
		option(r.Availability, models.WithMemberAvailability),
	}
}

type CreateProfessionalRequest struct {
	FullName              string   `json:"fullName"`
	Role                  string   `json:"role"`
	BusinessName          string   `json:"businessName"`
	ProfileImage          string   `json:"profileImage"`
	Phone                 string   `json:"phone"`
	Email                 string   `json:"email"`
	Address               string   `json:"address"`
	Bio                   string   `json:"bio"`
	ExperienceYears       int      `json:"experienceYears"`
	Certifications        []string `json:"certifications"`
	Services              []string `json:"services"`
	Languages             []string `json:"languages"`
	Availability          string   `json:"availability"`
	EmergencyAvailability bool     `json:"emergencyAvailability"`
}

func (r CreateProfessionalRequest) ToModel() models.Professional {
	return models.Professional{
		FullName:              r.FullName,
		Role:                  r.Role,
		BusinessName:          r.BusinessName,
		ProfileImage:          r.ProfileImage,
		Phone:                 r.Phone,
		Email:                 r.Email,
		Address:               r.Address,
		Bio:                   r.Bio,
		ExperienceYears:       r.ExperienceYears,
		Certifications:        r.Certifications,
		Services:              r.Services,
		Languages:             r.Languages,
		Availability:          r.Availability,
		EmergencyAvailability: r.EmergencyAvailability,
	}
}

type UpdateProfessionalRequest struct {
	FullName     *string   `json:"fullName,omitempty"`
	Role         *string   `json:"role,omitempty"`
	BusinessName *string   `json:"businessName,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Services     *[]string `json:"services,omitempty"`
	Availability *string   `json:"availability,omitempty"`
}

func (r UpdateProfessionalRequest) Options() []models.Option[models.Professional] {
	return []models.Option[models.Professional]{
		option(r.FullName, models.WithProfFullName),
		option(r.Role, models.WithProfRole),
		option(r.BusinessName, models.WithProfBusinessName),
		option(r.ProfileImage, models.WithProfProfileImage),
		option(r.Phone, models.WithProfPhone),
		option(r.Email, models.WithProfEmail),
		option(r.Address, models.WithProfAddress),
		option(r.Bio, models.WithProfBio),
		option(r.Services, models.WithProfServices),
		option(r.Availability, models.WithProfAvailability),
	}
}

type CreateEventRequest struct {
	Date  string           `json:"date"`
	Title string           `json:"title"`
	Type  models.EventType `json:"type"`
	Time  string           `json:"time"`
}

func (r CreateEventRequest) ToModel() models.CalendarEvent {
	return models.CalendarEvent{
		Date:  r.Date,
		Title: r.Title,
		Type:  r.Type,
		Time:  r.Time,
	}
}

type UpdateEventRequest struct {
	Date  *string           `json:"date,omitempty"`
	Title *string           `json:"title,omitempty"`
	Type  *models.EventType `json:"type,omitempty"`
	Time  *string           `json:"time,omitempty"`
}

func (r UpdateEventRequest) Options() []models.Option[models.CalendarEvent] {
	return []models.Option[models.CalendarEvent]{
		option(r.Date, models.WithEventDate),
		option(r.Title, models.WithEventTitle),
		option(r.Type, models.WithEventType),
		option(r.Time, models.WithEventTime),
	}
}

// TagRequest adds one entry to a skills or services list.
type TagRequest struct {
	Value string `json:"value"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type ChatRequest struct {
	Text string `json:"text"`
}
