package models

type Review struct {
	ID     string `json:"id" yaml:"id"`
	Author string `json:"author" yaml:"author"`
	Date   string `json:"date" yaml:"date"`
	Rating int    `json:"rating" yaml:"rating"`
	Text   string `json:"text" yaml:"text"`
}

type Professional struct {
	ID                    string   `json:"id" yaml:"id"`
	FullName              string   `json:"fullName" yaml:"fullName"`
	Role                  string   `json:"role" yaml:"role"`
	BusinessName          string   `json:"businessName" yaml:"businessName"`
	ProfileImage          string   `json:"profileImage" yaml:"profileImage"`
	Phone                 string   `json:"phone" yaml:"phone"`
	Email                 string   `json:"email" yaml:"email"`
	Address               string   `json:"address" yaml:"address"`
	Bio                   string   `json:"bio" yaml:"bio"`
	ExperienceYears       int      `json:"experienceYears" yaml:"experienceYears"`
	Certifications        []string `json:"certifications" yaml:"certifications"`
	Services              []string `json:"services" yaml:"services"`
	Languages             []string `json:"languages" yaml:"languages"`
	Availability          string   `json:"availability" yaml:"availability"`
	EmergencyAvailability bool     `json:"emergencyAvailability" yaml:"emergencyAvailability"`
	Rating                float64  `json:"rating" yaml:"rating"`
	ReviewCount           int      `json:"reviewCount" yaml:"reviewCount"`
	Reviews               []Review `json:"reviews" yaml:"reviews"`
}

func (p *Professional) GetID() string   { return p.ID }
func (p *Professional) SetID(id string) { p.ID = id }
