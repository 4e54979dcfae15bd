package models

type FamilyMember struct {
	ID           string   `json:"id" yaml:"id"`
	FullName     string   `json:"fullName" yaml:"fullName"`
	Relationship string   `json:"relationship" yaml:"relationship"`
	ProfileImage string   `json:"profileImage" yaml:"profileImage"`
	Phone        string   `json:"phone" yaml:"phone"`
	Email        string   `json:"email" yaml:"email"`
	Address      string   `json:"address" yaml:"address"`
	Bio          string   `json:"bio" yaml:"bio"`
	Skills       []string `json:"skills" yaml:"skills"`
	Availability string   `json:"availability" yaml:"availability"`
}

func (m *FamilyMember) GetID() string   { return m.ID }
func (m *FamilyMember) SetID(id string) { m.ID = id }
