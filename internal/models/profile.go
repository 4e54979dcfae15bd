package models

import "strings"

type UserProfile struct {
	FirstName    string `json:"firstName" yaml:"firstName"`
	LastName     string `json:"lastName" yaml:"lastName"`
	Email        string `json:"email" yaml:"email"`
	Role         string `json:"role" yaml:"role"`
	ProfileImage string `json:"profileImage,omitempty" yaml:"profileImage"`
}

func (p UserProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
