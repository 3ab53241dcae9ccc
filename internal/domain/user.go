package domain

import "time"

const (
	UserTypeStudent       = "student"
	UserTypeOrganizer     = "organizer"
	UserTypeAdministrator = "administrator"
)

type User struct {
	UserID    uint      `json:"userId"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) IsOrganizer() bool {
	return u.UserType == UserTypeOrganizer
}

func (u User) IsAdministrator() bool {
	return u.UserType == UserTypeAdministrator
}

type Organizer struct {
	User
	OrganizationName string `json:"organizationName"`
	IsApproved       bool   `json:"isApproved"`
}
