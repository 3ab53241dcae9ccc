package response

import "github.com/linkt-app/linkt-api/internal/domain"

type AuthResponse struct {
	Token            string `json:"token"`
	UserID           uint   `json:"userId"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	UserType         string `json:"userType"`
	OrganizationName string `json:"organizationName,omitempty"`
}

func NewAuthResponse(token string, user domain.User) AuthResponse {
	return AuthResponse{
		Token:     token,
		UserID:    user.UserID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserType:  user.UserType,
	}
}
