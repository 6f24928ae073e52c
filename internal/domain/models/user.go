package models

import "zambus/internal/domain"

type User struct {
	ID           domain.ID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Type         domain.Role `json:"type"`
	PasswordHash string      `json:"passwordHash"`
}

// PublicUser is the sanitized shape returned to clients and kept in the auth store.
type PublicUser struct {
	ID    domain.ID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Type  domain.Role `json:"type"`
}

func (u User) ToPublic() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Type:  u.Type,
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
