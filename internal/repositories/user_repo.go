package repositories

import (
	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"
	"zambus/internal/utils"
)

type UserRepo struct {
	S *db.State
}

func (r UserRepo) GetByEmail(email string) (models.User, error) {
	for _, v := range r.S.Users {
		if utils.SameText(v.Email, email) {
			return v, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "User"}
}

func (r UserRepo) Get(id domain.ID) (models.User, error) {
	for _, v := range r.S.Users {
		if v.ID == id {
			return v, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "User"}
}

func (r UserRepo) Insert(v models.User) models.User {
	v.ID = r.S.NextID(storage.KeyUsers)
	r.S.Users = append(r.S.Users, v)
	return v
}

type CompanyRepo struct {
	S *db.State
}

func (r CompanyRepo) List() []models.Company {
	return append([]models.Company{}, r.S.Companies...)
}

func (r CompanyRepo) Get(id domain.ID) (models.Company, error) {
	for _, v := range r.S.Companies {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Company{}, domain.NotFoundError{Resource: "Company"}
}

// Upsert stores c under its own ID, which is the owning user's ID.
func (r CompanyRepo) Upsert(c models.Company) {
	for i, v := range r.S.Companies {
		if v.ID == c.ID {
			r.S.Companies[i] = c
			return
		}
	}
	r.S.Companies = append(r.S.Companies, c)
}
