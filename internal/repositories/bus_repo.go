package repositories

import (
	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"
	"zambus/internal/utils"
)

type BusRepo struct {
	S *db.State
}

func (r BusRepo) List(companyID domain.ID) []models.Bus {
	out := []models.Bus{}
	for _, v := range r.S.Buses {
		if companyID == 0 || v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	return out
}

func (r BusRepo) index(id domain.ID) int {
	for i, v := range r.S.Buses {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (r BusRepo) Get(id domain.ID) (models.Bus, error) {
	if i := r.index(id); i >= 0 {
		return r.S.Buses[i], nil
	}
	return models.Bus{}, domain.NotFoundError{Resource: "Bus"}
}

func (r BusRepo) GetOwned(id, companyID domain.ID) (models.Bus, error) {
	v, err := r.Get(id)
	if err != nil || v.CompanyID != companyID {
		return models.Bus{}, domain.NotFoundError{Resource: "Bus"}
	}
	return v, nil
}

// RegistrationTaken is case-insensitive and spans every company's fleet.
func (r BusRepo) RegistrationTaken(reg string, exceptID domain.ID) bool {
	for _, v := range r.S.Buses {
		if v.ID != exceptID && utils.SameText(v.RegistrationNumber, reg) {
			return true
		}
	}
	return false
}

func (r BusRepo) Insert(v models.Bus) models.Bus {
	v.ID = r.S.NextID(storage.KeyBuses)
	r.S.Buses = append(r.S.Buses, v)
	return v
}

func (r BusRepo) Replace(v models.Bus) error {
	i := r.index(v.ID)
	if i < 0 {
		return domain.NotFoundError{Resource: "Bus"}
	}
	r.S.Buses[i] = v
	return nil
}

func (r BusRepo) Delete(id domain.ID) error {
	i := r.index(id)
	if i < 0 {
		return domain.NotFoundError{Resource: "Bus"}
	}
	r.S.Buses = append(r.S.Buses[:i:i], r.S.Buses[i+1:]...)
	return nil
}
