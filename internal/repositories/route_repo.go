package repositories

import (
	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/storage"
	"zambus/internal/utils"
)

type RouteRepo struct {
	S *db.State
}

func (r RouteRepo) List(companyID domain.ID) []models.Route {
	out := []models.Route{}
	for _, v := range r.S.Routes {
		if companyID == 0 || v.CompanyID == companyID {
			out = append(out, v)
		}
	}
	return out
}

func (r RouteRepo) index(id domain.ID) int {
	for i, v := range r.S.Routes {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (r RouteRepo) Get(id domain.ID) (models.Route, error) {
	if i := r.index(id); i >= 0 {
		return r.S.Routes[i], nil
	}
	return models.Route{}, domain.NotFoundError{Resource: "Route"}
}

// GetOwned returns the route only when it belongs to companyID.
func (r RouteRepo) GetOwned(id, companyID domain.ID) (models.Route, error) {
	v, err := r.Get(id)
	if err != nil || v.CompanyID != companyID {
		return models.Route{}, domain.NotFoundError{Resource: "Route"}
	}
	return v, nil
}

// ActivePairTaken reports whether the company already runs an active route
// between origin and destination, ignoring route exceptID.
func (r RouteRepo) ActivePairTaken(companyID domain.ID, origin, destination string, exceptID domain.ID) bool {
	for _, v := range r.S.Routes {
		if v.ID == exceptID || v.CompanyID != companyID || v.Status != models.RouteActive {
			continue
		}
		if utils.SameText(v.Origin, origin) && utils.SameText(v.Destination, destination) {
			return true
		}
	}
	return false
}

// ActiveBetween lists every active route between origin and destination.
func (r RouteRepo) ActiveBetween(origin, destination string) []models.Route {
	out := []models.Route{}
	for _, v := range r.S.Routes {
		if v.Status == models.RouteActive && utils.SameText(v.Origin, origin) && utils.SameText(v.Destination, destination) {
			out = append(out, v)
		}
	}
	return out
}

func (r RouteRepo) Insert(v models.Route) models.Route {
	v.ID = r.S.NextID(storage.KeyRoutes)
	r.S.Routes = append(r.S.Routes, v)
	return v
}

func (r RouteRepo) Replace(v models.Route) error {
	i := r.index(v.ID)
	if i < 0 {
		return domain.NotFoundError{Resource: "Route"}
	}
	r.S.Routes[i] = v
	return nil
}

func (r RouteRepo) Delete(id domain.ID) error {
	i := r.index(id)
	if i < 0 {
		return domain.NotFoundError{Resource: "Route"}
	}
	r.S.Routes = append(r.S.Routes[:i:i], r.S.Routes[i+1:]...)
	return nil
}
