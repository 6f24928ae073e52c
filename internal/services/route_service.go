package services

import (
	"context"
	"fmt"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/notify"
	"zambus/internal/repositories"
	"zambus/internal/utils"
	"zambus/internal/validators"
)

type RouteService struct {
	Env
}

// List returns the operator's own routes, or every active route for anyone else.
// origin and destination narrow the result when set.
func (s RouteService) List(actor domain.RequestContext, origin, destination string) ([]models.Route, error) {
	var out []models.Route
	err := s.view(func(st *db.State) error {
		repo := repositories.RouteRepo{S: st}
		var all []models.Route
		if actor.Role == domain.RoleCompany {
			all = repo.List(actor.UserID)
		} else {
			for _, r := range repo.List(0) {
				if r.Status == models.RouteActive {
					all = append(all, r)
				}
			}
		}
		out = make([]models.Route, 0, len(all))
		for _, r := range all {
			if origin != "" && !utils.SameText(r.Origin, origin) {
				continue
			}
			if destination != "" && !utils.SameText(r.Destination, destination) {
				continue
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

func (s RouteService) Get(actor domain.RequestContext, id domain.ID) (models.Route, error) {
	var out models.Route
	err := s.view(func(st *db.State) error {
		r, err := repositories.RouteRepo{S: st}.Get(id)
		if err != nil {
			return err
		}
		if !canSeeRoute(actor, r) {
			return domain.NotFoundError{Resource: "Route"}
		}
		out = r
		return nil
	})
	return out, err
}

func canSeeRoute(actor domain.RequestContext, r models.Route) bool {
	if actor.Role == domain.RoleCompany {
		return r.CompanyID == actor.UserID
	}
	return r.Status == models.RouteActive
}

func (s RouteService) Create(ctx context.Context, actor domain.RequestContext, in models.RouteInput) (models.Route, error) {
	var route models.Route
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "routes",
		Action: "create",
		Validate: func() error {
			var err error
			route, err = validators.Route(in)
			return err
		},
		Commit: func(st *db.State) error {
			repo := repositories.RouteRepo{S: st}
			if repo.ActivePairTaken(actor.UserID, route.Origin, route.Destination, 0) {
				return duplicateRoute(route)
			}
			route.CompanyID = actor.UserID
			route = repo.Insert(route)
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Route created", fmt.Sprintf("Route %s has been added", route.Label()))
		},
	})
	return route, err
}

func (s RouteService) Update(ctx context.Context, actor domain.RequestContext, id domain.ID, in models.RouteInput) (models.Route, error) {
	var route models.Route
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "routes",
		Action: "update",
		Validate: func() error {
			var err error
			route, err = validators.Route(in)
			return err
		},
		Commit: func(st *db.State) error {
			repo := repositories.RouteRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			route.ID = current.ID
			route.CompanyID = current.CompanyID
			route.Status = current.Status
			if route.Status == models.RouteActive && repo.ActivePairTaken(actor.UserID, route.Origin, route.Destination, id) {
				return duplicateRoute(route)
			}
			if err := repo.Replace(route); err != nil {
				return err
			}
			relabelSchedules(st, func(sc *models.Schedule) {
				if sc.RouteID == id {
					sc.Route = route.Label()
				}
			})
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Route updated", fmt.Sprintf("Route %s has been updated", route.Label()))
		},
	})
	return route, err
}

// Delete removes a route that no active schedule uses.
func (s RouteService) Delete(ctx context.Context, actor domain.RequestContext, id domain.ID, confirmed bool) error {
	var label string
	return s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:    "routes",
		Action:    "delete",
		Prompt:    "Are you sure you want to delete this route?",
		Confirmed: confirmed,
		Commit: func(st *db.State) error {
			repo := repositories.RouteRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			if len(repositories.ScheduleRepo{S: st}.ActiveForRoute(id)) > 0 {
				return domain.ConflictError{Resource: "Route", Msg: "Cannot delete route with active schedules"}
			}
			label = current.Label()
			return repo.Delete(id)
		},
		Success: func() notify.Toast {
			return notify.Success("Route deleted", fmt.Sprintf("Route %s has been removed", label))
		},
	})
}

func (s RouteService) SetStatus(ctx context.Context, actor domain.RequestContext, id domain.ID, status models.RouteStatus) (models.Route, error) {
	var route models.Route
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "routes",
		Action: "set_status",
		Validate: func() error {
			if !status.Valid() {
				return domain.Invalid("status", "Invalid route status")
			}
			return nil
		},
		Commit: func(st *db.State) error {
			repo := repositories.RouteRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			if current.Status == status {
				return domain.Invalid("status", fmt.Sprintf("Route is already %s", status))
			}
			if status == models.RouteActive && repo.ActivePairTaken(actor.UserID, current.Origin, current.Destination, id) {
				return duplicateRoute(current)
			}
			current.Status = status
			route = current
			return repo.Replace(current)
		},
		Success: func() notify.Toast {
			return notify.Success("Status updated", fmt.Sprintf("Route %s is now %s", route.Label(), route.Status))
		},
	})
	return route, err
}

func duplicateRoute(r models.Route) error {
	return domain.ConflictError{
		Resource: "Route",
		Msg:      fmt.Sprintf("A route from %s to %s already exists", r.Origin, r.Destination),
	}
}

func relabelSchedules(st *db.State, fn func(*models.Schedule)) {
	for i := range st.Schedules {
		fn(&st.Schedules[i])
	}
}
