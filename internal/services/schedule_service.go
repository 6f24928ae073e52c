package services

import (
	"context"
	"fmt"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/notify"
	"zambus/internal/repositories"
	"zambus/internal/validators"
)

type ScheduleService struct {
	Env
}

// List returns the operator's schedules, or every active schedule for passengers.
func (s ScheduleService) List(actor domain.RequestContext) ([]models.Schedule, error) {
	var out []models.Schedule
	err := s.view(func(st *db.State) error {
		repo := repositories.ScheduleRepo{S: st}
		if actor.Role == domain.RoleCompany {
			out = repo.List(actor.UserID)
			return nil
		}
		out = []models.Schedule{}
		for _, sc := range repo.List(0) {
			if sc.Status == models.ScheduleActive {
				out = append(out, sc)
			}
		}
		return nil
	})
	return out, err
}

func (s ScheduleService) Get(actor domain.RequestContext, id domain.ID) (models.Schedule, error) {
	var out models.Schedule
	err := s.view(func(st *db.State) error {
		sc, err := repositories.ScheduleRepo{S: st}.Get(id)
		if err != nil {
			return err
		}
		visible := sc.Status == models.ScheduleActive
		if actor.Role == domain.RoleCompany {
			visible = sc.CompanyID == actor.UserID
		}
		if !visible {
			return domain.NotFoundError{Resource: "Schedule"}
		}
		out = sc
		return nil
	})
	return out, err
}

func (s ScheduleService) Create(ctx context.Context, actor domain.RequestContext, in models.ScheduleInput) (models.Schedule, error) {
	var sc models.Schedule
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "schedules",
		Action: "create",
		Validate: func() error {
			var err error
			sc, err = validators.Schedule(in)
			return err
		},
		Commit: func(st *db.State) error {
			sc.CompanyID = actor.UserID
			if err := attach(st, &sc); err != nil {
				return err
			}
			repo := repositories.ScheduleRepo{S: st}
			if err := checkConflict(repo, sc); err != nil {
				return err
			}
			sc = repo.Insert(sc)
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Schedule created", fmt.Sprintf("%s departs %s at %s", sc.Route, sc.Days, sc.Departure))
		},
	})
	return sc, err
}

func (s ScheduleService) Update(ctx context.Context, actor domain.RequestContext, id domain.ID, in models.ScheduleInput) (models.Schedule, error) {
	var sc models.Schedule
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "schedules",
		Action: "update",
		Validate: func() error {
			var err error
			sc, err = validators.Schedule(in)
			return err
		},
		Commit: func(st *db.State) error {
			repo := repositories.ScheduleRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			sc.ID = current.ID
			sc.CompanyID = current.CompanyID
			sc.Status = current.Status
			if err := attach(st, &sc); err != nil {
				return err
			}
			if sc.Status == models.ScheduleActive {
				if err := checkConflict(repo, sc); err != nil {
					return err
				}
			}
			return repo.Replace(sc)
		},
		Success: func() notify.Toast {
			return notify.Success("Schedule updated", fmt.Sprintf("%s departs %s at %s", sc.Route, sc.Days, sc.Departure))
		},
	})
	return sc, err
}

func (s ScheduleService) Delete(ctx context.Context, actor domain.RequestContext, id domain.ID, confirmed bool) error {
	return s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:    "schedules",
		Action:    "delete",
		Prompt:    "Are you sure you want to delete this schedule?",
		Confirmed: confirmed,
		Commit: func(st *db.State) error {
			repo := repositories.ScheduleRepo{S: st}
			if _, err := repo.GetOwned(id, actor.UserID); err != nil {
				return err
			}
			return repo.Delete(id)
		},
		Success: func() notify.Toast {
			return notify.Success("Schedule deleted", "The schedule has been removed")
		},
	})
}

// SetStatus moves a schedule between Active, Suspended and Cancelled.
// Reactivation re-runs the bus and conflict checks.
func (s ScheduleService) SetStatus(ctx context.Context, actor domain.RequestContext, id domain.ID, status models.ScheduleStatus) (models.Schedule, error) {
	var sc models.Schedule
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "schedules",
		Action: "set_status",
		Validate: func() error {
			if !status.Valid() {
				return domain.Invalid("status", "Invalid schedule status")
			}
			return nil
		},
		Commit: func(st *db.State) error {
			repo := repositories.ScheduleRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			if current.Status == status {
				return domain.Invalid("status", fmt.Sprintf("Schedule is already %s", status))
			}
			current.Status = status
			if status == models.ScheduleActive {
				if err := attach(st, &current); err != nil {
					return err
				}
				if err := checkConflict(repo, current); err != nil {
					return err
				}
			}
			sc = current
			return repo.Replace(current)
		},
		Success: func() notify.Toast {
			return notify.Success("Status updated", fmt.Sprintf("Schedule %s %s is now %s", sc.Route, sc.Departure, sc.Status))
		},
	})
	return sc, err
}

// attach resolves the schedule's route and bus for its company and copies
// their labels onto it.
func attach(st *db.State, sc *models.Schedule) error {
	route, err := repositories.RouteRepo{S: st}.GetOwned(sc.RouteID, sc.CompanyID)
	if err != nil {
		return domain.Invalid("routeId", "Selected route does not exist")
	}
	bus, err := repositories.BusRepo{S: st}.GetOwned(sc.BusID, sc.CompanyID)
	if err != nil {
		return domain.Invalid("busId", "Selected bus does not exist")
	}
	if bus.Status != models.BusActive {
		return domain.Invalid("busId", fmt.Sprintf("Bus %s is not active", bus.RegistrationNumber))
	}
	sc.Route = route.Label()
	sc.Bus = bus.RegistrationNumber
	return nil
}

func checkConflict(repo repositories.ScheduleRepo, sc models.Schedule) error {
	other, found := repo.Conflicting(sc)
	if !found {
		return nil
	}
	return domain.ConflictError{
		Resource: "Schedule",
		Msg: fmt.Sprintf("Schedule conflict: bus %s already runs %s %s-%s (%s)",
			sc.Bus, other.Route, other.Departure, other.Arrival, other.Days),
	}
}
