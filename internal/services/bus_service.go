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

// FleetService manages an operator's buses.
type FleetService struct {
	Env
}

func (s FleetService) List(actor domain.RequestContext) ([]models.Bus, error) {
	var out []models.Bus
	err := s.view(func(st *db.State) error {
		out = repositories.BusRepo{S: st}.List(actor.UserID)
		return nil
	})
	return out, err
}

func (s FleetService) Get(actor domain.RequestContext, id domain.ID) (models.Bus, error) {
	var out models.Bus
	err := s.view(func(st *db.State) error {
		var err error
		out, err = repositories.BusRepo{S: st}.GetOwned(id, actor.UserID)
		return err
	})
	return out, err
}

func (s FleetService) Create(ctx context.Context, actor domain.RequestContext, in models.BusInput) (models.Bus, error) {
	var bus models.Bus
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "fleet",
		Action: "create",
		Validate: func() error {
			var err error
			bus, err = validators.Bus(in, s.now())
			return err
		},
		Commit: func(st *db.State) error {
			repo := repositories.BusRepo{S: st}
			if repo.RegistrationTaken(bus.RegistrationNumber, 0) {
				return duplicateBus(bus)
			}
			bus.CompanyID = actor.UserID
			bus = repo.Insert(bus)
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Bus added", fmt.Sprintf("Bus %s has been added to the fleet", bus.RegistrationNumber))
		},
	})
	return bus, err
}

func (s FleetService) Update(ctx context.Context, actor domain.RequestContext, id domain.ID, in models.BusInput) (models.Bus, error) {
	var bus models.Bus
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "fleet",
		Action: "update",
		Validate: func() error {
			var err error
			bus, err = validators.Bus(in, s.now())
			return err
		},
		Commit: func(st *db.State) error {
			repo := repositories.BusRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			if repo.RegistrationTaken(bus.RegistrationNumber, id) {
				return duplicateBus(bus)
			}
			bus.ID = current.ID
			bus.CompanyID = current.CompanyID
			bus.Status = current.Status
			if err := repo.Replace(bus); err != nil {
				return err
			}
			relabelSchedules(st, func(sc *models.Schedule) {
				if sc.BusID == id {
					sc.Bus = bus.RegistrationNumber
				}
			})
			return nil
		},
		Success: func() notify.Toast {
			return notify.Success("Bus updated", fmt.Sprintf("Bus %s has been updated", bus.RegistrationNumber))
		},
	})
	return bus, err
}

// Delete removes a bus that no active schedule uses.
func (s FleetService) Delete(ctx context.Context, actor domain.RequestContext, id domain.ID, confirmed bool) error {
	var reg string
	return s.mutator(actor, s.Latency).Run(ctx, Op{
		Module:    "fleet",
		Action:    "delete",
		Prompt:    "Are you sure you want to remove this bus from the fleet?",
		Confirmed: confirmed,
		Commit: func(st *db.State) error {
			repo := repositories.BusRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			if len(repositories.ScheduleRepo{S: st}.ActiveForBus(id)) > 0 {
				return domain.ConflictError{Resource: "Bus", Msg: "Cannot delete bus with active schedules"}
			}
			reg = current.RegistrationNumber
			return repo.Delete(id)
		},
		Success: func() notify.Toast {
			return notify.Success("Bus removed", fmt.Sprintf("Bus %s has been removed from the fleet", reg))
		},
	})
}

func (s FleetService) SetStatus(ctx context.Context, actor domain.RequestContext, id domain.ID, status models.BusStatus) (models.Bus, error) {
	var bus models.Bus
	err := s.mutator(actor, s.Latency).Run(ctx, Op{
		Module: "fleet",
		Action: "set_status",
		Validate: func() error {
			if !status.Valid() {
				return domain.Invalid("status", "Invalid bus status")
			}
			return nil
		},
		Commit: func(st *db.State) error {
			repo := repositories.BusRepo{S: st}
			current, err := repo.GetOwned(id, actor.UserID)
			if err != nil {
				return err
			}
			if current.Status == status {
				return domain.Invalid("status", fmt.Sprintf("Bus is already %s", status))
			}
			current.Status = status
			bus = current
			return repo.Replace(current)
		},
		Success: func() notify.Toast {
			return notify.Success("Status updated", fmt.Sprintf("Bus %s is now %s", bus.RegistrationNumber, bus.Status))
		},
	})
	return bus, err
}

func duplicateBus(b models.Bus) error {
	return domain.ConflictError{
		Resource: "Bus",
		Msg:      fmt.Sprintf("A bus with registration number %s already exists", b.RegistrationNumber),
	}
}
