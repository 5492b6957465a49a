package services

import (
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
)

type DestinationService struct {
	Destinations repositories.DestinationRepository
	Avenues      repositories.AvenueRepository
}

type CreateDestinationInput struct {
	Name   string
	Air    bool
	Coach  bool
	Train  bool
	Status string
}

func (s DestinationService) CreateDestination(in CreateDestinationInput) (models.Destination, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Destination{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	status := domain.StatusInactive
	if in.Status != "" {
		var err error
		status, err = domain.ParseGlobalStatus(in.Status)
		if err != nil {
			return models.Destination{}, err
		}
	}

	exists, err := s.Destinations.ExistsByName(name, 0)
	if err != nil {
		return models.Destination{}, err
	}
	if exists {
		return models.Destination{}, domain.ConflictError{Resource: "destination", Msg: "destination with this name already exists"}
	}

	dest := models.Destination{
		Name:   name,
		Air:    in.Air,
		Coach:  in.Coach,
		Train:  in.Train,
		Status: status,
	}
	if err := s.Destinations.Create(&dest); err != nil {
		return models.Destination{}, err
	}
	return s.Destinations.GetByID(dest.ID)
}

func (s DestinationService) GetDestination(id int64) (models.Destination, error) {
	return s.Destinations.GetByID(id)
}

func (s DestinationService) ListDestinations(activeOnly bool) ([]models.Destination, error) {
	return s.Destinations.List(activeOnly)
}

// ListByMode returns destinations that support one travel mode, for route
// planning dropdowns.
func (s DestinationService) ListByMode(mode string, activeOnly bool) ([]models.Destination, error) {
	m, err := domain.ParseTravelMode(mode)
	if err != nil {
		return nil, err
	}
	return s.Destinations.ListByMode(m, activeOnly)
}

type UpdateDestinationInput struct {
	Name   *string
	Air    *bool
	Coach  *bool
	Train  *bool
	Status *string
}

func (s DestinationService) UpdateDestination(id int64, in UpdateDestinationInput) (models.Destination, error) {
	if _, err := s.Destinations.GetByID(id); err != nil {
		return models.Destination{}, err
	}

	upd := models.DestinationUpdate{Air: in.Air, Coach: in.Coach, Train: in.Train}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return models.Destination{}, domain.ValidationError{Field: "name", Msg: "name is required"}
		}
		taken, err := s.Destinations.ExistsByName(name, id)
		if err != nil {
			return models.Destination{}, err
		}
		if taken {
			return models.Destination{}, domain.ConflictError{Resource: "destination", Msg: "destination name is already in use by another destination"}
		}
		upd.Name = &name
	}
	if in.Status != nil {
		st, err := domain.ParseGlobalStatus(*in.Status)
		if err != nil {
			return models.Destination{}, err
		}
		upd.Status = &st
	}

	if err := s.Destinations.Update(id, upd); err != nil {
		return models.Destination{}, err
	}
	return s.Destinations.GetByID(id)
}

// DeleteDestination refuses to remove a destination while any avenue still
// references it at either end.
func (s DestinationService) DeleteDestination(id int64) (models.Destination, error) {
	dest, err := s.Destinations.GetByID(id)
	if err != nil {
		return models.Destination{}, err
	}

	refs, err := s.Avenues.CountByDestination(id)
	if err != nil {
		return models.Destination{}, err
	}
	if refs > 0 {
		return models.Destination{}, domain.ConflictError{
			Resource: "destination",
			Msg:      "cannot delete destination as it's being used in existing avenues",
		}
	}

	if err := s.Destinations.Delete(id); err != nil {
		return models.Destination{}, err
	}
	return dest, nil
}
