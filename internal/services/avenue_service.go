package services

import (
	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"
)

type AvenueService struct {
	Avenues repositories.AvenueRepository
}

type CreateAvenueInput struct {
	LeaveDestinationID  int64
	ArriveDestinationID int64
	LeaveTime           string
	ArriveTime          string
	Price               float64
	Status              string
}

func (s AvenueService) CreateAvenue(in CreateAvenueInput) (models.Avenue, error) {
	if in.LeaveDestinationID <= 0 || in.ArriveDestinationID <= 0 {
		return models.Avenue{}, domain.ValidationError{Field: "destinations", Msg: "both destinations are required"}
	}
	leaveTime, err := utils.ParseClock(in.LeaveTime)
	if err != nil {
		return models.Avenue{}, domain.ValidationError{Field: "leave_time", Msg: "invalid time of day", Err: err}
	}
	arriveTime, err := utils.ParseClock(in.ArriveTime)
	if err != nil {
		return models.Avenue{}, domain.ValidationError{Field: "arrive_time", Msg: "invalid time of day", Err: err}
	}
	if in.Price < 0 {
		return models.Avenue{}, domain.ValidationError{Field: "price", Msg: "price must not be negative"}
	}
	status := domain.StatusInactive
	if in.Status != "" {
		status, err = domain.ParseGlobalStatus(in.Status)
		if err != nil {
			return models.Avenue{}, err
		}
	}

	exists, err := s.Avenues.ExistsSchedule(in.LeaveDestinationID, in.ArriveDestinationID, leaveTime, arriveTime)
	if err != nil {
		return models.Avenue{}, err
	}
	if exists {
		return models.Avenue{}, domain.ConflictError{Resource: "avenue", Msg: "avenue with these details already exists"}
	}

	avenue := models.Avenue{
		LeaveDestinationID:  in.LeaveDestinationID,
		ArriveDestinationID: in.ArriveDestinationID,
		LeaveTime:           leaveTime,
		ArriveTime:          arriveTime,
		Price:               in.Price,
		Status:              status,
	}
	if err := s.Avenues.Create(&avenue); err != nil {
		if domain.IsIntegrity(err) {
			return models.Avenue{}, domain.IntegrityError{Msg: "invalid destination IDs provided", Err: err}
		}
		if domain.IsConflict(err) {
			return models.Avenue{}, domain.ConflictError{Resource: "avenue", Msg: "avenue with these details already exists", Err: err}
		}
		return models.Avenue{}, err
	}
	return s.Avenues.GetByID(avenue.ID)
}

func (s AvenueService) GetAvenue(id int64) (models.Avenue, error) {
	return s.Avenues.GetByID(id)
}

// ListAvenues filters by endpoint destinations when either id is supplied.
func (s AvenueService) ListAvenues(leaveID, arriveID string) ([]models.Avenue, error) {
	var leave, arrive *int64
	if leaveID != "" {
		id, err := parseID(leaveID, "leave_id")
		if err != nil {
			return nil, err
		}
		leave = &id
	}
	if arriveID != "" {
		id, err := parseID(arriveID, "arrive_id")
		if err != nil {
			return nil, err
		}
		arrive = &id
	}
	return s.Avenues.List(leave, arrive)
}

type UpdateAvenueInput struct {
	LeaveDestinationID  *int64
	ArriveDestinationID *int64
	LeaveTime           *string
	ArriveTime          *string
	Price               *float64
	Status              *string
}

func (s AvenueService) UpdateAvenue(id int64, in UpdateAvenueInput) (models.Avenue, error) {
	if _, err := s.Avenues.GetByID(id); err != nil {
		return models.Avenue{}, err
	}

	upd := models.AvenueUpdate{
		LeaveDestinationID:  in.LeaveDestinationID,
		ArriveDestinationID: in.ArriveDestinationID,
		Price:               in.Price,
	}
	if in.LeaveTime != nil {
		t, err := utils.ParseClock(*in.LeaveTime)
		if err != nil {
			return models.Avenue{}, domain.ValidationError{Field: "leave_time", Msg: "invalid time of day", Err: err}
		}
		upd.LeaveTime = &t
	}
	if in.ArriveTime != nil {
		t, err := utils.ParseClock(*in.ArriveTime)
		if err != nil {
			return models.Avenue{}, domain.ValidationError{Field: "arrive_time", Msg: "invalid time of day", Err: err}
		}
		upd.ArriveTime = &t
	}
	if in.Status != nil {
		st, err := domain.ParseGlobalStatus(*in.Status)
		if err != nil {
			return models.Avenue{}, err
		}
		upd.Status = &st
	}
	if in.Price != nil && *in.Price < 0 {
		return models.Avenue{}, domain.ValidationError{Field: "price", Msg: "price must not be negative"}
	}

	if err := s.Avenues.Update(id, upd); err != nil {
		if domain.IsIntegrity(err) {
			return models.Avenue{}, domain.IntegrityError{Msg: "invalid destination IDs provided", Err: err}
		}
		if domain.IsConflict(err) {
			return models.Avenue{}, domain.ConflictError{Resource: "avenue", Msg: "avenue with these details already exists", Err: err}
		}
		return models.Avenue{}, err
	}
	return s.Avenues.GetByID(id)
}

func (s AvenueService) DeleteAvenue(id int64) (models.Avenue, error) {
	avenue, err := s.Avenues.GetByID(id)
	if err != nil {
		return models.Avenue{}, err
	}
	if err := s.Avenues.Delete(id); err != nil {
		return models.Avenue{}, err
	}
	return avenue, nil
}
