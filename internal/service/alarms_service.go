package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/repository"
	"github.com/limbo/wakeup/pkg/entity"
)

type AlarmsService struct {
	repo repository.AlarmsRepositoryI
}

func NewAlarmsService(alarmsRepo repository.AlarmsRepositoryI) *AlarmsService {
	if alarmsRepo == nil {
		log.Fatal("provided nil alarmsRepo")
	}
	return &AlarmsService{
		repo: alarmsRepo,
	}
}

func (as *AlarmsService) CreateAlarm(ctx context.Context, req *CreateAlarmRequest) (*entity.Alarm, error) {
	if err := validateAlarmRequest(req); err != nil {
		return nil, err
	}
	a := entity.Alarm{
		Time:       req.Time,
		Period:     req.Period,
		Label:      req.Label,
		Days:       req.Days,
		Date:       req.Date,
		Active:     req.Active,
		Task:       req.Task,
		Difficulty: req.Difficulty,
		Sound:      req.Sound,
	}
	if a.Days == nil {
		a.Days = []int{}
	}
	id, err := as.repo.Create(ctx, &a)
	if err != nil {
		return nil, errors.New("alarms repository error: " + err.Error())
	}
	alarm, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlarmNotFound) {
			return nil, err
		}
		return nil, errors.New("alarms repository error: " + err.Error())
	}
	return alarm, nil
}

func (as *AlarmsService) GetAlarm(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	alarm, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlarmNotFound) {
			return nil, err
		}
		return nil, errors.New("alarms repository error: " + err.Error())
	}
	return alarm, nil
}

func (as *AlarmsService) ListAlarms(ctx context.Context) ([]*entity.Alarm, error) {
	alarms, err := as.repo.List(ctx)
	if err != nil {
		return nil, errors.New("alarms repository error: " + err.Error())
	}
	return alarms, nil
}

func (as *AlarmsService) UpdateAlarm(ctx context.Context, id uuid.UUID, req *CreateAlarmRequest) (*entity.Alarm, error) {
	if err := validateAlarmRequest(req); err != nil {
		return nil, err
	}
	a := entity.Alarm{
		ID:         id,
		Time:       req.Time,
		Period:     req.Period,
		Label:      req.Label,
		Days:       req.Days,
		Date:       req.Date,
		Active:     req.Active,
		Task:       req.Task,
		Difficulty: req.Difficulty,
		Sound:      req.Sound,
	}
	if a.Days == nil {
		a.Days = []int{}
	}
	err := as.repo.Update(ctx, &a)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlarmNotFound) {
			return nil, err
		}
		return nil, errors.New("alarms repository error: " + err.Error())
	}
	return as.repo.GetByID(ctx, id)
}

func (as *AlarmsService) ToggleAlarm(ctx context.Context, id uuid.UUID) (*entity.Alarm, error) {
	alarm, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlarmNotFound) {
			return nil, err
		}
		return nil, errors.New("alarms repository error: " + err.Error())
	}
	err = as.repo.SetActive(ctx, id, !alarm.Active)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlarmNotFound) {
			return nil, err
		}
		return nil, errors.New("alarms repository error: " + err.Error())
	}
	alarm.Active = !alarm.Active
	return alarm, nil
}

func (as *AlarmsService) ToggleAll(ctx context.Context, active bool) error {
	err := as.repo.SetAllActive(ctx, active)
	if err != nil {
		return errors.New("alarms repository error: " + err.Error())
	}
	return nil
}

func (as *AlarmsService) DeleteAlarm(ctx context.Context, id uuid.UUID) error {
	err := as.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlarmNotFound) {
			return err
		}
		return errors.New("alarms repository error: " + err.Error())
	}
	return nil
}

func validateAlarmRequest(req *CreateAlarmRequest) error {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidData
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	// A one-shot alarm is bound to its date alone; weekdays are the recurring mode
	if req.Date != "" && len(req.Days) > 0 {
		return errorvalues.ErrRecurrenceConflict
	}
	return nil
}
