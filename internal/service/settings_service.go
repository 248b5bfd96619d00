package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/wakeup/internal/error_values"
	"github.com/limbo/wakeup/internal/repository"
	"github.com/limbo/wakeup/pkg/entity"
)

// Defaults applied when a setting is missing or its stored value is corrupt.
const (
	defaultSound  = "Loud Beep"
	defaultVolume = 0.7
)

type SettingsService struct {
	repo   repository.SettingsRepositoryI
	sounds repository.SoundsRepositoryI
}

func NewSettingsService(settingsRepo repository.SettingsRepositoryI, soundsRepo repository.SoundsRepositoryI) *SettingsService {
	if settingsRepo == nil || soundsRepo == nil {
		log.Fatal("on settings service provided nil repos")
	}
	return &SettingsService{
		repo:   settingsRepo,
		sounds: soundsRepo,
	}
}

// Settings assembles the settings snapshot. Unreadable or corrupt values fall
// back to defaults; persistence problems never surface to the caller.
func (ss *SettingsService) Settings(ctx context.Context) (*entity.Settings, error) {
	settings := entity.Settings{
		DefaultSound:       defaultSound,
		DefaultVolume:      defaultVolume,
		EmergencyDismiss:   false,
		CautionAccepted:    false,
		SameDayKeepsStreak: true,
	}
	if v, err := ss.repo.Get(ctx, repository.KeyDefaultSound); err == nil && v != "" {
		settings.DefaultSound = v
	}
	if v, err := ss.repo.Get(ctx, repository.KeyDefaultVolume); err == nil {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			settings.DefaultVolume = f
		}
	}
	if v, err := ss.repo.Get(ctx, repository.KeyEmergencyDismiss); err == nil {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.EmergencyDismiss = b
		}
	}
	if v, err := ss.repo.Get(ctx, repository.KeyCautionAccepted); err == nil {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.CautionAccepted = b
		}
	}
	if v, err := ss.repo.Get(ctx, repository.KeySameDayKeepsStreak); err == nil {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.SameDayKeepsStreak = b
		}
	}
	return &settings, nil
}

func (ss *SettingsService) UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*entity.Settings, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidData
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if req.DefaultSound != nil {
		if err := ss.repo.Set(ctx, repository.KeyDefaultSound, *req.DefaultSound); err != nil {
			return nil, errors.New("settings repository error: " + err.Error())
		}
	}
	if req.DefaultVolume != nil {
		if err := ss.repo.Set(ctx, repository.KeyDefaultVolume, strconv.FormatFloat(*req.DefaultVolume, 'f', -1, 64)); err != nil {
			return nil, errors.New("settings repository error: " + err.Error())
		}
	}
	if req.EmergencyDismiss != nil {
		if err := ss.repo.Set(ctx, repository.KeyEmergencyDismiss, strconv.FormatBool(*req.EmergencyDismiss)); err != nil {
			return nil, errors.New("settings repository error: " + err.Error())
		}
	}
	if req.CautionAccepted != nil {
		if err := ss.repo.Set(ctx, repository.KeyCautionAccepted, strconv.FormatBool(*req.CautionAccepted)); err != nil {
			return nil, errors.New("settings repository error: " + err.Error())
		}
	}
	if req.SameDayKeepsStreak != nil {
		if err := ss.repo.Set(ctx, repository.KeySameDayKeepsStreak, strconv.FormatBool(*req.SameDayKeepsStreak)); err != nil {
			return nil, errors.New("settings repository error: " + err.Error())
		}
	}
	return ss.Settings(ctx)
}

func (ss *SettingsService) AddCustomSound(ctx context.Context, name, data string) (*entity.CustomSound, error) {
	if name == "" || data == "" {
		return nil, errorvalues.ErrInvalidData
	}
	id, err := ss.sounds.Create(ctx, name, data)
	if err != nil {
		return nil, errors.New("sounds repository error: " + err.Error())
	}
	sound, err := ss.sounds.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("sounds repository error: " + err.Error())
	}
	return sound, nil
}

func (ss *SettingsService) ListCustomSounds(ctx context.Context) ([]*entity.CustomSound, error) {
	sounds, err := ss.sounds.List(ctx)
	if err != nil {
		return nil, errors.New("sounds repository error: " + err.Error())
	}
	return sounds, nil
}

func (ss *SettingsService) DeleteCustomSound(ctx context.Context, id uuid.UUID) error {
	err := ss.sounds.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSoundNotFound) {
			return err
		}
		return errors.New("sounds repository error: " + err.Error())
	}
	return nil
}
