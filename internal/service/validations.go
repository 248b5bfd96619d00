package service

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// 12-hour "HH:MM" clock string: hour 1-12, minute 0-59
		validate.RegisterValidation("clock_time", func(fl validator.FieldLevel) bool {
			hh, mm, ok := strings.Cut(fl.Field().String(), ":")
			if !ok {
				return false
			}
			hour, err := strconv.Atoi(hh)
			if err != nil || hour < 1 || hour > 12 {
				return false
			}
			minute, err := strconv.Atoi(mm)
			if err != nil || minute < 0 || minute > 59 {
				return false
			}
			return true
		})
		// Weekday indices, Monday=0 through Sunday=6, no duplicates
		validate.RegisterValidation("weekday_set", func(fl validator.FieldLevel) bool {
			days, ok := fl.Field().Interface().([]int)
			if !ok {
				return false
			}
			seen := [7]bool{}
			for _, d := range days {
				if d < 0 || d > 6 || seen[d] {
					return false
				}
				seen[d] = true
			}
			return true
		})
		validate.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	})
}
