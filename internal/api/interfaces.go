package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken(deviceID, deviceName string) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name"`
}
