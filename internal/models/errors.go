package models

import "errors"

// Доменные ошибки, по которым хендлеры выбирают HTTP-статус
var (
	ErrCityExists   = errors.New("city already exists")
	ErrCityNotFound = errors.New("city not found")
	ErrInvalidDate  = errors.New("invalid date format")
)
