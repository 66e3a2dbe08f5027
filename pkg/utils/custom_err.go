package utils

import "errors"

var (
	ErrProvinceNotFound        = errors.New("province not found")
	ErrProvinceDataUnavailable = errors.New("province data unavailable")
	ErrMapLayersUnavailable    = errors.New("map layers unavailable")
)
