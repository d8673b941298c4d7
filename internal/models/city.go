package models

// City представляет город со статическими атрибутами для оценки риска
type City struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	State      string  `json:"state"`
	Population int     `json:"population"`
	AreaSqKm   float64 `json:"area_sq_km"`
	BaseRisk   float64 `json:"base_risk"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}
