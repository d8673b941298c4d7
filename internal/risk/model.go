package risk

import (
	"math"
	"math/rand"
	"time"
)

const (
	monsoonFactor = 0.10
	summerFactor  = 0.05

	maxDensityFactor = 0.15
	densityNorm      = 30000.0

	noiseAmplitude = 0.03
)

// NoiseSource выдает равномерно распределенные значения в [0, 1)
type NoiseSource interface {
	Float64() float64
}

// randSource - источник шума поверх глобального math/rand
type randSource struct{}

func (randSource) Float64() float64 { return rand.Float64() }

// Model вычисляет оценку риска города
type Model struct {
	noise NoiseSource
}

// NewModel создает модель риска. При nil используется глобальный math/rand.
func NewModel(noise NoiseSource) *Model {
	if noise == nil {
		noise = randSource{}
	}
	return &Model{noise: noise}
}

// Score считает риск города на дату: базовый уровень + сезонная надбавка +
// фактор плотности населения + шум. Результат всегда в [0, 1] с двумя знаками
// после запятой. Шум берется заново при каждом вызове, поэтому повторный вызов
// с теми же аргументами может дать другое значение.
func (m *Model) Score(baseRisk float64, date time.Time, population int, areaSqKm float64) float64 {
	seasonal := seasonalFactor(date.Month())

	density := float64(population) / areaSqKm
	densityFactor := clamp(density/densityNorm*maxDensityFactor, 0, maxDensityFactor)

	noise := -noiseAmplitude + m.noise.Float64()*2*noiseAmplitude

	score := clamp(baseRisk+seasonal+densityFactor+noise, 0, 1)
	return math.Round(score*100) / 100
}

// seasonalFactor возвращает надбавку за сезон: муссон (июнь-сентябрь) или жара (апрель-май)
func seasonalFactor(month time.Month) float64 {
	switch {
	case month >= time.June && month <= time.September:
		return monsoonFactor
	case month == time.April || month == time.May:
		return summerFactor
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
