package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// NewRand создаёт источник случайности с фиксированным сидом.
// Весь код симуляции получает *rand.Rand явно, глобальный rand не используется.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange возвращает целое в [min, max] включительно.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// RandFloat возвращает число в [min, max).
func RandFloat(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandSign возвращает -1 или +1.
func RandSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// GenerateDeterministicID создаёт UUID из байтов rng: при одинаковом сиде
// прогоны получают одинаковые идентификаторы.
func GenerateDeterministicID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		panic("failed to generate run ID: " + err.Error())
	}
	return id.String()
}
