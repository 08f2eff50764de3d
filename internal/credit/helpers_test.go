package credit

import (
	"time"

	"github.com/pgEdge/pgedge-creditgen/internal/datagen"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestFaker() *datagen.Faker {
	return datagen.NewFakerWithSeed(20240904)
}

func fixedClock() time.Time {
	return testNow
}
