// Package factories generates synthetic catalogs and viewer personas.
package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
)

var (
	fake = faker.New()
	rng  = rand.New(rand.NewSource(1))
)

// Seed makes every factory deterministic. It is not safe to call while
// factories are in use.
func Seed(seed int64) {
	fake = faker.NewWithSeed(rand.NewSource(seed))
	rng = rand.New(rand.NewSource(seed))
}

func pick(items []string) string {
	return items[rng.Intn(len(items))]
}
