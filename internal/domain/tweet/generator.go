package tweet

import (
	"math/rand/v2"
	"sync"
)

// Generator makes random payloads, it is safe for concurrent use.
type Generator struct {
	domain Domain

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator creates a payload generator.
//
// Zero seed makes generator use global random source, otherwise the sequence is reproducible.
func NewGenerator(d Domain, seed uint64) (*Generator, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}

	g := &Generator{domain: d}

	if seed != 0 {
		g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Load testing data.
	}

	return g, nil
}

// Domain returns values the generator samples from.
func (g *Generator) Domain() Domain {
	return g.domain
}

// Generate makes a new payload.
func (g *Generator) Generate() Payload {
	if g.rnd == nil {
		return g.domain.Sample(rand.IntN) //nolint:gosec // Load testing data.
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.domain.Sample(g.rnd.IntN)
}
