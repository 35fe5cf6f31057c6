package user

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorGenerator: hands out well-distributed display colors, one per user
// per room, for cursor presence
type ColorGenerator struct {
	counter int
	mu      sync.Mutex
}

func NewColorGenerator() *ColorGenerator {
	return &ColorGenerator{}
}

// NextColor: returns the next color in the golden ratio hue sequence
func (cg *ColorGenerator) NextColor() string {
	cg.mu.Lock()
	defer cg.mu.Unlock()

	const goldenRatio = 0.618033988749895
	hue := float64(cg.counter) * goldenRatio
	hue = hue - float64(int(hue)) // keep fractional part
	cg.counter++

	color := colorful.Hsl(hue*360, 0.85, 0.55)
	return color.Hex()
}
