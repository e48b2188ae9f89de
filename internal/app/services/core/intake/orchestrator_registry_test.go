package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegistry_Acquire(t *testing.T) {
	built := map[string]int{}
	registry := NewRegistry(func(ownerID string) *Orchestrator {
		built[ownerID]++
		return NewOrchestrator(nil, nil, nil, nil, 0, zap.NewNop())
	})

	first, releaseFirst := registry.Acquire("user-1")
	second, releaseSecond := registry.Acquire("user-1")
	other, releaseOther := registry.Acquire("user-2")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, registry.Len())

	releaseFirst()
	releaseFirst()
	assert.Equal(t, 2, registry.Len())

	releaseSecond()
	releaseOther()
	assert.Equal(t, 0, registry.Len())

	third, releaseThird := registry.Acquire("user-1")
	defer releaseThird()
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, built["user-1"])
}
