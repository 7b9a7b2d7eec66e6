package road_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/road"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/vehicle"
)

func newVehicle(t *testing.T, length, kd, arrival float64) *vehicle.Vehicle {
	v, err := vehicle.New(length, 2, 1, kd, arrival)
	require.NoError(t, err)
	return v
}

func TestCounter(t *testing.T) {
	c := &road.PassageCounter{}
	assert.Equal(t, 0, c.Get())
	c.Increment()
	c.Increment()
	assert.Equal(t, 2, c.Get())
	c.Reset()
	assert.Equal(t, 0, c.Get())
}

func TestRoadQueue(t *testing.T) {
	r := road.New("north", 200)
	assert.Equal(t, "north", r.Name())
	assert.Equal(t, 200.0, r.Length())
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 0.0, r.PhysicalQueueLength())

	v1 := newVehicle(t, 4, 1, 0)
	v2 := newVehicle(t, 3, 2, 1)
	v3 := newVehicle(t, 5, 0.5, 2)
	r.Enqueue(v1)
	r.Enqueue(v2)
	r.Enqueue(v3)
	assert.Equal(t, 3, r.Size())
	assert.InDelta(t, 5+5+5.5, r.PhysicalQueueLength(), 1e-9)
	assert.Equal(t, []*vehicle.Vehicle{v1, v2, v3}, r.Vehicles())

	head, ok := r.Head()
	assert.True(t, ok)
	assert.Same(t, v1, head)
	assert.Equal(t, 3, r.Size())

	// 出队顺序与到达顺序一致
	for _, want := range []*vehicle.Vehicle{v1, v2, v3} {
		got, ok := r.DequeueHead()
		assert.True(t, ok)
		assert.Same(t, want, got)
	}
	got, ok := r.DequeueHead()
	assert.False(t, ok)
	assert.Nil(t, got)
	_, ok = r.Head()
	assert.False(t, ok)
}

func TestRoadReset(t *testing.T) {
	r := road.New("east", 100)
	// 空道路重置
	r.Reset()
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 0, r.Counter().Get())

	r.Enqueue(newVehicle(t, 4, 1, 0))
	r.Enqueue(newVehicle(t, 4, 1, 0))
	r.Counter().Increment()
	r.Reset()
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 0, r.Counter().Get())
	assert.Equal(t, 0.0, r.PhysicalQueueLength())

	r.Reset()
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 0, r.Counter().Get())
}

func TestManager(t *testing.T) {
	north := road.New("north", 100)
	south := road.New("south", 100)
	m := road.NewManager(north, south)
	assert.Equal(t, 2, m.Len())
	assert.Same(t, north, m.Get("north"))
	assert.Equal(t, []*road.Road{north, south}, m.All())

	_, err := m.GetOrError("west")
	assert.Error(t, err)
	assert.Panics(t, func() { m.Get("west") })

	// 同名替换
	north2 := road.New("north", 50)
	m.Add(north2)
	assert.Equal(t, 2, m.Len())
	assert.Same(t, north2, m.Get("north"))
	assert.Equal(t, []*road.Road{south, north2}, m.All())

	south.Enqueue(newVehicle(t, 4, 1, 0))
	south.Counter().Increment()
	m.ResetAll()
	assert.Equal(t, 0, south.Size())
	assert.Equal(t, 0, south.Counter().Get())
}
