package junction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/junction"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/road"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/vehicle"
	"github.com/tsinghua-fib-lab/signal-queue-sim/utils/randengine"
)

// fakeRandom 确定性随机数来源：泊松固定返回count，正态返回normal(mean, std)或均值
type fakeRandom struct {
	count  int
	normal func(mean, std float64) float64
}

func (f *fakeRandom) Float64() float64 { return 0.5 }

func (f *fakeRandom) Poisson(float64) int { return f.count }

func (f *fakeRandom) Normal(mean, std float64) float64 {
	if f.normal != nil {
		return f.normal(mean, std)
	}
	return mean
}

func newJunction(t *testing.T, length, green float64) *junction.Junction {
	j, err := junction.New(1, length, green, &fakeRandom{})
	require.NoError(t, err)
	return j
}

func newVehicle(t *testing.T, length, acc, rt, kd, arrival float64) *vehicle.Vehicle {
	v, err := vehicle.New(length, acc, rt, kd, arrival)
	require.NoError(t, err)
	return v
}

func TestNewJunctionValidation(t *testing.T) {
	_, err := junction.New(1, 0, 10, &fakeRandom{})
	assert.ErrorIs(t, err, junction.ErrInvalidParameter)
	_, err = junction.New(1, 5, -1, &fakeRandom{})
	assert.ErrorIs(t, err, junction.ErrInvalidParameter)
	_, err = junction.New(1, 5, 10, nil)
	assert.ErrorIs(t, err, junction.ErrNilGenerator)

	j := newJunction(t, 5, 10)
	assert.Equal(t, int32(1), j.ID())
	assert.Equal(t, 5.0, j.Length())
	assert.Equal(t, 10.0, j.GreenLightDuration())
	var nilJunction *junction.Junction
	assert.Equal(t, int32(-1), nilJunction.ID())
}

func TestJunctionRoadsAndSignals(t *testing.T) {
	j := newJunction(t, 5, 10)
	north := road.New("north", 100)
	j.AddRoad(north)
	s, err := trafficlight.NewSignal("ns", 10)
	require.NoError(t, err)
	j.AddSignal(s)

	got, err := j.Road("north")
	require.NoError(t, err)
	assert.Same(t, north, got)
	_, err = j.Road("south")
	assert.Error(t, err)
	assert.Equal(t, []*road.Road{north}, j.Roads())
	assert.Equal(t, []*trafficlight.Signal{s}, j.Signals())
}

func TestReleaseWorkedExample(t *testing.T) {
	t0 := 1 + math.Sqrt(6)

	// 绿灯10秒：放行
	j := newJunction(t, 5, 10)
	r := road.New("north", 100)
	r.Enqueue(newVehicle(t, 4, 2, 1, 1, 0))
	assert.InDeltaSlice(t, []float64{t0}, j.ClearanceTimes(r), 1e-12)
	sojourn := j.ReleaseDuringGreen(r, 20)
	assert.InDelta(t, 20+t0, sojourn, 1e-12)
	assert.Equal(t, 1, r.Counter().Get())
	assert.Equal(t, 0, r.Size())

	// 绿灯3秒：不放行
	j = newJunction(t, 5, 3)
	r = road.New("north", 100)
	r.Enqueue(newVehicle(t, 4, 2, 1, 1, 0))
	assert.Equal(t, 0.0, j.ReleaseDuringGreen(r, 20))
	assert.Equal(t, 0, r.Counter().Get())
	assert.Equal(t, 1, r.Size())
}

func TestReleaseEmptyQueue(t *testing.T) {
	j := newJunction(t, 5, 10)
	r := road.New("north", 100)
	assert.Empty(t, j.ClearanceTimes(r))
	assert.Equal(t, 0.0, j.ReleaseDuringGreen(r, 0))
	assert.Equal(t, 0, r.Counter().Get())
	assert.Equal(t, 0, r.Size())
}

func TestClearanceTimesRecurrence(t *testing.T) {
	j := newJunction(t, 5, 10)
	r := road.New("north", 100)
	r.Enqueue(newVehicle(t, 4, 2, 1, 1, 0))
	r.Enqueue(newVehicle(t, 4, 2, 1, 1, 0))
	// 第2辆车：x=6+4+1=11，行驶时间1+sqrt(11)≈4.317，车头时距约束t0+1≈4.449
	r.Enqueue(newVehicle(t, 3, 8, 0.5, 2, 0))
	// 第3辆车：x=11+4+2=17，行驶时间0.5+sqrt(34/8)≈2.562，车头时距约束4.449+0.5
	t0 := 1 + math.Sqrt(6)
	want := []float64{t0, t0 + 1, t0 + 1.5}
	assert.InDeltaSlice(t, want, j.ClearanceTimes(r), 1e-12)

	// 行驶时间主导的情况
	r.Reset()
	r.Enqueue(newVehicle(t, 10, 2, 0.2, 1, 0))
	r.Enqueue(newVehicle(t, 4, 0.5, 0.2, 1, 0))
	// x1=6+10+1=17，0.2+sqrt(68)≈8.446 > t0'+0.2
	times := j.ClearanceTimes(r)
	assert.InDelta(t, 0.2+math.Sqrt(6), times[0], 1e-12)
	assert.InDelta(t, 0.2+math.Sqrt(68), times[1], 1e-12)
}

func TestClearanceTimesMonotone(t *testing.T) {
	j, err := junction.New(1, 5, 10, randengine.New(11))
	require.NoError(t, err)
	r := road.New("north", 100)
	for r.Size() < 200 {
		j.GenerateArrivals(r, 5, 0)
	}
	times := j.ClearanceTimes(r)
	require.Len(t, times, r.Size())
	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i], times[i-1])
	}
	// 调用不修改队列
	assert.GreaterOrEqual(t, r.Size(), 200)
	assert.Equal(t, 0, r.Counter().Get())
}

func TestReleaseEarlyExitAndFIFO(t *testing.T) {
	j := newJunction(t, 5, 6)
	r := road.New("north", 100)
	fast1 := newVehicle(t, 4, 3, 0.5, 1, 1)
	slow := newVehicle(t, 4, 0.1, 0.5, 1, 2) // 行驶时间远超绿灯窗口
	fast2 := newVehicle(t, 4, 3, 0.5, 1, 3)
	r.Enqueue(fast1)
	r.Enqueue(slow)
	r.Enqueue(fast2)

	times := j.ClearanceTimes(r)
	require.Len(t, times, 3)
	assert.LessOrEqual(t, times[0], 6.0)
	assert.Greater(t, times[1], 6.0)

	sojourn := j.ReleaseDuringGreen(r, 10)
	assert.InDelta(t, 10+times[0]-1, sojourn, 1e-12)
	assert.Equal(t, 1, r.Counter().Get())
	// 被阻挡的车辆及其后车仍按原顺序排队
	assert.Equal(t, []*vehicle.Vehicle{slow, fast2}, r.Vehicles())

	// 下一个窗口重新计算，慢车仍然阻挡
	assert.Equal(t, 0.0, j.ReleaseDuringGreen(r, 40))
	assert.Equal(t, []*vehicle.Vehicle{slow, fast2}, r.Vehicles())
}

func TestReleasePartialRun(t *testing.T) {
	j := newJunction(t, 5, 4.5)
	r := road.New("north", 100)
	vs := make([]*vehicle.Vehicle, 4)
	for i := range vs {
		vs[i] = newVehicle(t, 4, 2, 1, 1, float64(i))
		r.Enqueue(vs[i])
	}
	// t = 3.449, 4.449, 5.449, ...：前两辆在4.5秒内驶离
	t0 := 1 + math.Sqrt(6)
	sojourn := j.ReleaseDuringGreen(r, 100)
	assert.InDelta(t, (100+t0-0)+(100+t0+1-1), sojourn, 1e-9)
	assert.Equal(t, 2, r.Counter().Get())
	assert.Equal(t, []*vehicle.Vehicle{vs[2], vs[3]}, r.Vehicles())
}

func TestGenerateArrivals(t *testing.T) {
	g := &fakeRandom{count: 3}
	j, err := junction.New(1, 5, 10, g)
	require.NoError(t, err)
	r := road.New("north", 100)

	assert.Equal(t, 3, j.GenerateArrivals(r, 0.7, 42))
	require.Equal(t, 3, r.Size())
	for _, v := range r.Vehicles() {
		assert.Equal(t, 3.5, v.Length())
		assert.Equal(t, 2.5, v.Acceleration())
		assert.Equal(t, 1.0, v.ReactionTime())
		assert.Equal(t, 1.5, v.KeepingDistance())
		assert.Equal(t, 42.0, v.ArrivalTime())
	}

	// 采样值低于下限时按下限截断
	g.count = 1
	g.normal = func(mean, std float64) float64 { return -100 }
	r.Reset()
	assert.Equal(t, 1, j.GenerateArrivals(r, 1, 50))
	v, ok := r.Head()
	require.True(t, ok)
	assert.Equal(t, 1.0, v.Length())
	assert.Equal(t, 0.5, v.Acceleration())
	assert.Equal(t, 0.1, v.ReactionTime())
	assert.Equal(t, 0.1, v.KeepingDistance())

	g.count = 0
	assert.Equal(t, 0, j.GenerateArrivals(r, 1, 60))
	assert.Equal(t, 1, r.Size())
}

func TestConservation(t *testing.T) {
	j, err := junction.New(7, 5, 10, randengine.New(7))
	require.NoError(t, err)
	r := road.New("north", 100)
	enqueued := 0
	for step := 0; step < 500; step++ {
		now := float64(step)
		enqueued += j.GenerateArrivals(r, 0.8, now)
		if step%15 == 0 {
			j.ReleaseDuringGreen(r, now)
		}
		assert.Equal(t, enqueued, r.Counter().Get()+r.Size())
	}
	assert.Greater(t, r.Counter().Get(), 0)

	r.Reset()
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 0, r.Counter().Get())
}
