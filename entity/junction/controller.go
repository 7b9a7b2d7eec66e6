package junction

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/road"
	"github.com/tsinghua-fib-lab/signal-queue-sim/utils/config"
	"github.com/tsinghua-fib-lab/signal-queue-sim/utils/randengine"
)

// switchEpsilon 信号灯组切换时间比较的容差
const switchEpsilon = 1e-9

// RoadStats 单条进口道的统计
type RoadStats struct {
	Junction     int32   // 路口ID
	Road         string  // 道路名称
	Arrived      int     // 累计到达车辆数
	Passed       int     // 累计通过车辆数
	Queued       int     // 当前排队车辆数
	QueueLength  float64 // 当前队列物理长度（米）
	TotalSojourn float64 // 已通过车辆的停留时间之和（秒）
}

// AverageSojourn 已通过车辆的平均停留时间，无车通过时为0
func (s RoadStats) AverageSojourn() float64 {
	if s.Passed == 0 {
		return 0
	}
	return s.TotalSojourn / float64(s.Passed)
}

type roadRuntime struct {
	rate    float64 // 到达率（辆/秒）
	arrived int
	sojourn float64
}

// Controller 单路口的仿真驱动
// 功能：维护道路与信号灯的放行对应关系，按固定间隔轮转信号灯组，
// 每步生成到达车辆，并在绿灯窗口开始时对放行道路执行一次绿灯放行
// 说明：一个Controller及其道路、信号灯构成独立的修改单元，不同Controller之间无共享状态
type Controller struct {
	*Junction

	scheduler      *trafficlight.Scheduler
	gates          map[*trafficlight.Signal][]*road.Road // 信号灯->放行道路
	runtime        map[*road.Road]*roadRuntime
	switchInterval float64 // 信号灯组切换间隔（秒）
	lastSwitch     float64 // 上一次切换的时间
	switched       bool    // 是否已经切换过
}

// newController 根据配置创建路口驱动
// 功能：创建路口、道路、信号灯与轮转调度器
// 参数：base-路口配置，seed-随机数种子
// 返回：路口驱动与错误信息
// 说明：随机数种子为seed+路口ID，保证不同路口使用独立且可复现的随机序列
func newController(base config.Junction, seed uint64) (*Controller, error) {
	j, err := New(base.ID, base.Length, base.GreenDuration, randengine.New(seed+uint64(base.ID)))
	if err != nil {
		return nil, err
	}
	c := &Controller{
		Junction:       j,
		gates:          make(map[*trafficlight.Signal][]*road.Road),
		runtime:        make(map[*road.Road]*roadRuntime),
		switchInterval: base.SwitchInterval,
	}
	for _, rc := range base.Roads {
		r := road.New(rc.Name, rc.Length)
		j.AddRoad(r)
		c.runtime[r] = &roadRuntime{rate: rc.Rate}
	}
	signals := make(map[string]*trafficlight.Signal)
	for _, sc := range base.Signals {
		s, err := trafficlight.NewSignal(sc.Name, sc.GreenDuration)
		if err != nil {
			return nil, fmt.Errorf("junction %d: %w", base.ID, err)
		}
		j.AddSignal(s)
		signals[sc.Name] = s
		for _, name := range sc.Roads {
			r, err := j.Road(name)
			if err != nil {
				return nil, fmt.Errorf("junction %d: signal %s: %w", base.ID, sc.Name, err)
			}
			c.gates[s] = append(c.gates[s], r)
		}
	}
	groups := make([][]*trafficlight.Signal, len(base.Groups))
	for i, names := range base.Groups {
		for _, name := range names {
			s, ok := signals[name]
			if !ok {
				return nil, fmt.Errorf("junction %d: unknown signal %s in group %d", base.ID, name, i)
			}
			groups[i] = append(groups[i], s)
		}
	}
	if c.scheduler, err = trafficlight.NewScheduler(groups...); err != nil {
		return nil, fmt.Errorf("junction %d: %w", base.ID, err)
	}
	return c, nil
}

// Scheduler 信号灯组轮转调度器
func (c *Controller) Scheduler() *trafficlight.Scheduler {
	return c.scheduler
}

// greenRoads 当前被绿灯放行的道路（去重，按信号灯顺序）
func (c *Controller) greenRoads() []*road.Road {
	roads := make([]*road.Road, 0)
	for _, s := range c.Signals() {
		if s.IsGreen() {
			roads = append(roads, c.gates[s]...)
		}
	}
	return lo.Uniq(roads)
}

// update 执行一步仿真
// 功能：按“轮转信号灯组 -> 生成到达 -> 绿灯放行”的顺序推进一步
// 参数：t-当前仿真时间，dt-时间步长
// 算法说明：
// 1. 首次调用或距上一次切换达到切换间隔时推进调度器，新的绿灯窗口从t开始
// 2. 每条道路按rate*dt为参数生成泊松到达
// 3. 仅在绿灯窗口开始的这一步，对绿灯放行的道路调用一次ReleaseDuringGreen，
// 窗口内能驶离的车辆已在该次调用中全部放行
func (c *Controller) update(t, dt float64) {
	windowStart := false
	if !c.switched || t-c.lastSwitch >= c.switchInterval-switchEpsilon {
		c.scheduler.Advance()
		c.lastSwitch = t
		c.switched = true
		windowStart = true
	}
	for _, r := range c.Roads() {
		rt := c.runtime[r]
		rt.arrived += c.GenerateArrivals(r, rt.rate*dt, t)
	}
	if windowStart {
		for _, r := range c.greenRoads() {
			c.runtime[r].sojourn += c.ReleaseDuringGreen(r, t)
		}
	}
}

// Stats 各进口道统计（按道路添加顺序）
func (c *Controller) Stats() []RoadStats {
	return lo.Map(c.Roads(), func(r *road.Road, _ int) RoadStats {
		rt := c.runtime[r]
		return RoadStats{
			Junction:     c.ID(),
			Road:         r.Name(),
			Arrived:      rt.arrived,
			Passed:       r.Counter().Get(),
			Queued:       r.Size(),
			QueueLength:  r.PhysicalQueueLength(),
			TotalSojourn: rt.sojourn,
		}
	})
}

// reset 清空道路与统计，信号灯回到全红
func (c *Controller) reset() {
	c.Junction.Reset()
	c.scheduler.Reset()
	c.switched = false
	c.lastSwitch = 0
	for _, rt := range c.runtime {
		rt.arrived = 0
		rt.sojourn = 0
	}
}
