package junction

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsinghua-fib-lab/signal-queue-sim/entity"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/junction/trafficlight"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/road"
)

var (
	ErrInvalidParameter = errors.New("junction parameter must be strictly positive")
	ErrNilGenerator     = errors.New("junction requires a random source")
)

// normalParam 截断正态分布参数，采样值不低于floor
type normalParam struct {
	mean, std, floor float64
}

func (p normalParam) sample(g entity.IRandom) float64 {
	return math.Max(g.Normal(p.mean, p.std), p.floor)
}

// 新到达车辆的运动学参数分布
var (
	lengthParam          = normalParam{mean: 3.5, std: 2.5, floor: 1.0}  // 车长（米）
	accelerationParam    = normalParam{mean: 2.5, std: 1.0, floor: 0.5}  // 加速度（米/秒²）
	reactionTimeParam    = normalParam{mean: 1.0, std: 0.25, floor: 0.1} // 反应时间（秒）
	keepingDistanceParam = normalParam{mean: 1.5, std: 1.0, floor: 0.1}  // 停车间距（米）
)

// Junction 信控路口
// 功能：聚合共享同一路口几何的进口道与信号灯，负责绿灯放行与随机到达
// 说明：路口不维护道路与信号灯的对应关系，何时对哪条道路放行由调用方决定
type Junction struct {
	id                 int32
	length             float64                // 队首到停车线/出口的距离（米）
	greenLightDuration float64                // 绿灯放行窗口（秒）
	roads              *road.Manager          // 进口道
	signals            []*trafficlight.Signal // 信号灯

	generator entity.IRandom
}

// New 创建路口
// 功能：校验几何与信控参数并创建空路口
// 参数：id-路口ID，length-路口长度，greenLightDuration-绿灯放行窗口，generator-随机数来源
// 返回：路口指针；参数不为正时返回ErrInvalidParameter，generator为nil时返回ErrNilGenerator
func New(id int32, length, greenLightDuration float64, generator entity.IRandom) (*Junction, error) {
	if !(length > 0) {
		return nil, fmt.Errorf("junction %d: length %v: %w", id, length, ErrInvalidParameter)
	}
	if !(greenLightDuration > 0) {
		return nil, fmt.Errorf("junction %d: green light duration %v: %w", id, greenLightDuration, ErrInvalidParameter)
	}
	if generator == nil {
		return nil, fmt.Errorf("junction %d: %w", id, ErrNilGenerator)
	}
	return &Junction{
		id:                 id,
		length:             length,
		greenLightDuration: greenLightDuration,
		roads:              road.NewManager(),
		signals:            make([]*trafficlight.Signal, 0),
		generator:          generator,
	}, nil
}

// ID 获取Junction的唯一标识符
// 返回：Junction的ID，如果Junction为nil则返回-1
func (j *Junction) ID() int32 {
	if j == nil {
		return -1
	}
	return j.id
}

func (j *Junction) String() string {
	return fmt.Sprintf("Junction %d", j.id)
}

// Length 路口长度（米）
func (j *Junction) Length() float64 {
	return j.length
}

// GreenLightDuration 绿灯放行窗口（秒）
func (j *Junction) GreenLightDuration() float64 {
	return j.greenLightDuration
}

// AddRoad 添加进口道
func (j *Junction) AddRoad(r *road.Road) {
	j.roads.Add(r)
}

// AddSignal 添加信号灯
func (j *Junction) AddSignal(s *trafficlight.Signal) {
	j.signals = append(j.signals, s)
}

// Road 根据名称获取进口道
func (j *Junction) Road(name string) (*road.Road, error) {
	return j.roads.GetOrError(name)
}

// Roads 所有进口道（按添加顺序）
func (j *Junction) Roads() []*road.Road {
	return j.roads.All()
}

// Signals 所有信号灯（按添加顺序）
func (j *Junction) Signals() []*trafficlight.Signal {
	return j.signals
}

// Reset 重置所有进口道的队列与计数
func (j *Junction) Reset() {
	j.roads.ResetAll()
}
