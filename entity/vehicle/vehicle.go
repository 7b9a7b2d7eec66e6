package vehicle

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("vehicle parameter must be strictly positive")
)

// Vehicle 排队车辆
// 功能：记录一辆车的运动学参数与到达时间，创建后不可修改
type Vehicle struct {
	length          float64 // 车长（米）
	acceleration    float64 // 起步加速度（米/秒²）
	reactionTime    float64 // 反应时间（秒）
	keepingDistance float64 // 与前车保持的停车间距（米）
	arrivalTime     float64 // 到达路口排队的仿真时间（秒）
}

// New 创建车辆
// 功能：校验运动学参数并创建车辆
// 参数：length-车长，acceleration-加速度，reactionTime-反应时间，keepingDistance-停车间距，arrivalTime-到达时间
// 返回：车辆指针；任一运动学参数不为正时返回ErrInvalidParameter
// 说明：加速度参与放行时间计算中的除法与开方，必须在构造时拦截非正值
func New(length, acceleration, reactionTime, keepingDistance, arrivalTime float64) (*Vehicle, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"length", length},
		{"acceleration", acceleration},
		{"reaction time", reactionTime},
		{"keeping distance", keepingDistance},
	} {
		// !(x > 0)同时拦截NaN
		if !(p.value > 0) {
			return nil, fmt.Errorf("%s = %v: %w", p.name, p.value, ErrInvalidParameter)
		}
	}
	return &Vehicle{
		length:          length,
		acceleration:    acceleration,
		reactionTime:    reactionTime,
		keepingDistance: keepingDistance,
		arrivalTime:     arrivalTime,
	}, nil
}

func (v *Vehicle) String() string {
	return fmt.Sprintf(
		"Vehicle{L:%.2f, A:%.2f, RT:%.2f, KD:%.2f, T:%.2f}",
		v.length, v.acceleration, v.reactionTime, v.keepingDistance, v.arrivalTime,
	)
}

// Length 车长（米）
func (v *Vehicle) Length() float64 {
	return v.length
}

// Acceleration 起步加速度（米/秒²）
func (v *Vehicle) Acceleration() float64 {
	return v.acceleration
}

// ReactionTime 反应时间（秒）
func (v *Vehicle) ReactionTime() float64 {
	return v.reactionTime
}

// KeepingDistance 停车间距（米）
func (v *Vehicle) KeepingDistance() float64 {
	return v.keepingDistance
}

// ArrivalTime 到达时间
func (v *Vehicle) ArrivalTime() float64 {
	return v.arrivalTime
}

// Footprint 车辆在队列中占用的长度，即车长加停车间距
func (v *Vehicle) Footprint() float64 {
	return v.length + v.keepingDistance
}

// SojournTime 车辆在系统中的停留时间
// 功能：计算从到达到now的时间差
// 参数：now-当前仿真时间
// 返回：now-到达时间，now早于到达时间时结果为负，由调用方负责
func (v *Vehicle) SojournTime(now float64) float64 {
	return now - v.arrivalTime
}
