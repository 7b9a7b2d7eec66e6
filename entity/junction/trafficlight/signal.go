package trafficlight

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGreenDuration = errors.New("green duration must be strictly positive")
)

// Phase 信号灯相位，只有红绿两种，不建模黄灯
type Phase int

const (
	Red Phase = iota
	Green
)

func (p Phase) String() string {
	switch p {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Signal 单个信号灯
// 功能：记录当前相位与配置的绿灯时长
// 说明：相位是唯一可变状态，绿灯时长在创建后固定；相位切换是瞬时的
type Signal struct {
	name          string
	phase         Phase
	greenDuration float64 // 绿灯时长（秒）
}

// NewSignal 创建信号灯
// 功能：创建初始为红灯的信号灯
// 参数：name-信号灯名称，greenDuration-绿灯时长
// 返回：信号灯指针；绿灯时长不为正时返回ErrInvalidGreenDuration
func NewSignal(name string, greenDuration float64) (*Signal, error) {
	if !(greenDuration > 0) {
		return nil, fmt.Errorf("signal %s: green duration %v: %w", name, greenDuration, ErrInvalidGreenDuration)
	}
	return &Signal{name: name, phase: Red, greenDuration: greenDuration}, nil
}

func (s *Signal) String() string {
	return fmt.Sprintf("Signal{%s:%v}", s.name, s.phase)
}

// Name 信号灯名称
func (s *Signal) Name() string {
	return s.name
}

// GreenDuration 绿灯时长（秒）
func (s *Signal) GreenDuration() float64 {
	return s.greenDuration
}

// Phase 当前相位
func (s *Signal) Phase() Phase {
	return s.phase
}

// SetPhase 直接设置相位
func (s *Signal) SetPhase(p Phase) {
	s.phase = p
}

// Toggle 红绿互换
func (s *Signal) Toggle() {
	if s.phase == Red {
		s.phase = Green
	} else {
		s.phase = Red
	}
}

// IsGreen 是否为绿灯
func (s *Signal) IsGreen() bool {
	return s.phase == Green
}
