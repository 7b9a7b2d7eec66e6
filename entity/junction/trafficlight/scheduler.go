package trafficlight

import (
	"errors"

	"github.com/samber/lo"
)

var (
	ErrNoGroups = errors.New("scheduler requires at least one signal group")
)

// Scheduler 信号灯组轮转调度器
// 功能：在N个互不相交的信号灯组之间按顺序轮流放行
// 说明：同一时刻至多一个组为绿灯；组间不相交由调用方保证，这里不做检查
type Scheduler struct {
	groups  [][]*Signal // 信号灯组，同组信号灯同时放行
	current int         // 下一次Advance时变为绿灯的组下标
	green   int         // 上一次Advance变为绿灯的组下标，-1表示尚未推进
}

// NewScheduler 创建轮转调度器
// 功能：记录信号灯组并将所有信号灯置为红灯
// 参数：groups-信号灯组列表
// 返回：调度器指针；没有任何组时返回ErrNoGroups
func NewScheduler(groups ...[]*Signal) (*Scheduler, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	s := &Scheduler{
		groups:  groups,
		current: 0,
		green:   -1,
	}
	s.setAll(Red)
	return s, nil
}

func (s *Scheduler) setAll(p Phase) {
	for _, group := range s.groups {
		for _, signal := range group {
			signal.SetPhase(p)
		}
	}
}

// Advance 推进到下一组
// 功能：执行一次轮转
// 返回：本次变为绿灯的组下标
// 算法说明：
// 1. 所有组的所有信号灯置为红灯（包括当前绿灯组）
// 2. 下标为current的组置为绿灯
// 3. current = (current + 1) % 组数
// 说明：首次调用使第0组变绿，无终止状态，无限循环
func (s *Scheduler) Advance() int {
	s.setAll(Red)
	for _, signal := range s.groups[s.current] {
		signal.SetPhase(Green)
	}
	s.green = s.current
	s.current = (s.current + 1) % len(s.groups)
	log.Debugf("signal group %d/%d turns green", s.green, len(s.groups))
	return s.green
}

// Reset 回到初始状态：全部红灯，下一次Advance放行第0组
func (s *Scheduler) Reset() {
	s.current = 0
	s.green = -1
	s.setAll(Red)
}

// Current 下一次Advance将放行的组下标
func (s *Scheduler) Current() int {
	return s.current
}

// GreenGroup 当前绿灯组下标，尚未推进时为-1
func (s *Scheduler) GreenGroup() int {
	return s.green
}

// Len 组数
func (s *Scheduler) Len() int {
	return len(s.groups)
}

// Group 获取指定下标的信号灯组
func (s *Scheduler) Group(i int) []*Signal {
	return s.groups[i]
}

// Signals 所有组内的信号灯（按组顺序展开）
func (s *Scheduler) Signals() []*Signal {
	return lo.Flatten(s.groups)
}
