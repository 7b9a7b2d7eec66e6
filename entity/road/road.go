package road

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/vehicle"
	"github.com/tsinghua-fib-lab/signal-queue-sim/utils/container"
)

// Road 进口道实体
// 功能：表示通向路口的一条进口道，包含按到达顺序排列的排队车辆与通过计数器
// 说明：队列与计数器只归本道路所有，队列顺序即到达顺序，不会被重排
type Road struct {
	name    string
	length  float64                           // 道路长度（米）
	queue   container.Queue[*vehicle.Vehicle] // 排队车辆，队首为最早到达
	counter PassageCounter                    // 通过计数器
}

// New 创建进口道
// 功能：创建一条空队列、计数为0的进口道
// 参数：name-道路名称，length-道路长度
// 返回：初始化完成的Road实例
func New(name string, length float64) *Road {
	r := &Road{
		name:   name,
		length: length,
	}
	r.queue.ID = name
	return r
}

// Name 获取道路名称
func (r *Road) Name() string {
	return r.name
}

// Length 获取道路长度（米）
func (r *Road) Length() float64 {
	return r.length
}

// String 获取Road的字符串表示
// 功能：返回Road的字符串描述，用于调试和日志输出
func (r *Road) String() string {
	return fmt.Sprintf("Road %s", r.name)
}

// Counter 获取道路的通过计数器
func (r *Road) Counter() *PassageCounter {
	return &r.counter
}

// Enqueue 车辆到达，加入队尾
// 参数：v-到达的车辆
// 说明：队列长度不设上限
func (r *Road) Enqueue(v *vehicle.Vehicle) {
	r.queue.PushBack(v)
}

// DequeueHead 队首车辆离开队列
// 功能：移除并返回队首车辆
// 返回：队首车辆和true；队列为空时返回nil和false，空队列不是错误
func (r *Road) DequeueHead() (*vehicle.Vehicle, bool) {
	return r.queue.PopFront()
}

// Head 查看队首车辆但不移除
// 返回：队首车辆和true；队列为空时返回nil和false
func (r *Road) Head() (*vehicle.Vehicle, bool) {
	if node := r.queue.First(); node != nil {
		return node.Value, true
	}
	return nil, false
}

// Vehicles 获取排队车辆快照（队首到队尾）
func (r *Road) Vehicles() []*vehicle.Vehicle {
	return r.queue.Values()
}

// PhysicalQueueLength 队列的物理长度
// 功能：计算排队车辆占用的道路长度
// 返回：所有排队车辆的车长与停车间距之和（米）
func (r *Road) PhysicalQueueLength() float64 {
	return lo.SumBy(r.queue.Values(), func(v *vehicle.Vehicle) float64 {
		return v.Footprint()
	})
}

// Size 排队车辆数
func (r *Road) Size() int {
	return r.queue.Len()
}

// Reset 重置道路
// 功能：清空队列并将通过计数清零，用于两次仿真之间的重新初始化
func (r *Road) Reset() {
	r.queue.Clear()
	r.counter.Reset()
}
