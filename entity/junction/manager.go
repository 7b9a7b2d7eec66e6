package junction

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/signal-queue-sim/utils/config"
)

// Manager Junction管理器
// 功能：创建并驱动所有路口，路口之间互不交换车辆
type Manager struct {
	data        map[int32]*Controller
	controllers []*Controller
}

// NewManager 创建Junction管理器实例
func NewManager() *Manager {
	return &Manager{
		data:        make(map[int32]*Controller),
		controllers: make([]*Controller, 0),
	}
}

// Init 初始化所有路口及其信控
// 功能：根据配置创建所有路口驱动，建立ID映射
// 参数：bases-路口配置列表，seed-随机数种子
// 返回：任一路口创建失败时返回错误，已有数据保持不变
func (m *Manager) Init(bases []config.Junction, seed uint64) error {
	controllers := make([]*Controller, 0, len(bases))
	for _, base := range bases {
		c, err := newController(base, seed)
		if err != nil {
			return err
		}
		controllers = append(controllers, c)
	}
	m.controllers = controllers
	m.data = lo.SliceToMap(m.controllers, func(c *Controller) (int32, *Controller) {
		return c.ID(), c
	})
	log.Infof("init %d junctions", len(m.controllers))
	return nil
}

// Get 根据ID获取路口，如果不存在则panic
func (m *Manager) Get(id int32) *Controller {
	if c, ok := m.data[id]; !ok {
		log.Panicf("no id %d in junction data", id)
		return nil
	} else {
		return c
	}
}

// GetOrError 根据ID获取路口（带错误处理）
func (m *Manager) GetOrError(id int32) (*Controller, error) {
	if c, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in junction data", id)
	} else {
		return c, nil
	}
}

// Controllers 所有路口（按配置顺序）
func (m *Manager) Controllers() []*Controller {
	return m.controllers
}

// Update 更新阶段，执行所有路口的一步仿真
// 参数：t-当前仿真时间，dt-时间步长
// 说明：路口之间没有共享状态，使用并行处理提高性能
func (m *Manager) Update(t, dt float64) {
	parallel.GoFor(m.controllers, func(c *Controller) { c.update(t, dt) })
}

// Reset 重置所有路口，用于两次仿真之间的重新初始化
func (m *Manager) Reset() {
	for _, c := range m.controllers {
		c.reset()
	}
}

// Stats 所有路口所有进口道的统计
func (m *Manager) Stats() []RoadStats {
	return lo.FlatMap(m.controllers, func(c *Controller, _ int) []RoadStats {
		return c.Stats()
	})
}
