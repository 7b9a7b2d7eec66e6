package road

import (
	"fmt"

	"github.com/samber/lo"
)

// Manager Road管理器
// 功能：按名称管理同一路口的所有进口道，保持添加顺序
type Manager struct {
	data  map[string]*Road
	roads []*Road
}

// NewManager 创建Road管理器实例
// 功能：初始化Road管理器，创建内部数据结构
// 参数：roads-初始道路列表，名称重复时后者覆盖前者的名称索引
// 返回：新创建的Road管理器实例
func NewManager(roads ...*Road) *Manager {
	m := &Manager{
		data:  make(map[string]*Road),
		roads: make([]*Road, 0, len(roads)),
	}
	for _, r := range roads {
		m.Add(r)
	}
	return m
}

// Add 添加道路
// 功能：加入一条进口道；同名道路已存在时替换原道路
func (m *Manager) Add(r *Road) {
	if old, ok := m.data[r.name]; ok {
		m.roads = lo.Without(m.roads, old)
	}
	m.data[r.name] = r
	m.roads = append(m.roads, r)
}

// Get 根据名称获取Road实例
// 功能：通过名称查找对应的Road对象，如果不存在则panic
// 参数：name-道路名称
// 返回：对应的Road实例
func (m *Manager) Get(name string) *Road {
	if road, ok := m.data[name]; !ok {
		log.Panicf("no road %s in road data", name)
		return nil
	} else {
		return road
	}
}

// GetOrError 根据名称获取Road实例（带错误处理）
// 功能：通过名称查找对应的Road对象，如果不存在则返回错误
// 参数：name-道路名称
// 返回：Road实例和错误信息，如果不存在则返回nil和错误
func (m *Manager) GetOrError(name string) (*Road, error) {
	if road, ok := m.data[name]; !ok {
		return nil, fmt.Errorf("no road %s in road data", name)
	} else {
		return road, nil
	}
}

// All 获取所有道路（按添加顺序）
func (m *Manager) All() []*Road {
	return m.roads
}

// Len 道路数量
func (m *Manager) Len() int {
	return len(m.roads)
}

// ResetAll 重置所有道路的队列与计数
func (m *Manager) ResetAll() {
	for _, r := range m.roads {
		r.Reset()
	}
}
