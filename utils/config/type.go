package config

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
	Seed uint64      `yaml:"seed,omitempty"` // 随机数种子，每个路口实际使用seed+路口ID
}

// Road 进口道配置
type Road struct {
	Name   string  `yaml:"name"`
	Length float64 `yaml:"length"`
	Rate   float64 `yaml:"rate"` // 到达率（辆/秒），每步的泊松参数为rate*interval
}

// Signal 信号灯配置
type Signal struct {
	Name          string   `yaml:"name"`
	GreenDuration float64  `yaml:"green_duration"`
	Roads         []string `yaml:"roads,omitempty"` // 该信号灯放行的进口道名称
}

// Junction 路口配置
// 功能：定义单个路口的几何、信号灯、信号灯组与到达参数
// 说明：Groups中每个元素是同时放行的信号灯名称列表，按顺序轮转
type Junction struct {
	ID             int32      `yaml:"id"`
	Length         float64    `yaml:"length"`          // 队首到停车线/出口的距离（米）
	GreenDuration  float64    `yaml:"green_duration"`  // 绿灯放行窗口（秒）
	SwitchInterval float64    `yaml:"switch_interval"` // 信号灯组切换间隔（秒）
	Roads          []Road     `yaml:"roads"`
	Signals        []Signal   `yaml:"signals"`
	Groups         [][]string `yaml:"groups"`
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
type Config struct {
	Control   Control    `yaml:"control"`   // 模拟过程控制
	Junctions []Junction `yaml:"junctions"` // 路口
}
