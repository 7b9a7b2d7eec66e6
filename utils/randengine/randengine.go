// 随机数引擎，包装了golang.org/x/exp/rand，提供仿真所需的均匀、泊松、正态分布采样
package randengine

import (
	"flag"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	seedOffset = flag.Uint64("rand.seed_offset", 0, "seed offset") // 种子偏移量，用于调整随机数生成
)

// Engine 随机数引擎
// 功能：提供可复现的随机数生成功能，支持泊松分布和正态分布
// 说明：基于golang.org/x/exp/rand库，分布采样由gonum的distuv完成，
// 所有采样共享同一个底层随机源，因此相同种子得到相同的车辆序列
type Engine struct {
	*rand.Rand // 底层随机数生成器，非线程安全，每个路口持有独立实例
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
// 说明：种子偏移量允许在不修改配置的情况下调整随机数序列
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed + *seedOffset))}
}

// Poisson 按泊松分布采样非负整数（非线程安全）
// 功能：生成一个参数为lambda的泊松分布随机数，用于车辆到达数量
// 参数：lambda-分布均值
// 返回：采样得到的非负整数，lambda<=0时返回0
func (e *Engine) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: lambda, Src: e.Rand}.Rand())
}

// Normal 按正态分布采样（非线程安全）
// 功能：生成均值为mean、标准差为std的正态分布随机数
// 参数：mean-均值，std-标准差
// 返回：采样值，std<=0时直接返回mean
func (e *Engine) Normal(mean, std float64) float64 {
	if std <= 0 {
		return mean
	}
	return distuv.Normal{Mu: mean, Sigma: std, Src: e.Rand}.Rand()
}
