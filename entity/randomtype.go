package entity

// 依赖倒置，表达路口对随机数来源的接口需求
// utils/randengine.Engine 为默认实现，测试中可替换为确定性实现

// 随机数来源接口
type IRandom interface {
	Float64() float64                 // [0,1)均匀分布
	Poisson(lambda float64) int       // 泊松分布，lambda<=0时返回0
	Normal(mean, std float64) float64 // 正态分布
}
