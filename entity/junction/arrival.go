package junction

import (
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/road"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/vehicle"
)

// sampleVehicle 按截断正态分布生成一辆在currentTime到达的车辆
func (j *Junction) sampleVehicle(currentTime float64) *vehicle.Vehicle {
	v, err := vehicle.New(
		lengthParam.sample(j.generator),
		accelerationParam.sample(j.generator),
		reactionTimeParam.sample(j.generator),
		keepingDistanceParam.sample(j.generator),
		currentTime,
	)
	if err != nil {
		// 下限均为正数，出错说明随机数来源返回了NaN
		log.Panicf("junction %d: sample vehicle error: %v", j.id, err)
	}
	return v
}

// GenerateArrivals 泊松到达
// 功能：按泊松分布生成本次到达的车辆并加入道路队尾
// 参数：r-进口道，rate-泊松分布参数（本次调用的期望到达数），currentTime-当前仿真时间
// 返回：本次到达的车辆数
// 说明：车辆参数来自四个独立的截断正态分布，到达时间均为currentTime
func (j *Junction) GenerateArrivals(r *road.Road, rate, currentTime float64) int {
	n := j.generator.Poisson(rate)
	for i := 0; i < n; i++ {
		r.Enqueue(j.sampleVehicle(currentTime))
	}
	return n
}
