package junction

import (
	"math"

	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/road"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/vehicle"
)

// clearanceTimes 计算队列中每辆车驶离路口的时刻（相对绿灯开始）
// 算法说明：
// 1. 队首车辆：x_0 = 路口长度 + 停车间距，t_0 = 反应时间 + sqrt(2*x_0/加速度)
// 2. 后续车辆：x_i = x_{i-1} + 前车车长 + 本车停车间距
// 3. t_i = max(反应时间 + sqrt(2*x_i/加速度), t_{i-1} + 反应时间)
// 说明：第二项保证与前车之间至少相隔一个反应时间，因此t单调不减
func (j *Junction) clearanceTimes(vehicles []*vehicle.Vehicle) []float64 {
	times := make([]float64, len(vehicles))
	var x float64
	for i, v := range vehicles {
		if i == 0 {
			x = j.length + v.KeepingDistance()
			times[i] = v.ReactionTime() + math.Sqrt(2*x/v.Acceleration())
		} else {
			x += vehicles[i-1].Length() + v.KeepingDistance()
			times[i] = math.Max(
				v.ReactionTime()+math.Sqrt(2*x/v.Acceleration()),
				times[i-1]+v.ReactionTime(),
			)
		}
	}
	return times
}

// ClearanceTimes 计算道路当前排队车辆的驶离时刻
// 功能：按队首到队尾的顺序返回每辆车相对绿灯开始的驶离时刻，不修改道路
// 参数：r-进口道
// 返回：驶离时刻列表，与队列顺序一致
func (j *Junction) ClearanceTimes(r *road.Road) []float64 {
	return j.clearanceTimes(r.Vehicles())
}

// ReleaseDuringGreen 绿灯放行
// 功能：在一个绿灯窗口内按到达顺序放行能够驶离路口的车辆
// 参数：r-进口道，currentTime-绿灯开始的仿真时间
// 返回：本次放行车辆的停留时间之和，无车放行时为0
// 算法说明：
// 1. 根据当前队列重新计算每辆车的驶离时刻t_i
// 2. 从队首开始，t_i不超过绿灯窗口时累加该车在currentTime+t_i时刻的停留时间，出队并计数
// 3. 遇到第一辆t_i超过绿灯窗口的车立即停止，后车被其阻挡，本次一律不放行
// 说明：驶离时刻不做持久化，每次调用都基于队列当前内容重新计算
func (j *Junction) ReleaseDuringGreen(r *road.Road, currentTime float64) float64 {
	vehicles := r.Vehicles()
	times := j.clearanceTimes(vehicles)
	sojourn := 0.
	released := 0
	for i, t := range times {
		if t > j.greenLightDuration {
			break
		}
		v, ok := r.DequeueHead()
		if !ok || v != vehicles[i] {
			log.Panicf("junction %d: %v head mismatch at %d", j.id, r, i)
		}
		sojourn += v.SojournTime(currentTime + t)
		r.Counter().Increment()
		released++
	}
	if released > 0 {
		log.Debugf(
			"junction %d: %v released %d/%d vehicles at %.1f, sojourn %.2f",
			j.id, r, released, len(vehicles), currentTime, sojourn,
		)
	}
	return sojourn
}
