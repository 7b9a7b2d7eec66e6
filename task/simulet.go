package task

import (
	"flag"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// step 执行一步仿真
// 功能：以当前时钟时间驱动所有路口，随后推进时钟
// 说明：单个路口内部按“轮转信号灯组 -> 生成到达 -> 绿灯放行”的顺序执行
func (ctx *Context) step() {
	ctx.junctionManager.Update(ctx.clock.T, ctx.clock.DT)
	log.Debugf("step %d: update complete", ctx.clock.InternalStep)

	if interval := int32(*heartBeatInterval); interval > 0 && ctx.clock.InternalStep%interval == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		log.Infof(
			"STEP: %d(%d:%d:%.2f)",
			ctx.clock.InternalStep,
			hour, minute, second,
		)
	}
	ctx.clock.Next()
}

// Run 运行
// 功能：从当前时钟位置运行到结束步或收到Close，然后输出各进口道统计
func (ctx *Context) Run() {
	for !ctx.clock.Done() && !ctx.closed.Load() {
		ctx.step()
	}
	for _, s := range ctx.Stats() {
		log.Infof(
			"junction %d road %s: arrived %d, passed %d, queued %d (%.1fm), avg sojourn %.2fs",
			s.Junction, s.Road, s.Arrived, s.Passed, s.Queued, s.QueueLength, s.AverageSojourn(),
		)
	}
	log.Infof("job %s complete at %v", ctx.job, ctx.clock)
}
