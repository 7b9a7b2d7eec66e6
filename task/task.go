package task

import (
	"sync/atomic"

	"github.com/tsinghua-fib-lab/signal-queue-sim/clock"
	"github.com/tsinghua-fib-lab/signal-queue-sim/entity/junction"
	"github.com/tsinghua-fib-lab/signal-queue-sim/utils/config"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态
// 说明：管理时钟、配置与路口管理器
type Context struct {
	// 任务名
	job string
	// 关闭指令
	closed atomic.Bool

	// 时钟
	clock *clock.Clock
	// Junction管理器
	junctionManager *junction.Manager
	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
}

// NewContext 创建新的仿真任务上下文
// 功能：根据配置创建时钟与所有路口
// 参数：job-任务名称，c-配置对象
// 返回：初始化完成的Context实例与错误信息
func NewContext(job string, c config.Config) (*Context, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ctx := &Context{
		job:             job,
		clock:           clock.New(c.Control.Step),
		junctionManager: junction.NewManager(),
		runtimeConfig:   config.NewRuntimeConfig(c),
	}
	if err := ctx.junctionManager.Init(c.Junctions, c.Control.Seed); err != nil {
		return nil, err
	}
	return ctx, nil
}

func (ctx *Context) Job() string {
	return ctx.job
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) JunctionManager() *junction.Manager {
	return ctx.junctionManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Stats 所有进口道的统计
func (ctx *Context) Stats() []junction.RoadStats {
	return ctx.junctionManager.Stats()
}

// Reset 将时钟、道路、信号灯与统计恢复到初始状态，用于再次运行
func (ctx *Context) Reset() {
	ctx.clock.Init()
	ctx.junctionManager.Reset()
	ctx.closed.Store(false)
}

// Close 请求停止运行，当前步完成后Run返回
func (ctx *Context) Close() {
	ctx.closed.Store(true)
}
