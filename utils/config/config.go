package config

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化全局变量
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control

	return rc
}

// Parse 解析并校验YAML配置
// 功能：严格模式解析YAML（拒绝未知字段），随后执行Validate
// 参数：data-YAML文本
// 返回：配置对象与错误信息
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate 校验配置
// 功能：检查时间控制参数、路口参数以及信号灯与道路、信号灯组与信号灯的引用关系
// 返回：第一处不合法配置对应的错误，全部合法时返回nil
func (c Config) Validate() error {
	if !(c.Control.Step.Interval > 0) {
		return invalid("step interval %v must be positive", c.Control.Step.Interval)
	}
	if c.Control.Step.Total <= 0 {
		return invalid("step total %d must be positive", c.Control.Step.Total)
	}
	if len(c.Junctions) == 0 {
		return invalid("no junction")
	}
	if dup := lo.FindDuplicatesBy(c.Junctions, func(j Junction) int32 { return j.ID }); len(dup) > 0 {
		return invalid("duplicated junction id %d", dup[0].ID)
	}
	for _, j := range c.Junctions {
		if err := j.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (j Junction) validate() error {
	if !(j.Length > 0) || !(j.GreenDuration > 0) || !(j.SwitchInterval > 0) {
		return invalid(
			"junction %d: length %v, green duration %v and switch interval %v must be positive",
			j.ID, j.Length, j.GreenDuration, j.SwitchInterval,
		)
	}
	roadNames := lo.Map(j.Roads, func(r Road, _ int) string { return r.Name })
	if dup := lo.FindDuplicates(roadNames); len(dup) > 0 {
		return invalid("junction %d: duplicated road %s", j.ID, dup[0])
	}
	for _, r := range j.Roads {
		if r.Rate < 0 {
			return invalid("junction %d: road %s rate %v must be non-negative", j.ID, r.Name, r.Rate)
		}
	}
	signalNames := lo.Map(j.Signals, func(s Signal, _ int) string { return s.Name })
	if dup := lo.FindDuplicates(signalNames); len(dup) > 0 {
		return invalid("junction %d: duplicated signal %s", j.ID, dup[0])
	}
	for _, s := range j.Signals {
		if missing, _ := lo.Difference(s.Roads, roadNames); len(missing) > 0 {
			return invalid("junction %d: signal %s gates unknown road %s", j.ID, s.Name, missing[0])
		}
	}
	if len(j.Groups) == 0 {
		return invalid("junction %d: no signal group", j.ID)
	}
	grouped := lo.Flatten(j.Groups)
	if missing, _ := lo.Difference(grouped, signalNames); len(missing) > 0 {
		return invalid("junction %d: group refers to unknown signal %s", j.ID, missing[0])
	}
	if dup := lo.FindDuplicates(grouped); len(dup) > 0 {
		return invalid("junction %d: signal %s belongs to more than one group", j.ID, dup[0])
	}
	return nil
}
