// internal/ac/convergence.go

package ac

import (
	"time"

	"aircond/internal/events"
	"aircond/internal/logger"
	"aircond/internal/types"
)

// 收敛运行结果
const (
	RunConverged = "converged"
	RunAborted   = "aborted"
)

// WarningSetpointUnreachable 设定值在当前模式方向上不可达
const WarningSetpointUnreachable = "SetpointUnreachable"

// Run 执行一次收敛运行
// 将当前方向性模式对应的测量值逐步逼近设定值，结束后模式回到 idle
// 整个运行在本次调用内完成，期间不接受新命令（由分发器保证串行）
func (c *Controller) Run() {
	c.mu.Lock()
	mode := c.st.mode
	profile, ok := modeProfiles[mode]
	if !ok {
		// idle/通风模式没有可收敛参数
		c.st.mode = types.ModeIdle
		c.mu.Unlock()
		logger.Debug("收敛运行被忽略: mode=%s", mode)
		return
	}
	start := c.st.measured(profile.kind)
	c.mu.Unlock()

	startTime := time.Now()
	ticks := 0
	result := RunConverged

	for {
		c.mu.Lock()
		set := c.st.setpoint(profile.kind)
		measured := c.st.measured(profile.kind)
		residual := (set - measured) * profile.sign

		// 残差方向与模式不符：设定值不可达，安全回退
		if residual < 0 {
			c.st.setSetpoint(profile.kind, measured)
			c.st.mode = types.ModeIdle
			snap := c.st.snapshot()
			c.mu.Unlock()

			logger.Warn("%s 模式下设定值不可达，已钳位到当前测量值 %.1f", mode, measured)
			c.publish(events.EventSetpointUnreachable, snap, events.WarningEventData{
				Kind:     WarningSetpointUnreachable,
				Mode:     mode,
				Setpoint: set,
				Measured: measured,
			})
			result = RunAborted
			break
		}

		// 进入容差范围即视为收敛
		if residual < profile.tolerance {
			c.st.mode = types.ModeIdle
			c.mu.Unlock()
			logger.Info("%s 收敛完成: 测量值 %.2f, 设定值 %.2f, 共 %d 步",
				mode, measured, set, ticks)
			break
		}

		// 距离带决定单步调节量，残差越大步子越大
		rate := profile.tickRate(residual)
		c.st.setMeasured(profile.kind, measured+rate*profile.sign)
		ticks++
		snap := c.st.snapshot()
		c.mu.Unlock()

		logger.Debug("%s 第 %d 步: 测量值 %.2f -> %.2f (步长 %.1f)",
			mode, ticks, measured, measured+rate*profile.sign, rate)
		c.publish(events.EventConvergenceTick, snap, events.TickEventData{
			Mode:     mode,
			Residual: residual,
			TickRate: rate,
			Tick:     ticks,
		})

		c.wait()
	}

	c.mu.RLock()
	finalSet := c.st.setpoint(profile.kind)
	finalMeasured := c.st.measured(profile.kind)
	snap := c.st.snapshot()
	c.mu.RUnlock()

	c.publish(events.EventConvergenceDone, snap, events.RunEventData{
		Mode:          mode,
		Result:        result,
		Ticks:         ticks,
		Setpoint:      finalSet,
		StartMeasured: start,
		FinalMeasured: finalMeasured,
		StartTime:     startTime,
		EndTime:       time.Now(),
	})
}

// wait 步间等待，模拟采样周期；时钟可注入以便测试
func (c *Controller) wait() {
	if c.cfg.TickDelay <= 0 {
		return
	}
	t := c.clock.NewTimer(c.cfg.TickDelay)
	<-t.C()
}
