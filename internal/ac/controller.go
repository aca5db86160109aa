// internal/ac/controller.go

package ac

import (
	"sync"
	"time"

	"aircond/internal/events"
	"aircond/internal/logger"
	"aircond/internal/types"

	"github.com/zoobzio/clockz"
)

// Config 控制核心配置
type Config struct {
	TickDelay time.Duration // 收敛循环每步之间的等待时间
}

// Controller 空调控制核心
// 所有命令均为终态安全：不适用的命令静默忽略，不产生错误
type Controller struct {
	mu    sync.RWMutex
	st    *ApplianceState
	bus   *events.EventBus
	clock clockz.Clock
	cfg   Config
}

// NewController 创建控制核心，bus 可为 nil（不上报）
func NewController(st *ApplianceState, bus *events.EventBus, clock clockz.Clock, cfg Config) *Controller {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Controller{
		st:    st,
		bus:   bus,
		clock: clock,
		cfg:   cfg,
	}
}

// Snapshot 获取当前状态快照
func (c *Controller) Snapshot() types.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.st.snapshot()
}

// TogglePower 电源开关，无条件翻转，不影响其他字段
func (c *Controller) TogglePower() {
	c.mu.Lock()
	c.st.power = !c.st.power
	snap := c.st.snapshot()
	c.mu.Unlock()

	logger.Info("电源切换为 %v", snap.Power)
	c.publish(events.EventPowerToggle, snap, nil)
}

// RequestModeChange 进入模式选择，打开一次性门闩
func (c *Controller) RequestModeChange() {
	c.mu.Lock()
	c.st.modeChangeEnabled = true
	c.mu.Unlock()

	logger.Debug("模式切换门闩已打开")
}

// ApplyModeChange 应用模式切换
// 仅当门闩打开且目标模式不同于当前模式时生效；无论成败门闩都关闭
func (c *Controller) ApplyModeChange(next types.Mode) {
	c.mu.Lock()
	accepted := c.st.modeChangeEnabled && next.Valid() && next != c.st.mode
	if accepted {
		c.st.mode = next
	}
	c.st.modeChangeEnabled = false
	snap := c.st.snapshot()
	c.mu.Unlock()

	if accepted {
		logger.Info("工作模式切换为 %s", next)
		c.publish(events.EventModeChange, snap, nil)
	} else {
		logger.Debug("模式切换被忽略: next=%s", next)
	}
}

// AdjustSetpoint 调节当前模式对应参数的设定值
// 制冷/制热调温度(±0.1)，加湿/除湿调湿度(±0.5)，其余模式忽略
func (c *Controller) AdjustSetpoint(dir types.Direction) {
	c.mu.Lock()
	profile, ok := modeProfiles[c.st.mode]
	if !ok {
		mode := c.st.mode
		c.mu.Unlock()
		logger.Debug("设定值调节被忽略: mode=%s", mode)
		return
	}
	step := profile.step
	if dir == types.Decrease {
		step = -step
	}
	value := c.st.setpoint(profile.kind) + step
	c.st.setSetpoint(profile.kind, value)
	mode := c.st.mode
	snap := c.st.snapshot()
	c.mu.Unlock()

	logger.Info("%s 设定值调节为 %.1f (%s)", profile.kind, value, dir)
	c.publish(events.EventSetpointChange, snap, events.SetpointEventData{
		Mode:      mode,
		Direction: dir,
		Value:     value,
	})
}

// AdjustFan 调节送风档位，仅通风模式有效
// 六档线性阶梯，两端饱和，不回绕
func (c *Controller) AdjustFan(dir types.Direction) {
	c.mu.Lock()
	if c.st.mode != types.ModeVentilation {
		c.mu.Unlock()
		logger.Debug("风速调节被忽略: 非通风模式")
		return
	}
	old := c.st.fanLevel
	next := old
	if dir == types.Increase && old < types.Fan100 {
		next = old + 1
	} else if dir == types.Decrease && old > types.FanOff {
		next = old - 1
	}
	c.st.fanLevel = next
	snap := c.st.snapshot()
	c.mu.Unlock()

	if next == old {
		logger.Debug("风速已到边界: %s", old)
		return
	}
	logger.Info("风速 %s -> %s", old, next)
	c.publish(events.EventFanChange, snap, nil)
}

func (c *Controller) publish(t events.EventType, snap types.Snapshot, data interface{}) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(events.Event{
		Type:      t,
		Timestamp: time.Now(),
		Snapshot:  snap,
		Data:      data,
	})
}
