// internal/display/display.go

package display

import (
	"fmt"

	"aircond/internal/events"
	"aircond/internal/logger"
	"aircond/internal/types"
)

// Console 控制台显示器
// 订阅状态事件，按 20x4 字符屏的版式输出当前状态
type Console struct {
	bus  *events.EventBus
	subs []events.Subscription
}

func NewConsole(bus *events.EventBus) *Console {
	return &Console{bus: bus}
}

// Attach 注册需要刷新显示的事件
func (c *Console) Attach() {
	refresh := func(e events.Event) { c.render(e.Snapshot) }
	for _, t := range []events.EventType{
		events.EventPowerToggle,
		events.EventModeChange,
		events.EventFanChange,
		events.EventSetpointChange,
		events.EventConvergenceTick,
		events.EventConvergenceDone,
	} {
		c.subs = append(c.subs, c.bus.Subscribe(t, refresh))
	}
	c.subs = append(c.subs,
		c.bus.Subscribe(events.EventSetpointUnreachable, c.renderWarning))
}

// Detach 取消全部订阅
func (c *Console) Detach() {
	for _, sub := range c.subs {
		c.bus.Unsubscribe(sub)
	}
	c.subs = nil
}

func (c *Console) render(s types.Snapshot) {
	power := "OFF"
	if s.Power {
		power = "ON"
	}
	logger.Info("%s", fmt.Sprintf("%-20s", fmt.Sprintf("PWR %s  MODE %s", power, s.Mode)))
	logger.Info("%s", fmt.Sprintf("%-20s", fmt.Sprintf("TEMP %5.1f/%5.1f C", s.MeasuredTemperature, s.SetTemperature)))
	logger.Info("%s", fmt.Sprintf("%-20s", fmt.Sprintf("HUM  %5.1f/%5.1f %%", s.MeasuredHumidity, s.SetHumidity)))
	logger.Info("%s", fmt.Sprintf("%-20s", fmt.Sprintf("FAN  %s", s.FanLevel)))
}

func (c *Console) renderWarning(e events.Event) {
	data, ok := e.Data.(events.WarningEventData)
	if !ok {
		return
	}
	logger.Warn("显示告警: %s (%s 设定 %.1f / 测量 %.1f)",
		data.Kind, data.Mode, data.Setpoint, data.Measured)
}
