package events

import (
	"time"

	"aircond/internal/types"
)

// EventType 事件类型定义
type EventType int

const (
	// 系统事件
	EventSystemStartup EventType = iota
	EventSystemShutdown

	// 控制事件
	EventPowerToggle
	EventModeChange
	EventFanChange
	EventSetpointChange
	EventCommandAccepted

	// 收敛运行事件
	EventConvergenceTick
	EventConvergenceDone
	EventSetpointUnreachable

	// 监控事件
	EventMetricsUpdate
)

// Event 事件结构，Snapshot 为事件发生后的状态快照
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Snapshot  types.Snapshot `json:"snapshot"`
	Data      interface{}    `json:"data,omitempty"`
}

// Handler 事件处理函数类型
type Handler func(Event)

// Subscription 事件订阅凭据，用于取消订阅
type Subscription struct {
	EventType EventType
	id        int
}

// TickEventData 单步收敛数据
type TickEventData struct {
	Mode     types.Mode `json:"mode"`
	Residual float32    `json:"residual"`
	TickRate float32    `json:"tick_rate"`
	Tick     int        `json:"tick"`
}

// RunEventData 一次收敛运行的汇总数据
type RunEventData struct {
	Mode          types.Mode `json:"mode"`
	Result        string     `json:"result"` // converged / aborted
	Ticks         int        `json:"ticks"`
	Setpoint      float32    `json:"setpoint"`
	StartMeasured float32    `json:"start_measured"`
	FinalMeasured float32    `json:"final_measured"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
}

// WarningEventData 告警数据
type WarningEventData struct {
	Kind     string     `json:"kind"`
	Mode     types.Mode `json:"mode"`
	Setpoint float32    `json:"setpoint"`
	Measured float32    `json:"measured"`
}

// SetpointEventData 设定值调节数据
type SetpointEventData struct {
	Mode      types.Mode      `json:"mode"`
	Direction types.Direction `json:"direction"`
	Value     float32         `json:"value"`
}

// CommandEventData 已接受命令的描述
type CommandEventData struct {
	Command string `json:"command"`
	Detail  string `json:"detail,omitempty"`
}

// MetricsEventData 监控指标数据
type MetricsEventData struct {
	Timestamp      time.Time `json:"timestamp"`
	TotalRuns      int64     `json:"total_runs"`
	ConvergedRuns  int64     `json:"converged_runs"`
	AbortedRuns    int64     `json:"aborted_runs"`
	TotalTicks     int64     `json:"total_ticks"`
	TotalWarnings  int64     `json:"total_warnings"`
	TotalCommands  int64     `json:"total_commands"`
}

// EventNames 提供事件类型的字符串表示
var EventNames = map[EventType]string{
	EventSystemStartup:       "SystemStartup",
	EventSystemShutdown:      "SystemShutdown",
	EventPowerToggle:         "PowerToggle",
	EventModeChange:          "ModeChange",
	EventFanChange:           "FanChange",
	EventSetpointChange:      "SetpointChange",
	EventCommandAccepted:     "CommandAccepted",
	EventConvergenceTick:     "ConvergenceTick",
	EventConvergenceDone:     "ConvergenceDone",
	EventSetpointUnreachable: "SetpointUnreachable",
	EventMetricsUpdate:       "MetricsUpdate",
}
