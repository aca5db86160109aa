// internal/monitor/monitor.go

package monitor

import (
	"sync/atomic"
	"time"

	"aircond/internal/ac"
	"aircond/internal/events"
	"aircond/internal/logger"
)

// Monitor 周期性输出整机状态并发布监控指标事件
type Monitor struct {
	bus      *events.EventBus
	ctrl     *ac.Controller
	interval time.Duration
	stopChan chan struct{}
	subs     []events.Subscription

	totalRuns     atomic.Int64
	convergedRuns atomic.Int64
	abortedRuns   atomic.Int64
	totalTicks    atomic.Int64
	totalWarnings atomic.Int64
	totalCommands atomic.Int64
}

func NewMonitor(bus *events.EventBus, ctrl *ac.Controller, interval time.Duration) *Monitor {
	if interval == 0 {
		interval = 5 * time.Second // 默认5秒更新一次
	}
	return &Monitor{
		bus:      bus,
		ctrl:     ctrl,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (m *Monitor) Start() {
	m.subs = append(m.subs,
		m.bus.Subscribe(events.EventConvergenceDone, m.onRunDone),
		m.bus.Subscribe(events.EventConvergenceTick, func(events.Event) { m.totalTicks.Add(1) }),
		m.bus.Subscribe(events.EventSetpointUnreachable, func(events.Event) { m.totalWarnings.Add(1) }),
		m.bus.Subscribe(events.EventCommandAccepted, func(events.Event) { m.totalCommands.Add(1) }),
	)
	go m.run()
	logger.Info("Monitor started with interval: %v", m.interval)
}

func (m *Monitor) Stop() {
	close(m.stopChan)
	for _, sub := range m.subs {
		m.bus.Unsubscribe(sub)
	}
	m.subs = nil
	logger.Info("Monitor stopped")
}

func (m *Monitor) onRunDone(e events.Event) {
	m.totalRuns.Add(1)
	if data, ok := e.Data.(events.RunEventData); ok {
		if data.Result == ac.RunConverged {
			m.convergedRuns.Add(1)
		} else {
			m.abortedRuns.Add(1)
		}
	}
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.publishMetrics()
		case <-m.stopChan:
			return
		}
	}
}

func (m *Monitor) publishMetrics() {
	snap := m.ctrl.Snapshot()

	logger.Info("=== System Status Report ===")
	logger.Info("Power: %v, Mode: %s, Fan: %s", snap.Power, snap.Mode, snap.FanLevel)
	logger.Info("Temperature: %.1f°C (set %.1f°C), Humidity: %.1f%% (set %.1f%%)",
		snap.MeasuredTemperature, snap.SetTemperature,
		snap.MeasuredHumidity, snap.SetHumidity)
	logger.Info("Runs: %d (converged %d, aborted %d), Ticks: %d, Warnings: %d, Commands: %d",
		m.totalRuns.Load(), m.convergedRuns.Load(), m.abortedRuns.Load(),
		m.totalTicks.Load(), m.totalWarnings.Load(), m.totalCommands.Load())

	m.bus.Publish(events.Event{
		Type:      events.EventMetricsUpdate,
		Timestamp: time.Now(),
		Snapshot:  snap,
		Data: events.MetricsEventData{
			Timestamp:     time.Now(),
			TotalRuns:     m.totalRuns.Load(),
			ConvergedRuns: m.convergedRuns.Load(),
			AbortedRuns:   m.abortedRuns.Load(),
			TotalTicks:    m.totalTicks.Load(),
			TotalWarnings: m.totalWarnings.Load(),
			TotalCommands: m.totalCommands.Load(),
		},
	})
}
