package ac

import (
	"sync"
	"testing"
	"time"

	"aircond/internal/events"
	"aircond/internal/sensor"
	"aircond/internal/types"

	"github.com/zoobzio/clockz"
)

// runObserver 收集一次收敛运行产生的事件
type runObserver struct {
	mu       sync.Mutex
	ticks    []events.TickEventData
	snaps    []types.Snapshot
	warnings []events.WarningEventData
	done     chan events.RunEventData
}

func observeRun(bus *events.EventBus) *runObserver {
	o := &runObserver{done: make(chan events.RunEventData, 1)}
	bus.Subscribe(events.EventConvergenceTick, func(e events.Event) {
		o.mu.Lock()
		defer o.mu.Unlock()
		if data, ok := e.Data.(events.TickEventData); ok {
			o.ticks = append(o.ticks, data)
		}
		o.snaps = append(o.snaps, e.Snapshot)
	})
	bus.Subscribe(events.EventSetpointUnreachable, func(e events.Event) {
		o.mu.Lock()
		defer o.mu.Unlock()
		if data, ok := e.Data.(events.WarningEventData); ok {
			o.warnings = append(o.warnings, data)
		}
	})
	bus.Subscribe(events.EventConvergenceDone, func(e events.Event) {
		if data, ok := e.Data.(events.RunEventData); ok {
			o.done <- data
		}
	})
	return o
}

func (o *runObserver) waitDone(t *testing.T) events.RunEventData {
	t.Helper()
	select {
	case data := <-o.done:
		// 事件异步派发，稍等其余处理函数落地
		time.Sleep(20 * time.Millisecond)
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for convergence run to finish")
		return events.RunEventData{}
	}
}

func newRunController(mode types.Mode, setTemp, temp, setHum, hum float32, bus *events.EventBus) *Controller {
	st := NewApplianceState(sensor.Fixed{Temperature: temp, Humidity: hum})
	st.mode = mode
	st.setTemperature = setTemp
	st.setHumidity = setHum
	return NewController(st, bus, nil, Config{TickDelay: 0})
}

func TestConvergenceHeating(t *testing.T) {
	bus := events.NewEventBus()
	o := observeRun(bus)
	c := newRunController(types.ModeHeating, 25.0, 20.0, 45, 45, bus)

	c.Run()
	result := o.waitDone(t)

	if result.Result != RunConverged {
		t.Fatalf("Run should converge, got %s", result.Result)
	}
	if got := c.Snapshot().Mode; got != types.ModeIdle {
		t.Errorf("Mode should return to idle, got %s", got)
	}

	final := c.Snapshot().MeasuredTemperature
	if final < 24.9 || final > 25.1 {
		t.Errorf("Final temperature should be within 0.1 of 25.0, got %v", final)
	}
	if result.Ticks == 0 || result.Ticks > 30 {
		t.Errorf("Unexpected tick count: %d", result.Ticks)
	}

	// 单调逼近：全程不低于起点，不越过设定值上方容差
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, snap := range o.snaps {
		if snap.MeasuredTemperature < 20.0-1e-4 {
			t.Errorf("Measured temperature dropped below start: %v", snap.MeasuredTemperature)
		}
		if snap.MeasuredTemperature > 25.0+TemperatureTolerance {
			t.Errorf("Measured temperature overshot: %v", snap.MeasuredTemperature)
		}
	}
	if len(o.warnings) != 0 {
		t.Errorf("No warning expected, got %d", len(o.warnings))
	}
}

func TestConvergenceCoolingAbort(t *testing.T) {
	// 制冷模式但设定值高于测量值：残差方向错误，必须立即中止
	bus := events.NewEventBus()
	o := observeRun(bus)
	c := newRunController(types.ModeCooling, 30.0, 20.0, 45, 45, bus)

	c.Run()
	result := o.waitDone(t)

	if result.Result != RunAborted {
		t.Fatalf("Run should abort, got %s", result.Result)
	}
	if result.Ticks != 0 {
		t.Errorf("Abort must happen before any tick, got %d ticks", result.Ticks)
	}

	snap := c.Snapshot()
	if snap.Mode != types.ModeIdle {
		t.Errorf("Mode should be forced to idle, got %s", snap.Mode)
	}
	if !almostEqual(snap.SetTemperature, 20.0) {
		t.Errorf("Setpoint should be clamped to measured value 20.0, got %v", snap.SetTemperature)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.warnings) != 1 {
		t.Fatalf("Exactly one warning expected, got %d", len(o.warnings))
	}
	if o.warnings[0].Kind != WarningSetpointUnreachable {
		t.Errorf("Warning kind should be %s, got %s",
			WarningSetpointUnreachable, o.warnings[0].Kind)
	}
}

func TestConvergenceZeroDifference(t *testing.T) {
	bus := events.NewEventBus()
	o := observeRun(bus)
	c := newRunController(types.ModeHeating, 22.0, 22.0, 45, 45, bus)

	c.Run()
	result := o.waitDone(t)

	if result.Result != RunConverged {
		t.Fatalf("Zero difference should converge immediately, got %s", result.Result)
	}
	if result.Ticks != 0 {
		t.Errorf("No ticks expected, got %d", result.Ticks)
	}
	if got := c.Snapshot().Mode; got != types.ModeIdle {
		t.Errorf("Mode should be idle, got %s", got)
	}
}

func TestConvergenceDehumidification(t *testing.T) {
	bus := events.NewEventBus()
	o := observeRun(bus)
	c := newRunController(types.ModeDehumidification, 22, 22, 40.0, 55.0, bus)

	c.Run()
	result := o.waitDone(t)

	if result.Result != RunConverged {
		t.Fatalf("Run should converge, got %s", result.Result)
	}
	final := c.Snapshot().MeasuredHumidity
	if final < 40.0-HumidityTolerance || final > 40.1 {
		t.Errorf("Final humidity should be within 0.1 of 40.0, got %v", final)
	}
	if got := c.Snapshot().MeasuredTemperature; !almostEqual(got, 22) {
		t.Errorf("Temperature must not move in a humidity run, got %v", got)
	}
}

func TestRunIgnoredWithoutConvergibleParam(t *testing.T) {
	for _, mode := range []types.Mode{types.ModeIdle, types.ModeVentilation} {
		c := newTestController(mode, 22, 45)
		c.Run()
		if got := c.Snapshot().Mode; got != types.ModeIdle {
			t.Errorf("%s: mode should end up idle, got %s", mode, got)
		}
	}
}

// 注入假时钟驱动步间等待，循环逻辑不依赖真实时间
func TestConvergenceWithFakeClock(t *testing.T) {
	bus := events.NewEventBus()
	o := observeRun(bus)
	clock := clockz.NewFakeClock()

	st := NewApplianceState(sensor.Fixed{Temperature: 24.5, Humidity: 45})
	st.mode = types.ModeHeating
	st.setTemperature = 25.0
	c := NewController(st, bus, clock, Config{TickDelay: time.Second})

	finished := make(chan struct{})
	go func() {
		c.Run()
		close(finished)
	}()

	// 持续推进假时钟直到运行结束
	for {
		select {
		case <-finished:
			result := o.waitDone(t)
			if result.Result != RunConverged {
				t.Fatalf("Run should converge, got %s", result.Result)
			}
			final := c.Snapshot().MeasuredTemperature
			if final < 24.9 || final > 25.1 {
				t.Errorf("Final temperature should be within 0.1 of 25.0, got %v", final)
			}
			return
		case <-time.After(time.Millisecond):
			clock.BlockUntilReady()
			clock.Advance(time.Second)
		}
	}
}
