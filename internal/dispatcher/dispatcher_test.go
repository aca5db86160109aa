package dispatcher

import (
	"testing"
	"time"

	"aircond/internal/ac"
	"aircond/internal/sensor"
	"aircond/internal/types"
)

func newTestDispatcher(buffer int) (*Dispatcher, *ac.Controller) {
	st := ac.NewApplianceState(sensor.Fixed{Temperature: 22, Humidity: 45})
	ctrl := ac.NewController(st, nil, nil, ac.Config{TickDelay: 0})
	return New(ctrl, nil, buffer), ctrl
}

// waitFor 轮询快照直到条件满足或超时
func waitFor(t *testing.T, ctrl *ac.Controller, cond func(types.Snapshot) bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond(ctrl.Snapshot()) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Condition not met before deadline, snapshot: %+v", ctrl.Snapshot())
}

func TestDispatchCommands(t *testing.T) {
	d, ctrl := newTestDispatcher(16)
	d.Start()
	defer d.Stop()

	d.Submit(types.Command{Kind: types.CmdTogglePower})
	waitFor(t, ctrl, func(s types.Snapshot) bool { return s.Power })

	d.Submit(types.Command{Kind: types.CmdRequestModeChange})
	d.Submit(types.Command{Kind: types.CmdSelectMode, Mode: types.ModeHeating})
	waitFor(t, ctrl, func(s types.Snapshot) bool { return s.Mode == types.ModeHeating })

	d.Submit(types.Command{Kind: types.CmdAdjustParam, Direction: types.Increase})
	waitFor(t, ctrl, func(s types.Snapshot) bool { return s.SetTemperature > 22.05 })
}

func TestDispatchRunToCompletion(t *testing.T) {
	d, ctrl := newTestDispatcher(16)
	d.Start()
	defer d.Stop()

	// 排队：进入加热模式、上调设定值、执行收敛
	d.Submit(types.Command{Kind: types.CmdRequestModeChange})
	d.Submit(types.Command{Kind: types.CmdSelectMode, Mode: types.ModeHeating})
	for i := 0; i < 10; i++ {
		d.Submit(types.Command{Kind: types.CmdAdjustParam, Direction: types.Increase})
	}
	d.Submit(types.Command{Kind: types.CmdRun})

	// 收敛结束后模式回到待机，测量值到达设定值附近
	waitFor(t, ctrl, func(s types.Snapshot) bool {
		return s.Mode == types.ModeIdle && s.MeasuredTemperature > 22.85
	})
}

func TestSubmitQueueFull(t *testing.T) {
	// 不启动分发循环，队列填满后 Submit 必须立即返回 false
	d, _ := newTestDispatcher(2)

	if !d.Submit(types.Command{Kind: types.CmdTogglePower}) {
		t.Fatal("First submit should succeed")
	}
	if !d.Submit(types.Command{Kind: types.CmdTogglePower}) {
		t.Fatal("Second submit should succeed")
	}
	if d.Submit(types.Command{Kind: types.CmdTogglePower}) {
		t.Error("Submit should fail when the queue is full")
	}
}

func TestStopWaitsForLoop(t *testing.T) {
	d, _ := newTestDispatcher(4)
	d.Start()

	finished := make(chan struct{})
	go func() {
		d.Stop()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Stop should return once the loop exits")
	}

	// Stop 幂等
	d.Stop()
}
