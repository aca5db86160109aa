// internal/db/recorder.go
package db

import (
	"aircond/internal/events"
)

// Recorder 订阅事件总线，把运行详单、告警和操作日志落库
// 纯观测用途，写库失败只记日志，不影响控制核心
type Recorder struct {
	repo *DetailRepository
	subs []events.Subscription
	bus  *events.EventBus
}

func NewRecorder(bus *events.EventBus, repo *DetailRepository) *Recorder {
	return &Recorder{repo: repo, bus: bus}
}

// Attach 注册事件订阅
func (rec *Recorder) Attach() {
	rec.subs = append(rec.subs,
		rec.bus.Subscribe(events.EventConvergenceDone, rec.onRunDone),
		rec.bus.Subscribe(events.EventSetpointUnreachable, rec.onWarning),
		rec.bus.Subscribe(events.EventCommandAccepted, rec.onCommand),
	)
}

// Detach 取消全部订阅
func (rec *Recorder) Detach() {
	for _, sub := range rec.subs {
		rec.bus.Unsubscribe(sub)
	}
	rec.subs = nil
}

func (rec *Recorder) onRunDone(e events.Event) {
	data, ok := e.Data.(events.RunEventData)
	if !ok {
		return
	}
	_ = rec.repo.CreateRunDetail(&RunDetail{
		Mode:          string(data.Mode),
		Result:        data.Result,
		StartTime:     data.StartTime,
		EndTime:       data.EndTime,
		Ticks:         data.Ticks,
		Setpoint:      data.Setpoint,
		StartMeasured: data.StartMeasured,
		FinalMeasured: data.FinalMeasured,
	})
}

func (rec *Recorder) onWarning(e events.Event) {
	data, ok := e.Data.(events.WarningEventData)
	if !ok {
		return
	}
	_ = rec.repo.CreateWarning(&WarningRecord{
		Kind:     data.Kind,
		Mode:     string(data.Mode),
		Setpoint: data.Setpoint,
		Measured: data.Measured,
		WarnTime: e.Timestamp,
	})
}

func (rec *Recorder) onCommand(e events.Event) {
	data, ok := e.Data.(events.CommandEventData)
	if !ok {
		return
	}
	_ = rec.repo.CreateOperation(&OperationLog{
		OpTime:  e.Timestamp,
		Command: data.Command,
		Detail:  data.Detail,
		Mode:    string(e.Snapshot.Mode),
	})
}
