// internal/dispatcher/dispatcher.go

package dispatcher

import (
	"sync"
	"time"

	"aircond/internal/ac"
	"aircond/internal/events"
	"aircond/internal/logger"
	"aircond/internal/types"
)

// Dispatcher 命令分发器
// 单 goroutine 逐条执行命令，每条命令运行到完成才取下一条
// 收敛运行期间新命令只会在队列中排队，无法抢占
type Dispatcher struct {
	ctrl     *ac.Controller
	bus      *events.EventBus
	cmds     chan types.Command
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New 创建分发器，buffer 为命令队列长度
func New(ctrl *ac.Controller, bus *events.EventBus, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 16
	}
	return &Dispatcher{
		ctrl:     ctrl,
		bus:      bus,
		cmds:     make(chan types.Command, buffer),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start 启动分发循环
func (d *Dispatcher) Start() {
	go d.loop()
	logger.Info("命令分发器已启动")
}

// Stop 停止分发循环并等待当前命令执行完毕
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
	<-d.done
	logger.Info("命令分发器已停止")
}

// Submit 将命令放入队列
// 队列已满时返回 false，调用方可据此提示稍后重试
func (d *Dispatcher) Submit(cmd types.Command) bool {
	select {
	case d.cmds <- cmd:
		return true
	default:
		logger.Warn("命令队列已满，丢弃命令 %s", cmd.Kind)
		return false
	}
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for {
		select {
		case cmd := <-d.cmds:
			d.dispatch(cmd)
		case <-d.stopChan:
			return
		}
	}
}

// dispatch 将命令映射到控制核心的唯一对应操作
func (d *Dispatcher) dispatch(cmd types.Command) {
	switch cmd.Kind {
	case types.CmdTogglePower:
		d.ctrl.TogglePower()
	case types.CmdRequestModeChange:
		d.ctrl.RequestModeChange()
	case types.CmdSelectMode:
		d.ctrl.ApplyModeChange(cmd.Mode)
	case types.CmdAdjustParam:
		d.ctrl.AdjustSetpoint(cmd.Direction)
	case types.CmdAdjustFan:
		d.ctrl.AdjustFan(cmd.Direction)
	case types.CmdRun:
		d.ctrl.Run()
	default:
		logger.Warn("未知命令类型: %d", cmd.Kind)
		return
	}

	if d.bus != nil {
		d.bus.Publish(events.Event{
			Type:      events.EventCommandAccepted,
			Timestamp: time.Now(),
			Snapshot:  d.ctrl.Snapshot(),
			Data: events.CommandEventData{
				Command: cmd.Kind.String(),
				Detail:  commandDetail(cmd),
			},
		})
	}
}

func commandDetail(cmd types.Command) string {
	switch cmd.Kind {
	case types.CmdSelectMode:
		return string(cmd.Mode)
	case types.CmdAdjustParam, types.CmdAdjustFan:
		return cmd.Direction.String()
	}
	return ""
}
