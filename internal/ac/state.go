// internal/ac/state.go

package ac

import (
	"aircond/internal/sensor"
	"aircond/internal/types"
)

// ApplianceState 整机运行状态，进程生命周期内唯一实例
// 由 Controller 独占持有并修改，外部只能拿到快照
type ApplianceState struct {
	power               bool
	mode                types.Mode
	fanLevel            types.FanLevel
	setTemperature      float32
	measuredTemperature float32
	setHumidity         float32
	measuredHumidity    float32
	modeChangeEnabled   bool // 一次性模式切换门闩
}

// NewApplianceState 开机初始化状态
// 设定值取首次传感器读数，保证开机时无需收敛
func NewApplianceState(src sensor.Source) *ApplianceState {
	t := src.ReadTemperature()
	h := src.ReadHumidity()
	return &ApplianceState{
		power:               false,
		mode:                types.ModeIdle,
		fanLevel:            types.FanOff,
		setTemperature:      t,
		measuredTemperature: t,
		setHumidity:         h,
		measuredHumidity:    h,
	}
}

func (s *ApplianceState) snapshot() types.Snapshot {
	return types.Snapshot{
		Power:               s.power,
		Mode:                s.mode,
		FanLevel:            s.fanLevel,
		FanPercent:          s.fanLevel.Percent(),
		SetTemperature:      s.setTemperature,
		MeasuredTemperature: s.measuredTemperature,
		SetHumidity:         s.setHumidity,
		MeasuredHumidity:    s.measuredHumidity,
		ModeChangeArmed:     s.modeChangeEnabled,
	}
}

// setpoint 返回指定参数的设定值
func (s *ApplianceState) setpoint(kind paramKind) float32 {
	if kind == paramHumidity {
		return s.setHumidity
	}
	return s.setTemperature
}

// measured 返回指定参数的测量值
func (s *ApplianceState) measured(kind paramKind) float32 {
	if kind == paramHumidity {
		return s.measuredHumidity
	}
	return s.measuredTemperature
}

func (s *ApplianceState) setSetpoint(kind paramKind, v float32) {
	if kind == paramHumidity {
		s.setHumidity = v
	} else {
		s.setTemperature = v
	}
}

func (s *ApplianceState) setMeasured(kind paramKind, v float32) {
	if kind == paramHumidity {
		s.measuredHumidity = v
	} else {
		s.measuredTemperature = v
	}
}
