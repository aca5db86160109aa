// internal/ac/types.go

package ac

import (
	"aircond/internal/types"
)

// 温度距离带边界与容差
const (
	TempBoundHigh        float32 = 3.0
	TempBoundMedium      float32 = 1.0
	TempBoundLow         float32 = 0.5
	TemperatureTolerance float32 = 0.1
)

// 湿度距离带边界与容差
const (
	HumidityBoundHigh   float32 = 10.0
	HumidityBoundMedium float32 = 5.0
	HumidityBoundLow    float32 = 2.0
	HumidityTolerance   float32 = 0.1
)

// 每次按键的设定值步进量
const (
	TemperatureStep float32 = 0.1
	HumidityStep    float32 = 0.5
)

// paramKind 被收敛的参数种类
type paramKind int

const (
	paramTemperature paramKind = iota
	paramHumidity
)

func (k paramKind) String() string {
	if k == paramHumidity {
		return "humidity"
	}
	return "temperature"
}

// paramProfile 某一方向性模式下被调节参数的档案
// 温度与湿度路径共用同一套收敛结构，仅常量不同
type paramProfile struct {
	kind      paramKind
	step      float32 // 设定值每次按键步进量
	tolerance float32
	sign      float32 // 残差符号约定：制热/加湿 +1，制冷/除湿 -1
	tickRate  func(diff float32) float32
}

var modeProfiles = map[types.Mode]paramProfile{
	types.ModeHeating: {
		kind: paramTemperature, step: TemperatureStep,
		tolerance: TemperatureTolerance, sign: +1,
		tickRate: CalculateTemperatureTickRate,
	},
	types.ModeCooling: {
		kind: paramTemperature, step: TemperatureStep,
		tolerance: TemperatureTolerance, sign: -1,
		tickRate: CalculateTemperatureTickRate,
	},
	types.ModeHumidification: {
		kind: paramHumidity, step: HumidityStep,
		tolerance: HumidityTolerance, sign: +1,
		tickRate: CalculateHumidityTickRate,
	},
	types.ModeDehumidification: {
		kind: paramHumidity, step: HumidityStep,
		tolerance: HumidityTolerance, sign: -1,
		tickRate: CalculateHumidityTickRate,
	},
}

// CalculateTemperatureTickRate 根据温度残差大小选择单步调节量
// 区间为半开区间，边界值落入速率更高的档
func CalculateTemperatureTickRate(diff float32) float32 {
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff >= TempBoundHigh:
		return 0.5
	case diff >= TempBoundMedium:
		return 0.3
	case diff >= TempBoundLow:
		return 0.2
	default:
		return 0.1
	}
}

// CalculateHumidityTickRate 根据湿度残差大小选择单步调节量
func CalculateHumidityTickRate(diff float32) float32 {
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff >= HumidityBoundHigh:
		return 0.5
	case diff >= HumidityBoundMedium:
		return 0.3
	case diff >= HumidityBoundLow:
		return 0.2
	default:
		return 0.1
	}
}
