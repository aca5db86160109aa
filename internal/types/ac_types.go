// internal/types/ac_types.go

package types

// Mode 空调工作模式
type Mode string

const (
	ModeIdle             Mode = "idle"
	ModeCooling          Mode = "cooling"
	ModeHeating          Mode = "heating"
	ModeVentilation      Mode = "ventilation"
	ModeHumidification   Mode = "humidification"
	ModeDehumidification Mode = "dehumidification"
)

// Valid 检查是否为合法模式
func (m Mode) Valid() bool {
	switch m {
	case ModeIdle, ModeCooling, ModeHeating, ModeVentilation,
		ModeHumidification, ModeDehumidification:
		return true
	}
	return false
}

// FanLevel 送风档位，共六档，按序排列
type FanLevel int

const (
	FanOff FanLevel = iota
	Fan20
	Fan40
	Fan60
	Fan80
	Fan100
)

// Percent 档位对应的功率百分比
func (f FanLevel) Percent() int {
	return int(f) * 20
}

func (f FanLevel) String() string {
	switch f {
	case FanOff:
		return "off"
	case Fan20:
		return "20%"
	case Fan40:
		return "40%"
	case Fan60:
		return "60%"
	case Fan80:
		return "80%"
	case Fan100:
		return "100%"
	}
	return "unknown"
}

// Direction 参数调节方向
type Direction int

const (
	Decrease Direction = iota
	Increase
)

func (d Direction) String() string {
	if d == Increase {
		return "increase"
	}
	return "decrease"
}

// CommandKind 遥控命令类型
type CommandKind int

const (
	CmdTogglePower CommandKind = iota // 电源开关
	CmdRequestModeChange              // 进入模式选择
	CmdSelectMode                     // 选择工作模式
	CmdAdjustParam                    // 调节设定值
	CmdAdjustFan                      // 调节风速
	CmdRun                            // 启动收敛运行
)

var commandNames = map[CommandKind]string{
	CmdTogglePower:       "TogglePower",
	CmdRequestModeChange: "RequestModeChange",
	CmdSelectMode:        "SelectMode",
	CmdAdjustParam:       "AdjustParam",
	CmdAdjustFan:         "AdjustFan",
	CmdRun:               "Run",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command 一条离散遥控命令，Mode/Direction 仅对相应类型有效
type Command struct {
	Kind      CommandKind
	Mode      Mode
	Direction Direction
}

// Snapshot 空调状态快照，供上报和查询使用
type Snapshot struct {
	Power               bool     `json:"power"`
	Mode                Mode     `json:"mode"`
	FanLevel            FanLevel `json:"fan_level"`
	FanPercent          int      `json:"fan_percent"`
	SetTemperature      float32  `json:"set_temperature"`
	MeasuredTemperature float32  `json:"measured_temperature"`
	SetHumidity         float32  `json:"set_humidity"`
	MeasuredHumidity    float32  `json:"measured_humidity"`
	ModeChangeArmed     bool     `json:"mode_change_armed"`
}
