// internal/remote/decoder.go

package remote

import (
	"aircond/internal/types"
)

// NEC 遥控器各按键的原始码
const (
	CodePower            uint8 = 162
	CodeModeSelect       uint8 = 226
	CodeParamIncrease    uint8 = 2
	CodeParamDecrease    uint8 = 152
	CodeFanPrev          uint8 = 224
	CodeFanNext          uint8 = 144
	CodeRun              uint8 = 168
	CodeModeIdle         uint8 = 104
	CodeModeCooling      uint8 = 48
	CodeModeHeating      uint8 = 24
	CodeModeVentilation  uint8 = 122
	CodeModeHumidify     uint8 = 16
	CodeModeDehumidify   uint8 = 56
)

// 原始码到命令的映射表
var commandTable = map[uint8]types.Command{
	CodePower:           {Kind: types.CmdTogglePower},
	CodeModeSelect:      {Kind: types.CmdRequestModeChange},
	CodeParamIncrease:   {Kind: types.CmdAdjustParam, Direction: types.Increase},
	CodeParamDecrease:   {Kind: types.CmdAdjustParam, Direction: types.Decrease},
	CodeFanNext:         {Kind: types.CmdAdjustFan, Direction: types.Increase},
	CodeFanPrev:         {Kind: types.CmdAdjustFan, Direction: types.Decrease},
	CodeRun:             {Kind: types.CmdRun},
	CodeModeIdle:        {Kind: types.CmdSelectMode, Mode: types.ModeIdle},
	CodeModeCooling:     {Kind: types.CmdSelectMode, Mode: types.ModeCooling},
	CodeModeHeating:     {Kind: types.CmdSelectMode, Mode: types.ModeHeating},
	CodeModeVentilation: {Kind: types.CmdSelectMode, Mode: types.ModeVentilation},
	CodeModeHumidify:    {Kind: types.CmdSelectMode, Mode: types.ModeHumidification},
	CodeModeDehumidify:  {Kind: types.CmdSelectMode, Mode: types.ModeDehumidification},
}

// Decode 将 IR 原始码翻译为遥控命令
// 未知码返回 false，由调用方静默忽略
func Decode(code uint8) (types.Command, bool) {
	cmd, ok := commandTable[code]
	return cmd, ok
}
