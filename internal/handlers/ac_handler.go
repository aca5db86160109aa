// internal/handlers/ac_handler.go

package handlers

import (
	"net/http"

	"aircond/internal/ac"
	"aircond/internal/db"
	"aircond/internal/dispatcher"
	"aircond/internal/remote"
	"aircond/internal/types"

	"github.com/gin-gonic/gin"
)

// 模式选择请求
type SelectModeRequest struct {
	Mode string `json:"mode" binding:"required"` // idle/cooling/heating/ventilation/humidification/dehumidification
}

// 方向调节请求
type AdjustRequest struct {
	Direction string `json:"direction" binding:"required"` // increase/decrease
}

// IR 原始码请求
type IRRequest struct {
	Code *uint8 `json:"code" binding:"required"` // 指针类型以允许 0 值
}

// 方向映射表
var directionMap = map[string]types.Direction{
	"increase": types.Increase,
	"decrease": types.Decrease,
}

// ACHandler 空调控制面板处理器
// 控制命令一律经分发器排队执行，状态查询直接读快照
type ACHandler struct {
	ctrl       *ac.Controller
	dispatcher *dispatcher.Dispatcher
	detailRepo *db.DetailRepository
}

func NewACHandler(ctrl *ac.Controller, d *dispatcher.Dispatcher, detailRepo *db.DetailRepository) *ACHandler {
	return &ACHandler{
		ctrl:       ctrl,
		dispatcher: d,
		detailRepo: detailRepo,
	}
}

// enqueue 将命令提交到分发器
func (h *ACHandler) enqueue(c *gin.Context, cmd types.Command) {
	if !h.dispatcher.Submit(cmd) {
		c.JSON(http.StatusServiceUnavailable, Response{
			Code: 503,
			Msg:  "命令队列已满，请稍后重试",
		})
		return
	}
	c.JSON(http.StatusAccepted, Response{
		Code: 202,
		Msg:  "命令已入队",
		Data: gin.H{"command": cmd.Kind.String()},
	})
}

// TogglePower 电源开关
func (h *ACHandler) TogglePower(c *gin.Context) {
	h.enqueue(c, types.Command{Kind: types.CmdTogglePower})
}

// RequestModeChange 进入模式选择
func (h *ACHandler) RequestModeChange(c *gin.Context) {
	h.enqueue(c, types.Command{Kind: types.CmdRequestModeChange})
}

// SelectMode 选择工作模式
func (h *ACHandler) SelectMode(c *gin.Context) {
	var req SelectModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "Invalid request",
			Err:  err.Error(),
		})
		return
	}

	mode := types.Mode(req.Mode)
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "无效的工作模式",
		})
		return
	}

	h.enqueue(c, types.Command{Kind: types.CmdSelectMode, Mode: mode})
}

// AdjustParam 调节设定值
func (h *ACHandler) AdjustParam(c *gin.Context) {
	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "Invalid request",
			Err:  err.Error(),
		})
		return
	}

	dir, ok := directionMap[req.Direction]
	if !ok {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "无效的调节方向，必须是 increase 或 decrease",
		})
		return
	}

	h.enqueue(c, types.Command{Kind: types.CmdAdjustParam, Direction: dir})
}

// AdjustFan 调节风速
func (h *ACHandler) AdjustFan(c *gin.Context) {
	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "Invalid request",
			Err:  err.Error(),
		})
		return
	}

	dir, ok := directionMap[req.Direction]
	if !ok {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "无效的调节方向，必须是 increase 或 decrease",
		})
		return
	}

	h.enqueue(c, types.Command{Kind: types.CmdAdjustFan, Direction: dir})
}

// Run 启动收敛运行
func (h *ACHandler) Run(c *gin.Context) {
	h.enqueue(c, types.Command{Kind: types.CmdRun})
}

// IRCode 按 IR 原始码下发命令，未知码按遥控器约定静默忽略
func (h *ACHandler) IRCode(c *gin.Context) {
	var req IRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Code: 400,
			Msg:  "Invalid request",
			Err:  err.Error(),
		})
		return
	}

	cmd, ok := remote.Decode(*req.Code)
	if !ok {
		c.JSON(http.StatusOK, Response{
			Code: 200,
			Msg:  "未知按键码，已忽略",
		})
		return
	}

	h.enqueue(c, cmd)
}

// State 查询当前状态快照
func (h *ACHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "ok",
		Data: h.ctrl.Snapshot(),
	})
}

// RunDetails 查询最近的收敛运行详单
func (h *ACHandler) RunDetails(c *gin.Context) {
	details, err := h.detailRepo.ListRunDetails(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{
			Code: 500,
			Msg:  "获取运行详单失败",
			Err:  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "ok",
		Data: details,
	})
}

// Warnings 查询最近的告警记录
func (h *ACHandler) Warnings(c *gin.Context) {
	warnings, err := h.detailRepo.ListWarnings(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{
			Code: 500,
			Msg:  "获取告警记录失败",
			Err:  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "ok",
		Data: warnings,
	})
}

// Operations 查询最近的操作日志
func (h *ACHandler) Operations(c *gin.Context) {
	ops, err := h.detailRepo.ListOperations(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{
			Code: 500,
			Msg:  "获取操作日志失败",
			Err:  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  "ok",
		Data: ops,
	})
}
