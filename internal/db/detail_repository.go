// internal/db/detail_repository.go
package db

import (
	"fmt"

	"aircond/internal/logger"

	"gorm.io/gorm"
)

type DetailRepository struct {
	db *gorm.DB
}

func NewDetailRepository(db *gorm.DB) *DetailRepository {
	return &DetailRepository{db: db}
}

// CreateRunDetail 创建收敛运行详单
func (r *DetailRepository) CreateRunDetail(detail *RunDetail) error {
	if err := r.db.Create(detail).Error; err != nil {
		logger.Error("创建运行详单失败 - 模式: %s, 错误: %v", detail.Mode, err)
		return fmt.Errorf("创建运行详单失败: %v", err)
	}
	logger.Debug("运行详单已记录 - 模式: %s, 结果: %s, 步数: %d",
		detail.Mode, detail.Result, detail.Ticks)
	return nil
}

// ListRunDetails 按时间倒序获取最近的运行详单
func (r *DetailRepository) ListRunDetails(limit int) ([]RunDetail, error) {
	var details []RunDetail
	err := r.db.Order("start_time DESC").Limit(limit).Find(&details).Error
	if err != nil {
		logger.Error("获取运行详单失败: %v", err)
		return nil, fmt.Errorf("获取运行详单失败: %v", err)
	}
	return details, nil
}

// CreateWarning 创建告警记录
func (r *DetailRepository) CreateWarning(w *WarningRecord) error {
	if err := r.db.Create(w).Error; err != nil {
		logger.Error("创建告警记录失败 - 类型: %s, 错误: %v", w.Kind, err)
		return fmt.Errorf("创建告警记录失败: %v", err)
	}
	return nil
}

// ListWarnings 按时间倒序获取最近的告警
func (r *DetailRepository) ListWarnings(limit int) ([]WarningRecord, error) {
	var warnings []WarningRecord
	err := r.db.Order("warn_time DESC").Limit(limit).Find(&warnings).Error
	if err != nil {
		logger.Error("获取告警记录失败: %v", err)
		return nil, fmt.Errorf("获取告警记录失败: %v", err)
	}
	return warnings, nil
}

// CreateOperation 创建操作日志
func (r *DetailRepository) CreateOperation(op *OperationLog) error {
	if err := r.db.Create(op).Error; err != nil {
		logger.Error("创建操作日志失败 - 命令: %s, 错误: %v", op.Command, err)
		return fmt.Errorf("创建操作日志失败: %v", err)
	}
	return nil
}

// ListOperations 按时间倒序获取最近的操作日志
func (r *DetailRepository) ListOperations(limit int) ([]OperationLog, error) {
	var ops []OperationLog
	err := r.db.Order("op_time DESC").Limit(limit).Find(&ops).Error
	if err != nil {
		logger.Error("获取操作日志失败: %v", err)
		return nil, fmt.Errorf("获取操作日志失败: %v", err)
	}
	return ops, nil
}
