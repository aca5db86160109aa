package db

import "time"

// 收敛运行详单表
type RunDetail struct {
	ID            int       `gorm:"primaryKey"`
	Mode          string    `gorm:"type:varchar(32)"`
	Result        string    `gorm:"type:varchar(16)"` // converged/aborted
	StartTime     time.Time `gorm:"type:datetime"`
	EndTime       time.Time `gorm:"type:datetime"`
	Ticks         int
	Setpoint      float32 `gorm:"type:float(5, 2)"`
	StartMeasured float32 `gorm:"type:float(5, 2)"`
	FinalMeasured float32 `gorm:"type:float(5, 2)"`
}

// 告警记录表
type WarningRecord struct {
	ID       int       `gorm:"primaryKey"`
	Kind     string    `gorm:"type:varchar(64)"`
	Mode     string    `gorm:"type:varchar(32)"`
	Setpoint float32   `gorm:"type:float(5, 2)"`
	Measured float32   `gorm:"type:float(5, 2)"`
	WarnTime time.Time `gorm:"type:datetime"`
}

// 操作日志表
type OperationLog struct {
	ID      int       `gorm:"primaryKey"`
	OpTime  time.Time `gorm:"type:datetime"`
	Command string    `gorm:"type:varchar(32)"`
	Detail  string    `gorm:"type:varchar(64)"`
	Mode    string    `gorm:"type:varchar(32)"` // 执行后所处模式
}
