// internal/config/config.go

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用运行配置，全部来自环境变量（支持 .env 文件）
type Config struct {
	HTTPPort        int           // HTTP 服务端口
	DBPath          string        // sqlite 数据库文件路径
	LogLevel        string        // debug/info/warn/error/off
	TickDelay       time.Duration // 收敛循环每步之间的等待时间
	MonitorInterval time.Duration // 状态监控上报周期
	CommandQueue    int           // 命令队列长度
	BaseTemperature float32       // 模拟传感器基准温度
	BaseHumidity    float32       // 模拟传感器基准湿度
}

// Load 读取配置，缺省值对应台式样机的默认参数
func Load() *Config {
	// .env 不存在时静默忽略，与 shell 环境变量共用一套键名
	_ = godotenv.Load()

	return &Config{
		HTTPPort:        envInt("AIRCOND_HTTP_PORT", 8080),
		DBPath:          envString("AIRCOND_DB_PATH", "aircond.db"),
		LogLevel:        envString("AIRCOND_LOG_LEVEL", "info"),
		TickDelay:       envDuration("AIRCOND_TICK_DELAY_MS", 1000),
		MonitorInterval: envDuration("AIRCOND_MONITOR_INTERVAL_MS", 5000),
		CommandQueue:    envInt("AIRCOND_COMMAND_QUEUE", 16),
		BaseTemperature: envFloat("AIRCOND_BASE_TEMPERATURE", 22.0),
		BaseHumidity:    envFloat("AIRCOND_BASE_HUMIDITY", 45.0),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

func envDuration(key string, defMillis int) time.Duration {
	return time.Duration(envInt(key, defMillis)) * time.Millisecond
}
