// internal/sensor/sensor.go

package sensor

import (
	"math/rand"
	"sync"
)

// Source 环境量采集接口，开机时读取一次用于初始化设定值
type Source interface {
	ReadTemperature() float32
	ReadHumidity() float32
}

// SimSource 模拟 DHT22 传感器
// 在基准值附近做小幅随机游走
type SimSource struct {
	mu          sync.Mutex
	rng         *rand.Rand
	temperature float32
	humidity    float32
}

// NewSimSource 创建模拟传感器，baseTemp 单位 °C，baseHumidity 单位 %
func NewSimSource(baseTemp, baseHumidity float32, seed int64) *SimSource {
	return &SimSource{
		rng:         rand.New(rand.NewSource(seed)),
		temperature: baseTemp,
		humidity:    baseHumidity,
	}
}

func (s *SimSource) ReadTemperature() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature += s.jitter(0.05)
	return s.temperature
}

func (s *SimSource) ReadHumidity() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.humidity += s.jitter(0.2)
	if s.humidity < 0 {
		s.humidity = 0
	}
	if s.humidity > 100 {
		s.humidity = 100
	}
	return s.humidity
}

func (s *SimSource) jitter(scale float32) float32 {
	return (s.rng.Float32()*2 - 1) * scale
}

// Fixed 固定读数的传感器，用于测试
type Fixed struct {
	Temperature float32
	Humidity    float32
}

func (f Fixed) ReadTemperature() float32 { return f.Temperature }
func (f Fixed) ReadHumidity() float32    { return f.Humidity }
