// api/router.go

package api

import (
	"time"

	"aircond/internal/handlers"
	"aircond/internal/logger"
	"aircond/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRouter(acHandler *handlers.ACHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// 使用CORS中间件
	router.Use(middleware.Cors())

	// 自定义logger中间件
	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("[%s] %s %s %v", c.Request.Method, path, c.ClientIP(), time.Since(start))
	})

	// 控制面板路由组
	panel := router.Group("/panel")
	{
		// 电源开关
		panel.POST("/power", acHandler.TogglePower)
		// 进入模式选择
		panel.POST("/modeselect", acHandler.RequestModeChange)
		// 选择工作模式
		panel.POST("/mode", acHandler.SelectMode)
		// 调节设定值
		panel.POST("/param", acHandler.AdjustParam)
		// 调节风速
		panel.POST("/fan", acHandler.AdjustFan)
		// 启动收敛运行
		panel.POST("/run", acHandler.Run)
		// 按 IR 原始码下发
		panel.POST("/ir", acHandler.IRCode)
		// 状态查询
		panel.GET("/state", acHandler.State)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/details", acHandler.RunDetails)
		admin.GET("/warnings", acHandler.Warnings)
		admin.GET("/operations", acHandler.Operations)
	}

	return router
}
