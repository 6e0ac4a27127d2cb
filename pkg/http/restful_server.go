package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"isharati.xyz/netdiag-service/pkg/events"
	"isharati.xyz/netdiag-service/pkg/metrics"
	"isharati.xyz/netdiag-service/pkg/netdiag"
	"isharati.xyz/netdiag-service/pkg/report"
)

type RestfulServer struct {
	Server           *gin.Engine
	NetDiag          *netdiag.NetDiag
	RateLimiterStore *netdiag.RateLimiterStore
	Metrics          *metrics.Metrics
	Hub              *events.Hub
	ReportOptions    report.Options
}

func (rs *RestfulServer) CheckClientLimiter(clientID string) bool {
	return rs.RateLimiterStore.Allow(clientID)
}

func (rs *RestfulServer) SetLimiter(clientID string, clientRate float64, clientBurst int) bool {
	if rs.RateLimiterStore == nil {
		return false
	}
	rs.RateLimiterStore.SetLimiter(clientID, rate.Limit(clientRate), clientBurst)
	return true
}

func (rs *RestfulServer) Setup() {
	if rs.Metrics != nil {
		rs.Server.Use(rs.Metrics.Middleware())
		rs.Server.GET("/metrics", gin.WrapH(rs.Metrics.Handler()))
	}

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/towers", rs.GetTowers)
	rs.Server.GET("/stats", rs.GetStats)
	rs.Server.GET("/ws", rs.ServeWebsocket)
	rs.Server.POST("/limiter/:client_id", rs.PostLimiter)

	diagnoses := rs.Server.Group("/diagnoses")
	{
		diagnoses.POST("", rs.PostDiagnosis)
		diagnoses.POST("/preview", rs.PreviewDiagnosis)
		diagnoses.GET("", rs.ListDiagnoses)
		diagnoses.DELETE("", rs.ClearDiagnoses)
		diagnoses.GET("/:id", rs.GetDiagnosis)
		diagnoses.DELETE("/:id", rs.DeleteDiagnosis)
		diagnoses.GET("/:id/pdf", rs.GetDiagnosisPDF)
	}

	speedtest := rs.Server.Group("/speedtest")
	{
		speedtest.GET("/download", rs.SpeedtestDownload)
		speedtest.POST("/upload", rs.SpeedtestUpload)
		speedtest.GET("/ping", rs.SpeedtestPing)
	}
}
