package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"isharati.xyz/netdiag-service/pkg/common"
)

const (
	defaultDownloadBytes = 10_000_000
	maxDownloadBytes     = 50_000_000
	maxUploadBytes       = 50_000_000
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type DownloadQuery struct {
	Size int `zog:"size"`
}

var downloadQuerySchema = z.Struct(z.Shape{
	"Size": z.Int().GTE(0).LTE(maxDownloadBytes),
})

// SpeedtestDownload streams a block of zero bytes for client side throughput
// measurement.
func (rs *RestfulServer) SpeedtestDownload(c *gin.Context) {
	var q DownloadQuery
	if errs := downloadQuerySchema.Parse(zhttp.Request(c.Request), &q); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}
	if q.Size == 0 {
		q.Size = defaultDownloadBytes
	}

	c.Header("Cache-Control", "no-store")
	size := int64(q.Size)
	c.DataFromReader(http.StatusOK, size, "application/octet-stream",
		io.LimitReader(zeroReader{}, size),
		map[string]string{"Content-Disposition": `attachment; filename="testfile"`},
	)
}

func (rs *RestfulServer) SpeedtestUpload(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	start := time.Now()
	n, err := io.Copy(io.Discard, http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}
	elapsed := time.Since(start)

	var mbps float64
	if elapsed > 0 {
		mbps = common.RoundTo(float64(n)*8/elapsed.Seconds()/1e6, 2)
	}

	c.JSON(http.StatusOK, gin.H{
		"bytes":       n,
		"duration_ms": common.RoundTo(float64(elapsed.Microseconds())/1000, 3),
		"mbps":        mbps,
	})
}

func (rs *RestfulServer) SpeedtestPing(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"pong": time.Now().UnixMilli()})
}
