package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oudwins/zog/zhttp"

	"isharati.xyz/netdiag-service/pkg/models"
	"isharati.xyz/netdiag-service/pkg/netdiag"
	"isharati.xyz/netdiag-service/pkg/report"
)

func (rs *RestfulServer) parseSubmission(c *gin.Context) (*models.Submission, bool) {
	var req netdiag.DiagnosisRequest
	if errs := netdiag.DiagnosisRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return nil, false
	}
	return req.ToSubmission(), true
}

func (rs *RestfulServer) PostDiagnosis(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	sub, ok := rs.parseSubmission(c)
	if !ok {
		return
	}

	rec, err := rs.NetDiag.Diagnosis.Submit(sub)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (rs *RestfulServer) PreviewDiagnosis(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	sub, ok := rs.parseSubmission(c)
	if !ok {
		return
	}

	res, err := rs.NetDiag.Diagnosis.Preview(sub)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (rs *RestfulServer) ListDiagnoses(c *gin.Context) {
	var q netdiag.HistoryQuery
	if errs := netdiag.HistoryQuerySchema.Parse(zhttp.Request(c.Request), &q); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	records, err := rs.NetDiag.History.List(q.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (rs *RestfulServer) GetDiagnosis(c *gin.Context) {
	rec, err := rs.NetDiag.History.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (rs *RestfulServer) DeleteDiagnosis(c *gin.Context) {
	if err := rs.NetDiag.History.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (rs *RestfulServer) ClearDiagnoses(c *gin.Context) {
	if err := rs.NetDiag.History.Clear(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (rs *RestfulServer) GetStats(c *gin.Context) {
	stats, err := rs.NetDiag.History.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (rs *RestfulServer) GetDiagnosisPDF(c *gin.Context) {
	rec, err := rs.NetDiag.History.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, rec, rs.ReportOptions); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename(rec.ID)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
