package diagnosis

import (
	"math"

	"isharati.xyz/netdiag-service/pkg/common"
)

// Realistic mobile network ceilings applied before a sample reaches the engine.
const (
	MaxDownloadMbps = 300.0
	MaxUploadMbps   = 100.0
	MinPingMs       = 5.0
)

type SpeedSample struct {
	Download float64 `json:"download"`
	Upload   float64 `json:"upload"`
	Ping     float64 `json:"ping"`
}

func (s SpeedSample) Valid() bool {
	for _, v := range []float64{s.Download, s.Upload, s.Ping} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// SanitizeSpeed drops malformed samples and clamps the rest to the ceilings above,
// rounding to two decimals. The input is never modified.
func SanitizeSpeed(s *SpeedSample) *SpeedSample {
	if s == nil || !s.Valid() {
		return nil
	}
	return &SpeedSample{
		Download: common.RoundTo(math.Min(s.Download, MaxDownloadMbps), 2),
		Upload:   common.RoundTo(math.Min(s.Upload, MaxUploadMbps), 2),
		Ping:     common.RoundTo(math.Max(s.Ping, MinPingMs), 2),
	}
}

func downloadOf(s *SpeedSample) *float64 {
	if s == nil {
		return nil
	}
	d := s.Download
	return &d
}
