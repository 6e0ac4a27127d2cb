package grpc

import (
	"context"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"isharati.xyz/netdiag-service/pkg/common"
	"isharati.xyz/netdiag-service/pkg/netdiag"
)

func validateRecordID(id *string) z.ZogIssueList {
	var recordIDValidator = z.String().Trim().Min(1).Required()
	return recordIDValidator.Validate(id)
}

func logFailure(method string, err error) {
	if errors.Is(err, netdiag.ErrRecordNotFound) {
		return
	}
	common.GetLoggerWith(common.LoggerNameGrpcServer).Warn("Call failed",
		zap.String("method", method),
		zap.Error(err),
	)
}

func (s *NetDiagServer) Diagnose(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sub, errs := netdiag.ParseDiagnosisRequest(req.AsMap())
	if errs != nil {
		return failure(fmt.Sprintf("validation error: %v", errs))
	}

	rec, err := s.NetDiag.Diagnosis.Submit(sub)
	if err != nil {
		logFailure("Diagnose", err)
		return failure(err.Error())
	}

	return statusResponse(true, "OK", "record", rec)
}

func (s *NetDiagServer) GetDiagnosis(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := req.GetValue()
	if err := validateRecordID(&id); err != nil {
		return failure(fmt.Sprintf("validation error: %v", err))
	}

	rec, err := s.NetDiag.History.Get(id)
	if err != nil {
		logFailure("GetDiagnosis", err)
		return failure(err.Error())
	}

	return statusResponse(true, "OK", "record", rec)
}

func (s *NetDiagServer) ListDiagnoses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var q netdiag.HistoryQuery
	if errs := netdiag.HistoryQuerySchema.Parse(req.AsMap(), &q); errs != nil {
		return failure(fmt.Sprintf("validation error: %v", errs))
	}

	records, err := s.NetDiag.History.List(q.ToFilter())
	if err != nil {
		logFailure("ListDiagnoses", err)
		return failure(err.Error())
	}

	return statusResponse(true, "OK", "records", records)
}

func (s *NetDiagServer) DeleteDiagnosis(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := req.GetValue()
	if err := validateRecordID(&id); err != nil {
		return failure(fmt.Sprintf("validation error: %v", err))
	}

	if err := s.NetDiag.History.Delete(id); err != nil {
		logFailure("DeleteDiagnosis", err)
		return failure(err.Error())
	}

	return statusResponse(true, "OK", "", nil)
}

func (s *NetDiagServer) ClearDiagnoses(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	if err := s.NetDiag.History.Clear(); err != nil {
		logFailure("ClearDiagnoses", err)
		return failure(err.Error())
	}

	return statusResponse(true, "OK", "", nil)
}

func (s *NetDiagServer) GetStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	stats, err := s.NetDiag.History.Stats()
	if err != nil {
		logFailure("GetStats", err)
		return failure(err.Error())
	}

	return statusResponse(true, "OK", "stats", stats)
}

type limiterRequest struct {
	ClientID string  `zog:"client_id"`
	Rate     float64 `zog:"rate"`
	Burst    int     `zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"ClientID": z.String().Trim().Min(1).Required(),
	"Rate":     z.Float64().GT(0).Required(),
	"Burst":    z.Int().GT(0).Required(),
})

func (s *NetDiagServer) PostLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r limiterRequest
	if errs := limiterRequestSchema.Parse(req.AsMap(), &r); errs != nil {
		return failure(fmt.Sprintf("validation error: %v", errs))
	}

	if s.RateLimiterStore == nil {
		return failure("RateLimiterStore is not used. No effect.")
	}

	s.RateLimiterStore.SetLimiter(r.ClientID, rate.Limit(r.Rate), r.Burst)
	return statusResponse(true, "OK", "", nil)
}
