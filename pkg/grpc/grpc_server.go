package grpc

import (
	"encoding/json"
	"net"

	"google.golang.org/protobuf/types/known/structpb"

	pb "isharati.xyz/netdiag-service/pkg/grpc/netdiag_service"
	"isharati.xyz/netdiag-service/pkg/netdiag"
)

type NetDiagServer struct {
	NetDiag          *netdiag.NetDiag
	RateLimiterStore *netdiag.RateLimiterStore
	pb.UnimplementedNetDiagServiceServer
}

func (s *NetDiagServer) CheckClientLimiter(clientID string) bool {
	return s.RateLimiterStore.Allow(clientID)
}

// clientIDFromAddr keys clients by host so that reconnecting from a new port
// keeps the same allowance.
func clientIDFromAddr(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr.String()); err == nil {
		return host
	}
	return addr.String()
}

// statusResponse builds the {success, message, <key>: payload} reply every
// method returns. The payload goes through its JSON form so that field names
// match the HTTP API.
func statusResponse(success bool, message string, key string, payload any) (*structpb.Struct, error) {
	fields := map[string]any{
		"success": success,
		"message": message,
	}

	if key != "" && payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		fields[key] = decoded
	}

	return structpb.NewStruct(fields)
}

func failure(message string) (*structpb.Struct, error) {
	return statusResponse(false, message, "", nil)
}
