package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	pb "isharati.xyz/netdiag-service/pkg/grpc/netdiag_service"
)

var (
	maxUsers     = flag.Int("users", 1000, "number of simulated users")
	httpHostPort = flag.String("http", "127.0.0.1:1080", "http server host:port")
	grpcHostPort = flag.String("grpc", "127.0.0.1:10801", "grpc server host:port")
)

var grpcClient pb.NetDiagServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var (
	succeeded atomic.Int64
	rejected  atomic.Int64
	failed    atomic.Int64
)

var operators = []string{"Mobilis", "Djezzy", "Ooredoo"}

var places = []string{"Indoor", "Outdoor"}

var cities = []struct{ wilaya, city string }{
	{"Alger", "Hydra"},
	{"Alger", "Bab Ezzouar"},
	{"Boumerdes", "Thenia"},
	{"Boumerdes", "Corso"},
	{"Tizi Ouzou", "Draa Ben Khedda"},
}

func main() {
	flag.Parse()

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", *httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.Dial(*grpcHostPort, grpc.WithInsecure())
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = pb.NewNetDiagServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range *maxUsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doSession(i)
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	total := succeeded.Load() + rejected.Load() + failed.Load()
	fmt.Printf(
		"\n\rran %v sessions: used time=%v seconds, throughput=%v action/second, ok=%v, rate limited=%v, failed=%v\n",
		*maxUsers, usedTime.Seconds(), float64(total)/usedTime.Seconds(),
		succeeded.Load(), rejected.Load(), failed.Load(),
	)
}

func withRand[T any](fn func(r *rand.Rand) T) T {
	rndMu.Lock()
	defer rndMu.Unlock()
	return fn(rnd)
}

func flipCoin() bool {
	return withRand(func(r *rand.Rand) bool { return r.Int31n(100000)%2 == 0 })
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := withRand(func(r *rand.Rand) float64 { return min + r.Float64()*(max-min) })
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func rndInt(min, max int) int {
	return withRand(func(r *rand.Rand) int { return min + r.Intn(max-min+1) })
}

func pick[T any](items []T) T {
	return items[rndInt(0, len(items)-1)]
}

func randomMeasurement() map[string]any {
	loc := pick(cities)
	m := map[string]any{
		"lat":          rndFloat64(36.60, 36.85, 4),
		"lon":          rndFloat64(2.90, 3.30, 4),
		"rsrp":         rndInt(-125, -65),
		"sinr":         rndInt(-5, 30),
		"network_type": pick([]string{"4G", "4G+", "3G"}),
		"operator":     pick(operators),
		"place":        pick(places),
		"wilaya":       loc.wilaya,
		"city":         loc.city,
	}
	if flipCoin() {
		m["speed_data"] = map[string]any{
			"download": rndFloat64(0.2, 80, 2),
			"upload":   rndFloat64(0.1, 30, 2),
			"ping":     rndFloat64(10, 200, 1),
		}
	}
	return m
}

func count(statusCode int, err error) {
	switch {
	case err != nil:
		failed.Add(1)
	case statusCode == http.StatusTooManyRequests:
		rejected.Add(1)
	case statusCode >= 400:
		failed.Add(1)
	default:
		succeeded.Add(1)
	}
}

func doSession(user int) {
	actions := []func(){
		submitAction,
		listAction,
		statsAction,
	}
	actionNames := []string{
		"Submit",
		"List",
		"Stats",
	}
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for user %v", actionNames[index], user)
		time.Sleep(time.Duration(100+rndInt(0, 1000)) * time.Millisecond)
	}
}

func submitAction() {
	payload := randomMeasurement()

	if flipCoin() {
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/diagnoses", *httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			count(0, err)
			return
		}
		resp.Body.Close()
		count(resp.StatusCode, nil)
		return
	}

	req, err := structpb.NewStruct(payload)
	if err != nil {
		count(0, err)
		return
	}
	resp, err := grpcClient.Diagnose(context.Background(), req)
	countGrpc(resp, err)
}

func listAction() {
	if flipCoin() {
		resp, err := http.Get(fmt.Sprintf("http://%s/diagnoses?operator=%s&limit=20", *httpHostPort, pick(operators)))
		if err != nil {
			count(0, err)
			return
		}
		resp.Body.Close()
		count(resp.StatusCode, nil)
		return
	}

	filter, _ := structpb.NewStruct(map[string]any{"operator": pick(operators), "limit": 20})
	resp, err := grpcClient.ListDiagnoses(context.Background(), filter)
	countGrpc(resp, err)
}

func statsAction() {
	if flipCoin() {
		resp, err := http.Get(fmt.Sprintf("http://%s/stats", *httpHostPort))
		if err != nil {
			count(0, err)
			return
		}
		resp.Body.Close()
		count(resp.StatusCode, nil)
		return
	}

	resp, err := grpcClient.GetStats(context.Background(), &emptypb.Empty{})
	countGrpc(resp, err)
}

func countGrpc(resp *structpb.Struct, err error) {
	if err != nil {
		if status.Code(err) == codes.ResourceExhausted {
			rejected.Add(1)
			return
		}
		count(0, err)
		return
	}
	if success, _ := resp.AsMap()["success"].(bool); !success {
		failed.Add(1)
		return
	}
	succeeded.Add(1)
}
