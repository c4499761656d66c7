package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
)

const (
	statusUp   = "up"
	statusDown = "down"

	checkTimeout = 2 * time.Second
)

// CheckResult 单个依赖的检查结果
type CheckResult struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Status 服务健康状态
type Status struct {
	Service   string                 `json:"service"`
	Healthy   bool                   `json:"healthy"`
	Checks    map[string]CheckResult `json:"checks"`
	CheckedAt time.Time              `json:"checked_at"`
}

// Checker 健康检查器，探测 NATS/Redis/PostgreSQL 三个依赖
type Checker struct {
	service     string
	nc          *nats.Conn
	redisClient *redis.Client
	db          *pgxpool.Pool
}

// NewChecker 创建健康检查器
func NewChecker(service string, nc *nats.Conn, redisClient *redis.Client, db *pgxpool.Pool) *Checker {
	return &Checker{
		service:     service,
		nc:          nc,
		redisClient: redisClient,
		db:          db,
	}
}

// Check 执行健康检查，任一依赖不可用即不健康
func (h *Checker) Check(ctx context.Context) *Status {
	status := &Status{
		Service:   h.service,
		Checks:    make(map[string]CheckResult, 3),
		CheckedAt: time.Now(),
	}

	status.Checks["nats"] = h.checkNATS()
	status.Checks["redis"] = h.probe(ctx, func(ctx context.Context) error {
		return h.redisClient.Ping(ctx).Err()
	})
	status.Checks["database"] = h.probe(ctx, func(ctx context.Context) error {
		return h.db.Ping(ctx)
	})

	status.Healthy = true
	for _, check := range status.Checks {
		if check.Status != statusUp {
			status.Healthy = false
			break
		}
	}

	return status
}

// IsHealthy 检查是否健康
func (h *Checker) IsHealthy(ctx context.Context) bool {
	return h.Check(ctx).Healthy
}

// checkNATS NATS 客户端自带重连状态，不需要往返探测
func (h *Checker) checkNATS() CheckResult {
	if h.nc.IsConnected() {
		return CheckResult{Status: statusUp}
	}
	return CheckResult{Status: statusDown, Error: "not connected"}
}

// probe 带超时地探测一个依赖并记录往返耗时
func (h *Checker) probe(ctx context.Context, ping func(context.Context) error) CheckResult {
	probeCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	err := ping(probeCtx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return CheckResult{Status: statusDown, LatencyMs: latency, Error: err.Error()}
	}
	return CheckResult{Status: statusUp, LatencyMs: latency}
}

// ServeHTTP HTTP 健康检查端点
func (h *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.Check(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(status)
}
