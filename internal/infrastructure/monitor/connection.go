package monitor

import (
	"context"
	"sync"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/masterplan/backend/internal/infrastructure/blob"
)

const goalsBucket = "goals"

// Monitor periodically checks the blob store and, when the share registry is
// redis-backed, the Redis connection.
type Monitor struct {
	blob  *blob.Store
	redis *redislib.Client

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

// New creates a Monitor; redis may be nil when the in-memory share registry
// is in use.
func New(blobStore *blob.Store, redis *redislib.Client, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		blob:     blobStore,
		redis:    redis,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.status.Blob {
		return false
	}
	return !m.status.RedisEnabled || m.status.Redis
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	blobOK, collections := m.checkBlob()
	status := Status{
		Blob:            blobOK,
		GoalCollections: collections,
		RedisEnabled:    m.redis != nil,
		Redis:           m.checkRedis(),
		LastCheck:       time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkBlob() (bool, int) {
	if m.blob == nil {
		return false, 0
	}
	size, err := m.blob.Size(goalsBucket)
	if err != nil {
		m.logger.Warn("blob store check failed", zap.Error(err))
		return false, size
	}
	return true, size
}

func (m *Monitor) checkRedis() bool {
	if m.redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.redis.Ping(ctx).Err() == nil
}
