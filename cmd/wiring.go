package cmd

import (
	"task-tracker.com/task-tracker/internal/audit"
	config "task-tracker.com/task-tracker/internal/configs"
)

// newAuditLog builds the configured audit backend. The returned close
// func releases the redis client; it is a no-op for the memory backend.
func newAuditLog(cfg config.Config) (audit.Log, func()) {
	if cfg.AuditBackend == config.AuditBackendRedis {
		client := config.NewRedisClient(cfg.RedisAddr)
		return audit.NewRedisLog(client, cfg.RedisAuditKey), client.Close
	}

	return audit.NewMemoryLog(), func() {}
}
