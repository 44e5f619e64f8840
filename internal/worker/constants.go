package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Cache Sweep Job
// ============================================================================

// Log messages for cache sweep operations
const (
	LogMsgCacheSweepStarting  = "Cache sweep starting"
	LogMsgCacheSweepCompleted = "Cache sweep completed"
)
