package middleware

// RateLimit: per-connection message limits
type RateLimit struct {
	MaxMessageSize    int
	MessagesPerSecond float64
	BurstSize         int
}

// NewRateLimit: creates a new RateLimit configuration
func NewRateLimit(maxMessageSize int, messagesPerSecond float64, burstSize int) *RateLimit {
	return &RateLimit{
		MaxMessageSize:    maxMessageSize,
		MessagesPerSecond: messagesPerSecond,
		BurstSize:         burstSize,
	}
}

// ValidateMessageSize: checks if a message is within the size limit. Full
// canvas snapshots are the largest messages; the limit must accommodate a
// raster data URL.
func (rl *RateLimit) ValidateMessageSize(msgSize int) bool {
	return msgSize <= rl.MaxMessageSize
}
