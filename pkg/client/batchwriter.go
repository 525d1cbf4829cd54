package client

import (
	"fmt"
	"strconv"
	"time"

	"github.com/larsw/accumulo/pkg/common"
)

// Defaults for the batch writer tuning parameters. They apply whenever the
// corresponding client property is absent.
const (
	// DefaultBatchWriterMaxLatency - how long a mutation may be buffered client side.
	DefaultBatchWriterMaxLatency = 120 * time.Second

	// DefaultBatchWriterMaxTimeout - zero means wait indefinitely for unresponsive servers.
	DefaultBatchWriterMaxTimeout = time.Duration(0)

	// DefaultBatchWriterMaxWriteThreads - background threads sending mutations.
	DefaultBatchWriterMaxWriteThreads = 3
)

// DefaultBatchWriterMaxMemory - memory used to buffer mutations before sending.
const DefaultBatchWriterMaxMemory = 50 * common.MB

// BatchWriterConfig holds the tuning parameters governing a batch writer.
// Each field is independently optional in the client property bundle; the
// zero bundle yields this record fully at its defaults.
type BatchWriterConfig struct {
	// Durability used for writes sent by the writer.
	Durability Durability

	// MaxLatency is the longest a mutation is buffered before a flush.
	MaxLatency time.Duration

	// MaxMemory is the number of bytes used to buffer mutations.
	MaxMemory uint64

	// MaxTimeout is how long to wait for an unresponsive server.
	// Zero means wait indefinitely.
	MaxTimeout time.Duration

	// MaxWriteThreads is the number of background send threads.
	MaxWriteThreads int
}

// NewBatchWriterConfig returns a config with every field at its default.
func NewBatchWriterConfig() *BatchWriterConfig {
	return &BatchWriterConfig{
		Durability:      DurabilityDefault,
		MaxLatency:      DefaultBatchWriterMaxLatency,
		MaxMemory:       DefaultBatchWriterMaxMemory,
		MaxTimeout:      DefaultBatchWriterMaxTimeout,
		MaxWriteThreads: DefaultBatchWriterMaxWriteThreads,
	}
}

func (bwc *BatchWriterConfig) String() string {
	return fmt.Sprintf("durability=%s maxLatency=%s maxMemory=%d maxTimeout=%s maxWriteThreads=%d",
		bwc.Durability, bwc.MaxLatency, bwc.MaxMemory, bwc.MaxTimeout, bwc.MaxWriteThreads)
}

// BatchWriterConfigFromProperties materializes a BatchWriterConfig from the
// resolved client property bundle. Every field starts at its default and is
// overwritten only when its property is present. A malformed value is a
// parse error surfaced to the caller, never silently defaulted.
func BatchWriterConfigFromProperties(props Properties) (*BatchWriterConfig, error) {
	bwc := NewBatchWriterConfig()

	if value, ok := props.Get(BatchWriterDurabilityKey); ok {
		durability, err := DurabilityFromString(value)
		if err != nil {
			return nil, err
		}
		bwc.Durability = durability
	}
	if value, ok := props.Get(BatchWriterMaxLatencySecKey); ok {
		seconds, err := parseSeconds(BatchWriterMaxLatencySecKey, value)
		if err != nil {
			return nil, err
		}
		bwc.MaxLatency = seconds
	}
	if value, ok := props.Get(BatchWriterMaxMemoryBytesKey); ok {
		bytes, err := parseCount(BatchWriterMaxMemoryBytesKey, value)
		if err != nil {
			return nil, err
		}
		bwc.MaxMemory = uint64(bytes)
	}
	if value, ok := props.Get(BatchWriterMaxTimeoutSecKey); ok {
		seconds, err := parseSeconds(BatchWriterMaxTimeoutSecKey, value)
		if err != nil {
			return nil, err
		}
		bwc.MaxTimeout = seconds
	}
	if value, ok := props.Get(BatchWriterMaxWriteThreadsKey); ok {
		threads, err := parseCount(BatchWriterMaxWriteThreadsKey, value)
		if err != nil {
			return nil, err
		}
		if threads == 0 {
			return nil, common.NewParseError(BatchWriterMaxWriteThreadsKey, value, fmt.Errorf("must be positive"))
		}
		bwc.MaxWriteThreads = int(threads)
	}

	return bwc, nil
}

// parseSeconds parses a non-negative integer number of seconds into a duration.
func parseSeconds(property, value string) (time.Duration, error) {
	seconds, err := parseCount(property, value)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

// parseCount parses a non-negative integer property value.
func parseCount(property, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, common.NewParseError(property, value, err)
	}
	if n < 0 {
		return 0, common.NewParseError(property, value, fmt.Errorf("must not be negative"))
	}
	return n, nil
}
