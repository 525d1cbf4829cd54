package client

import (
	"strings"

	"github.com/larsw/accumulo/pkg/common"
)

// Durability controls how a write is persisted by the tablet servers
// before it is acknowledged.
type Durability int8

const (
	// DurabilityDefault uses the durability configured for the table.
	DurabilityDefault Durability = iota

	// DurabilityNone does not persist the write at all.
	DurabilityNone

	// DurabilityLog writes to the write-ahead log without forcing it out.
	DurabilityLog

	// DurabilityFlush flushes the write-ahead log to the OS.
	DurabilityFlush

	// DurabilitySync syncs the write-ahead log to disk.
	DurabilitySync
)

func (d Durability) String() string {
	switch d {
	case DurabilityDefault:
		return "default"
	case DurabilityNone:
		return "none"
	case DurabilityLog:
		return "log"
	case DurabilityFlush:
		return "flush"
	case DurabilitySync:
		return "sync"
	}

	panic("invalid durability")
}

// DurabilityFromString parses a durability value. The lookup is
// case-insensitive; an unrecognized value is a parse error, never a
// silent default.
func DurabilityFromString(value string) (Durability, error) {
	switch strings.ToLower(value) {
	case "default":
		return DurabilityDefault, nil
	case "none":
		return DurabilityNone, nil
	case "log":
		return DurabilityLog, nil
	case "flush":
		return DurabilityFlush, nil
	case "sync":
		return DurabilitySync, nil
	}

	return DurabilityDefault, common.NewParseError(BatchWriterDurabilityKey, value, nil)
}
