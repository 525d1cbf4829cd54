package client

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Client property keys. These form the closed vocabulary of the resolved
// client property bundle; each optional tuning key is paired with its
// documented default below.
const (
	// InstanceNameKey names the instance to connect to.
	InstanceNameKey = "instance.name"

	// InstanceZooKeepersKey is the comma separated list of zookeeper hosts.
	InstanceZooKeepersKey = "instance.zookeepers"

	// AuthPrincipalKey is the principal the client authenticates as.
	AuthPrincipalKey = "auth.principal"

	// BatchWriterDurabilityKey overrides the durability used for writes.
	BatchWriterDurabilityKey = "batch.writer.durability"

	// BatchWriterMaxLatencySecKey bounds, in seconds, how long a mutation
	// may be held client side before being flushed.
	BatchWriterMaxLatencySecKey = "batch.writer.max.latency.sec"

	// BatchWriterMaxMemoryBytesKey bounds the memory used to buffer mutations.
	BatchWriterMaxMemoryBytesKey = "batch.writer.max.memory.bytes"

	// BatchWriterMaxTimeoutSecKey bounds, in seconds, how long to wait for an
	// unresponsive server. Zero means wait indefinitely.
	BatchWriterMaxTimeoutSecKey = "batch.writer.max.timeout.sec"

	// BatchWriterMaxWriteThreadsKey sets the number of background send threads.
	BatchWriterMaxWriteThreadsKey = "batch.writer.max.write.threads"
)

// Properties is an externally-resolved bundle of client properties. Values
// are raw strings; typed access goes through BatchWriterConfigFromProperties
// and friends so call sites never hand-roll parsing.
type Properties map[string]string

// Get returns the raw value for the given property key. The second return
// value reports whether the property is present.
func (p Properties) Get(key string) (string, bool) {
	value, ok := p[key]
	return value, ok
}

// Validate checks that every tuning property present in the bundle parses
// into its typed form.
func (p Properties) Validate() error {
	_, err := BatchWriterConfigFromProperties(p)
	return err
}

// LoadProperties reads a client properties bundle from a YAML file.
func LoadProperties(path string) (Properties, error) {
	log.Info(fmt.Sprintf("client::properties::LoadProperties; loading client properties from file %s", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading client properties file %s", path)
	}
	props := Properties{}
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling client properties file %s", path)
	}
	return props, nil
}
