package configurator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larsw/accumulo/pkg/client"
	"github.com/larsw/accumulo/pkg/conf"
)

func TestDefaultTableNameRoundTrip(t *testing.T) {
	c := conf.New()

	_, ok := GetDefaultTableName(firstWriter{}, c)
	assert.False(t, ok, "default table name should be absent on a fresh store")

	SetDefaultTableName(firstWriter{}, c, "mytable")

	name, ok := GetDefaultTableName(firstWriter{}, c)
	assert.True(t, ok, "default table name should be present after a set")
	assert.Equal(t, "mytable", name, "stored table name doesn't match")
}

func TestSetDefaultTableNameEmptyIsNoOp(t *testing.T) {
	c := conf.New()

	SetDefaultTableName(firstWriter{}, c, "")
	_, ok := GetDefaultTableName(firstWriter{}, c)
	assert.False(t, ok, "setting an absent table name should not write a key")

	SetDefaultTableName(firstWriter{}, c, "mytable")
	SetDefaultTableName(firstWriter{}, c, "")

	name, ok := GetDefaultTableName(firstWriter{}, c)
	assert.True(t, ok, "an absent table name must not delete the stored value")
	assert.Equal(t, "mytable", name, "prior table name should be left unchanged")
}

func TestDistinctIdentitiesDontClobber(t *testing.T) {
	c := conf.New()

	SetDefaultTableName(firstWriter{}, c, "first_table")
	SetDefaultTableName(secondWriter{}, c, "second_table")

	name, _ := GetDefaultTableName(firstWriter{}, c)
	assert.Equal(t, "first_table", name, "second identity clobbered the first identity's value")
	name, _ = GetDefaultTableName(secondWriter{}, c)
	assert.Equal(t, "second_table", name, "first identity clobbered the second identity's value")
}

func TestFeatureFlagsDefaultFalse(t *testing.T) {
	c := conf.New()

	assert.False(t, GetCreateTables(firstWriter{}, c), "create tables should default to false")
	assert.False(t, GetSimulationMode(firstWriter{}, c), "simulation mode should default to false")
}

func TestFeatureFlagRoundTrip(t *testing.T) {
	c := conf.New()

	SetCreateTables(firstWriter{}, c, true)
	assert.True(t, GetCreateTables(firstWriter{}, c), "create tables flag wasn't stored")
	assert.False(t, GetSimulationMode(firstWriter{}, c), "create tables flag must not affect simulation mode")

	SetSimulationMode(firstWriter{}, c, true)
	assert.True(t, GetSimulationMode(firstWriter{}, c), "simulation mode flag wasn't stored")

	SetCreateTables(firstWriter{}, c, false)
	assert.False(t, GetCreateTables(firstWriter{}, c), "flag overwrite wasn't stored")
}

func TestGetBatchWriterOptionsWithoutClientInfo(t *testing.T) {
	c := conf.New()

	bwc, err := GetBatchWriterOptions(firstWriter{}, c)
	assert.Nil(t, err, "missing client info should not be an error")
	assert.Equal(t, client.NewBatchWriterConfig(), bwc, "missing client info should yield the defaults")
}

func TestGetBatchWriterOptionsFromStoredInfo(t *testing.T) {
	c := conf.New()
	props := client.Properties{
		client.BatchWriterMaxWriteThreadsKey: "7",
		client.BatchWriterMaxLatencySecKey:   "30",
	}
	require.Nil(t, SetClientInfo(firstWriter{}, c, client.NewInfo(props)), "unexpected error storing client info")

	bwc, err := GetBatchWriterOptions(firstWriter{}, c)
	assert.Nil(t, err, "unexpected error materializing writer config")

	assert.Equal(t, 7, bwc.MaxWriteThreads, "max write threads wasn't applied from stored info")
	assert.Equal(t, 30*time.Second, bwc.MaxLatency, "max latency wasn't applied from stored info")
	assert.Equal(t, client.DurabilityDefault, bwc.Durability, "absent durability should stay at the default")
}

func TestGetBatchWriterOptionsMalformedProperty(t *testing.T) {
	c := conf.New()
	props := client.Properties{
		client.BatchWriterDurabilityKey: "bogus",
	}
	require.Nil(t, SetClientInfo(firstWriter{}, c, client.NewInfo(props)), "unexpected error storing client info")

	_, err := GetBatchWriterOptions(firstWriter{}, c)
	assert.NotNil(t, err, "malformed stored property should surface a parse error")
}
