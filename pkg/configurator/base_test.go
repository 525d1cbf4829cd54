package configurator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larsw/accumulo/pkg/client"
	"github.com/larsw/accumulo/pkg/common"
	"github.com/larsw/accumulo/pkg/conf"
)

func TestClientInfoRoundTrip(t *testing.T) {
	c := conf.New()
	props := client.Properties{
		client.InstanceNameKey:               "prod",
		client.BatchWriterMaxWriteThreadsKey: "7",
	}

	require.Nil(t, SetClientInfo(firstWriter{}, c, client.NewInfo(props)), "unexpected error storing client info")

	info, err := GetClientInfo(firstWriter{}, c)
	assert.Nil(t, err, "unexpected error reading client info back")
	assert.Equal(t, "prod", info.InstanceName, "instance name changed across the round trip")

	value, ok := info.Props.Get(client.BatchWriterMaxWriteThreadsKey)
	assert.True(t, ok, "property lost across the round trip")
	assert.Equal(t, "7", value, "property value changed across the round trip")
}

func TestGetClientInfoAbsent(t *testing.T) {
	c := conf.New()

	_, err := GetClientInfo(firstWriter{}, c)
	assert.NotNil(t, err, "expected an error when no client info was stored")

	var nf common.NotFoundError
	assert.True(t, errors.As(err, &nf), "expected a common.NotFoundError")
}

func TestClientInfoPerIdentity(t *testing.T) {
	c := conf.New()

	require.Nil(t, SetClientInfo(firstWriter{}, c, client.NewInfo(client.Properties{client.InstanceNameKey: "first"})), "unexpected error storing client info")
	require.Nil(t, SetClientInfo(secondWriter{}, c, client.NewInfo(client.Properties{client.InstanceNameKey: "second"})), "unexpected error storing client info")

	info, err := GetClientInfo(firstWriter{}, c)
	assert.Nil(t, err, "unexpected error reading client info back")
	assert.Equal(t, "first", info.InstanceName, "second identity clobbered the first identity's client info")
}

func TestClientPropertiesFile(t *testing.T) {
	c := conf.New()

	_, ok := GetClientPropertiesFile(firstWriter{}, c)
	assert.False(t, ok, "client properties file should be absent on a fresh store")

	SetClientPropertiesFile(firstWriter{}, c, "/etc/accumulo/client.yaml")

	path, ok := GetClientPropertiesFile(firstWriter{}, c)
	assert.True(t, ok, "client properties file should be present after a set")
	assert.Equal(t, "/etc/accumulo/client.yaml", path, "stored path doesn't match")

	SetClientPropertiesFile(firstWriter{}, c, "")
	path, ok = GetClientPropertiesFile(firstWriter{}, c)
	assert.True(t, ok, "an absent path must not delete the stored value")
	assert.Equal(t, "/etc/accumulo/client.yaml", path, "prior path should be left unchanged")
}
