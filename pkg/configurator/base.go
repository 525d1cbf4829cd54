package configurator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/larsw/accumulo/pkg/client"
	"github.com/larsw/accumulo/pkg/common"
	"github.com/larsw/accumulo/pkg/conf"
)

// SetClientInfo serializes the client info into the configuration under the
// implementing type's namespace so worker processes can reconstruct it.
func SetClientInfo(implementing interface{}, c *conf.Conf, info *client.Info) error {
	data, err := info.Marshal()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"identity": identityName(implementing),
		"instance": info.InstanceName,
	}).Debug("configurator::base::SetClientInfo; storing client info")

	c.Set(ConfKey(implementing, ClientProps), string(data))
	return nil
}

// GetClientInfo reads back the client info stored by SetClientInfo. If none
// was ever stored it returns a common.NotFoundError.
func GetClientInfo(implementing interface{}, c *conf.Conf) (*client.Info, error) {
	raw, ok := c.Get(ConfKey(implementing, ClientProps))
	if !ok {
		return nil, common.NewNotFoundError(fmt.Sprintf("no client info stored for %s", identityName(implementing)))
	}
	return client.UnmarshalInfo([]byte(raw))
}

// SetClientPropertiesFile records the path of a client properties file to be
// resolved on the worker side instead of embedding the bundle itself.
func SetClientPropertiesFile(implementing interface{}, c *conf.Conf, path string) {
	if path != "" {
		c.Set(ConfKey(implementing, ClientPropsFile), path)
	}
}

// GetClientPropertiesFile returns the recorded client properties file path,
// if any.
func GetClientPropertiesFile(implementing interface{}, c *conf.Conf) (string, bool) {
	return c.Get(ConfKey(implementing, ClientPropsFile))
}
