package client

import (
	"gopkg.in/yaml.v2"
)

// Info identifies the instance a job's writers will connect to, together
// with the resolved client property bundle. It is what the submitter embeds
// in the job configuration so that worker processes can reconstruct their
// client without access to the submitter's environment.
type Info struct {
	InstanceName string     `yaml:"instanceName"`
	ZooKeepers   string     `yaml:"zookeepers"`
	Principal    string     `yaml:"principal"`
	Props        Properties `yaml:"properties"`
}

// NewInfo builds an Info from a resolved property bundle, lifting the
// identity properties into their dedicated fields.
func NewInfo(props Properties) *Info {
	info := &Info{Props: props}
	if v, ok := props.Get(InstanceNameKey); ok {
		info.InstanceName = v
	}
	if v, ok := props.Get(InstanceZooKeepersKey); ok {
		info.ZooKeepers = v
	}
	if v, ok := props.Get(AuthPrincipalKey); ok {
		info.Principal = v
	}
	return info
}

// Marshal serializes the Info for embedding into a flat configuration value.
func (i *Info) Marshal() ([]byte, error) {
	return yaml.Marshal(i)
}

// UnmarshalInfo reconstitutes an Info serialized by Marshal.
func UnmarshalInfo(data []byte) (*Info, error) {
	info := &Info{}
	if err := yaml.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}
