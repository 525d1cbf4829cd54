package configurator

// Option is a named configuration setting belonging to a closed option group.
// The group identity is part of the derived configuration key, so options in
// different groups can never collide. Adding a setting means adding a member
// to the appropriate group, never renaming one: previously serialized job
// configurations must keep decoding.
type Option interface {
	// Group returns the name of the option group.
	Group() string

	// Name returns the stable member name within the group.
	Name() string
}

// WriteOpt is the option group for batch writer related settings.
type WriteOpt int

const (
	// DefaultTableName is the table used when a mutation names none.
	DefaultTableName WriteOpt = iota

	// BatchWriterConfig marks the namespace of the writer tuning settings.
	BatchWriterConfig
)

func (w WriteOpt) Group() string { return "WriteOpts" }

func (w WriteOpt) Name() string {
	switch w {
	case DefaultTableName:
		return "DefaultTableName"
	case BatchWriterConfig:
		return "BatchWriterConfig"
	}

	panic("invalid write opt")
}

// Feature is the option group for feature toggles.
type Feature int

const (
	// CanCreateTables permits creating output tables as needed.
	CanCreateTables Feature = iota

	// SimulationMode runs the job without producing any output.
	SimulationMode
)

func (f Feature) Group() string { return "Features" }

func (f Feature) Name() string {
	switch f {
	case CanCreateTables:
		return "CanCreateTables"
	case SimulationMode:
		return "SimulationMode"
	}

	panic("invalid feature")
}

// ClientOpt is the option group for client connection settings.
type ClientOpt int

const (
	// ClientProps holds the serialized client info.
	ClientProps ClientOpt = iota

	// ClientPropsFile references a client properties file by path.
	ClientPropsFile
)

func (c ClientOpt) Group() string { return "ClientOpts" }

func (c ClientOpt) Name() string {
	switch c {
	case ClientProps:
		return "ClientProps"
	case ClientPropsFile:
		return "ClientPropsFile"
	}

	panic("invalid client opt")
}
