package mapreduce

import (
	log "github.com/sirupsen/logrus"

	"github.com/larsw/accumulo/pkg/client"
	"github.com/larsw/accumulo/pkg/configurator"
)

// OutputFormat is the consumer identity under which all output settings are
// namespaced, and the read-side accessor used by worker code.
type OutputFormat struct{}

// DefaultTable returns the configured default table name, if any.
func (of OutputFormat) DefaultTable(job *Job) (string, bool) {
	return configurator.GetDefaultTableName(of, job.Conf)
}

// ClientInfo returns the client info stored at submission time.
func (of OutputFormat) ClientInfo(job *Job) (*client.Info, error) {
	return configurator.GetClientInfo(of, job.Conf)
}

// BatchWriterOptions materializes the batch writer settings for this job.
func (of OutputFormat) BatchWriterOptions(job *Job) (*client.BatchWriterConfig, error) {
	return configurator.GetBatchWriterOptions(of, job.Conf)
}

// CanCreateTables reports whether output tables may be created as needed.
func (of OutputFormat) CanCreateTables(job *Job) bool {
	return configurator.GetCreateTables(of, job.Conf)
}

// SimulationMode reports whether the job runs without producing output.
func (of OutputFormat) SimulationMode(job *Job) bool {
	return configurator.GetSimulationMode(of, job.Conf)
}

// OutputConfig collects output settings at submission time and stores them
// into a job's configuration in one step.
type OutputConfig struct {
	info           *client.Info
	defaultTable   string
	createTables   bool
	simulationMode bool
}

// ConfigureOutput starts configuring the output side of a job.
func ConfigureOutput() *OutputConfig {
	return &OutputConfig{}
}

// ClientInfo sets the client info the workers will write with.
func (oc *OutputConfig) ClientInfo(info *client.Info) *OutputConfig {
	oc.info = info
	return oc
}

// DefaultTable sets the table used when a mutation names none.
func (oc *OutputConfig) DefaultTable(tableName string) *OutputConfig {
	oc.defaultTable = tableName
	return oc
}

// CreateTables permits creating output tables as needed.
func (oc *OutputConfig) CreateTables(enable bool) *OutputConfig {
	oc.createTables = enable
	return oc
}

// SimulationMode makes the job run without producing any output.
func (oc *OutputConfig) SimulationMode(enable bool) *OutputConfig {
	oc.simulationMode = enable
	return oc
}

// Store writes the collected settings into the job's configuration under the
// OutputFormat namespace.
func (oc *OutputConfig) Store(job *Job) error {
	log.WithFields(log.Fields{
		"job":          job.ID,
		"defaultTable": oc.defaultTable,
	}).Info("mapreduce::output_format::Store; storing output configuration")

	of := OutputFormat{}
	if oc.info != nil {
		if err := configurator.SetClientInfo(of, job.Conf, oc.info); err != nil {
			return err
		}
	}
	configurator.SetDefaultTableName(of, job.Conf, oc.defaultTable)
	configurator.SetCreateTables(of, job.Conf, oc.createTables)
	configurator.SetSimulationMode(of, job.Conf, oc.simulationMode)
	return nil
}
