package mapreduce

import (
	"flag"
	"fmt"

	"github.com/larsw/accumulo/pkg/client"
)

// Opts are the common job submission options for clients that write to a
// required table.
type Opts struct {
	// TableName is the output table. Required.
	TableName string

	// ClientPropsFile is the path of the client properties YAML file.
	ClientPropsFile string
}

// RegisterFlags registers the submission flags on the given flag set.
func (o *Opts) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.TableName, "t", "", "table to use")
	fs.StringVar(&o.TableName, "table", "", "table to use")
	fs.StringVar(&o.ClientPropsFile, "props", "", "path of the client properties file")
}

// Validate validates the options and returns an error if they are invalid.
func (o *Opts) Validate() error {
	if o.TableName == "" {
		return fmt.Errorf("no table provided, use -t or --table")
	}
	return nil
}

// ConfigureJob resolves the client properties and stores the output
// configuration for the required table into the job.
func (o *Opts) ConfigureJob(job *Job) error {
	if err := o.Validate(); err != nil {
		return err
	}

	props := client.Properties{}
	if o.ClientPropsFile != "" {
		loaded, err := client.LoadProperties(o.ClientPropsFile)
		if err != nil {
			return err
		}
		props = loaded
	}
	if err := props.Validate(); err != nil {
		return err
	}

	return ConfigureOutput().
		ClientInfo(client.NewInfo(props)).
		DefaultTable(o.TableName).
		CreateTables(true).
		Store(job)
}
