package mapreduce

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/larsw/accumulo/pkg/conf"
)

// Job is the descriptor shipped from the submitting process to the workers.
// Its configuration is the only channel between the two sides: the submitter
// fills it through the configurator, the descriptor travels opaquely, and
// worker code reads the settings back.
type Job struct {
	ID   string     `yaml:"id"`
	Name string     `yaml:"name"`
	Conf *conf.Conf `yaml:"conf"`
}

// NewJob creates a job descriptor with a fresh id and an empty configuration.
func NewJob(name string) *Job {
	return &Job{
		ID:   uuid.New().String(),
		Name: name,
		Conf: conf.New(),
	}
}

// WriteFile serializes the job descriptor to a YAML file.
func (j *Job) WriteFile(path string) error {
	log.Info(fmt.Sprintf("mapreduce::job::WriteFile; writing job descriptor %s to file %s", j.ID, path))

	data, err := yaml.Marshal(j)
	if err != nil {
		return errors.Wrapf(err, "marshalling job descriptor %s", j.ID)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing job descriptor to file %s", path)
	}
	return nil
}

// ReadJobFile reads back a job descriptor written by WriteFile.
func ReadJobFile(path string) (*Job, error) {
	log.Info(fmt.Sprintf("mapreduce::job::ReadJobFile; reading job descriptor from file %s", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading job descriptor file %s", path)
	}
	job := &Job{}
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling job descriptor file %s", path)
	}
	if job.Conf == nil {
		job.Conf = conf.New()
	}
	return job, nil
}
