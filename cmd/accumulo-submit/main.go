package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/larsw/accumulo/pkg/mapreduce"
)

var (
	jobName = flag.String("name", "accumulo-job", "name of the job")
	outPath = flag.String("out", "job.yaml", "path to write the job descriptor to")
)

func main() {
	opts := &mapreduce.Opts{}
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	job := mapreduce.NewJob(*jobName)
	if err := opts.ConfigureJob(job); err != nil {
		log.Fatalf("%v", err)
	}

	if err := job.WriteFile(*outPath); err != nil {
		log.Fatalf("%v", err)
	}

	log.WithFields(log.Fields{
		"job":   job.ID,
		"table": opts.TableName,
		"out":   *outPath,
	}).Info("job descriptor written")
}
