package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/validate"
	"cpu-scheduler/internal/workload"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("fcfs", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a config file (default ./config.yaml when present)")
	scale := flags.Int("scale", 2, "gantt columns per time unit")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: must give a workload file to schedule", ErrInvalidArgs)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	policy, err := validate.ParsePolicy(cfg.ValidationPolicy)
	if err != nil {
		return err
	}

	request, err := workload.Load(flags.Arg(0))
	if err != nil {
		return err
	}
	jobs, err := validate.New(cfg.BurstCeiling, policy).Validate(request.Jobs)
	if err != nil {
		return err
	}
	response, err := schedulers.ScheduleRequest(jobs)
	if err != nil {
		return err
	}

	render.Gantt(w, response.Timeline, *scale)
	render.Table(w, response)
	return nil
}
