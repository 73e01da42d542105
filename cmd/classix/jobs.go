package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hengadev/errsx"
	"gopkg.in/yaml.v3"

	"github.com/hengadev/classix"
)

// JobFile is the YAML document read by the batch command.
type JobFile struct {
	Version string `yaml:"version"`
	Jobs    []Job  `yaml:"jobs"`
}

// Job describes one cipher invocation in a job file.
type Job struct {
	Name            string `yaml:"name"`
	Cipher          string `yaml:"cipher"`
	Direction       string `yaml:"direction"`
	Text            string `yaml:"text"`
	Key             string `yaml:"key"`
	Shift           *int   `yaml:"shift"`
	Cyrillic        bool   `yaml:"cyrillic"`
	IgnoreCase      bool   `yaml:"ignore_case"`
	GenerateKey     bool   `yaml:"generate_key"`
	KeyDimension    int    `yaml:"key_dimension"`
	PassphraseWords int    `yaml:"passphrase_words"`
}

// JobResult is written back as YAML for every job, in input order.
type JobResult struct {
	Name   string `yaml:"name"`
	ID     string `yaml:"id,omitempty"`
	Cipher string `yaml:"cipher"`
	Output string `yaml:"output,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// LoadJobs reads a job file from path.
func LoadJobs(path string) (*JobFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("job file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	jobs := &JobFile{}
	if err := yaml.Unmarshal(data, jobs); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	return jobs, nil
}

// Validate checks every job and reports all problems at once as an errsx.Map keyed
// "jobs[i].field".
func (f *JobFile) Validate() error {
	if f.Version == "" {
		f.Version = "1"
	}

	var errs errsx.Map
	if len(f.Jobs) == 0 {
		errs.Set("jobs", errors.New("at least one job is required"))
	}
	for i, job := range f.Jobs {
		prefix := fmt.Sprintf("jobs[%d]", i)

		cipher, err := classix.ParseCipher(job.Cipher)
		if err != nil {
			errs.Set(prefix+".cipher", err)
		}
		if _, err := classix.ParseDirection(job.Direction); err != nil {
			errs.Set(prefix+".direction", err)
		}
		if job.Text == "" {
			errs.Set(prefix+".text", errors.New("text cannot be empty"))
		}
		if job.KeyDimension < 0 {
			errs.Set(prefix+".key_dimension", errors.New("key_dimension cannot be negative"))
		}
		if job.PassphraseWords < 0 {
			errs.Set(prefix+".passphrase_words", errors.New("passphrase_words cannot be negative"))
		}
		if err == nil && (job.Key != "" || job.GenerateKey) && cipher != classix.Vigenere && cipher != classix.Hill {
			errs.Set(prefix+".key", fmt.Errorf("%s does not take a key", cipher))
		}
	}
	return errs.AsError()
}

// Requests converts validated jobs into classix requests.
func (f *JobFile) Requests() ([]classix.Request, error) {
	reqs := make([]classix.Request, len(f.Jobs))
	for i, job := range f.Jobs {
		cipher, err := classix.ParseCipher(job.Cipher)
		if err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		direction, err := classix.ParseDirection(job.Direction)
		if err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		reqs[i] = classix.Request{
			Cipher:          cipher,
			Direction:       direction,
			Text:            job.Text,
			Key:             job.Key,
			Shift:           job.Shift,
			Cyrillic:        job.Cyrillic,
			IgnoreCase:      job.IgnoreCase,
			GenerateKey:     job.GenerateKey,
			KeyDimension:    job.KeyDimension,
			PassphraseWords: job.PassphraseWords,
		}
	}
	return reqs, nil
}

// RunJobs processes every job and pairs each result with its job. The returned error is
// non-nil when at least one job failed or the batch was interrupted.
func RunJobs(ctx context.Context, enc *classix.Encoder, f *JobFile) ([]JobResult, error) {
	reqs, err := f.Requests()
	if err != nil {
		return nil, err
	}

	results, batchErr := enc.ProcessBatch(ctx, reqs)
	failures, _ := batchErr.(errsx.Map)
	if batchErr != nil && failures == nil {
		return nil, batchErr
	}

	out := make([]JobResult, len(f.Jobs))
	for i, job := range f.Jobs {
		out[i] = JobResult{Name: job.Name, Cipher: reqs[i].Cipher.String()}
		if out[i].Name == "" {
			out[i].Name = fmt.Sprintf("job-%d", i+1)
		}
		if err, failed := failures[fmt.Sprintf("request[%d]", i)]; failed {
			out[i].Error = err.Error()
			continue
		}
		out[i].ID = results[i].ID.String()
		out[i].Output = results[i].Output
		if job.Key == "" {
			out[i].Key = results[i].Key
		}
	}

	if len(failures) > 0 {
		return out, fmt.Errorf("%d of %d jobs failed", len(failures), len(f.Jobs))
	}
	return out, nil
}

func batchCommand(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jobPath := fs.String("file", "jobs.yaml", "Path to the job file")
	validateOnly := fs.Bool("validate", false, "Only validate the job file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	jobs, err := LoadJobs(*jobPath)
	if err != nil {
		return err
	}
	if err := jobs.Validate(); err != nil {
		return fmt.Errorf("job file validation failed: %w", err)
	}
	if *validateOnly {
		fmt.Fprintf(stdout, "✓ %d jobs are valid\n", len(jobs.Jobs))
		return nil
	}

	enc, err := newEncoder()
	if err != nil {
		return err
	}

	results, runErr := RunJobs(context.Background(), enc, jobs)
	if results != nil {
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	}
	return runErr
}
