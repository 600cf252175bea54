package stress

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

// Metric is the end-of-run accounting for one worker instance.
type Metric struct {
	Stressor  string  `yaml:"stressor"`
	Instance  int     `yaml:"instance"`
	BogoOps   uint64  `yaml:"bogo-ops"`
	WallClock float64 `yaml:"wall-clock-time"`
	Rate      float64 `yaml:"bogo-ops-per-second"`
}

// Report aggregates the metrics of a whole run for the yamlfile output.
type Report struct {
	Session  string   `yaml:"session"`
	Date     string   `yaml:"date"`
	Metrics  []Metric `yaml:"metrics"`
	Failures uint64   `yaml:"verification-failures"`
}

// NewReport builds a report from the per-worker args of a finished run.
func NewReport(session string, workers []*Args, elapsed time.Duration) *Report {
	report := &Report{
		Session:  session,
		Date:     time.Now().Format("2006-01-02 15:04:05"),
		Failures: FailureCount(),
	}

	secs := elapsed.Seconds()
	for _, args := range workers {
		metric := Metric{
			Stressor:  args.Name,
			Instance:  args.Instance,
			BogoOps:   args.Counter(),
			WallClock: secs,
		}
		if secs > 0 {
			metric.Rate = float64(metric.BogoOps) / secs
		}
		report.Metrics = append(report.Metrics, metric)
	}
	return report
}

// TotalOps sums the bogo operations over all workers.
func (r *Report) TotalOps() uint64 {
	var total uint64
	for _, metric := range r.Metrics {
		total += metric.BogoOps
	}
	return total
}

// WriteYAML writes the report to the given file.
func (r *Report) WriteYAML(path string) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal the run report: %v", err)
	}
	if err := ioutil.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write the run report %s: %v", path, err)
	}
	return nil
}
