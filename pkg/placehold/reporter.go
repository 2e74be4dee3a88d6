package placehold

import (
	"fmt"
	"strings"

	"github.com/xob0t/placehold/pkg/console"
	"github.com/xob0t/placehold/pkg/generator"
	"github.com/xob0t/placehold/pkg/options"
)

// Reporter receives user-facing progress events.
type Reporter interface {
	Processing(d options.Dimensions)
	Generated(path string, d options.Dimensions, format generator.Format)
	BatchStarted(count int, d options.Dimensions, dir string, format generator.Format)
	ItemStarted(i, total int, label string)
	ItemFailed(i int, err error)
	BatchFinished(result BatchResult)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Processing(options.Dimensions)                                  {}
func (NopReporter) Generated(string, options.Dimensions, generator.Format)         {}
func (NopReporter) BatchStarted(int, options.Dimensions, string, generator.Format) {}
func (NopReporter) ItemStarted(int, int, string)                                   {}
func (NopReporter) ItemFailed(int, error)                                          {}
func (NopReporter) BatchFinished(BatchResult)                                      {}

// ConsoleReporter prints events through a console.Printer.
type ConsoleReporter struct {
	p *console.Printer
}

// NewConsoleReporter creates a reporter writing to p.
func NewConsoleReporter(p *console.Printer) *ConsoleReporter {
	return &ConsoleReporter{p: p}
}

func (r *ConsoleReporter) Processing(d options.Dimensions) {
	r.p.Processing(fmt.Sprintf("Generating %s placeholder...", d))
}

func (r *ConsoleReporter) Generated(path string, d options.Dimensions, format generator.Format) {
	r.p.Success("Placeholder image generated successfully")
	r.p.Saved(path)
	r.p.Info(fmt.Sprintf("Dimensions: %s | Format: %s", d, strings.ToUpper(string(format))))
}

func (r *ConsoleReporter) BatchStarted(count int, d options.Dimensions, dir string, format generator.Format) {
	r.p.Header(fmt.Sprintf("Batch Processing: %d placeholder images", count))
	r.p.Info(fmt.Sprintf("Dimensions: %s", d))
	r.p.Info(fmt.Sprintf("Output directory: %s", dir))
	r.p.Info(fmt.Sprintf("Format: %s", strings.ToUpper(string(format))))
	r.p.Divider()
}

func (r *ConsoleReporter) ItemStarted(i, total int, label string) {
	r.p.Progress(i, total, label)
}

func (r *ConsoleReporter) ItemFailed(i int, err error) {
	r.p.Error(fmt.Sprintf("Failed to generate image %d: %v", i, err))
}

func (r *ConsoleReporter) BatchFinished(result BatchResult) {
	r.p.Divider()
	r.p.Header("Batch Processing Complete")
	r.p.Success(fmt.Sprintf("Generated: %d images", result.SuccessCount))
	if result.FailedCount > 0 {
		r.p.Error(fmt.Sprintf("Failed: %d images", result.FailedCount))
	}
	r.p.Saved(result.OutputDirectory)
}
