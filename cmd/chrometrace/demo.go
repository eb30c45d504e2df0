package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/shirou/gopsutil/process"
	"github.com/spf13/cobra"

	"github.com/sarchlab/chrometrace"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Record a sample trace from concurrent producers.",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		producers, _ := cmd.Flags().GetInt("producers")
		events, _ := cmd.Flags().GetInt("events")

		if output == "" {
			output = os.Getenv("CHROME_TRACE_FILE")
		}

		runDemo(output, producers, events)
	},
}

func init() {
	demoCmd.Flags().StringP("output", "o", "",
		"trace file path; defaults to CHROME_TRACE_FILE or a generated name")
	demoCmd.Flags().Int("producers", 4,
		"number of concurrent producer goroutines")
	demoCmd.Flags().Int("events", 25,
		"number of events each producer records")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(output string, producers, events int) {
	tracer := chrometrace.NewTracer(output)
	sub := chrometrace.NewMaybeTracer(tracer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			produce(sub, p, events)
		}(p)
	}
	wg.Wait()

	recordProcessStats(sub)

	tracer.Close()
	tracer.Wait()

	fmt.Println("Demo trace complete.")
}

func produce(sub *chrometrace.MaybeTracer, producer, events int) {
	md := chrometrace.Metadata{Target: "demo::producer"}

	span := sub.NewSpan(md, []chrometrace.Field{
		{Name: "producer", Value: producer},
	})
	sub.Enter(span)
	defer sub.Exit(span)

	for i := 0; i < events; i++ {
		sub.Event(chrometrace.Event{
			Metadata: md,
			Fields: []chrometrace.Field{
				{Name: "message", Value: fmt.Sprintf("producer %d tick", producer)},
				{Name: "seq", Value: i},
				{Name: "span", Value: uint64(span)},
			},
		})
	}
}

// recordProcessStats emits one event carrying CPU and memory readings of the
// demo process itself.
func recordProcessStats(sub *chrometrace.MaybeTracer) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	fields := []chrometrace.Field{
		{Name: "message", Value: "process stats"},
	}

	if cpu, err := p.CPUPercent(); err == nil {
		fields = append(fields, chrometrace.Field{
			Name: "cpu_percent", Value: cpu,
		})
	}

	if mem, err := p.MemoryInfo(); err == nil {
		fields = append(fields, chrometrace.Field{
			Name: "rss_bytes", Value: mem.RSS,
		})
	}

	sub.Event(chrometrace.Event{
		Metadata: chrometrace.Metadata{Target: "demo::stats"},
		Fields:   fields,
	})
}
