package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"popchart/internal/chart"
	"popchart/internal/dataset"
	"popchart/internal/logging"
	"popchart/internal/surface"
	"popchart/internal/tui"
)

var (
	variantName = flag.String("variant", "line", "chart variant: line, dropdown, hover, year or one from -config")
	configFile  = flag.String("config", "", "YAML file overriding or adding variants")
	selectKey   = flag.String("select", "", "initial location or year")
	exportPath  = flag.String("export", "", "write the chart to a .svg or .png file and exit")
	policyName  = flag.String("policy", "poison", "malformed numbers: poison (keep row as NaN) or skip")
	logFile     = flag.String("debug", "", "write debug logs to file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: popchart [flags] [data.csv]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("failed to setup logging: %v", err)
	}
	defer cleanup()

	log.Println("popchart: started")

	v, err := loadVariant(*configFile, *variantName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "popchart:", err)
		os.Exit(2)
	}
	policy, err := dataset.ParsePolicy(*policyName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "popchart:", err)
		os.Exit(2)
	}

	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	if *exportPath != "" {
		if path == "" {
			flag.Usage()
			os.Exit(2)
		}
		if err := exportChart(path, *exportPath, v, *selectKey, policy); err != nil {
			fmt.Fprintln(os.Stderr, "popchart:", err)
			os.Exit(1)
		}
		return
	}

	m := tui.New(tui.Options{Path: path, Variant: v, Select: *selectKey, Policy: policy})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Printf("tea program error: %v", err)
		fmt.Fprintln(os.Stderr, "popchart:", err)
		os.Exit(1)
	}
}

func loadVariant(config, name string) (chart.Variant, error) {
	set := chart.Presets()
	if config != "" {
		var err error
		if set, err = chart.LoadSet(config); err != nil {
			return chart.Variant{}, err
		}
	}
	return set.Get(name)
}

// exportChart renders the selected series of the dataset at dataPath to
// out, in the format named by its extension.
func exportChart(dataPath, out string, v chart.Variant, key string, policy dataset.Policy) error {
	format, err := surface.FormatFromPath(out)
	if err != nil {
		return err
	}
	t, err := dataset.LoadCSV(dataPath, policy)
	if err != nil {
		return err
	}
	if n := len(t.Malformed); n > 0 {
		log.Printf("%s: %d malformed rows (%s)", dataPath, n, policy)
	}

	scene := surface.NewScene(v.Width, v.Height)
	ctl, err := chart.New(v, t.Rows, scene)
	if err != nil {
		return err
	}
	if key != "" {
		if err := ctl.Select(key); err != nil {
			return err
		}
	}
	if err := ctl.LastErr(); err != nil {
		log.Printf("export: %v", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := surface.Export(scene, f, format); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", out, err)
	}
	return f.Close()
}
