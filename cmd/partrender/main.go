package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yunfengsay/part-render/compiler"
	"github.com/yunfengsay/part-render/graph"
	"github.com/yunfengsay/part-render/project"
)

// Options represents command line options
type Options struct {
	Project  string `short:"p" long:"project" description:"project directory to load as the corpus" default:"."`
	Fragment string `short:"f" long:"fragment" description:"fragment file to compile; - reads stdin" required:"true"`
	Config   string `short:"c" long:"config" description:"config file location"`
	Props    string `long:"props" description:"mock props JSON for the preview wrapper"`
	Output   string `short:"o" long:"output" description:"write the assembled unit to this file instead of stdout"`
	Verbose  bool   `short:"v" long:"verbose" description:"enable debug logging"`
}

func main() {
	_ = godotenv.Load()

	options := &Options{}
	if _, err := flags.Parse(options); err != nil {
		os.Exit(1)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if options.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(context.Background(), options, log); err != nil {
		log.WithError(err).Error("compilation failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, options *Options, log *logrus.Logger) error {
	config := graph.DefaultConfig()
	if options.Config != "" {
		loaded, err := graph.LoadConfig(options.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		config = loaded
	}

	fragment, err := readFragment(options.Fragment)
	if err != nil {
		return err
	}

	var mockProps map[string]interface{}
	if options.Props != "" {
		if err := json.Unmarshal([]byte(options.Props), &mockProps); err != nil {
			return fmt.Errorf("failed to parse props JSON: %w", err)
		}
	}

	loader := project.NewLoader(log)
	proj, err := loader.Load(ctx, options.Project)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"project": proj.Name, "files": len(proj.Files)}).Debug("project loaded")

	pipeline := compiler.New(config, log)
	pipeline.SetProject(proj)

	result := pipeline.Compile(ctx, &compiler.Request{
		Fragment:  fragment,
		MockProps: mockProps,
	})
	for _, warning := range result.Warnings {
		log.Warn(warning)
	}
	if !result.Success {
		return fmt.Errorf("%v", result.Error)
	}

	if options.Output != "" {
		if err := os.WriteFile(options.Output, []byte(result.Code), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(result.Code)
	return nil
}

func readFragment(location string) (string, error) {
	if location == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read fragment from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return "", fmt.Errorf("failed to read fragment: %w", err)
	}
	return string(data), nil
}
