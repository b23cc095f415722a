package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/viant/scenemerge/manifest"
	"github.com/viant/scenemerge/merge"
)

type config struct {
	Output string `env:"SCENEMERGE_OUTPUT"`
	Model  string `env:"SCENEMERGE_MODEL"`
}

func main() {
	manifestPath := flag.String("manifest", "", "YAML manifest listing the scene descriptions to merge")
	output := flag.String("output", "", "path the merged scene description is written to")
	modelName := flag.String("model", "", "model name attribute of the merged root")
	flag.Parse()

	if err := run(*manifestPath, *output, *modelName, flag.Args()); err != nil {
		slog.Error("merge failed", "error", err)
		os.Exit(1)
	}
}

func run(manifestPath, output, modelName string, args []string) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	entities, fileOutput, fileModel, err := loadEntities(manifestPath, args)
	if err != nil {
		return err
	}
	// flag beats env beats manifest
	output = firstOf(output, cfg.Output, fileOutput)
	modelName = firstOf(modelName, cfg.Model, fileModel)

	merger := merge.New(
		merge.WithOutputPath(output),
		merge.WithModelName(modelName),
	)
	merged, err := merger.Merge(context.Background(), entities)
	if err != nil {
		return err
	}
	fmt.Println(merged)
	return nil
}

// loadEntities builds the ordered entity list from a manifest file or from
// positional name=path arguments.
func loadEntities(manifestPath string, args []string) ([]merge.Entity, string, string, error) {
	if manifestPath != "" {
		loaded, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, "", "", err
		}
		entities := make([]merge.Entity, 0, len(loaded.Entities))
		for _, entity := range loaded.Entities {
			entities = append(entities, merge.Entity{Name: entity.Name, Path: entity.Path})
		}
		return entities, loaded.Output, loaded.Model, nil
	}
	if len(args) == 0 {
		return nil, "", "", fmt.Errorf("no entities: supply -manifest or name=path arguments")
	}
	var entities []merge.Entity
	seen := map[string]bool{}
	for _, arg := range args {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return nil, "", "", fmt.Errorf("invalid entity %q, expected name=path", arg)
		}
		if seen[name] {
			return nil, "", "", fmt.Errorf("duplicate entity name %q", name)
		}
		seen[name] = true
		entities = append(entities, merge.Entity{Name: name, Path: path})
	}
	return entities, "", "", nil
}

func firstOf(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
