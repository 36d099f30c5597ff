package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/mmaroti/cadical-go/pkg/cadical"
)

// solverOptions is the shape of the -options JSON file:
//
//	{
//	  "config": "sat",
//	  "options": {"quiet": 1},
//	  "limits": {"conflicts": 100000}
//	}
type solverOptions struct {
	Config  string           `mapstructure:"config"`
	Options map[string]int32 `mapstructure:"options"`
	Limits  map[string]int32 `mapstructure:"limits"`
}

func loadOptions(path string) (*solverOptions, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var opts solverOptions
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true, // JSON numbers arrive as float64
		ErrorUnused:      true,
		Result:           &opts,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &opts, nil
}

func (o *solverOptions) apply(sat *cadical.Solver) error {
	if o.Config != "" {
		if err := sat.Configure(o.Config); err != nil {
			return fmt.Errorf("config %q: %w", o.Config, err)
		}
	}
	for name, val := range o.Options {
		if err := sat.Set(name, val); err != nil {
			return fmt.Errorf("option %q: %w", name, err)
		}
	}
	for name, val := range o.Limits {
		if err := sat.Limit(name, val); err != nil {
			return fmt.Errorf("limit %q: %w", name, err)
		}
	}
	return nil
}
