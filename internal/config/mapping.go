package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// FromMap overlays loosely typed arguments (tool calls, request bodies) onto base.
// Only keys present in args are applied. Slice fields also accept a JSON string.
func FromMap(base Config, args map[string]any) (Config, error) {
	var (
		over Config
		md   mapstructure.Metadata
	)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &over,
		Metadata:         &md,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       jsonStringToSlice,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(args); err != nil {
		return Config{}, fmt.Errorf("invalid arguments: %w", err)
	}

	out := base.Clone()
	set := func(key string) bool { return slices.Contains(md.Keys, key) }

	if set("states") {
		out.States = over.States
		if !set("initial") && len(over.States) > 0 {
			out.Initial = over.States[0]
		}
	}
	if set("matrix") {
		out.Matrix = over.Matrix
	}
	if set("initial") {
		out.Initial = over.Initial
	}
	if set("iterations") {
		out.Iterations = over.Iterations
	}
	if set("trials") {
		out.Trials = over.Trials
	}
	if set("seed") {
		out.Seed = over.Seed
	}
	if set("log_level") {
		out.LogLevel = over.LogLevel
	}
	return out, nil
}

func jsonStringToSlice(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	s := reflect.ValueOf(data).String()
	if s == "" {
		return data, nil
	}
	out := reflect.New(to)
	if err := json.Unmarshal([]byte(s), out.Interface()); err != nil {
		return nil, fmt.Errorf("expected JSON array: %w", err)
	}
	return out.Elem().Interface(), nil
}
