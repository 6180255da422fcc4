//go:build js && wasm

package main

import (
	"syscall/js"

	fittracker "github.com/lucasjlepore/fit-tracker"
)

func main() {
	js.Global().Set("trainingSummary", js.FuncOf(trainingSummary))
	select {}
}

// trainingSummary(code, data, options) computes one workout summary.
func trainingSummary(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{
			"ok":    false,
			"error": "expected arguments: code(string), data(Array<number>), options(object)",
		}
	}
	codeArg, dataArg := args[0], args[1]
	if codeArg.Type() != js.TypeString {
		return map[string]any{
			"ok":    false,
			"error": "workout code must be a string",
		}
	}
	if dataArg.IsUndefined() || dataArg.IsNull() || dataArg.Get("length").IsUndefined() {
		return map[string]any{
			"ok":    false,
			"error": "workout data must be an array of numbers",
		}
	}

	data := make([]float64, dataArg.Get("length").Int())
	for i := range data {
		v := dataArg.Index(i)
		if v.Type() != js.TypeNumber {
			return map[string]any{
				"ok":    false,
				"error": "workout data must be an array of numbers",
			}
		}
		data[i] = v.Float()
	}

	var optsArg js.Value
	if len(args) > 2 {
		optsArg = args[2]
	}
	labels, err := fittracker.LabelsFor(getString(optsArg, "lang", "en"))
	if err != nil {
		return map[string]any{
			"ok":    false,
			"error": err.Error(),
		}
	}

	messages, err := fittracker.Run([]fittracker.Package{{Code: codeArg.String(), Data: data}})
	if err != nil {
		return map[string]any{
			"ok":    false,
			"error": err.Error(),
		}
	}
	info := messages[0]
	return map[string]any{
		"ok":            true,
		"message":       info.Format(labels),
		"training_type": info.TrainingType,
		"duration_h":    info.Duration,
		"distance_km":   info.Distance,
		"speed_kmh":     info.Speed,
		"calories":      info.Calories,
	}
}

func getString(v js.Value, key, fallback string) string {
	if v.IsUndefined() || v.IsNull() {
		return fallback
	}
	out := v.Get(key)
	if out.IsUndefined() || out.IsNull() {
		return fallback
	}
	s := out.String()
	if s == "" || s == "undefined" || s == "null" {
		return fallback
	}
	return s
}
