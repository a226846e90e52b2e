package models

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Metric is one entry of the "metrics" object. Values keep the literal
// form the service sent (number or string) for display.
type Metric struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Analysis is the "analysis" object: a risk category plus whatever
// other fields the service decides to include.
type Analysis struct {
	RiskCategory string  `json:"risk_category"`
	Fields       []Field `json:"fields"`
}

type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Result is a parsed success body from GET /analyze/{ticker}.
type Result struct {
	Metrics  []Metric `json:"metrics"`
	Analysis Analysis `json:"analysis"`
	Plot     string   `json:"plot"`

	// Raw keeps the body as received, for JSON passthrough
	Raw []byte `json:"-"`
}

// ParseResult decodes a success body. Metrics and analysis fields are
// kept as slices in document order: the UI lists metrics in the order
// the service sent them, which a Go map would scramble.
func ParseResult(body []byte) (*Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("response is not valid JSON")
	}

	root := gjson.ParseBytes(body)
	metrics := root.Get("metrics")
	analysis := root.Get("analysis")
	if !metrics.Exists() || !analysis.Exists() {
		return nil, fmt.Errorf("response is missing metrics or analysis")
	}

	result := &Result{
		Plot: root.Get("plot").String(),
		Raw:  body,
	}

	metrics.ForEach(func(key, value gjson.Result) bool {
		result.Metrics = append(result.Metrics, Metric{
			Name:  key.String(),
			Value: value.String(),
		})
		return true
	})

	result.Analysis.RiskCategory = analysis.Get("risk_category").String()
	analysis.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "risk_category" {
			return true
		}
		result.Analysis.Fields = append(result.Analysis.Fields, Field{
			Name:  key.String(),
			Value: value.String(),
		})
		return true
	})

	return result, nil
}
