package forecast

import (
	"encoding/json"
	"fmt"
	"os"
)

// MinMax holds the fitted range of one feature channel, exported alongside
// the model at training time.
type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (m MinMax) Transform(x float64) float64 {
	if m.Max == m.Min {
		return 0
	}
	return (x - m.Min) / (m.Max - m.Min)
}

func (m MinMax) Inverse(x float64) float64 {
	return x*(m.Max-m.Min) + m.Min
}

// ScalerSet mirrors the per-channel min-max scalers fitted at training time.
// Fitting is out of scope here; the parameters load from a JSON sidecar.
type ScalerSet struct {
	BMI      MinMax `json:"bmi"`
	Weight   MinMax `json:"weight"`
	Calories MinMax `json:"calories"`
}

func LoadScalers(path string) (*ScalerSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler file: %w", err)
	}

	var set ScalerSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("parse scaler file %s: %w", path, err)
	}

	if set.Weight.Max == set.Weight.Min {
		return nil, fmt.Errorf("scaler file %s: degenerate weight range", path)
	}

	return &set, nil
}
