package mlmodel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Config locates the exported forecast model and the onnxruntime shared
// library. Input/output names must match the names used at export time.
type Config struct {
	OrtLibrary    string
	ModelPath     string
	InputName     string
	OutputName    string
	ForecastSteps int
}

// OnnxPredictor runs the pretrained weight-forecast network through
// onnxruntime. It implements forecast.Predictor. Run calls are serialized;
// the session is created once and released by Close.
type OnnxPredictor struct {
	session *ort.DynamicAdvancedSession
	steps   int
	mu      sync.Mutex
}

func NewOnnxPredictor(cfg Config) (*OnnxPredictor, error) {
	if cfg.InputName == "" {
		cfg.InputName = "input"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "output"
	}
	if cfg.ForecastSteps <= 0 {
		cfg.ForecastSteps = 90
	}

	if cfg.OrtLibrary != "" {
		ort.SetSharedLibraryPath(cfg.OrtLibrary)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{cfg.InputName},
		[]string{cfg.OutputName},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", cfg.ModelPath, err)
	}

	return &OnnxPredictor{
		session: session,
		steps:   cfg.ForecastSteps,
	}, nil
}

// Predict maps a timesteps×features window to the model's forecast sequence.
func (p *OnnxPredictor) Predict(ctx context.Context, window [][]float64) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(window) == 0 {
		return nil, errors.New("empty feature window")
	}

	rows := len(window)
	cols := len(window[0])
	flat := make([]float32, 0, rows*cols)
	for _, row := range window {
		if len(row) != cols {
			return nil, errors.New("ragged feature window")
		}
		for _, v := range row {
			flat = append(flat, float32(v))
		}
	}

	input, err := ort.NewTensor(ort.NewShape(1, int64(rows), int64(cols)), flat)
	if err != nil {
		return nil, fmt.Errorf("build input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(p.steps)))
	if err != nil {
		return nil, fmt.Errorf("build output tensor: %w", err)
	}
	defer output.Destroy()

	p.mu.Lock()
	err = p.session.Run([]ort.Value{input}, []ort.Value{output})
	p.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("run model: %w", err)
	}

	data := output.GetData()
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}

	return out, nil
}

// Close releases the onnxruntime session.
func (p *OnnxPredictor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session != nil {
		err := p.session.Destroy()
		p.session = nil
		return err
	}
	return nil
}
