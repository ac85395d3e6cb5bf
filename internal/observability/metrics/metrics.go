package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	checkinsRecorded      metric.Int64Counter
	analysisWriteFailures metric.Int64Counter
	classifierRuns        metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "pulse"
	}
	meter := provider.Meter(name)

	checkinsRecorded, err := meter.Int64Counter("pulse_checkins_recorded_total")
	if err != nil {
		return nil, err
	}
	analysisWriteFailures, err := meter.Int64Counter("pulse_analysis_write_failures_total")
	if err != nil {
		return nil, err
	}
	classifierRuns, err := meter.Int64Counter("pulse_classifier_runs_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		checkinsRecorded:      checkinsRecorded,
		analysisWriteFailures: analysisWriteFailures,
		classifierRuns:        classifierRuns,
	}, nil
}

// RecordCheckin increments recorded check-ins by risk level.
func (m *Metrics) RecordCheckin(ctx context.Context, riskLevel string) {
	if m == nil {
		return
	}
	m.checkinsRecorded.Add(ctx, 1, metric.WithAttributes(
		attribute.String("risk_level", strings.TrimSpace(riskLevel)),
	))
}

// RecordAnalysisWriteFailure counts the best-effort analysis writes that
// failed after the check-in row was durably stored.
func (m *Metrics) RecordAnalysisWriteFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.analysisWriteFailures.Add(ctx, 1)
}

// RecordClassifierRun increments classifier invocations by engine and label.
func (m *Metrics) RecordClassifierRun(ctx context.Context, engine, label string) {
	if m == nil {
		return
	}
	m.classifierRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("engine", strings.TrimSpace(engine)),
		attribute.String("label", strings.TrimSpace(label)),
	))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "http", "http/protobuf":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported otlp metrics protocol %q", protocol)
	}
}
