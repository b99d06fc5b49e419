package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider writes one structured log entry per request.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
}

// WithLogging wraps p so every request is logged. A nil logger disables
// logging.
func WithLogging(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: logger.Named("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Duration("latency", time.Since(start)),
		zap.Int("messages", len(req.Messages)),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}
	if err != nil {
		l.logger.Warn("generate failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields,
		zap.String("served_by", resp.Model),
		zap.String("stop_reason", resp.StopReason),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)
	if cost := LookupCost(resp.Model); cost != nil {
		fields = append(fields, zap.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
	}
	l.logger.Info("generate", fields...)
	l.logger.Debug("generate content", zap.ByteString("content", resp.Content))
	return resp, nil
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
