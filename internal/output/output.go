// Package output writes serialized interaction events to a sink: stdout,
// partitioned JSON/CSV/Parquet files, Kafka or Postgres.
package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chrisdamba/foodstories/internal/models"
)

var ErrProducerClosed = errors.New("producer is closed")

type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// New returns the destination selected by config.OutputFormat.
func New(ctx context.Context, config *models.Config) (OutputDestination, error) {
	switch strings.ToLower(config.OutputFormat) {
	case "", "console":
		return NewConsoleOutput(nil), nil
	case "kafka":
		return NewSaramaProducer(config)
	case "postgres":
		return NewPostgresOutput(ctx, config.DatabaseURL)
	case "json", "csv", "parquet":
		if config.OutputPath == "" && config.OutputDestination == "local" {
			return nil, fmt.Errorf("output_path is required for %s output", config.OutputFormat)
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}

	switch config.OutputFormat {
	case "json":
		return NewJSONOutput(config.OutputPath, config.OutputFolder), nil
	case "csv":
		return NewCSVOutput(config.OutputPath, config.OutputFolder), nil
	default:
		return NewParquetOutput(ctx, config)
	}
}

// partition decodes msg and returns it with its hourly partition path.
func partition(msg []byte) (map[string]interface{}, string, error) {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return nil, "", err
	}

	timestamp, ok := event["timestamp"].(float64)
	if !ok {
		return nil, "", fmt.Errorf("invalid timestamp")
	}

	eventTime := time.Unix(int64(timestamp), 0).UTC()
	year, month, day := eventTime.Date()
	hour := eventTime.Hour()

	partitionPath := fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d", year, month, day, hour)
	return event, partitionPath, nil
}
