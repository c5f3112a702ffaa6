package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestNewFileExporter_CreatesFile(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	_, err = os.Stat(tracePath)
	require.NoError(t, err, "trace file should be created")

	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestNewFileExporter_CreatesParentDirectories(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "nested", "dir", "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	_, err = os.Stat(tracePath)
	require.NoError(t, err, "trace file should be created with parent dirs")

	require.NoError(t, exporter.Shutdown(context.Background()))
}

func TestNewFileExporter_AppendsToExistingFile(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	err := os.WriteFile(tracePath, []byte(`{"existing": "data"}`+"\n"), 0644)
	require.NoError(t, err)

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      SpanCatalogRecords,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(100 * time.Millisecond),
	}
	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	file, err := os.Open(tracePath)
	require.NoError(t, err)
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines++
	}
	require.Equal(t, 2, lines, "file should keep the original line plus the new span")
}

func TestFileExporter_WritesValidJSONL(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	start := time.Now()
	stub := tracetest.SpanStub{
		Name:      SpanCatalogSearch,
		SpanKind:  trace.SpanKindInternal,
		StartTime: start,
		EndTime:   start.Add(150 * time.Millisecond),
		Status: sdktrace.Status{
			Code: codes.Ok,
		},
		Attributes: []attribute.KeyValue{
			attribute.String(AttrStandardID, "water-quality"),
			attribute.String(AttrSearchQuery, "chlorine"),
			attribute.Int(AttrSearchMatches, 4),
			attribute.Bool(AttrCacheHit, true),
		},
		Events: []sdktrace.Event{
			{
				Name: "cache.lookup",
				Time: start.Add(5 * time.Millisecond),
				Attributes: []attribute.KeyValue{
					attribute.Bool(AttrCacheHit, true),
				},
			},
		},
	}

	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)

	var record SpanRecord
	require.NoError(t, json.Unmarshal(content, &record))

	require.Equal(t, SpanCatalogSearch, record.Name)
	require.Equal(t, "INTERNAL", record.Kind)
	require.Equal(t, "OK", record.Status)
	require.InDelta(t, 150.0, record.DurationMs, 1.0)
	require.Equal(t, "water-quality", record.Attributes[AttrStandardID])
	require.Equal(t, "chlorine", record.Attributes[AttrSearchQuery])
	require.Equal(t, true, record.Attributes[AttrCacheHit])
	require.Len(t, record.Events, 1)
	require.Equal(t, "cache.lookup", record.Events[0].Name)
}

func TestFileExporter_ErrorStatus(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	stub := tracetest.SpanStub{
		Name:      SpanRecordsLoad,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(10 * time.Millisecond),
		Status: sdktrace.Status{
			Code:        codes.Error,
			Description: "parse failed",
		},
		Attributes: []attribute.KeyValue{
			attribute.String(AttrStandardID, "broken"),
			attribute.String(AttrErrorMessage, "yaml: line 3: mapping values are not allowed"),
		},
	}

	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)

	var record SpanRecord
	require.NoError(t, json.Unmarshal(content, &record))
	require.Equal(t, "ERROR", record.Status)
	require.Equal(t, "parse failed", record.StatusMsg)
	require.Equal(t, "broken", record.Attributes[AttrStandardID])
}

func TestFileExporter_ExportEmptySpans(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	require.NoError(t, exporter.ExportSpans(context.Background(), nil))
	require.NoError(t, exporter.Shutdown(context.Background()))

	content, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	require.Empty(t, content, "nothing should be written for an empty batch")
}

func TestFileExporter_ShutdownTwice(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces.jsonl")

	exporter, err := NewFileExporter(tracePath)
	require.NoError(t, err)

	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()), "second shutdown should be a no-op")
}
