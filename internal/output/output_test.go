package output

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/chrisdamba/foodstories/internal/cloudwriter"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

var eventTime = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func testEvent(eventType string) models.InteractionEvent {
	e := models.NewInteractionEvent(eventType, eventTime)
	e.SessionID = "sess-1"
	e.StoryID = "s1"
	e.RestaurantID = "r1"
	e.Price = 12.99
	return e
}

func encode(t *testing.T, e models.InteractionEvent) []byte {
	t.Helper()
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

const partitionDir = "year=2024/month=03/day=09/hour=14"

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "events")

	for _, et := range []string{models.EventDetailOpened, models.EventPanelOpened} {
		if err := out.WriteMessage(models.TopicInteractionEvents, encode(t, testEvent(et))); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "events", models.TopicInteractionEvents, partitionDir, "data.json"))
	if err != nil {
		t.Fatalf("expected partitioned file, got %v", err)
	}
	defer f.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var m map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &m); err != nil {
			t.Fatal(err)
		}
		lines = append(lines, m)
	}
	if len(lines) != 2 || lines[1]["eventType"] != models.EventPanelOpened {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestCSVOutput(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "events")

	first := testEvent(models.EventPlaybackPaused)
	second := testEvent(models.EventDetailOpened)
	second.IngredientID = "i2"
	for _, e := range []models.InteractionEvent{first, second} {
		if err := out.WriteMessage(models.TopicInteractionEvents, encode(t, e)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "events", models.TopicInteractionEvents, partitionDir, "data.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(records))
	}
	col := -1
	for i, h := range records[0] {
		if h == "ingredientId" {
			col = i
		}
	}
	if col < 0 || records[2][col] != "i2" {
		t.Fatalf("expected ingredientId column with i2, got %v", records)
	}
	for i, h := range records[0] {
		switch h {
		case "timestamp":
			if want := strconv.FormatInt(eventTime.Unix(), 10); records[1][i] != want {
				t.Fatalf("expected timestamp %s, got %s", want, records[1][i])
			}
		case "price":
			if records[1][i] != "12.99" {
				t.Fatalf("expected price 12.99, got %s", records[1][i])
			}
		}
	}
}

func TestFormatCSVValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"timestamp", float64(1792190441), "1792190441"},
		{"fraction", 0.4, "0.4"},
		{"zero", float64(0), "0"},
		{"string", "story_opened", "story_opened"},
		{"bool", true, "true"},
		{"null", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCSVValue(tt.value); got != tt.want {
				t.Errorf("formatCSVValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestBuildInsertComponents(t *testing.T) {
	cols, vals, placeholders, err := buildInsertComponents(map[string]interface{}{
		"timestamp": float64(1700000000),
		"price":     float64(13),
		"eventType": "cart_added",
		"meta":      map[string]interface{}{"source": "panel"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cols != "event_type, meta, price, timestamp" || placeholders != "$1, $2, $3, $4" {
		t.Fatalf("unexpected columns %q / placeholders %q", cols, placeholders)
	}
	if vals[1] != `{"source":"panel"}` || vals[2] != float64(13) || vals[3] != int64(1700000000) {
		t.Fatalf("unexpected values %#v", vals)
	}

	_, _, _, err = buildInsertComponents(map[string]interface{}{
		"meta": map[string]interface{}{"ratio": math.Inf(1)},
	})
	if err == nil {
		t.Fatal("expected an encoding error for a value JSON cannot represent")
	}
}

func TestWriteMessageRejectsBadTimestamp(t *testing.T) {
	out := NewJSONOutput(t.TempDir(), "events")
	if err := out.WriteMessage("story_events", []byte(`{"eventType":"story_opened"}`)); err == nil {
		t.Fatalf("expected an invalid timestamp error")
	}
}

func TestParquetOutput(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.OutputPath = t.TempDir()
	cfg.OutputFormat = "parquet"

	dest, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := dest.WriteMessage(models.TopicStoryEvents, encode(t, testEvent(models.EventStoryOpened))); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if err := dest.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(cfg.OutputPath, cfg.OutputFolder, models.TopicStoryEvents, partitionDir, "data.parquet")
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		t.Fatalf("expected a parquet file, got %v", err)
	}
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, new(models.InteractionEvent), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer pr.ReadStop()
	if n := pr.GetNumRows(); n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
}

type memWriter struct {
	buf    bytes.Buffer
	closed bool
}

func (m *memWriter) Write(p []byte) (int, error) { return m.buf.Write(p) }

func (m *memWriter) Close() error {
	m.closed = true
	return nil
}

type memFactory struct {
	objects map[string]*memWriter
}

func (f *memFactory) NewWriter(bucket, objectPath string) (cloudwriter.CloudWriter, error) {
	w := &memWriter{}
	f.objects[bucket+"/"+objectPath] = w
	return w, nil
}

func TestCloudParquetOutput(t *testing.T) {
	factory := &memFactory{objects: make(map[string]*memWriter)}
	out := NewCloudParquetOutput(factory, "bucket", "events")

	if err := out.WriteMessage(models.TopicCartEvents, encode(t, testEvent(models.EventCartAdded))); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	w, ok := factory.objects["bucket/events/cart_events/"+partitionDir+"/data.parquet"]
	if !ok {
		t.Fatalf("expected an object per partition, got %v", factory.objects)
	}
	if !w.closed || !bytes.HasPrefix(w.buf.Bytes(), []byte("PAR1")) {
		t.Fatalf("expected a closed parquet object")
	}
}

func TestKafkaOutput(t *testing.T) {
	cfg := models.DefaultConfig()
	sc := NewSaramaConfig(cfg)
	mock := mocks.NewSyncProducer(t, sc)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if !strings.Contains(string(val), models.EventCartAdded) {
			return errors.New("unexpected payload")
		}
		return nil
	})
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	producer := NewSaramaProducerFrom(mock)
	if err := producer.WriteMessage(models.TopicCartEvents, encode(t, testEvent(models.EventCartAdded))); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := producer.WriteMessage(models.TopicCartEvents, encode(t, testEvent(models.EventCartAdded))); !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
	if err := producer.Close(); err != nil {
		t.Fatal(err)
	}
	if err := producer.WriteMessage(models.TopicCartEvents, nil); !errors.Is(err, ErrProducerClosed) {
		t.Fatalf("expected ErrProducerClosed, got %v", err)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.OutputFormat = "xml"
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(&buf)
	out.WriteMessage("story_events", []byte(`{"a":1}`))
	if got := buf.String(); got != "[story_events] {\"a\":1}\n" {
		t.Fatalf("unexpected console line %q", got)
	}
}
