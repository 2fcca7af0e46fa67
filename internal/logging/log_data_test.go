package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := SetupLogging()
	logger.Out = buf
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	dec := json.NewDecoder(buf)
	for dec.More() {
		line := map[string]interface{}{}
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("accountID", 7)
	stop := logData.AddTiming("createAccountMs")
	stop()
	logData.Log().Info("done")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(7), lines[0]["accountID"])
	assert.Contains(t, lines[0], "createAccountMs")
	assert.Equal(t, "info", lines[0]["loglevel"])
}

func TestLogData_AddToExistingTimingAccumulates(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	for i := 0; i < 3; i++ {
		logData.AddToExistingTiming("dbMs")()
	}

	entry := logData.Log()
	assert.Contains(t, entry.Data, "dbMs")
}

func TestLogData_ConcurrentWrites(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logData.AddData("key", i)
			logData.AddTiming("timing")()
		}(i)
	}
	wg.Wait()

	entry := logData.Log()
	assert.Contains(t, entry.Data, "key")
	assert.Contains(t, entry.Data, "timing")
}

func TestGetLogData(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	assert.Nil(t, GetLogData(context.Background()))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestLoggingWrapper_LogsPerRequest(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Probe", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		logData.AddData("probe", true)
		w.WriteHeader(http.StatusOK)
		return nil
	})

	for i := 0; i < 2; i++ {
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	}

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handler.Probe.Complete", lines[0]["msg"])
	assert.NotEqual(t, lines[0]["requestID"], lines[1]["requestID"])
}

func TestHumaMiddleware_ExposesLogData(t *testing.T) {
	logger, buf := newBufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))

	var seen *LogData
	huma.Register(api, huma.Operation{
		OperationID: "probe",
		Method:      http.MethodGet,
		Path:        "/probe",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		seen = GetLogData(ctx)
		if seen != nil {
			seen.AddData("handled", true)
		}
		return nil, nil
	})

	resp := api.Get("/probe")
	assert.Equal(t, http.StatusNoContent, resp.Code)
	require.NotNil(t, seen)

	lines := decodeLines(t, buf)
	require.NotEmpty(t, lines)
	last := lines[len(lines)-1]
	assert.Equal(t, "Handler.probe.Complete", last["msg"])
	assert.Equal(t, true, last["handled"])
	assert.Equal(t, float64(http.StatusNoContent), last["status"])
}
