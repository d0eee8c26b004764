package watch

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishAdvancesRevision(t *testing.T) {
	b := newBroker()

	snap, _ := b.current()
	assert.Equal(t, 0, snap.Revision)

	first := b.publish(`{"A": {}}`, 1, 0)
	second := b.publish(`{"B": {}}`, 1, 0)

	assert.Equal(t, 1, first.Revision)
	assert.Equal(t, 2, second.Revision)

	snap, _ = b.current()
	assert.Equal(t, second, snap)
}

func TestBroker_PublishWakesWaiters(t *testing.T) {
	b := newBroker()
	_, changed := b.current()

	b.publish("N1", 1, 0)

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for publish")
	}

	_, next := b.current()
	select {
	case <-next:
		t.Fatal("channel for the next revision closed early")
	default:
	}
}

func TestHandleLatest_NotBuiltYet(t *testing.T) {
	w := httptest.NewRecorder()
	handleLatest(newBroker(), "application/json")(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleLatest_ServesLatestOutput(t *testing.T) {
	b := newBroker()
	b.publish("first", 1, 0)
	b.publish("second", 3, 2)

	w := httptest.NewRecorder()
	handleLatest(b, contentTypeFor("dot"))(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/vnd.graphviz; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `"2"`, w.Header().Get("ETag"))
	assert.Equal(t, "3", w.Header().Get("X-Connectome-Nodes"))
	assert.Equal(t, "2", w.Header().Get("X-Connectome-Edges"))
	assert.Equal(t, "second", w.Body.String())
}

func TestHandleLatest_NotModified(t *testing.T) {
	b := newBroker()
	b.publish("first", 1, 0)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("If-None-Match", `"1"`)
	w := httptest.NewRecorder()
	handleLatest(b, contentTypeFor("json"))(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}

// readEvent reads one server-sent event, returning its lines without the blank terminator.
func readEvent(t *testing.T, r *bufio.Reader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestHandleSSE_StreamsOutput(t *testing.T) {
	b := newBroker()
	b.publish("{\n    \"A\": {}\n}", 1, 0)

	srv := httptest.NewServer(handleSSE(b))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body := bufio.NewReader(resp.Body)
	assert.Equal(t, []string{
		"id: 1",
		"event: connectome",
		"data: {",
		"data:     \"A\": {}",
		"data: }",
	}, readEvent(t, body))

	b.publish("N2", 1, 0)
	assert.Equal(t, []string{"id: 2", "event: connectome", "data: N2"}, readEvent(t, body))
}

func TestHandleSSE_ResumesAfterLastEventID(t *testing.T) {
	b := newBroker()
	b.publish("old", 1, 0)

	srv := httptest.NewServer(handleSSE(b))
	defer srv.Close()

	req, err := http.NewRequest("GET", srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Last-Event-ID", "1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b.publish("new", 1, 0)

	assert.Equal(t, []string{"id: 2", "event: connectome", "data: new"}, readEvent(t, bufio.NewReader(resp.Body)))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/json; charset=utf-8", contentTypeFor("json"))
	assert.Equal(t, "text/vnd.graphviz; charset=utf-8", contentTypeFor("dot"))
	assert.Equal(t, "text/plain; charset=utf-8", contentTypeFor("mermaid"))
}

func TestWatchCommand_BuildsOnStartAndStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	neurons := filepath.Join(dir, "Connectome.csv")
	muscles := filepath.Join(dir, "NeuronsToMuscle.csv")
	outPath := filepath.Join(dir, "connectome.json")
	require.NoError(t, os.WriteFile(neurons, []byte("Origin,Target,Type,Num,NT\nN1,N2,x,5,excitatory\n"), 0o644))
	require.NoError(t, os.WriteFile(muscles, []byte("Neuron,Muscle,Num,NT\nN2,M1,3,GABA\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewCommand()
	cmd.SetArgs([]string{"-i", "neuron-to-neuron:" + neurons + ",neuron-to-muscle:" + muscles, "-o", outPath})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	require.NoError(t, cmd.ExecuteContext(ctx))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"M1\": {},\n    \"N1\": {\n        \"N2\": 5\n    },\n    \"N2\": {\n        \"M1\": -3\n    }\n}", string(data))
	assert.Contains(t, stdout.String(), "Watching 2 source tables")
}

func TestWatchCommand_InitialFailureIsReportedNotFatal(t *testing.T) {
	dir := t.TempDir()
	neurons := filepath.Join(dir, "Connectome.csv")
	require.NoError(t, os.WriteFile(neurons, []byte("N1,N2,x,five,y\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewCommand()
	cmd.SetArgs([]string{"-i", "neuron-to-neuron:" + neurons, "-o", filepath.Join(dir, "out.json")})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.True(t, strings.Contains(stderr.String(), "connectome rebuild failed"), stderr.String())
	_, err := os.Stat(filepath.Join(dir, "out.json"))
	assert.True(t, os.IsNotExist(err))
}
