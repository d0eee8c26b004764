package watch

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// snapshot is one successfully rendered connectome.
type snapshot struct {
	Revision int
	Output   string
	Nodes    int
	Edges    int
}

// broker holds the latest snapshot and wakes readers when a newer one lands.
type broker struct {
	mu      sync.Mutex
	latest  snapshot
	changed chan struct{}
}

func newBroker() *broker {
	return &broker{changed: make(chan struct{})}
}

// publish stores output as the next revision and wakes every waiting reader.
func (b *broker) publish(output string, nodes, edges int) snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = snapshot{
		Revision: b.latest.Revision + 1,
		Output:   output,
		Nodes:    nodes,
		Edges:    edges,
	}
	close(b.changed)
	b.changed = make(chan struct{})
	return b.latest
}

// current returns the latest snapshot and a channel closed on the next publish.
// Revision 0 means nothing has been built yet.
func (b *broker) current() (snapshot, <-chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest, b.changed
}

func newServer(b *broker, port int, contentType string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleLatest(b, contentType))
	mux.HandleFunc("/events", handleSSE(b))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
}

func handleLatest(b *broker, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, _ := b.current()
		if snap.Revision == 0 {
			http.Error(w, "connectome not built yet", http.StatusServiceUnavailable)
			return
		}

		etag := strconv.Quote(strconv.Itoa(snap.Revision))
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Connectome-Nodes", strconv.Itoa(snap.Nodes))
		w.Header().Set("X-Connectome-Edges", strconv.Itoa(snap.Edges))
		if _, err := w.Write([]byte(snap.Output)); err != nil {
			http.Error(w, "failed to write connectome", http.StatusInternalServerError)
		}
	}
}

// handleSSE streams every revision newer than the client's Last-Event-ID.
func handleSSE(b *broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		sent, _ := strconv.Atoi(r.Header.Get("Last-Event-ID"))

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ctx := r.Context()
		for {
			snap, changed := b.current()
			if snap.Revision > sent {
				writeEvent(w, snap)
				flusher.Flush()
				sent = snap.Revision
			}

			select {
			case <-ctx.Done():
				return
			case <-changed:
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, snap snapshot) {
	fmt.Fprintf(w, "id: %d\n", snap.Revision)
	fmt.Fprintf(w, "event: connectome\n")
	for _, line := range strings.Split(snap.Output, "\n") {
		fmt.Fprintf(w, "data: %s\n", line)
	}
	fmt.Fprintf(w, "\n")
}
