package syncmirror

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/dgrstudio/streampulse-api/internal/snapshot"
)

// Mirror empuja la instantánea completa a una réplica remota después de
// cada mutación. Cualquier fallo (red, no-2xx) se registra y se descarta:
// el estado local es autoritativo y la API nunca se bloquea por la
// réplica.
type Mirror struct {
	url    string
	db     *gorm.DB
	client *http.Client
	queue  chan struct{}
}

func New(url string, db *gorm.DB) *Mirror {
	m := &Mirror{
		url:    url,
		db:     db,
		client: &http.Client{Timeout: 10 * time.Second},
		queue:  make(chan struct{}, 1),
	}

	if url != "" {
		go m.worker()
	}
	return m
}

// Notify encola un push. Señal coalescente: varias mutaciones seguidas
// acaban en un único push con el estado final.
func (m *Mirror) Notify() {
	if m.url == "" {
		return
	}
	select {
	case m.queue <- struct{}{}:
	default:
		// ya hay un push pendiente
	}
}

func (m *Mirror) worker() {
	for range m.queue {
		if err := m.push(); err != nil {
			log.Println("sync mirror push failed, staying local:", err)
		}
	}
}

func (m *Mirror) push() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	snap, err := snapshot.Build(ctx, m.db)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &httpStatusError{status: res.StatusCode}
	}
	return nil
}

type httpStatusError struct {
	status int
}

func (e *httpStatusError) Error() string {
	return "replica returned status " + http.StatusText(e.status)
}
