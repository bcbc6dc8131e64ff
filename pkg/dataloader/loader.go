package dataloader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Load reads the published timetable from a local path or an HTTP URL,
// validates its structure and warns when its validity period has elapsed.
// A structurally invalid document is rejected outright - the engine never
// computes on partial input.
func Load(source string, now time.Time) (*btdf.TimetableDocument, error) {
	var raw []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		raw, err = fetch(source)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read timetable %s: %w", source, err)
	}

	var document btdf.TimetableDocument
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("failed to parse timetable %s: %w", source, err)
	}

	if err := document.Validate(); err != nil {
		return nil, err
	}

	document.CheckValidity(now)

	log.Info().
		Str("name", document.Metadata.Name).
		Str("version", document.Metadata.Version).
		Int("routes", len(document.Routes)).
		Msg("Loaded timetable")

	return &document, nil
}

func fetch(url string) ([]byte, error) {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 30 * time.Second

	return backoff.RetryWithData(func() ([]byte, error) {
		resp, err := http.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("timetable request returned %s", resp.Status)
		}

		return io.ReadAll(resp.Body)
	}, retryBackoff)
}
