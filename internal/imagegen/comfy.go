package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// httpTimeout is a hard upper bound on a single backend call; callers
// usually pass a tighter context deadline.
const httpTimeout = 30 * time.Second

// Comfy submits prompts to a ComfyUI endpoint. Submission is best effort:
// whatever the endpoint answers, a placeholder PNG is written so the slide
// has a concrete asset path.
type Comfy struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// NewComfy creates a ComfyUI backend. An empty endpoint skips submission
// and only produces placeholders.
func NewComfy(endpoint string, log zerolog.Logger) *Comfy {
	return &Comfy{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: httpTimeout},
		log:      log,
	}
}

// Generate submits the prompt when an endpoint is configured and writes the
// asset PNG into dir, returning its path.
func (c *Comfy) Generate(ctx context.Context, prompt, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating assets dir: %w", err)
	}
	output := filepath.Join(dir, SafeFilename(prompt))

	if c.endpoint != "" {
		c.submit(ctx, prompt)
	}

	if err := WritePlaceholder(output); err != nil {
		return "", err
	}
	return output, nil
}

// submit posts the prompt to the ComfyUI queue. Failures are logged and
// swallowed; the caller still gets a placeholder.
func (c *Comfy) submit(ctx context.Context, prompt string) {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		c.log.Warn().Err(err).Msg("comfyui request encoding failed")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/prompt", bytes.NewReader(body))
	if err != nil {
		c.log.Warn().Err(err).Msg("comfyui request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("comfyui generation failed; using placeholder")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		c.log.Info().Msg("comfyui accepted prompt for generation")
	} else {
		c.log.Warn().Int("status", resp.StatusCode).Msg("comfyui rejected prompt; using placeholder")
	}
}
