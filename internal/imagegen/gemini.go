package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DefaultGeminiImageModel is used when no model override is given.
const DefaultGeminiImageModel = "gemini-1.5-flash-latest"

// geminiEndpoint is the generateContent REST endpoint template.
const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// Gemini generates images through the Generative Language REST API,
// requesting PNG inline data. Any failure degrades to a placeholder.
type Gemini struct {
	apiKey string
	model  string
	client *http.Client
	log    zerolog.Logger
}

// NewGemini creates a Gemini image backend.
func NewGemini(apiKey, model string, log zerolog.Logger) *Gemini {
	if model == "" {
		model = DefaultGeminiImageModel
	}
	return &Gemini{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: httpTimeout},
		log:    log,
	}
}

// geminiRequest is the generateContent request payload.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

// geminiResponse is the subset of the generateContent response we consume.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate requests PNG bytes for the prompt and writes them into dir. On
// any failure the placeholder is written instead; the returned path is
// always usable.
func (g *Gemini) Generate(ctx context.Context, prompt, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating assets dir: %w", err)
	}
	output := filepath.Join(dir, SafeFilename(prompt))

	data, err := g.requestImage(ctx, prompt)
	if err != nil {
		g.log.Warn().Err(err).Msg("gemini image generation failed; using placeholder")
		if err := WritePlaceholder(output); err != nil {
			return "", err
		}
		return output, nil
	}

	if err := os.WriteFile(output, data, 0o600); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	return output, nil
}

// requestImage performs the REST call and decodes the inline PNG data.
func (g *Gemini) requestImage(ctx context.Context, prompt string) ([]byte, error) {
	payload := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{ResponseMimeType: "image/png"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}
	inline := parsed.Candidates[0].Content.Parts[0].InlineData
	if inline == nil || inline.Data == "" {
		return nil, fmt.Errorf("no inline image data in response")
	}

	data, err := base64.StdEncoding.DecodeString(inline.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding image data: %w", err)
	}
	return data, nil
}
