// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inference calls a model-serving HTTP endpoint that hosts the
// classification, sentiment, keyword, and entity models. The wire format is
// a small JSON API; rate-limited calls are retried with backoff.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/harsh1d/research-paper-analyzer/internal/capability"
	"github.com/harsh1d/research-paper-analyzer/internal/httputil"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

const defaultTimeout = 30 * time.Second

// Client talks to the inference endpoint. It is safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	userAgent  string
	maxRetries int
	client     *http.Client
	logger     *zap.Logger
}

// New builds a Client from configuration. The endpoint is required; the API
// key is optional for unauthenticated deployments.
func New(cfg types.CapabilityConfig, logger *zap.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference endpoint not configured")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Set returns the client wired into every capability slot.
func (c *Client) Set() capability.Set {
	return capability.Set{Classifier: c, Sentiment: c, Keywords: c, Entities: c}
}

type classifyRequest struct {
	Inputs          string   `json:"inputs"`
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

type classifyResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify scores the sample against candidate labels via POST /classify.
func (c *Client) Classify(ctx context.Context, sample string, labels []string, multiLabel bool) (capability.Classification, error) {
	var resp classifyResponse
	err := c.post(ctx, "/classify", classifyRequest{
		Inputs:          sample,
		CandidateLabels: labels,
		MultiLabel:      multiLabel,
	}, &resp)
	if err != nil {
		return capability.Classification{}, err
	}
	if len(resp.Labels) == 0 || len(resp.Labels) != len(resp.Scores) {
		return capability.Classification{}, fmt.Errorf("malformed classify response: %d labels, %d scores", len(resp.Labels), len(resp.Scores))
	}
	return capability.Classification{Labels: resp.Labels, Scores: resp.Scores}, nil
}

type sentimentResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Score assigns a sentiment label via POST /sentiment.
func (c *Client) Score(ctx context.Context, sample string) (capability.Sentiment, error) {
	var resp sentimentResponse
	if err := c.post(ctx, "/sentiment", map[string]string{"inputs": sample}, &resp); err != nil {
		return capability.Sentiment{}, err
	}
	if resp.Label == "" {
		return capability.Sentiment{}, fmt.Errorf("malformed sentiment response: empty label")
	}
	return capability.Sentiment{Label: resp.Label, Score: resp.Score}, nil
}

type keywordItem struct {
	Keyword  string  `json:"keyword"`
	Distance float64 `json:"distance"`
}

// Extract ranks keywords via POST /keywords.
func (c *Client) Extract(ctx context.Context, sample string) ([]capability.RankedKeyword, error) {
	var resp []keywordItem
	if err := c.post(ctx, "/keywords", map[string]string{"inputs": sample}, &resp); err != nil {
		return nil, err
	}
	out := make([]capability.RankedKeyword, len(resp))
	for i, item := range resp {
		out[i] = capability.RankedKeyword{Keyword: item.Keyword, Distance: item.Distance}
	}
	return out, nil
}

type entityItem struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognize tags named entities via POST /entities.
func (c *Client) Recognize(ctx context.Context, sample string) ([]capability.Entity, error) {
	var resp []entityItem
	if err := c.post(ctx, "/entities", map[string]string{"inputs": sample}, &resp); err != nil {
		return nil, err
	}
	out := make([]capability.Entity, len(resp))
	for i, item := range resp {
		out[i] = capability.Entity{Text: item.Text, Label: item.Label}
	}
	return out, nil
}

// post sends a JSON request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, req, c.maxRetries, c.logger)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
