package testroster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitPlayers submits players concurrently using worker pools
func submitPlayers(ctx context.Context, config *Config, players []Player, stats *Stats) error {
	log.Printf("📤 Submitting %d players with %d workers...", len(players), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/players"

	// Counters for statistics
	var (
		successful int64
		failed     int64
		submitted  int64
	)

	// Create worker pool
	playerChan := make(chan Player, config.Workers*2)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for player := range playerChan {
				select {
				case <-ctx.Done():
					return
				default:
					atomic.AddInt64(&submitted, 1)
					if submitSinglePlayer(ctx, client, url, player) {
						atomic.AddInt64(&successful, 1)
					} else {
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	// Send players to workers
	go func() {
		defer close(playerChan)
		for _, player := range players {
			select {
			case <-ctx.Done():
				return
			case playerChan <- player:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Update stats
	stats.PlayersSubmitted = int(atomic.LoadInt64(&submitted))
	stats.PlayersSuccessful = int(atomic.LoadInt64(&successful))
	stats.PlayersFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Player submission completed:
   Successful: %d
   Failed: %d
`, stats.PlayersSuccessful, stats.PlayersFailed)

	if stats.PlayersFailed > 0 {
		return fmt.Errorf("%d of %d players failed to submit", stats.PlayersFailed, stats.PlayersSubmitted)
	}
	return nil
}

// submitSinglePlayer submits a single player and reports success
func submitSinglePlayer(ctx context.Context, client *HTTPClient, url string, player Player) bool {
	resp, err := client.Post(ctx, url, player)
	if err != nil {
		return false
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return false
	}
	if resp.StatusCode != StatusCreated {
		return false
	}
	var ack AckResponse
	if err := json.Unmarshal(body, &ack); err == nil && ack.Status != "created" {
		return false
	}
	return true
}

// getEvaluation requests the optimal lineup from the service
func getEvaluation(ctx context.Context, config *Config, stats *Stats) (*Evaluation, error) {
	log.Println("🧮 Requesting lineup evaluation...")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Post(ctx, config.BaseURL+"/evaluation", nil)
	if err != nil {
		return nil, fmt.Errorf("evaluation request failed: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read evaluation response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("evaluation returned status %d: %s", resp.StatusCode, string(body))
	}

	var eval Evaluation
	if err := json.Unmarshal(body, &eval); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	for _, slot := range eval.Lineup {
		if slot.Player != nil {
			stats.AssignedRoles++
		} else {
			stats.VacantRoles++
		}
	}
	stats.BenchSize = len(eval.Bench)
	stats.LineupTotal = eval.Total
	stats.Synergy = eval.Synergy
	stats.Rating = eval.Rating

	return &eval, nil
}
