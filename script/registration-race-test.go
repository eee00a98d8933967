package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RegisterPayload is the registration request body
type RegisterPayload struct {
	UserID string `json:"userId"`
}

// RegisterReply mirrors the API's registration response envelope
type RegisterReply struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Wallet  int64  `json:"wallet"`
}

// RaceResult contains metrics for a single registration attempt
type RaceResult struct {
	UserID       string
	StatusCode   int
	Success      bool
	ErrorMessage string
	ResponseTime time.Duration
	Err          error
}

// RaceStats aggregates the outcome of a race run
type RaceStats struct {
	Total         int
	Succeeded     int
	Conflicts     int
	Failures      int
	MinResponse   time.Duration
	MaxResponse   time.Duration
	TotalResponse time.Duration
	OutcomeCounts map[string]int
	Lock          sync.Mutex
}

// This tool fires one registration per user at a single tournament, all
// at once, to exercise the slot guard under contention. With U users and
// K free slots, exactly min(U, K) attempts should succeed; everything
// else must come back as a conflict, never an oversell.
func main() {
	userIDsStr := flag.String("u", "", "Comma-separated list of user IDs to race")
	tournamentID := flag.String("t", "", "Tournament ID to register into")
	baseURL := flag.String("url", "http://localhost:5000", "Base URL for the API")
	repeat := flag.Int("r", 1, "Extra duplicate attempts per user (idempotency check)")
	flag.Parse()

	var userIDs []string
	for _, id := range strings.Split(*userIDsStr, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			userIDs = append(userIDs, id)
		}
	}

	if len(userIDs) == 0 || *tournamentID == "" {
		fmt.Println("Usage: registration-race-test -u user1,user2,... -t <tournamentId> [-url ...] [-r n]")
		return
	}

	attempts := len(userIDs) * (1 + *repeat)
	fmt.Printf("Racing %d users (%d attempts) at tournament %s\n", len(userIDs), attempts, *tournamentID)

	stats := &RaceStats{
		Total:         attempts,
		MinResponse:   time.Hour,
		OutcomeCounts: make(map[string]int),
	}

	results := make(chan RaceResult, attempts)
	apiURL := fmt.Sprintf("%s/api/tournaments/%s/register", *baseURL, *tournamentID)

	// Release every goroutine at the same instant
	start := make(chan struct{})
	var wg sync.WaitGroup

	for _, userID := range userIDs {
		for i := 0; i <= *repeat; i++ {
			wg.Add(1)
			go func(uid string) {
				defer wg.Done()
				<-start
				results <- attemptRegistration(apiURL, uid)
			}(userID)
		}
	}

	startTime := time.Now()
	close(start)

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		switch {
		case result.Err != nil:
			stats.Failures++
			stats.OutcomeCounts[result.Err.Error()]++
		case result.Success:
			stats.Succeeded++
			stats.OutcomeCounts["registered"]++
		case result.StatusCode == http.StatusConflict:
			stats.Conflicts++
			stats.OutcomeCounts[result.ErrorMessage]++
		default:
			stats.Failures++
			stats.OutcomeCounts[fmt.Sprintf("HTTP %d: %s", result.StatusCode, result.ErrorMessage)]++
		}

		stats.TotalResponse += result.ResponseTime
		if result.ResponseTime < stats.MinResponse {
			stats.MinResponse = result.ResponseTime
		}
		if result.ResponseTime > stats.MaxResponse {
			stats.MaxResponse = result.ResponseTime
		}
		stats.Lock.Unlock()
	}

	printResults(stats, time.Since(startTime))
}

func attemptRegistration(apiURL, userID string) RaceResult {
	client := &http.Client{Timeout: 10 * time.Second}

	jsonData, err := json.Marshal(RegisterPayload{UserID: userID})
	if err != nil {
		return RaceResult{UserID: userID, Err: err}
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return RaceResult{UserID: userID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := client.Do(req)
	responseTime := time.Since(startTime)

	if err != nil {
		return RaceResult{UserID: userID, Err: err, ResponseTime: responseTime}
	}
	defer resp.Body.Close()

	var reply RegisterReply
	_ = json.NewDecoder(resp.Body).Decode(&reply)

	return RaceResult{
		UserID:       userID,
		StatusCode:   resp.StatusCode,
		Success:      resp.StatusCode == http.StatusCreated,
		ErrorMessage: reply.Error,
		ResponseTime: responseTime,
	}
}

func printResults(stats *RaceStats, elapsed time.Duration) {
	var avgResponse time.Duration
	if stats.Total > 0 {
		avgResponse = stats.TotalResponse / time.Duration(stats.Total)
	}

	fmt.Println("\n================= RACE RESULTS =================")
	fmt.Printf("Attempts:        %d\n", stats.Total)
	fmt.Printf("Registered:      %d\n", stats.Succeeded)
	fmt.Printf("Conflicts:       %d\n", stats.Conflicts)
	fmt.Printf("Failures:        %d\n", stats.Failures)
	fmt.Printf("Total Time:      %.2f seconds\n", elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average:         %v\n", avgResponse)
	fmt.Printf("Minimum:         %v\n", stats.MinResponse)
	fmt.Printf("Maximum:         %v\n", stats.MaxResponse)

	fmt.Println("\n----------------- OUTCOMES -----------------")
	for outcome, count := range stats.OutcomeCounts {
		fmt.Printf("%-40s: %d\n", outcome, count)
	}

	fmt.Println("\n================= VERDICT =================")
	fmt.Println("Compare 'Registered' against the tournament's free slots:")
	fmt.Println("it must never exceed them, and duplicate attempts must all conflict.")
	fmt.Println("===========================================")
}
