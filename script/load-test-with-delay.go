package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// envelope is the API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Outcome      string // ok, insufficient, failed
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests  int
	Outcomes       map[string]int
	TotalTime      time.Duration
	ResponseTimes  []time.Duration
	ErrorCounts    map[string]int
	ScenarioStats  map[string]int
	StartingPoints int64
	FinalPoints    int64
	Lock           sync.Mutex
}

// Scenario is one kind of point movement
type Scenario struct {
	Name   string
	Path   string
	Amount int64
	Redeem bool
}

var scenarios = []Scenario{
	{"Earn Small", "/api/v1/me/points/earn", 10, false},
	{"Earn Large", "/api/v1/me/points/earn", 25, false},
	{"Redeem Small", "/api/v1/me/points/redeem", 15, true},
	{"Redeem Medium", "/api/v1/me/points/redeem", 40, true},
	{"Redeem Large", "/api/v1/me/points/redeem", 60, true},
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	email := flag.String("email", "", "Account to sign in with")
	password := flag.String("password", "", "Password of the account")
	delayMs := flag.Int("delay", 20, "Delay between requests in milliseconds")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("-email and -password are required")
		os.Exit(2)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	token, err := signIn(client, *baseURL, *email, *password)
	if err != nil {
		fmt.Printf("Sign-in failed: %v\n", err)
		os.Exit(1)
	}

	starting, err := currentPoints(client, *baseURL, token)
	if err != nil {
		fmt.Printf("Could not read starting balance: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing %s as %s (starting balance %d)\n", *baseURL, *email, starting)
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests:  *totalRequests,
		Outcomes:       make(map[string]int),
		ErrorCounts:    make(map[string]int),
		ResponseTimes:  make([]time.Duration, 0, *totalRequests),
		ScenarioStats:  make(map[string]int),
		StartingPoints: starting,
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, client, *baseURL, token, *delayMs, jobs, results)
		}(i)
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.Outcomes[result.Outcome]++
		stats.ScenarioStats[result.Scenario]++
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		if result.Error != nil {
			stats.ErrorCounts[result.Error.Error()]++
		}
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	final, err := currentPoints(client, *baseURL, token)
	if err != nil {
		fmt.Printf("Could not read final balance: %v\n", err)
		os.Exit(1)
	}
	stats.FinalPoints = final

	printResults(stats)
	if final < 0 {
		os.Exit(1)
	}
}

func worker(id int, client *http.Client, baseURL, token string, delayMs int, jobs <-chan int, results chan<- TestResult) {
	for jobID := range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		body, _ := json.Marshal(map[string]any{
			"amount":         scenario.Amount,
			"description":    fmt.Sprintf("load test %s", scenario.Name),
			"idempotencyKey": fmt.Sprintf("load-%d-%d-%d", id, jobID, rand.Intn(1_000_000)),
		})

		start := time.Now()
		env, status, err := call(client, http.MethodPost, baseURL+scenario.Path, token, body)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(start)}

		switch {
		case err != nil:
			result.Outcome, result.Error = "failed", err
		case status == http.StatusOK:
			result.Outcome = "ok"
		case status == http.StatusUnprocessableEntity && scenario.Redeem:
			result.Outcome = "insufficient"
		default:
			result.Outcome = "failed"
			result.Error = fmt.Errorf("HTTP %d code %d", status, env.Code)
		}
		results <- result
	}
}

func call(client *http.Client, method, url, token string, body []byte) (envelope, int, error) {
	var env envelope
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return env, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return env, 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return env, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return env, resp.StatusCode, nil
}

func signIn(client *http.Client, baseURL, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	env, status, err := call(client, http.MethodPost, baseURL+"/api/v1/auth/signin", "", body)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", status, env.Message)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		return "", errors.New("no token in sign-in response")
	}
	return data.Token, nil
}

func currentPoints(client *http.Client, baseURL, token string) (int64, error) {
	env, status, err := call(client, http.MethodGet, baseURL+"/api/v1/me/profile", token, nil)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d: %s", status, env.Message)
	}

	var data struct {
		Profile struct {
			Points int64 `json:"points"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return 0, err
	}
	return data.Profile.Points, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	for _, outcome := range []string{"ok", "insufficient", "failed"} {
		fmt.Printf("%-20s %d (%.1f%%)\n", outcome+":", stats.Outcomes[outcome],
			float64(stats.Outcomes[outcome])/float64(stats.TotalRequests)*100)
	}
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for _, s := range scenarios {
		fmt.Printf("%-15s: %d requests\n", s.Name, stats.ScenarioStats[s.Name])
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= BALANCE =================")
	fmt.Printf("Starting balance:    %d\n", stats.StartingPoints)
	fmt.Printf("Final balance:       %d\n", stats.FinalPoints)
	if stats.FinalPoints < 0 {
		fmt.Println("❌ BALANCE WENT NEGATIVE")
	} else {
		fmt.Println("✅ Balance stayed non-negative")
	}
	fmt.Println("================================================")
}
