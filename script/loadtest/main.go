package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/dto"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// SpanScenario is one request shape sent to the API
type SpanScenario struct {
	Name string
	Body dto.TimeSpanRequest
	// GET sends the body fields as a query string instead
	GET bool
}

var scenarios = []SpanScenario{
	{Name: "Short forward", GET: true, Body: dto.TimeSpanRequest{From: "2013-06-17T12:34:58Z", To: "2013-06-18T01:02:03.5Z"}},
	{Name: "Month end", GET: true, Body: dto.TimeSpanRequest{From: "2013-01-31", To: "2013-03-01"}},
	{Name: "Backward", Body: dto.TimeSpanRequest{From: "2024-02-29", To: "1999-12-31 23:59:59"}},
	{Name: "Daylight saving", Body: dto.TimeSpanRequest{From: "2013-03-31 01:59", To: "2013-03-31 03:01", Timezone: "Europe/Berlin"}},
	{Name: "Millennia", Body: dto.TimeSpanRequest{From: "2013-06-17T12:34:58.216234383Z", To: "5447-12-12T23:11:15.153476737Z"}},
	{Name: "Period", Body: dto.TimeSpanRequest{From: "2012-02-29", Period: "P4Y1M2DT3H"}},
	{Name: "Countdown", GET: true, Body: dto.TimeSpanRequest{To: "2100-01-01", Timezone: "Asia/Tokyo"}},
}

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags.SortFlags = false
	concurrency := flags.IntP("concurrency", "c", 5, "Number of concurrent goroutines")
	totalRequests := flags.IntP("requests", "n", 100, "Total number of requests to make")
	baseURL := flags.String("url", "http://localhost:8080", "Base URL for the API")
	delay := flags.Duration("delay", 0, "Delay between requests of one worker")
	_ = flags.Parse(os.Args[1:])

	fmt.Printf("Load testing %s/timespan with %d scenarios\n", *baseURL, len(scenarios))
	fmt.Printf("Concurrency: %d goroutines, %d requests, delay %v\n", *concurrency, *totalRequests, *delay)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delay, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				stats.ErrorCounts[result.Error.Error()]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	collected.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	if stats.FailedRequests > 0 {
		os.Exit(1)
	}
}

func worker(baseURL string, delay time.Duration, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delay > 0 {
			time.Sleep(delay)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		req, err := newRequest(baseURL, scenario)
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		result.Error = checkResponse(resp)
		result.Success = result.Error == nil
		resp.Body.Close()

		results <- result
	}
}

func newRequest(baseURL string, scenario SpanScenario) (*http.Request, error) {
	var req *http.Request
	var err error

	if scenario.GET {
		q := url.Values{}
		q.Set("from", scenario.Body.From)
		q.Set("to", scenario.Body.To)
		q.Set("tz", scenario.Body.Timezone)
		q.Set("period", scenario.Body.Period)
		req, err = http.NewRequest(http.MethodGet, baseURL+"/timespan?"+q.Encode(), nil)
	} else {
		body, marshalErr := json.Marshal(scenario.Body)
		if marshalErr != nil {
			return nil, marshalErr
		}
		req, err = http.NewRequest(http.MethodPost, baseURL+"/timespan", bytes.NewReader(body))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// checkResponse verifies the status and that every unit of the hierarchy is present
func checkResponse(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var body dto.TimeSpanResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(body.Units) != entity.UnitCount {
		return fmt.Errorf("expected %d units, got %d", entity.UnitCount, len(body.Units))
	}
	return nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

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
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rps)

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
		if count := stats.ScenarioStats[s.Name]; count > 0 {
			fmt.Printf("%-16s: %d requests\n", s.Name, count)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
