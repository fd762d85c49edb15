package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

func main() {
	// Configuration
	clockInURL := "http://localhost:8080/api/v1/clock/in"
	clockOutURL := "http://localhost:8080/api/v1/clock/out"
	contentType := "application/json"

	numUsers := 5000
	concurrency := 50 // Number of concurrent requests to avoid local port exhaustion

	fmt.Printf("Starting load test: %d users (clock-in + clock-out each) with concurrency %d\n", numUsers, concurrency)

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency) // Semaphore to limit concurrency

	var successCount int64
	var failCount int64

	startTime := time.Now()

	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		sem <- struct{}{} // Acquire token

		userID := fmt.Sprintf("load-test-user-%d", i)

		go func(uid string) {
			defer wg.Done()
			defer func() { <-sem }() // Release token

			body := []byte(fmt.Sprintf(`{"userId": %q}`, uid))

			for _, url := range []string{clockInURL, clockOutURL} {
				resp, err := http.Post(url, contentType, bytes.NewBuffer(body))
				if err != nil || resp.StatusCode >= 400 {
					atomic.AddInt64(&failCount, 1)
					if resp != nil {
						resp.Body.Close()
					}
					continue
				}
				resp.Body.Close()
				atomic.AddInt64(&successCount, 1)
			}
		}(userID)
	}

	wg.Wait()
	elapsed := time.Since(startTime)

	total := successCount + failCount
	fmt.Printf("Done in %s: %d requests, %d ok, %d failed (%.0f req/s)\n",
		elapsed, total, successCount, failCount, float64(total)/elapsed.Seconds())
}
