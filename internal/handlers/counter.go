package handlers

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"
)

type counterData struct {
	Checks int64 `json:"checks"`
}

var (
	counterMu       sync.Mutex
	counterValue    int64
	pendingWrites   int
	counterFilePath = "counter.json"
)

const flushEveryN = 10

// InitCounter loads the persisted eligibility-check counter and starts the
// periodic flush loop.
func InitCounter(flushInterval time.Duration) {
	counterMu.Lock()
	data, err := os.ReadFile(counterFilePath)
	if err != nil {
		counterValue = 0
		log.Printf("[counter] counter.json not found, starting at 0")
	} else {
		var cd counterData
		if err := json.Unmarshal(data, &cd); err != nil {
			counterValue = 0
			log.Printf("[counter] parse error, starting at 0")
		} else {
			counterValue = cd.Checks
			log.Printf("[counter] loaded counter: %d", counterValue)
		}
	}
	counterMu.Unlock()

	go func() {
		ticker := time.NewTicker(flushInterval)
		defer ticker.Stop()
		for range ticker.C {
			flushCounter()
		}
	}()
}

func IncrementCounter() int64 {
	counterMu.Lock()
	counterValue++
	val := counterValue
	pendingWrites++
	shouldFlush := pendingWrites >= flushEveryN
	counterMu.Unlock()

	if shouldFlush {
		flushCounter()
	}
	return val
}

func GetCounter() int64 {
	counterMu.Lock()
	defer counterMu.Unlock()
	return counterValue
}

func flushCounter() {
	counterMu.Lock()
	if pendingWrites == 0 {
		counterMu.Unlock()
		return
	}
	val := counterValue
	pendingWrites = 0
	counterMu.Unlock()

	data, err := json.Marshal(counterData{Checks: val})
	if err != nil {
		log.Printf("[counter] marshal error: %v", err)
		return
	}
	if err := os.WriteFile(counterFilePath, data, 0644); err != nil {
		log.Printf("[counter] write error: %v", err)
	}
}
