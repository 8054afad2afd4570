package sysinfo

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hiudyy/DashLayer/internal/model"
)

const (
	defaultHistorySize = 1000
	defaultInterval    = time.Minute
	historyFile        = "sysinfo.jsonl"
)

// Sample is one timestamped telemetry reading kept in history.
type Sample struct {
	Timestamp int64 `json:"timestamp"`
	model.SystemInfo
}

// SampleFunc produces a telemetry snapshot. Normally (*Sampler).Sample.
type SampleFunc func() model.SystemInfo

// Collector periodically records samples into a bounded in-memory ring
// and appends them to a JSONL file, so widgets can chart recent history.
type Collector struct {
	mu          sync.RWMutex
	sample      SampleFunc
	history     []Sample
	maxHistory  int
	interval    time.Duration
	stopChan    chan struct{}
	storagePath string
}

func NewCollector(sample SampleFunc, storageDir string) *Collector {
	return &Collector{
		sample:      sample,
		history:     make([]Sample, 0, defaultHistorySize),
		maxHistory:  defaultHistorySize,
		interval:    defaultInterval,
		stopChan:    make(chan struct{}),
		storagePath: filepath.Join(storageDir, historyFile),
	}
}

func (c *Collector) Start() {
	go c.loop()
}

func (c *Collector) Stop() {
	close(c.stopChan)
}

// History returns all samples newer than the given unix timestamp, or the
// full history when since <= 0.
func (c *Collector) History(since int64) []Sample {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if since <= 0 {
		return c.history
	}
	for i, s := range c.history {
		if s.Timestamp > since {
			return c.history[i:]
		}
	}
	return []Sample{}
}

func (c *Collector) loop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Initial collection
	c.collect()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	s := Sample{
		Timestamp:  time.Now().Unix(),
		SystemInfo: c.sample(),
	}

	c.mu.Lock()
	if len(c.history) >= c.maxHistory {
		copy(c.history, c.history[1:])
		c.history[c.maxHistory-1] = s
	} else {
		c.history = append(c.history, s)
	}
	c.mu.Unlock()

	c.appendToFile(s)
}

func (c *Collector) appendToFile(s Sample) {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[SYSINFO] failed to marshal sample: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(c.storagePath), 0755); err != nil {
		log.Printf("[SYSINFO] failed to create history directory: %v", err)
		return
	}

	f, err := os.OpenFile(c.storagePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("[SYSINFO] failed to open history file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("[SYSINFO] failed to write sample: %v", err)
	}
}
