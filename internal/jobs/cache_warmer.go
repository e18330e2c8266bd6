package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const cacheWarmJobName = "storefront-cache-warm"

// CacheWarmer reloads cached catalog reads.
type CacheWarmer interface {
	WarmCache(ctx context.Context) error
}

// CacheWarmScheduler periodically refreshes the catalog cache so page loads
// rarely see a cold cache.
type CacheWarmScheduler struct {
	scheduler gocron.Scheduler
	warmer    CacheWarmer
	timeout   time.Duration
}

func NewCacheWarmScheduler(warmer CacheWarmer, interval time.Duration) (*CacheWarmScheduler, error) {
	if interval <= 0 {
		return nil, errors.New("cache warm interval must be positive")
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	cs := &CacheWarmScheduler{
		scheduler: scheduler,
		warmer:    warmer,
		timeout:   interval,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(cs.warm),
		gocron.WithName(cacheWarmJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, err
	}

	return cs, nil
}

func (cs *CacheWarmScheduler) Start() {
	log.Printf("Starting cache warm scheduler")
	cs.scheduler.Start()
}

func (cs *CacheWarmScheduler) Stop() error {
	log.Printf("Stopping cache warm scheduler")
	return cs.scheduler.Shutdown()
}

func (cs *CacheWarmScheduler) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), cs.timeout)
	defer cancel()

	start := time.Now()
	if err := cs.warmer.WarmCache(ctx); err != nil {
		log.Printf("WARN: cache warm failed: %v", err)
		return
	}
	log.Printf("Catalog cache warmed in %s", time.Since(start).Round(time.Millisecond))
}
