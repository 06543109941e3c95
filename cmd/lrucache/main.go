package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sokoide/workshop/software/lru_cache/pkg/config"
	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
	"github.com/sokoide/workshop/software/lru_cache/pkg/infra/rabbitmq"
	infra "github.com/sokoide/workshop/software/lru_cache/pkg/infra/redis"
	"github.com/sokoide/workshop/software/lru_cache/pkg/lru"
	"github.com/sokoide/workshop/software/lru_cache/pkg/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Setup Redis Client
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	defer client.Close()
	source := infra.NewSource[domain.Product](client, cfg.Redis.KeyPrefix)

	switch args[0] {
	case "seed":
		if len(args) != 4 {
			fmt.Println("Usage: seed <sku> <name> <price>")
			return
		}
		price, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			log.Fatal("Invalid price")
		}
		p := domain.Product{SKU: args[1], Name: args[2], Price: price, UpdatedAt: time.Now()}
		if err := source.Put(ctx, p, 0); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Seeded %s (%s, %.2f)\n", p.SKU, p.Name, p.Price)

	case "get":
		if len(args) < 2 {
			fmt.Println("Usage: get <sku>...")
			return
		}
		cache, cleanup := newCache(cfg, source)
		defer cleanup()

		for _, sku := range args[1:] {
			p, ok, err := cache.GetFromCache(ctx, sku)
			if err != nil {
				log.Fatalf("Lookup of %s failed: %v", sku, err)
			}
			if !ok {
				fmt.Printf("%s: not found\n", sku)
				continue
			}
			fmt.Printf("%s: %s %.2f\n", p.SKU, p.Name, p.Price)
		}
		printState(cache)

	case "warm":
		ids := cfg.Warm.IDs
		if len(args) > 1 {
			ids = args[1:]
		}
		cache, cleanup := newCache(cfg, source)
		defer cleanup()

		res, err := usecase.Warm[domain.Product](ctx, cache, ids, cfg.Warm.Concurrency)
		if err != nil {
			log.Fatalf("Warm-up failed after %d items: %v", res.Loaded, err)
		}
		fmt.Printf("Loaded %d of %d items\n", res.Loaded, len(ids))
		if len(res.Missing) > 0 {
			fmt.Printf("Missing upstream: %v\n", res.Missing)
		}
		printState(cache)

	case "watch":
		if cfg.RabbitMQ.URL == "" {
			log.Fatal("watch needs rabbitmq.url or AMQP_URL")
		}
		conn, ch, err := rabbitmq.SetupConn(cfg.RabbitMQ.URL, 5)
		if err != nil {
			log.Fatalf("Failed to setup RabbitMQ: %v", err)
		}
		defer conn.Close()
		defer ch.Close()

		watcher := usecase.NewEvictionWatcher(rabbitmq.NewSubscriber(ch))
		log.Printf("Watching evictions of %s... (Ctrl+C to stop)", cfg.Name)
		err = watcher.Start(ctx, rabbitmq.RoutingKey(cfg.Name), cfg.Name, func(event domain.EvictionEvent) error {
			log.Printf("[%s] evicted %s at %s (event %s)", event.Cache, event.ItemID, event.EvictedAt.Format(time.RFC3339), event.EventID)
			return nil
		})
		if err != nil {
			log.Fatalf("Watcher error: %v", err)
		}
		<-ctx.Done()
		log.Println("Watcher stopped.")

	default:
		printUsage()
	}
}

// newCache builds the product cache. Eviction events are published when a
// RabbitMQ URL is configured; the returned func releases the connection.
func newCache(cfg config.Config, source domain.DataSource[domain.Product]) (*lru.LRUCache[domain.Product], func()) {
	opts := []lru.Option{lru.WithName(cfg.Name)}
	cleanup := func() {}

	if cfg.RabbitMQ.URL != "" {
		conn, ch, err := rabbitmq.SetupConn(cfg.RabbitMQ.URL, 5)
		if err != nil {
			log.Printf("Eviction events disabled: %v", err)
		} else {
			notifier := usecase.NewEvictionNotifier(rabbitmq.NewPublisher(ch), cfg.Name)
			opts = append(opts, lru.WithEvictionListener(notifier.OnEvict))
			cleanup = func() {
				ch.Close()
				conn.Close()
			}
		}
	}

	cache, err := lru.NewWithCapacity[domain.Product](usecase.NewCoalescingSource(source), cfg.Capacity, opts...)
	if err != nil {
		if errors.Is(err, lru.ErrInvalidCapacity) {
			log.Fatalf("Invalid capacity %d", cfg.Capacity)
		}
		log.Fatal(err)
	}
	return cache, cleanup
}

func printState(cache *lru.LRUCache[domain.Product]) {
	s := cache.Stats()
	fmt.Printf("--- %s: %d/%d cached ---\n", cache.Name(), cache.Len(), cache.Capacity())
	fmt.Printf("MRU -> LRU: %v\n", cache.Keys())
	fmt.Printf("hits=%d misses=%d not_found=%d evictions=%d\n", s.Hits, s.Misses, s.NotFound, s.Evictions)
}

func printUsage() {
	fmt.Println("lrucache usage: lrucache [-config file.toml] <command>")
	fmt.Println("  seed <sku> <name> <price>  - Store a product in Redis")
	fmt.Println("  get <sku>...               - Look products up through the cache, in order")
	fmt.Println("  warm [sku...]              - Pre-load products (default: warm.ids from config)")
	fmt.Println("  watch                      - Print eviction events from RabbitMQ")
}
