package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pitwall/simqueue/internal/common/uuid"
	"github.com/pitwall/simqueue/internal/repositories/snapshot"
	"github.com/pitwall/simqueue/internal/services/queue"
)

func main() {
	// .env is optional, real env always wins
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize the snapshot repository
	snapshotRepo, err := snapshot.NewRedis(&snapshot.Config{
		RedisClient: redisClient,
		Key:         getEnv("SNAPSHOT_KEY", snapshot.DefaultKey),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create snapshot repository")
	}

	clock := clockwork.NewRealClock()

	// Initialize the queue service
	queueSvc, err := queue.New(&queue.Config{
		SimulatorCount: getEnvInt("SIMULATOR_COUNT", 3),
		SnapshotRepo:   snapshotRepo,
		Clock:          clock,
		UUIDGenerator:  uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create queue service")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Adopt state persisted by earlier runs or other clients
	if err := queueSvc.Sync(ctx); err != nil {
		log.Warn().Err(err).Msg("initial snapshot load failed, starting empty")
	}

	// Cross-client reconciliation poll
	coordinator, err := queue.NewCoordinator(&queue.CoordinatorConfig{
		Service:  queueSvc,
		Clock:    clock,
		Interval: time.Duration(getEnvInt("SYNC_INTERVAL_SECONDS", 5)) * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sync coordinator")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		coordinator.Run(ctx)
	}()

	// Display clock: report running sessions once a second, pure reads
	go func() {
		ticker := clock.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				logRunningSessions(ctx, queueSvc, clock)
			}
		}
	}()

	log.Info().Msg("simqueued is running, press CTRL-C to exit")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info().Msg("shutting down")
	stop()
	<-done

	if err := redisClient.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close Redis client")
	}
}

func logRunningSessions(ctx context.Context, svc queue.Service, clock clockwork.Clock) {
	out, err := svc.ListSimulators(ctx, &queue.ListSimulatorsInput{})
	if err != nil {
		return
	}

	now := clock.Now()
	for _, sim := range out.Simulators {
		if sim.CurrentPlayer == nil {
			continue
		}
		log.Debug().
			Str("simulator", sim.Name).
			Str("player", sim.CurrentPlayer.Name).
			Str("elapsed", queue.FormatPlayDuration(sim.StartTime, now)).
			Msg("session running")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
