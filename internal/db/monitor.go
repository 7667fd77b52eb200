package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// StartPingMonitor pings the store with interval and logs connectivity transitions
func StartPingMonitor(
	ctx context.Context,
	client *mongo.Client,
	interval time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		reachable := false
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				err := client.Ping(pingCtx, readpref.Primary())
				cancel()
				if err != nil {
					if reachable {
						log.Error("lost connection to document store", zap.Error(err))
					}
					reachable = false
					continue
				}
				if !reachable {
					log.Info("document store reachable")
				}
				reachable = true
			}
		}
	}()
}
