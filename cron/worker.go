package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"concierge/config"
	"concierge/models"
	"concierge/services/notification"
	"concierge/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] firing reminder for booking %s (%s on %s)", p.BookingID, p.Service, p.Date)

		if err := notifSvc.SendBookingReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] failed to deliver reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
