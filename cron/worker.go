package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"telecare/config"
	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentExpire = "appointment:expire"

// ExpirePayload identifies the appointment a deferred expiry task targets.
type ExpirePayload struct {
	AppointmentID string `json:"appointment_id"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisExpiryQueueDB,
	}
}

// ExpiryScheduler enqueues deferred expiry tasks via asynq.
type ExpiryScheduler struct {
	client *asynq.Client
}

// NewExpiryScheduler constructs an ExpiryScheduler over the expiry queue.
func NewExpiryScheduler() *ExpiryScheduler {
	return &ExpiryScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleExpiry enqueues a task that fires at the appointment's start time
// and cancels it if the doctor never actioned the request. This keeps
// abandoned pending appointments from occupying slots forever.
func (s *ExpiryScheduler) ScheduleExpiry(ctx context.Context, appointmentID string, startAt time.Time) error {
	payload, err := json.Marshal(ExpirePayload{AppointmentID: appointmentID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAppointmentExpire, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(startAt))
	return err
}

// InitExpiryWorker runs the async worker in background.
func InitExpiryWorker(repo appointmentRepo.AppointmentRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentExpire, handleExpireTask(repo))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(repo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryWorker] invalid payload: %v", err)
			return err
		}

		appointment, err := repo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			// Deleted by a losing race writer or cleaned up elsewhere.
			log.Printf("[ExpiryWorker] appointment %s not found, nothing to expire", p.AppointmentID)
			return nil
		}
		if appointment.Status != models.StatusPending {
			return nil
		}

		log.Printf("[ExpiryWorker] cancelling stale pending appointment %s", p.AppointmentID)
		return repo.UpdateStatus(ctx, p.AppointmentID, models.StatusCancelled)
	}
}
