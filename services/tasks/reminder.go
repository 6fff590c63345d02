package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"trimly/config"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// BookingReminderPayload carries everything the worker needs to send the
// reminder without a database round trip.
type BookingReminderPayload struct {
	BookingID     string `json:"bookingId"`
	CustomerEmail string `json:"customerEmail"`
	ShopName      string `json:"shopName"`
	ServiceName   string `json:"serviceName"`
	BookingDate   string `json:"bookingDate"`
	BookingTime   string `json:"bookingTime"`
}

// NewBookingReminderTask builds an asynq task scheduled to fire at the given time.
func NewBookingReminderTask(payload BookingReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminders. A nil scheduler in the
// booking service disables reminders without touching the lifecycle logic.
type ReminderScheduler interface {
	ScheduleBookingReminder(payload BookingReminderPayload, fireAt time.Time) error
}

// AsynqReminderScheduler enqueues reminder tasks on the Redis-backed queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

func (s *AsynqReminderScheduler) ScheduleBookingReminder(payload BookingReminderPayload, fireAt time.Time) error {
	task, opts, err := NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
