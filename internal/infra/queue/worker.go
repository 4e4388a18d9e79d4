package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender is implemented by the mail package.
type NotificationSender interface {
	SendSubmissionAck(to, name, kind, role string) error
	SendInterviewNotice(to, name, role, meeting string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so the queue
				// does not wedge.
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] sending %s notification to %s", payload.Kind, payload.Email)

			var err error
			if payload.Kind == KindInterview {
				err = w.Sender.SendInterviewNotice(payload.Email, payload.Name, payload.Role, payload.MeetingTime)
			} else {
				err = w.Sender.SendSubmissionAck(payload.Email, payload.Name, payload.Kind, payload.Role)
			}
			if err != nil {
				log.Printf("[WORKER] send failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}
