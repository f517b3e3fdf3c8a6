package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueFacturaPDF = "jobs:factura_pdf"
	QueueEmail      = "jobs:email"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Handler processes one dequeued job payload.
type Handler interface {
	Process(ctx context.Context, raw json.RawMessage)
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueFacturaPDF pushes an invoice-PDF generation job to Redis.
func (d *Dispatcher) EnqueueFacturaPDF(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueFacturaPDF, "factura_pdf", payload)
}

// EnqueueEmail pushes an email job to Redis.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueEmail, "email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	if d.rdb == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes the job queues and routes each job to its handler.
type Pool struct {
	rdb      *redis.Client
	handlers map[string]Handler
}

func NewPool(rdb *redis.Client) *Pool {
	return &Pool{rdb: rdb, handlers: make(map[string]Handler)}
}

// Register binds a job type to its handler. Not safe to call after Start.
func (p *Pool) Register(jobType string, h Handler) {
	p.handlers[jobType] = h
}

// Start launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	queues := []string{QueueFacturaPDF, QueueEmail}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.process(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) process(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}
	h, ok := p.handlers[job.Type]
	if !ok {
		log.Error().Str("type", job.Type).Str("queue", queue).Msg("no handler registered for job")
		SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, "no handler registered", 0)
		return
	}
	log.Info().Str("type", job.Type).Str("queue", queue).Msg("processing job")
	h.Process(ctx, job.Payload)
}
