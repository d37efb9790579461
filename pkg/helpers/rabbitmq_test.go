package helpers

import (
	"context"
	"encoding/json"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-signup/pkg/mailer"
)

type recordingChannel struct {
	exchange, key string
	msg           amqp.Publishing
	closed        bool
}

func (r *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	r.exchange, r.key, r.msg = exchange, key, msg
	return nil
}

func (r *recordingChannel) Close() error {
	r.closed = true
	return nil
}

func TestRabbitPublisher_PublishJSON(t *testing.T) {
	ch := &recordingChannel{}
	p := &RabbitPublisher{ch: ch, Queue: "emails"}

	job := mailer.EmailJob{To: "_valid@email", Template: "welcome"}
	require.NoError(t, p.PublishJSON(context.Background(), job))

	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "emails", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)

	var got mailer.EmailJob
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	assert.Equal(t, job.To, got.To)
	assert.Equal(t, job.Template, got.Template)

	p.Close()
	assert.True(t, ch.closed)
}

func TestRabbitPublisher_CloseNil(t *testing.T) {
	var p *RabbitPublisher
	assert.NotPanics(t, p.Close)
}
