package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	libNats "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/pkg/json"
)

const (
	StreamName = "ballotbox-elections"

	maxMsgs = 10000
	maxAge  = 30 * 24 * time.Hour
)

// NATSNotifier publishes created elections to a JetStream subject.
type NATSNotifier struct {
	nats      *libNats.Conn
	jetStream jetstream.JetStream
	subject   string

	logger logrus.FieldLogger
}

func NewNATSNotifier(injector *do.Injector) (*NATSNotifier, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	natsClient, err := libNats.Connect(config.NatsURL(), libNats.Timeout(config.RequestTimeout()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS client: %w", err)
	}

	jetStream, err := jetstream.New(natsClient)
	if err != nil {
		natsClient.Close()

		return nil, fmt.Errorf("failed to build JetStream client: %w", err)
	}

	notifier := &NATSNotifier{
		nats:      natsClient,
		jetStream: jetStream,
		subject:   config.CreatedSubject(),
		logger:    logger.WithField("component", "notify.NATSNotifier"),
	}

	err = notifier.createOrUpdateStream(context.Background())
	if err != nil {
		natsClient.Close()

		return nil, err
	}

	notifier.logger.Info("NATS notifier created.")

	return notifier, nil
}

func (n *NATSNotifier) ElectionCreated(ctx context.Context, event core.ElectionCreated) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = n.jetStream.Publish(ctx, n.subject, payload)
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	return nil
}

func (n *NATSNotifier) HealthCheck() error {
	n.logger.Debug("Notifier health check...")

	_, err := n.nats.GetClientID()
	if err != nil {
		return fmt.Errorf("healthcheck failed: %w", err)
	}

	_, err = n.jetStream.AccountInfo(context.Background())
	if err != nil {
		return fmt.Errorf("healthcheck failed: %w", err)
	}

	return nil
}

func (n *NATSNotifier) Shutdown() error {
	n.logger.Debug("Shutting down NATS notifier...")
	n.jetStream.CleanupPublisher()
	n.nats.Close()

	return nil
}

func (n *NATSNotifier) createOrUpdateStream(ctx context.Context) error {
	stream := jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{n.subject},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    maxAge,
		MaxMsgs:   maxMsgs,
		Replicas:  1,
	}

	_, err := n.jetStream.CreateStream(ctx, stream)
	if err == nil {
		return nil
	}

	if !errors.Is(err, jetstream.ErrStreamNameAlreadyInUse) {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	_, err = n.jetStream.UpdateStream(ctx, stream)
	if err != nil {
		return fmt.Errorf("failed to update stream: %w", err)
	}

	return nil
}
