package notify

import (
	"context"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/core"
)

// LogNotifier only logs created elections.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(injector *do.Injector) (*LogNotifier, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	return &LogNotifier{
		logger: logger.WithField("component", "notify.LogNotifier"),
	}, nil
}

func (n *LogNotifier) ElectionCreated(_ context.Context, event core.ElectionCreated) error {
	n.logger.WithFields(logrus.Fields{
		"draftID":    event.DraftID,
		"electionID": event.ElectionID,
		"name":       event.Name,
	}).Info("Election created")

	return nil
}
