package audit

import (
	"go.uber.org/zap"
)

type ConsoleAudit struct {
	Logger *zap.SugaredLogger
}

var _ Audit = (*ConsoleAudit)(nil)

func NewConsoleAudit(logger *zap.SugaredLogger) *ConsoleAudit {
	return &ConsoleAudit{Logger: logger}
}

func (d *ConsoleAudit) Write(r *RelayData) error {
	d.Logger.Infow("AUDIT",
		"Model", r.Model,
		"QueryLength", r.QueryLength,
		"ResponseLength", r.ResponseLength,
		"Success", r.Success,
		"Duration", r.Duration.Milliseconds(),
		"Timestamp", r.Timestamp,
	)
	return nil
}
