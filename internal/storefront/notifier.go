package storefront

import (
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"go.uber.org/zap"
)

// LogNotifier writes notices to a logger. It is the notifier of headless clients.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(notice domain.Notice) {
	switch notice.Kind {
	case domain.NoticeError:
		n.logger.Warn(notice.Message, zap.Stringer("kind", notice.Kind))
	default:
		n.logger.Info(notice.Message, zap.Stringer("kind", notice.Kind))
	}
}
