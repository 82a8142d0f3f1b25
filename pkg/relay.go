package relay

import (
	"os"

	"go.uber.org/zap"

	"github.com/chatrelay/relay/pkg/audit"
	"github.com/chatrelay/relay/pkg/env/model"
	"github.com/chatrelay/relay/pkg/env/server"
	"github.com/chatrelay/relay/pkg/provider"
)

type Config struct {
	Provider  provider.Provider
	ModelEnv  *model.Env
	ServerEnv *server.Env
	Audit     audit.Audit
	Logger    *zap.SugaredLogger
}

func Production() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}
