package model

import (
	"fmt"
	"os"
	"time"

	"github.com/chatrelay/relay/pkg/env"
)

const (
	DefaultName    = "gemini-1.5-flash"
	DefaultTimeout = 30 * time.Second
)

type Env struct {
	APIKey  string
	Name    string
	Timeout time.Duration
}

func NewModelEnv() *Env {
	return &Env{}
}

func (m *Env) Populate() error {
	key := os.Getenv("MODEL_API_KEY")
	if key == "" {
		return &env.Error{Name: "MODEL_API_KEY"}
	}
	m.APIKey = key

	m.Name = DefaultName
	if name := os.Getenv("MODEL_NAME"); name != "" {
		m.Name = name
	}

	m.Timeout = DefaultTimeout
	if s := os.Getenv("MODEL_TIMEOUT"); s != "" {
		timeout, err := time.ParseDuration(s)
		if err != nil || timeout <= 0 {
			return &env.TypeError{Name: "MODEL_TIMEOUT"}
		}
		m.Timeout = timeout
	}

	return nil
}

// String never includes the API key.
func (m *Env) String() string {
	key := ""
	if m.APIKey != "" {
		key = "[REDACTED]"
	}
	return fmt.Sprintf("model: %s, timeout: %s, key: %s", m.Name, m.Timeout, key)
}
