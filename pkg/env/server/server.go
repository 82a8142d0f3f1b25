package server

import (
	"net"
	"os"
	"strconv"

	"github.com/chatrelay/relay/pkg/env"
)

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 5000
)

type Env struct {
	Host string
	Port int
}

func NewServerEnv() *Env {
	return &Env{}
}

func (s *Env) Populate() error {
	s.Host = DefaultHost
	if host, found := os.LookupEnv("HOST"); found {
		s.Host = host
	}

	s.Port = DefaultPort
	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return &env.TypeError{Name: "PORT"}
		}
		s.Port = port
	}

	return nil
}

func (s *Env) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
