package config

import (
	"time"

	"github.com/zhulik/ballotbox/internal/core"
)

type Config struct {
	ServiceURL_     string        `env:"SERVICE_URL"      envDefault:"http://127.0.0.1:8180"` //nolint:stylecheck
	AccountID_      string        `env:"ACCOUNT_ID"       envDefault:"anonymous"`             //nolint:stylecheck
	RequestTimeout_ time.Duration `env:"REQUEST_TIMEOUT"  envDefault:"10s"`                   //nolint:stylecheck

	HttpPort        int           `env:"HTTP_PORT"        envDefault:"8180"` //nolint:stylecheck
	AccessTokenTTL_ time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"5m"`   //nolint:stylecheck

	NATSURL         string `env:"NATS_URL"`
	CreatedSubject_ string `env:"NATS_SUBJECT" envDefault:"ballotbox.elections.created"` //nolint:stylecheck

	Loglevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c Config) ServiceURL() string {
	return c.ServiceURL_
}

func (c Config) AccountID() string {
	return c.AccountID_
}

func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeout_ == 0 {
		return core.DefaultRequestTimeout
	}

	return c.RequestTimeout_
}

func (c Config) HTTPPort() int {
	return c.HttpPort
}

func (c Config) AccessTokenTTL() time.Duration {
	if c.AccessTokenTTL_ == 0 {
		return core.DefaultAccessTokenTTL
	}

	return c.AccessTokenTTL_
}

// NatsURL returns an empty string when notifications should not be published.
func (c Config) NatsURL() string {
	return c.NATSURL
}

func (c Config) CreatedSubject() string {
	if c.CreatedSubject_ == "" {
		return core.DefaultCreatedSubject
	}

	return c.CreatedSubject_
}

func (c Config) LogLevel() string {
	if c.Loglevel == "" {
		return "info"
	}

	return c.Loglevel
}
