package core

import (
	"time"
)

const (
	EnvNameServiceURL = "SERVICE_URL"
	EnvNameAccountID  = "ACCOUNT_ID"
	EnvNameNatsURL    = "NATS_URL"
	EnvNameLogLevel   = "LOG_LEVEL"

	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "

	DefaultRequestTimeout = 10 * time.Second
	DefaultAccessTokenTTL = 5 * time.Minute
	DefaultCreatedSubject = "ballotbox.elections.created"
)
