package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/do"
	"github.com/zhulik/ballotbox/internal/config"
	"github.com/zhulik/ballotbox/internal/core"
)

func setenv(key, value string) {
	old, ok := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())

	DeferCleanup(func() {
		if ok {
			os.Setenv(key, old) //nolint:errcheck
		} else {
			os.Unsetenv(key) //nolint:errcheck
		}
	})
}

var _ = Describe("Config", func() {
	Describe("Parse", func() {
		It("reads values from the environment", func() {
			setenv("SERVICE_URL", "http://elections.local")
			setenv("ACCOUNT_ID", "acme")
			setenv("REQUEST_TIMEOUT", "3s")
			setenv("HTTP_PORT", "9000")
			setenv("NATS_URL", "nats://nats:4222")

			cfg, err := config.Parse()
			Expect(err).ToNot(HaveOccurred())

			Expect(cfg.ServiceURL()).To(Equal("http://elections.local"))
			Expect(cfg.AccountID()).To(Equal("acme"))
			Expect(cfg.RequestTimeout()).To(Equal(3 * time.Second))
			Expect(cfg.HTTPPort()).To(Equal(9000))
			Expect(cfg.NatsURL()).To(Equal("nats://nats:4222"))
		})

		It("fails on malformed values", func() {
			setenv("REQUEST_TIMEOUT", "soon")

			_, err := config.Parse()
			Expect(err).To(MatchError(ContainSubstring("failed to parse config")))
		})
	})

	Describe("Register", func() {
		It("provides the given config to the injector", func() {
			injector := do.New()
			config.Register(injector, config.Config{ServiceURL_: "http://flags.local", AccountID_: "cli"})

			cfg, err := do.Invoke[core.Config](injector)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.ServiceURL()).To(Equal("http://flags.local"))
			Expect(cfg.AccountID()).To(Equal("cli"))
		})
	})

	Describe("defaults", func() {
		It("falls back for zero values", func() {
			cfg := config.Config{}

			Expect(cfg.RequestTimeout()).To(Equal(core.DefaultRequestTimeout))
			Expect(cfg.AccessTokenTTL()).To(Equal(core.DefaultAccessTokenTTL))
			Expect(cfg.CreatedSubject()).To(Equal(core.DefaultCreatedSubject))
			Expect(cfg.LogLevel()).To(Equal("info"))
			Expect(cfg.NatsURL()).To(BeEmpty())
		})
	})
})
