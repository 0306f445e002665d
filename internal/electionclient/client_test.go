package electionclient_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/ballotbox/internal/config"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/internal/electionclient"
	"github.com/zhulik/ballotbox/testhelpers"
)

func newClient(handler http.HandlerFunc) *electionclient.Client {
	ts := httptest.NewServer(handler)
	DeferCleanup(ts.Close)

	return lo.Must(electionclient.NewClient(testhelpers.NewBaseInjector(config.Config{ServiceURL_: ts.URL})))
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

var _ = Describe("Client", func() {
	DescribeTable("maps error statuses",
		func(ctx SpecContext, status int, expected error) {
			client := newClient(respond(status, `{"error":"nope"}`))

			_, err := client.ListElections(ctx)
			Expect(err).To(MatchError(expected))
			Expect(err).To(MatchError(ContainSubstring("nope")))
		},
		Entry("bad request", http.StatusBadRequest, core.ErrInvalidInput),
		Entry("unauthorized", http.StatusUnauthorized, core.ErrUnauthorized),
		Entry("not found", http.StatusNotFound, core.ErrElectionNotFound),
		Entry("conflict", http.StatusConflict, core.ErrConflict),
		Entry("server error", http.StatusInternalServerError, core.ErrRemote),
		Entry("bad gateway", http.StatusBadGateway, core.ErrRemote),
	)

	It("does not repeat a message that matches the error", func(ctx SpecContext) {
		client := newClient(respond(http.StatusNotFound, `{"error":"election not found"}`))

		_, err := client.GetElections(ctx, []string{"missing"})
		Expect(err).To(MatchError(core.ErrElectionNotFound))
		Expect(err.Error()).To(Equal("election not found"))
	})

	It("keeps the detail of a server message prefixed with the error", func(ctx SpecContext) {
		client := newClient(respond(http.StatusNotFound, `{"error":"election not found: missing"}`))

		_, err := client.GetElections(ctx, []string{"missing"})
		Expect(err.Error()).To(Equal("election not found: missing"))
	})

	It("falls back to the status text without an error body", func(ctx SpecContext) {
		client := newClient(respond(http.StatusTeapot, ""))

		_, err := client.ListElections(ctx)
		Expect(err).To(MatchError(core.ErrRemote))
		Expect(err).To(MatchError(ContainSubstring("418")))
	})

	It("reports malformed responses as remote errors", func(ctx SpecContext) {
		client := newClient(respond(http.StatusOK, `{"elections":`))

		_, err := client.ListElections(ctx)
		Expect(err).To(MatchError(core.ErrRemote))
	})

	It("reports transport failures as remote errors", func(ctx SpecContext) {
		client := lo.Must(electionclient.NewClient(testhelpers.NewBaseInjector(config.Config{
			ServiceURL_: "http://127.0.0.1:1",
		})))

		_, err := client.ListElections(ctx)
		Expect(err).To(MatchError(core.ErrRemote))
	})

	It("sends ids as repeated query parameters", func(ctx SpecContext) {
		var query []string

		client := newClient(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()["ids"]
			respond(http.StatusOK, `{"elections":[{"id":"a","candidates":[{"id":"x","name":"X"}]}]}`)(w, r)
		})

		elections, err := client.GetElections(ctx, []string{"a", "b"})
		Expect(err).ToNot(HaveOccurred())
		Expect(query).To(Equal([]string{"a", "b"}))
		Expect(elections[0].Candidates[0].Description).To(BeNil())
	})

	It("sends the access token as a bearer token", func(ctx SpecContext) {
		var header string

		client := newClient(func(w http.ResponseWriter, r *http.Request) {
			header = r.Header.Get(core.AuthorizationHeaderName)
			w.WriteHeader(http.StatusNoContent)
		})

		Expect(client.StartElection(ctx, "a", "token")).To(Succeed())
		Expect(header).To(Equal("Bearer token"))
	})

	It("pings the health endpoint", func(ctx SpecContext) {
		client := newClient(respond(http.StatusOK, ""))

		Expect(client.Ping(ctx)).To(Succeed())
	})

	It("rejects an invalid service url", func() {
		_, err := electionclient.NewClient(testhelpers.NewBaseInjector(config.Config{ServiceURL_: "not a url"}))
		Expect(err).To(MatchError(core.ErrInvalidInput))
	})
})
