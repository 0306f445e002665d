package utils_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/zhulik/ballotbox/pkg/utils"
)

var _ = Describe("Inflight", func() {
	It("returns immediately with nothing running", func() {
		var inflight utils.Inflight

		inflight.Wait()
	})

	It("waits for running tasks", func() {
		var inflight utils.Inflight

		release := make(chan struct{})

		inflight.Add()

		go func() {
			<-release
			inflight.Done()
		}()

		waited := make(chan struct{})

		go func() {
			inflight.Wait()
			close(waited)
		}()

		Consistently(waited, 50*time.Millisecond).ShouldNot(BeClosed())

		close(release)

		Eventually(waited).Should(BeClosed())
	})

	It("allows Add while another goroutine is waiting", func() {
		var inflight utils.Inflight

		inflight.Add()

		waited := make(chan struct{})

		go func() {
			inflight.Wait()
			close(waited)
		}()

		inflight.Add()
		inflight.Done()

		Consistently(waited, 50*time.Millisecond).ShouldNot(BeClosed())

		inflight.Done()

		Eventually(waited).Should(BeClosed())
	})

	It("can be reused after draining", func() {
		var inflight utils.Inflight

		inflight.Add()
		inflight.Done()
		inflight.Wait()

		inflight.Add()
		inflight.Done()
		inflight.Wait()
	})

	It("panics on Done without Add", func() {
		var inflight utils.Inflight

		Expect(inflight.Done).To(Panic())
	})
})
