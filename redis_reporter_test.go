package twincount_test

import (
	"github.com/addisoncox/twincount"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RedisReporter key", func() {
	It("Lives under the twc:run: prefix", func() {
		reporter := twincount.NewRedisReporter("localhost:6379", "", 0, "bench")
		defer reporter.Close()
		Expect(reporter.Key()).To(Equal("twc:run:bench"))
	})
})

var _ = Describe("RedisReporter", Ordered, func() {
	var reporter *twincount.RedisReporter

	BeforeAll(func() {
		reporter = twincount.NewRedisReporter("localhost:6379", "", 0, "test")
		if err := reporter.Ping(); err != nil {
			Skip("redis not available: " + err.Error())
		}
	})

	BeforeEach(func() {
		Expect(reporter.Reset()).To(Succeed())
	})

	AfterAll(func() {
		reporter.Reset()
		reporter.Close()
	})

	It("Uses a prefixed key", func() {
		Expect(reporter.Key()).To(Equal(twincount.RUN_RESULT_PREFIX + "test"))
	})

	It("Stores every run newest first", func() {
		array, err := twincount.NewFromConfig(twincount.Config{
			NumberOfItems: 1000,
			Reporter:      reporter,
		})
		Expect(err).NotTo(HaveOccurred())

		first := array.Run(twincount.Locking)
		second := array.Run(twincount.LockFree)

		Expect(reporter.Len()).To(Equal(uint64(2)))
		results, err := reporter.Results()
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].ID).To(Equal(second.ID))
		Expect(results[0].Strategy).To(Equal(twincount.LockFree))
		Expect(results[0].Sum).To(Equal(int64(4000)))
		Expect(results[1].ID).To(Equal(first.ID))
		Expect(results[1].Sum).To(Equal(first.Expected()))
	})
})
