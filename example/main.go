package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/addisoncox/twincount"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns 0 when every strategy verifies, 1 on a verification or redis
// failure and 2 on bad arguments.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("example", flag.ContinueOnError)
	flags.SetOutput(stderr)
	items := flags.Int("items", 1000, "number of counters")
	redisAddr := flags.String("redis", "", "redis address to store run results in (disabled when empty)")
	arrayLock := flags.Bool("array-lock", false, "guard the whole array with one lock instead of one per counter")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	reporters := twincount.MultiReporter{twincount.LogReporter{Logger: logger}}
	if *redisAddr != "" {
		redisReporter := twincount.NewRedisReporter(*redisAddr, "", 0, "example")
		defer redisReporter.Close()
		if err := redisReporter.Ping(); err != nil {
			logger.Error("redis unavailable", "addr", *redisAddr, "err", err)
			return 1
		}
		reporters = append(reporters, redisReporter)
	}

	granularity := twincount.PerElementLock
	if *arrayLock {
		granularity = twincount.ArrayLock
	}

	failed := false
	for _, strategy := range twincount.Strategies {
		array, err := twincount.NewFromConfig(twincount.Config{
			NumberOfItems:   *items,
			LockGranularity: granularity,
			Reporter:        reporters,
			Logger:          logger,
		})
		if err != nil {
			logger.Error("could not create array", "err", err)
			return 2
		}

		result := array.Run(strategy)
		if result.Sum != result.Expected() {
			logger.Error("wrong sum", "strategy", strategy, "sum", result.Sum, "expected", result.Expected())
			failed = true
		}
		if err := array.Verify(2); err != nil {
			logger.Error("verification failed", "strategy", strategy, "err", err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}
