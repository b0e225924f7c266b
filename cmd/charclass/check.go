package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/antithesishq/charclass/internal/classtest"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a randomized self-check",
	Long:  "Run a randomized self-check. Each round generates a random character set, builds its pattern, compiles the pattern with the standard regexp package, and verifies that matching agrees with set membership.",
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger(cmd.Flags())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		rounds := orFatal(cmd.Flags().GetInt("rounds"))
		r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		for i := 0; rounds == 0 || i < rounds; i++ {
			select {
			case <-sig:
				logger.Info("interrupted", "rounds_complete", i)
				os.Exit(0)
			default:
			}

			chars := classtest.GenCharset(r)
			inverse := r.IntN(2) == 0
			if err := classtest.Verify(chars, inverse); err != nil {
				logger.Error("pattern disagrees with set membership",
					"err", err, "set_size", len(chars), "inverse", inverse)
				os.Exit(1)
			}
			if i > 0 && i%10000 == 0 {
				logger.Debug("checking patterns", "rounds_complete", i)
			}
		}
		logger.Info("all rounds passed", "rounds", rounds)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Int("rounds", 100000, "number of rounds to run (0 = run until interrupted)")
}
