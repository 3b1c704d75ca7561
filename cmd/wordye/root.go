package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordye/internal/cli"
	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/daily"
	"github.com/robalobadob/wordye/internal/game"
	"github.com/robalobadob/wordye/internal/words"
)

var rootCmd = &cobra.Command{
	Use:           "wordye",
	Short:         "Play a game of Wordye",
	Long:          `Guess the hidden five-letter word in six tries. Each guess is scored letter by letter.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("hard-mode", "!", false, "play in hard mode")
	rootCmd.Flags().Bool("daily", false, "play today's daily word instead of a random one")
}

func runGame(cmd *cobra.Command, args []string) error {
	hardMode, _ := cmd.Flags().GetBool("hard-mode")
	dailyMode, _ := cmd.Flags().GetBool("daily")

	env := config.LoadEnv()
	cli.InitLogging(env.LogLevel)

	cfg := config.Default()
	cfg.HardMode = hardMode

	list, err := words.Load(words.Source{AnswersPath: env.AnswersFile, AllowedPath: env.AllowedFile}, cfg.WordLength)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	var secret string
	if dailyMode {
		now := time.Now()
		secret = daily.Pick(list.Answers(), now, env.DailySalt)
		log.Debug().Str("date", daily.DateKey(now)).Msg("daily word selected")
	}

	s, err := game.NewSession(cfg, list, secret)
	if err != nil {
		return err
	}
	return cli.Play(cmd.Context(), s, cmd.InOrStdin(), cli.NewRenderer(cmd.OutOrStdout()))
}
