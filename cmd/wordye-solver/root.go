package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordye/internal/cli"
	"github.com/robalobadob/wordye/internal/config"
	"github.com/robalobadob/wordye/internal/solver"
	"github.com/robalobadob/wordye/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "wordye-solver [SECRET]",
	Short: "Watch the solver play a game of Wordye",
	Long: `Plays one game against SECRET (or a random answer) and prints every guess.
The solver always follows hard-mode rules.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSolve,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadList prepares logging and the word lists shared by all subcommands.
func loadList(cfg config.Game) *words.List {
	env := config.LoadEnv()
	cli.InitLogging(env.LogLevel)
	list, err := words.Load(words.Source{AnswersPath: env.AnswersFile, AllowedPath: env.AllowedFile}, cfg.WordLength)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	return list
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	list := loadList(cfg)

	var secret string
	if len(args) == 1 {
		secret = args[0]
		if !list.IsAnswer(secret) {
			return fmt.Errorf("%q is not in the answer list", secret)
		}
	}

	r := cli.NewRenderer(cmd.OutOrStdout())
	s, err := solver.Solve(cfg, list, secret, solver.WithObserver(cli.Transcript(r, cfg.MaxTurns)))
	if err != nil {
		return err
	}
	cli.Summary(r, s)
	return nil
}
