package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"tictactoe/config"
	"tictactoe/console"
	"tictactoe/experiments"
	"tictactoe/gamemaster"
	"tictactoe/player"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "Path to a YAML config file (environment only when empty)")
	experiment := flag.String("experiment", "", "Run a self-play experiment with this name instead of the interactive game")
	games := flag.Int("games", 10, "Number of games per experiment")
	p1 := flag.String("p1", "computer", "Experiment player holding X (random or computer)")
	p2 := flag.String("p2", "random", "Experiment player holding O (random or computer)")
	dim := flag.Int("dim", 0, "Experiment board dimension (config default when 0)")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	initLogger(conf)

	if *experiment != "" {
		runExperiment(conf, *experiment, *games, *p1, *p2, *dim)
		return
	}

	gm := gamemaster.NewGameMaster(console.New(os.Stdin, os.Stdout), conf, rand.New(rand.NewSource(seed(conf))))
	if err := gm.Run(); err != nil && !errors.Is(err, io.EOF) {
		panic(fmt.Errorf("game session failed: %w", err))
	}
}

func initLogger(conf *config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		panic(fmt.Errorf("invalid log level: %w", err))
	}
	zerolog.SetGlobalLevel(level)
}

func runExperiment(conf *config.Config, name string, games int, p1, p2 string, dim int) {
	first, err := player.ParseKind(p1)
	if err != nil {
		panic(err)
	}
	second, err := player.ParseKind(p2)
	if err != nil {
		panic(err)
	}
	if dim == 0 {
		dim = conf.Board.DefaultDimension
	}

	summary, err := experiments.Run(experiments.Config{
		Name:      name,
		Games:     games,
		Dimension: dim,
		Players:   [2]player.Kind{first, second},
		Cutoff:    conf.Search.Cutoff,
		Seed:      seed(conf),
		Root:      "experiments",
	})
	if err != nil {
		panic(fmt.Errorf("experiment failed: %w", err))
	}

	fmt.Printf("%s vs %s: X wins=%d O wins=%d ties=%d (records in %s)\n",
		first, second, summary.XWins, summary.OWins, summary.Ties, summary.Dir)
}

func seed(conf *config.Config) uint64 {
	if conf.Seed != 0 {
		return conf.Seed
	}
	return uint64(time.Now().UnixNano())
}
