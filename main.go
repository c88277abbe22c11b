package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"chatnoir/agent"
	"chatnoir/engine"
	"chatnoir/experiments"
	"chatnoir/experiments/metrics"
	"chatnoir/game"
)

func main() {
	height := flag.Int("height", 11, "Board height (odd)")
	width := flag.Int("width", 11, "Board width (odd)")
	blocks := flag.Int("blocks", 9, "Number of initial random blocks")
	games := flag.Int("games", 10, "Number of games to play")
	blockerName := flag.String("blocker", "greedy", "Blocker strategy: random or greedy")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	experiment := flag.Bool("experiment", false, "Run the full blocker comparison experiment")
	flag.Parse()

	if *experiment {
		experiments.RunBlockerComparison(*seed)
		return
	}

	rng := rand.New(rand.NewSource(*seed))
	var blocker agent.Blocker
	switch *blockerName {
	case "random":
		blocker = agent.NewRandomBlocker(rng)
	case "greedy":
		blocker = agent.NewGreedyBlocker(rng)
	default:
		log.Fatal().Msgf("unknown blocker strategy %q", *blockerName)
	}

	fmt.Printf("Playing %d games on %dx%d with %d initial blocks...\n", *games, *width, *height, *blocks)
	wins := 0
	for i := 0; i < *games; i++ {
		e, err := engine.NewLocal(*height, *width, *blocks, rng)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build board")
		}
		outcome, gameMetric, _ := e.Run(blocker, metrics.NewCollector())
		if outcome == game.Win {
			wins++
		}
		fmt.Printf("Game %d over after %d turns: %s\n", i+1, gameMetric.TotalTurns, outcome)
	}
	fmt.Printf("Player won %d of %d games (%.0f%%)\n", wins, *games, float64(wins)/float64(*games)*100)
}
