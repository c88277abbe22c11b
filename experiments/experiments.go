package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"chatnoir/agent"
	"chatnoir/engine"
	"chatnoir/experiments/metrics"
	"chatnoir/game"
)

const NumGames = 30 // Per blocker and board configuration

// BoardConfig is one board shape to evaluate blockers on.
type BoardConfig struct {
	Height        int
	Width         int
	InitialBlocks int
}

var boardConfigs = []BoardConfig{
	{Height: 7, Width: 7, InitialBlocks: 4},
	{Height: 11, Width: 11, InitialBlocks: 9},
	{Height: 15, Width: 15, InitialBlocks: 14},
}

// RunBlockerComparison plays NumGames per blocker strategy and board
// configuration and persists game and move records as CSV.
func RunBlockerComparison(seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	blockers := []agent.Blocker{
		agent.NewRandomBlocker(rng),
		agent.NewGreedyBlocker(rng),
	}

	log.Info().Msgf("starting blocker comparison experiment with seed %d...", seed)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for _, blocker := range blockers {
		for _, config := range boardConfigs {
			wins := 0
			for i := 0; i < NumGames; i++ {
				outcome, gameMetric, moveMetrics := runGame(blocker, config, rng)
				count++
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: mm,
					})
				}
				if outcome == game.Win {
					wins++
				}
			}
			log.Info().Msgf("%s blocker on %dx%d (%d initial blocks): %d of %d wins",
				blocker.Name(), config.Width, config.Height, config.InitialBlocks, wins, NumGames)
		}
	}

	log.Info().Msg("completed blocker comparison experiment")

	writer, err := metrics.NewWriter("blocker_comparison")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame plays a single game between the cat and the given blocker.
func runGame(blocker agent.Blocker, config BoardConfig, rng *rand.Rand) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	e, err := engine.NewLocal(config.Height, config.Width, config.InitialBlocks, rng)
	if err != nil {
		panic(fmt.Sprintf("failed to build board: %v", err))
	}
	return e.Run(blocker, metrics.NewCollector())
}
