package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// headlessScreen is large enough for any board, so the round never pauses
// for a small terminal.
const headlessScreen = 1 << 12

var (
	flagSimLimit time.Duration
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless bot-only round",
	Long: `Run a bot-only round on a fixed clock without a terminal UI and
print the result. The same --seed, --fps and config give the same round.

Examples:
  arena sim
  arena sim --seed 42 --level 3
  arena sim --limit 10m --save --log-level info`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().DurationVar(&flagSimLimit, "limit", 5*time.Minute, "Stop after this much arena time")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the round to the scores database")
}

func runSim(_ *cobra.Command, _ []string) error {
	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()
	applyGameFlags()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW:  headlessScreen,
		ScreenH:  headlessScreen,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game := snake.NewSpectator()
	game.SelectLevel(flagLevel)
	game.Reset(rc)
	if err := game.Err(); err != nil {
		return err
	}

	in := core.NewInputFrame()
	for game.Elapsed() < flagSimLimit {
		res := game.Step(in)
		if res.State.GameOver {
			break
		}
		if res.Err != nil {
			return res.Err
		}
	}

	snap := game.Snapshot()
	fmt.Printf("seed %d  level %d  %s after %s\n", seed, snap.Level, snap.State,
		(time.Duration(snap.Now) * time.Millisecond).String())
	if snap.Winner != "" {
		fmt.Printf("winner: %s\n", snap.Winner)
	}
	for _, a := range snap.Agents {
		fmt.Printf("  %-12s %3d pts  len %-3d %s\n", a.Name, a.Points, a.Len, a.Status)
	}
	if snap.Removed > 0 {
		fmt.Printf("  (%d bots swept)\n", snap.Removed)
	}

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	rec := game.Record(uuid.NewString())
	if _, err := store.SaveRound(rec); err != nil {
		return fmt.Errorf("saving round: %w", err)
	}
	log.Info("round saved", "round", rec.RoundID, "outcome", rec.Outcome)
	return nil
}
