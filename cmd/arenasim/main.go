// Package main provides the arenasim binary: it loads a creature roster and
// trainer archetypes from YAML, then plays one full tournament with the AI
// selector standing in for the human, printing the combat log.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/ai"
	"github.com/cory-johannsen/arena/internal/game/battle"
	"github.com/cory-johannsen/arena/internal/game/creature"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/session"
	"github.com/cory-johannsen/arena/internal/game/tournament"
	"github.com/cory-johannsen/arena/internal/importer"
	"github.com/cory-johannsen/arena/internal/observability"
)

// maxTurnsPerBattle bounds a runaway battle; past it the run forfeits.
const maxTurnsPerBattle = 500

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	creaturesDir := flag.String("creatures-dir", "content/creatures", "path to creature roster YAML directory")
	archetypesDir := flag.String("archetypes-dir", "content/archetypes", "path to trainer archetype YAML directory; empty = built-in set")
	participants := flag.Int("participants", 8, "tournament participant count (including the player)")
	teamSize := flag.Int("team-size", 3, "player team size, 1-6")
	name := flag.String("name", "Arena Open", "tournament name")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	src := dice.NewLoggedSource(dice.NewCryptoSource(), logger)

	pool, err := importer.LoadRosterDir(*creaturesDir)
	if err != nil {
		logger.Fatal("loading creature roster", zap.Error(err))
	}
	logger.Info("roster loaded", zap.Int("creatures", len(pool)))

	archetypes := tournament.BuiltinArchetypes()
	if *archetypesDir != "" {
		archetypes, err = tournament.LoadArchetypes(*archetypesDir)
		if err != nil {
			logger.Fatal("loading archetypes", zap.Error(err))
		}
	}
	logger.Info("archetypes loaded", zap.Int("archetypes", len(archetypes)))

	aiCfg := ai.Config{
		SwitchHPThreshold: cfg.AI.SwitchHPThreshold,
		BenchHPThreshold:  cfg.AI.BenchHPThreshold,
	}
	sess := session.New(aiCfg, cfg.Simulation.BaseWeight, logger, src)

	if err := run(sess, aiCfg, pool, archetypes, *name, *participants, *teamSize, src); err != nil {
		logger.Fatal("tournament run failed", zap.Error(err))
	}

	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
}

// run creates, starts, and plays a tournament to completion, auto-playing
// the player's battles with the same selector the opponent uses.
func run(sess *session.Session, aiCfg ai.Config, pool []creature.Definition, archetypes []*tournament.Archetype, name string, participants, teamSize int, src dice.Source) error {
	playerRoster, err := drawPlayerRoster(pool, teamSize, src)
	if err != nil {
		return err
	}

	t, err := sess.CreateTournament(name, tournament.FormatSingleElimination, "You", playerRoster, participants, pool, archetypes)
	if err != nil {
		return fmt.Errorf("creating tournament: %w", err)
	}
	printBracket(t)

	if err := sess.StartTournament(); err != nil {
		return fmt.Errorf("starting tournament: %w", err)
	}

	for t.Status == tournament.StatusInProgress {
		match := t.PlayerMatch()
		if match == nil {
			// The player has been eliminated; the remaining rounds
			// resolved by simulation inside the engine.
			break
		}
		if err := playMatch(sess, aiCfg, match, playerRoster); err != nil {
			return err
		}
	}

	printResult(t, sess.History())
	return nil
}

// playMatch fights one player-involving match to a terminal battle and
// reports the result back to the tournament.
func playMatch(sess *session.Session, aiCfg ai.Config, match *tournament.Match, playerRoster []creature.Definition) error {
	opponent := match.Participant2
	fmt.Printf("\n=== Round %d, match %d: You vs %s ===\n", match.Round, match.Number, opponent.Name)

	b, err := sess.StartBattle(playerRoster, opponent.Team)
	if err != nil {
		return fmt.Errorf("starting battle: %w", err)
	}

	for !b.Over() {
		if len(b.Turns) >= maxTurnsPerBattle {
			if err := sess.ForfeitBattle(); err != nil {
				return err
			}
			break
		}
		action := ai.SelectAction(b.PlayerTeam, b.OpponentTeam, aiCfg)
		turn, err := sess.ExecutePlayerAction(action)
		if err != nil {
			return fmt.Errorf("turn %d: %w", len(b.Turns)+1, err)
		}
		for _, ev := range turn.Events {
			if ev.Kind == battle.EventDamage {
				fmt.Printf("  %s (%d damage)\n", ev.Message, ev.Amount)
				continue
			}
			fmt.Printf("  %s\n", ev.Message)
		}
	}

	fmt.Printf("Battle over: %s in %d turns.\n", b.Status, len(b.Turns))
	if err := sess.AdvanceTournament(match.ID); err != nil {
		return fmt.Errorf("advancing tournament: %w", err)
	}
	return nil
}

// drawPlayerRoster picks teamSize distinct creatures from pool at random.
func drawPlayerRoster(pool []creature.Definition, teamSize int, src dice.Source) ([]creature.Definition, error) {
	if teamSize < 1 || teamSize > battle.MaxTeamSize {
		return nil, fmt.Errorf("team size must be 1-%d, got %d", battle.MaxTeamSize, teamSize)
	}
	if teamSize > len(pool) {
		teamSize = len(pool)
	}
	drawn := make([]creature.Definition, len(pool))
	copy(drawn, pool)
	dice.Shuffle(drawn, src)
	return drawn[:teamSize], nil
}

// printBracket writes the round tree to stdout.
func printBracket(t *tournament.Tournament) {
	fmt.Printf("%s: %d participants, %d rounds\n", t.Name, len(t.Participants), len(t.Rounds))
	for _, p := range t.Participants {
		label := ""
		if p.IsPlayer {
			label = " (you)"
		}
		fmt.Printf("  %s%s, team of %d\n", p.Name, label, len(p.Team))
	}
}

// printResult writes the final standings and session history to stdout.
func printResult(t *tournament.Tournament, h tournament.History) {
	fmt.Printf("\n=== %s: %s ===\n", t.Name, t.Status)
	if t.Winner != nil {
		fmt.Printf("Winner: %s\n", t.Winner.Name)
	}
	fmt.Printf("Battles: %d won, %d lost, %d forfeited. Tournaments won: %d/%d.\n",
		h.BattlesWon, h.BattlesLost, h.BattlesForfeited, h.TournamentsWon, h.TournamentsPlayed)
}
