package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/tracker"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic training data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	seedCmd.Flags().Int("users", 5, "Number of synthetic users")
	seedCmd.Flags().Int("attempts", 6, "Attempts per user per skill (average)")
	seedCmd.Flags().Int64("rand-seed", 0, "Random seed (0 uses the current time)")
}

// seedErrorTypes are the error kinds the generator draws from when an
// attempt fails, weighted roughly by how often they show up in practice.
var seedErrorTypes = []string{
	"wrong_input", "wrong_input", "wrong_input",
	"wrong_direction", "wrong_direction",
	"timing_error", "timing_error",
	"wrong_sequence",
	"missing_input",
	"extra_input",
	"incomplete_action",
	"timeout",
	"balance_lost",
}

func runSeed(cmd *cobra.Command) error {
	users, _ := cmd.Flags().GetInt("users")
	perSkill, _ := cmd.Flags().GetInt("attempts")
	randSeed, _ := cmd.Flags().GetInt64("rand-seed")
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randSeed))

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	cat := catalog.Builtin()
	tr := tracker.New(s.UserRepo(), s.AttemptRepo(), cat)
	ctx := context.Background()

	var attempts, errors int
	for u := 1; u <= users; u++ {
		userID := fmt.Sprintf("test_user_%03d", u)
		if _, err := s.UserRepo().Create(ctx, userID); err != nil {
			return fmt.Errorf("create %s: %w", userID, err)
		}
		// Each synthetic user has a personal skill modifier, so some
		// users read above average and some below.
		modifier := rng.Float64()*0.3 - 0.15

		for _, sk := range cat.Skills() {
			n := 1 + rng.Intn(perSkill*2)
			for i := 0; i < n; i++ {
				if err := seedAttempt(ctx, rng, tr, &sk, userID, modifier, &errors); err != nil {
					return err
				}
				attempts++
			}
		}
	}

	fmt.Printf("Seeded %d users, %d attempts, %d errors (rand-seed %d)\n",
		users, attempts, errors, randSeed)
	return nil
}

func seedAttempt(ctx context.Context, rng *rand.Rand, tr *tracker.Tracker, sk *catalog.Skill, userID string, modifier float64, errorCount *int) error {
	a, err := tr.StartAttempt(ctx, userID, sk.ID)
	if err != nil {
		return fmt.Errorf("start attempt on %s: %w", sk.ID, err)
	}

	success := rng.Float64() < sk.BaseSuccessRate+modifier
	for _, step := range sk.Steps {
		expected := firstInput(step)
		actual := expected
		if !success && rng.Float64() < 0.3 {
			actual = randomOtherInput(rng, expected)
		}
		if _, err := tr.RecordInput(ctx, a.AttemptID, step.Number, expected, actual); err != nil {
			return err
		}
		if actual != expected {
			errType := seedErrorTypes[rng.Intn(len(seedErrorTypes))]
			err := tr.RecordError(ctx, a.AttemptID, step.Number, errType,
				step.ExpectedAction, catalog.ActionForKey(actual))
			if err != nil {
				return err
			}
			*errorCount++
		}
	}
	_, err = tr.Complete(ctx, a.AttemptID, success)
	return err
}

func firstInput(step catalog.Step) string {
	if len(step.ExpectedInputs) > 0 {
		return step.ExpectedInputs[0]
	}
	return "W"
}

func randomOtherInput(rng *rand.Rand, expected string) string {
	keys := catalog.InputMapping()
	for {
		k := keys[rng.Intn(len(keys))].Key
		if k != expected {
			return k
		}
	}
}
