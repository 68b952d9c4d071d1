package team

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "monster_arena/internal/errors"
	"monster_arena/internal/species"
)

const (
	promptTeamSize = "How many monsters are there? "
	promptSpecies  = "Which monster are you spawning? "
)

// Console is the line-based prompt used by manual selection. Share one Console
// between teams that read from the same input.
type Console struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{sc: bufio.NewScanner(in), out: out}
}

// selectManually prompts for a team size and then a 1-based species index per
// slot. Invalid input is reported and asked again; running out of input fails.
func (t *Team) selectManually(reg *species.Registry, con *Console) error {
	if reg == nil || con == nil {
		return apperrors.New(apperrors.CodeInvalidConfiguration, "manual selection needs a species registry and a console")
	}
	all := reg.All()
	out := con.out

	teamSize, err := con.promptInt(promptTeamSize, func(n int) string {
		if n < 1 || n > TeamLimit {
			return fmt.Sprintf("Team size must be between 1 and %d", TeamLimit)
		}
		return ""
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "MONSTERS Are:")
	for i, sp := range all {
		mark := "❌"
		if sp.Spawnable {
			mark = "✔️"
		}
		fmt.Fprintf(out, "%d: %s [%s]\n", i+1, sp.Name, mark)
	}

	for i := 0; i < teamSize; i++ {
		choice, err := con.promptInt(promptSpecies, func(n int) string {
			if n < 1 || n > len(all) {
				return fmt.Sprintf("Please choose a monster between 1 and %d", len(all))
			}
			if !all[n-1].Spawnable {
				return "This monster cannot be spawned."
			}
			return ""
		})
		if err != nil {
			return err
		}
		if err := t.recruit(all[choice-1]); err != nil {
			return err
		}
	}
	return nil
}

// promptInt asks until a line parses as an integer that check accepts. check
// returns the message to print for a rejected value, or "" to accept it.
func (c *Console) promptInt(prompt string, check func(int) string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.sc.Scan() {
			cause := c.sc.Err()
			if cause == nil {
				cause = io.ErrUnexpectedEOF
			}
			return 0, apperrors.Wrap(apperrors.CodeInvalidConfiguration, "read manual selection", cause)
		}
		n, err := strconv.Atoi(strings.TrimSpace(c.sc.Text()))
		if err != nil {
			fmt.Fprintln(c.out, "Enter a valid integer")
			continue
		}
		if msg := check(n); msg != "" {
			fmt.Fprintln(c.out, msg)
			continue
		}
		return n, nil
	}
}
