package cmd

import (
	"github.com/spf13/cobra"
	"github.com/they4kman/classicsweep/game"
	"testing"
)

func TestDifficultyValue(t *testing.T) {
	var d Difficulty
	for name, want := range difficulties {
		if err := d.Set(name); err != nil {
			t.Fatalf("Set(%q) error = %v", name, err)
		}
		if d != want || d.String() != name {
			t.Errorf("Set(%q) gave %v (%s)", name, int(d), d.String())
		}
	}

	if err := d.Set("impossible"); err == nil {
		t.Errorf("Set(\"impossible\") accepted")
	}
	if d.Type() != "difficulty" {
		t.Errorf("Type() = %q", d.Type())
	}
}

func TestResolveGameConfig(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		difficulty Difficulty
		want       [3]int
	}{
		{"preset only", nil, Expert, [3]int{30, 16, 99}},
		{"default preset", nil, Beginner, [3]int{9, 9, 10}},
		{"explicit width", []string{"--width", "20"}, Intermediate, [3]int{20, 16, 40}},
		{"all explicit", []string{"-w", "10", "-h", "11", "-m", "12"}, Expert, [3]int{10, 11, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := game.NewConfig()
			cmd := &cobra.Command{}
			cmd.Flags().IntVarP(&config.Width, "width", "w", config.Width, "")
			cmd.Flags().IntVarP(&config.Height, "height", "h", config.Height, "")
			cmd.Flags().IntVarP(&config.NumMines, "mines", "m", config.NumMines, "")
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatalf("Parse(%v) error = %v", tt.args, err)
			}

			got := resolveGameConfig(cmd, config, tt.difficulty)
			if [3]int{got.Width, got.Height, got.NumMines} != tt.want {
				t.Errorf("resolveGameConfig() = %dx%d/%d; want %v", got.Width, got.Height, got.NumMines, tt.want)
			}
		})
	}
}
