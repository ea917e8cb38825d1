package cmd

import (
	"fmt"
	"github.com/they4kman/classicsweep/game"
)

type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
)

var difficulties = map[string]Difficulty{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

var difficultyPresets = map[Difficulty]game.Config{
	Beginner:     {Width: 9, Height: 9, NumMines: 10},
	Intermediate: {Width: 16, Height: 16, NumMines: 40},
	Expert:       {Width: 30, Height: 16, NumMines: 99},
}

func (d *Difficulty) String() string {
	for name, difficulty := range difficulties {
		if difficulty == *d {
			return name
		}
	}
	return fmt.Sprint(int(*d))
}

func (d *Difficulty) Set(value string) error {
	if difficulty, isValid := difficulties[value]; isValid {
		*d = difficulty
		return nil
	}
	return fmt.Errorf("invalid difficulty %q", value)
}

func (d *Difficulty) Type() string {
	return "difficulty"
}
