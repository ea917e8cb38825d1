package cmd

import (
	"bytes"
	"github.com/they4kman/classicsweep/game"
	"io/ioutil"
	"testing"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(ioutil.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGen(t *testing.T) {
	out, err := executeRoot(t, "gen", "--seed", "7", "--x", "4", "--y", "4")
	if err != nil {
		t.Fatalf("gen error = %v", err)
	}

	snapshot, err := game.LoadSnapshot(out)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v\n%s", err, out)
	}
	if snapshot.Seed != 7 {
		t.Errorf("seed = %d; want 7", snapshot.Seed)
	}

	board, err := snapshot.CreateBoard()
	if err != nil {
		t.Fatalf("CreateBoard() error = %v\n%s", err, out)
	}
	if board.Width() != 9 || board.Height() != 9 || board.NumMines() != 10 {
		t.Errorf("board is %dx%d/%d; want 9x9/10", board.Width(), board.Height(), board.NumMines())
	}
	if first := board.TileAt(4, 4); !first.IsOpened() || first.IsMine() {
		t.Errorf("first tile opened=%v mine=%v", first.IsOpened(), first.IsMine())
	}
}

func TestGenRejectsTileOffBoard(t *testing.T) {
	if _, err := executeRoot(t, "gen", "--x", "40", "--y", "0"); err == nil {
		t.Fatalf("gen accepted a first tile off the board")
	}
}
