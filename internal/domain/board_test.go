package domain

import (
	"errors"
	"testing"
)

func TestParseBoard(t *testing.T) {
	tests := []struct {
		in   string
		want Board
	}{
		{"daily", BoardDaily},
		{"Weekly", BoardWeekly},
		{"allTime", BoardAllTime},
		{"all-time", BoardAllTime},
		{"ALL_TIME", BoardAllTime},
	}
	for _, tt := range tests {
		got, err := ParseBoard(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseBoard(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseBoard("monthly"); !errors.Is(err, ErrUnknownBoard) {
		t.Fatalf("expected ErrUnknownBoard, got %v", err)
	}
}

func TestBoardCap(t *testing.T) {
	if BoardDaily.Cap() != 50 || BoardWeekly.Cap() != 50 || BoardAllTime.Cap() != 100 {
		t.Fatal("unexpected board capacities")
	}
	if Board("monthly").Cap() != 0 {
		t.Fatal("unknown board should have no capacity")
	}
}

func TestBoardSetCloneIsDeep(t *testing.T) {
	set := NewBoardSet()
	set.SetEntries(BoardDaily, []ScoreEntry{{Game: "WordMatch", Score: 1}})

	clone := set.Clone()
	clone.Daily[0].Score = 99
	if set.Entries(BoardDaily)[0].Score != 1 {
		t.Fatal("clone shares storage with original")
	}
	if set.Entries(Board("monthly")) != nil {
		t.Fatal("unknown board should have no entries")
	}
}

func TestCorpusAccessors(t *testing.T) {
	c := Corpus{Tiers: []Tier{
		{Name: "easy", Words: []WordEntry{{Word: "big"}, {Word: "calm"}}},
		{Name: "hard", Words: []WordEntry{{Word: "esoteric"}}},
	}}

	if c.Len() != 3 || c.IsEmpty() {
		t.Fatalf("unexpected length %d", c.Len())
	}
	if names := c.Names(); len(names) != 2 || names[0] != "easy" || names[1] != "hard" {
		t.Fatalf("unexpected names %v", names)
	}
	if all := c.All(); len(all) != 3 || all[2].Word != "esoteric" {
		t.Fatalf("unexpected flattening %v", all)
	}
	if _, ok := c.Tier("medium"); ok {
		t.Fatal("did not expect medium tier")
	}
	if !(Corpus{}).IsEmpty() {
		t.Fatal("zero corpus should be empty")
	}
}
