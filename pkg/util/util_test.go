package util

import (
	"testing"
	"time"
)

func TestRemoveDuplicateStrings(t *testing.T) {
	got := RemoveDuplicateStrings([]string{"a", "b", "a", "", "c", "b"}, nil)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRemoveDuplicateStringsIgnoreList(t *testing.T) {
	got := RemoveDuplicateStrings([]string{"a", "b", "c"}, []string{"b"})

	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("got %v, want [a c]", got)
	}
}

func TestAddTimeToDate(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	clock, err := time.Parse("15:04:05", "09:30:45")
	if err != nil {
		t.Fatal(err)
	}

	got := AddTimeToDate(date, clock)

	want := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddTimeToDate = %v, want %v", got, want)
	}
}
