package data

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(memberDateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return tm
}
