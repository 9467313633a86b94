package codetable

import "testing"

func TestLookup(t *testing.T) {
	table := Build([]Record{
		{Word: "欧", Order: "10"},
		{Word: "阳", Order: "20"},
		{Word: "锋", Order: "5"},
	}, "")

	if got := table.Lookup('欧'); got != "10" {
		t.Errorf("Lookup(欧) = %q, want %q", got, "10")
	}
	if got := table.Lookup('锋'); got != "5" {
		t.Errorf("Lookup(锋) = %q, want %q", got, "5")
	}
	if got := table.Lookup('无'); got != DefaultCode {
		t.Errorf("Lookup(无) = %q, want default %q", got, DefaultCode)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestLookupCustomDefault(t *testing.T) {
	table := Build(nil, "99")
	if got := table.Lookup('甲'); got != "99" {
		t.Errorf("Lookup(甲) = %q, want %q", got, "99")
	}
}

func TestDuplicateWordLastWriteWins(t *testing.T) {
	table := Build([]Record{
		{Word: "甲", Order: "1"},
		{Word: "甲", Order: "2"},
	}, "")
	if got := table.Lookup('甲'); got != "2" {
		t.Errorf("Lookup(甲) = %q, want last-written %q", got, "2")
	}
}

func TestMultiCharacterWordNeverMatches(t *testing.T) {
	table := Build([]Record{{Word: "欧阳", Order: "1"}}, "")
	if got := table.Lookup('欧'); got != DefaultCode {
		t.Errorf("Lookup(欧) = %q, want default %q", got, DefaultCode)
	}
}
