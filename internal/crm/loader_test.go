package crm

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "deals.csv",
		"id,dealname,dealstage,amount,createdate,closedate,owner\n"+
			"1,Acme Renewal,contractsent,120000,2025-06-01,,sam\n"+
			"2,Globex Expansion,closedwon,80000,2025-05-01,2025-06-10,kim\n"+
			"3,Broken Row,contractsent,5000,not-a-date,,sam\n")
	writeFixture(t, dir, "contacts.csv",
		"id,lifecyclestage\n1,MQL\n2,sql\n3,lead\n")
	return dir
}

func TestLoadDir(t *testing.T) {
	ds, err := LoadDir(fixtureDir(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ds.Deals) != 2 {
		t.Fatalf("expected 2 deals (bad create date skipped), got %d", len(ds.Deals))
	}
	if ds.Deals[0].Name != "Acme Renewal" || ds.Deals[0].Amount != 120000 {
		t.Errorf("unexpected first deal: %+v", ds.Deals[0])
	}
	if !ds.Deals[0].Open() {
		t.Error("deal without closedate should be open")
	}
	if ds.Deals[1].Open() {
		t.Error("deal with closedate should not be open")
	}
	if len(ds.Contacts) != 3 {
		t.Errorf("expected 3 contacts, got %d", len(ds.Contacts))
	}
}

func TestLoadDirOptionalTablesMissing(t *testing.T) {
	ds, err := LoadDir(fixtureDir(t))
	if err != nil {
		t.Fatalf("companies/activities should be optional: %v", err)
	}
	if len(ds.Companies) != 0 || len(ds.Activities) != 0 {
		t.Errorf("expected empty optional tables, got %d companies, %d activities",
			len(ds.Companies), len(ds.Activities))
	}
}

func TestLoadDirMissingDeals(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "contacts.csv", "id,lifecyclestage\n1,MQL\n")

	if _, err := LoadDir(dir); err == nil {
		t.Error("expected error when deals.csv is missing")
	}
}

func TestLoadDirBadAmountDefaultsToZero(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "deals.csv",
		"id,dealname,dealstage,amount,createdate,closedate,owner\n"+
			"1,No Amount,contractsent,,2025-06-01,,sam\n")
	writeFixture(t, dir, "contacts.csv", "id,lifecyclestage\n")

	ds, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Deals) != 1 || ds.Deals[0].Amount != 0 {
		t.Errorf("expected one deal with zero amount, got %+v", ds.Deals)
	}
}

func TestParseTimeLayouts(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2025-06-01", true},
		{"2025-06-01 13:45:00", true},
		{"2025-06-01T13:45:00", true},
		{"2025-06-01T13:45:00Z", true},
		{"06/01/2025", false},
		{"", false},
	}
	for _, tt := range tests {
		_, err := parseTime(tt.input)
		if tt.ok && err != nil {
			t.Errorf("parseTime(%q): unexpected error: %v", tt.input, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("parseTime(%q): expected error", tt.input)
		}
	}
}
