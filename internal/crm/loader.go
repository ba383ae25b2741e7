package crm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/phuslu/log"
)

type dealRow struct {
	ID         string `csv:"id"`
	DealName   string `csv:"dealname"`
	DealStage  string `csv:"dealstage"`
	Amount     string `csv:"amount"`
	CreateDate string `csv:"createdate"`
	CloseDate  string `csv:"closedate"`
	Owner      string `csv:"owner"`
}

type contactRow struct {
	ID             string `csv:"id"`
	LifecycleStage string `csv:"lifecyclestage"`
}

type companyRow struct {
	ID   string `csv:"id"`
	Name string `csv:"name"`
}

type activityRow struct {
	Date string `csv:"date"`
	Type string `csv:"type"`
}

// timeLayouts are tried in order when parsing CRM timestamps. HubSpot-style
// exports mix full timestamps and bare dates depending on the property.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// knownStages is used only for diagnostics; unknown stages still flow
// through every filter unchanged, they just match no stage set.
var knownStages = map[string]bool{
	StageDeciderBoughtIn:       true,
	StageContractSent:          true,
	StagePresentationScheduled: true,
	StageClosedWon:             true,
	StageClosedLost:            true,
	"appointmentscheduled":     true,
	"qualifiedtobuy":           true,
}

// LoadDir reads the four CRM extracts from dir. deals.csv and contacts.csv
// are required; companies.csv and activities.csv yield empty tables when
// absent since the report only uses them as raw counts.
func LoadDir(dir string) (*Dataset, error) {
	ds := &Dataset{}

	var dealRows []dealRow
	if err := readCSV(filepath.Join(dir, "deals.csv"), &dealRows); err != nil {
		return nil, fmt.Errorf("loading deals: %w", err)
	}
	unknown := 0
	for _, r := range dealRows {
		created, err := parseTime(r.CreateDate)
		if err != nil {
			log.Debug().Str("deal", r.DealName).Str("createdate", r.CreateDate).Msg("skipping deal with unparseable create date")
			continue
		}
		amount, err := strconv.ParseFloat(r.Amount, 64)
		if err != nil {
			amount = 0
		}
		d := Deal{
			ID:        r.ID,
			Name:      r.DealName,
			Stage:     r.DealStage,
			Amount:    amount,
			CreatedAt: created,
			Owner:     r.Owner,
		}
		if r.CloseDate != "" {
			if closed, err := parseTime(r.CloseDate); err == nil {
				d.ClosedAt = &closed
			}
		}
		if !knownStages[d.Stage] {
			unknown++
		}
		ds.Deals = append(ds.Deals, d)
	}
	if unknown > 0 {
		log.Debug().Int("count", unknown).Msg("deals with unrecognized stage; they match no stage filter")
	}

	var contactRows []contactRow
	if err := readCSV(filepath.Join(dir, "contacts.csv"), &contactRows); err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}
	for _, r := range contactRows {
		ds.Contacts = append(ds.Contacts, Contact{ID: r.ID, LifecycleStage: r.LifecycleStage})
	}

	var companyRows []companyRow
	if err := readCSV(filepath.Join(dir, "companies.csv"), &companyRows); err == nil {
		for _, r := range companyRows {
			ds.Companies = append(ds.Companies, Company{ID: r.ID, Name: r.Name})
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading companies: %w", err)
	}

	var activityRows []activityRow
	if err := readCSV(filepath.Join(dir, "activities.csv"), &activityRows); err == nil {
		for _, r := range activityRows {
			a := Activity{Type: r.Type}
			if t, err := parseTime(r.Date); err == nil {
				a.Date = t
			}
			ds.Activities = append(ds.Activities, a)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	log.Debug().
		Int("deals", len(ds.Deals)).
		Int("contacts", len(ds.Contacts)).
		Int("companies", len(ds.Companies)).
		Int("activities", len(ds.Activities)).
		Msg("loaded CRM extracts")

	return ds, nil
}

func readCSV(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
