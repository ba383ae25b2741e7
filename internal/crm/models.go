package crm

import "time"

// Deal stages considered close to closing. closedwon is included so a
// just-won deal that has not been administratively closed still counts
// toward forecast coverage.
const (
	StageDeciderBoughtIn       = "deciderboughtin"
	StageContractSent          = "contractsent"
	StagePresentationScheduled = "presentationscheduled"
	StageClosedWon             = "closedwon"
	StageClosedLost            = "closedlost"
)

type Deal struct {
	ID        string
	Name      string
	Stage     string
	Amount    float64
	CreatedAt time.Time
	ClosedAt  *time.Time // nil means the deal is still open
	Owner     string
}

// Open reports whether the deal has no recorded close date.
func (d Deal) Open() bool {
	return d.ClosedAt == nil
}

type Contact struct {
	ID             string
	LifecycleStage string
}

type Company struct {
	ID   string
	Name string
}

type Activity struct {
	Date time.Time
	Type string
}

// Dataset holds one run's snapshot of the four CRM extracts.
type Dataset struct {
	Companies  []Company
	Deals      []Deal
	Contacts   []Contact
	Activities []Activity
}
