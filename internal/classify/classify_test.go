package classify

import (
	"reflect"
	"testing"
)

func TestClassifySingleTag(t *testing.T) {
	tags := Classify("Airline reports strong quarterly earnings", DefaultRules())
	if !reflect.DeepEqual(tags, []string{"earnings"}) {
		t.Errorf("expected [earnings], got %v", tags)
	}
}

func TestClassifyMultipleTagsFire(t *testing.T) {
	tags := Classify("Lufthansa announces partnership with SAF supplier", DefaultRules())
	if !reflect.DeepEqual(tags, []string{"partnership", "esg"}) {
		t.Errorf("expected [partnership esg], got %v", tags)
	}
}

func TestClassifyCaseFolds(t *testing.T) {
	tags := Classify("CEO RESIGNS AMID INVESTIGATION", DefaultRules())
	if !reflect.DeepEqual(tags, []string{"regulatory", "exec"}) {
		t.Errorf("expected [regulatory exec], got %v", tags)
	}
}

func TestClassifyNoMatchFallsBack(t *testing.T) {
	for _, title := range []string{"", "Weather delays across the network", "Quarterly newsletter"} {
		tags := Classify(title, DefaultRules())
		if !reflect.DeepEqual(tags, []string{Fallback}) {
			t.Errorf("Classify(%q) = %v, want [%s]", title, tags, Fallback)
		}
	}
}

func TestClassifyFallbackAbsentWhenRulesMatch(t *testing.T) {
	tags := Classify("Pilots union threatens strike over pricing changes", DefaultRules())
	for _, tag := range tags {
		if tag == Fallback {
			t.Errorf("fallback tag should not appear alongside matches: %v", tags)
		}
	}
	if len(tags) == 0 {
		t.Fatal("expected at least one tag")
	}
}

func TestClassifyTableOrder(t *testing.T) {
	// Tags come back in rule-table order, not title order.
	tags := Classify("Merger guidance raised", DefaultRules())
	if !reflect.DeepEqual(tags, []string{"earnings", "m&a"}) {
		t.Errorf("expected [earnings m&a], got %v", tags)
	}
}

func TestClassifyCustomRules(t *testing.T) {
	rules := []Rule{{Tag: "fleet", Triggers: []string{"aircraft", "a350"}}}
	tags := Classify("New A350 order confirmed", rules)
	if !reflect.DeepEqual(tags, []string{"fleet"}) {
		t.Errorf("expected [fleet], got %v", tags)
	}
}

func TestDefaultRulesOrderStable(t *testing.T) {
	rules := DefaultRules()
	if len(rules) != 9 {
		t.Fatalf("expected 9 rules, got %d", len(rules))
	}
	if rules[0].Tag != "earnings" || rules[8].Tag != "m&a" {
		t.Errorf("rule order changed: first=%s last=%s", rules[0].Tag, rules[8].Tag)
	}
}
