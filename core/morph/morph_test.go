package morph

import (
	"testing"
)

func TestPluralizeIrregular(t *testing.T) {
	got := Pluralize("man")
	if !contains(got, "men") || !contains(got, "mans") {
		t.Errorf("expected irregular + fallback, got %v", got)
	}
}

func TestPluralizeRules(t *testing.T) {
	cases := map[string]string{
		"city":   "cities",
		"box":    "boxes",
		"wife":   "wives",
		"roof":   "roofs",
		"leaf":   "leaves",
		"hero":   "heroes",
		"table":  "tables",
	}
	for word, want := range cases {
		got := Pluralize(word)
		if !contains(got, want) {
			t.Errorf("Pluralize(%q) = %v, want to contain %q", word, got, want)
		}
	}
}

func TestDepluralize(t *testing.T) {
	cases := map[string]string{
		"cities": "city",
		"boxes":  "box",
		"dogs":   "dog",
	}
	for word, want := range cases {
		got := Depluralize(word)
		if !contains(got, want) {
			t.Errorf("Depluralize(%q) = %v, want to contain %q", word, got, want)
		}
	}
	if got := Depluralize("grass"); contains(got, "gras") || len(got) != 0 {
		t.Errorf("Depluralize(grass) should not strip double-s, got %v", got)
	}
}

func TestPastTense(t *testing.T) {
	cases := map[string]string{
		"love": "loved",
		"cry":  "cried",
		"stop": "stopped",
		"walk": "walked",
		"open": "opened", // CVC doubling exempt suffix "en"
	}
	for word, want := range cases {
		if got := PastTense(word); got != want {
			t.Errorf("PastTense(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestPresentParticiple(t *testing.T) {
	cases := map[string]string{
		"love": "loving",
		"see":  "seeing",
		"die":  "dying",
		"stop": "stopping",
		"walk": "walking",
	}
	for word, want := range cases {
		if got := PresentParticiple(word); got != want {
			t.Errorf("PresentParticiple(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestIrregularVerbForms(t *testing.T) {
	base, ok := IrregularBase("were")
	if !ok || base != "be" {
		t.Fatalf("expected 'were' to resolve to base 'be', got %q %v", base, ok)
	}
	forms := IrregularForms(base)
	if !contains(forms, "am") || !contains(forms, "was") {
		t.Errorf("expected full be-form set, got %v", forms)
	}
}

func TestCapitalized(t *testing.T) {
	if got, ok := Capitalized("god"); !ok || got != "God" {
		t.Errorf("Capitalized(god) = %q, %v", got, ok)
	}
	if _, ok := Capitalized("God"); ok {
		t.Errorf("expected no capitalization variant for already-capitalized word")
	}
}

func TestVariantsSuppressesVerbFormsOnAllowlist(t *testing.T) {
	vs := Variants("well", Options{})
	for _, v := range vs {
		if v.Text == "welled" || v.Text == "welling" {
			t.Errorf("expected no spurious verb forms for 'well', got %v", vs)
		}
	}
}

func TestVariantsPreservesHeadAndVariesLastWord(t *testing.T) {
	vs := Variants("son of god", Options{})
	found := false
	for _, v := range vs {
		if v.Text == "son of God" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected capitalized variant retaining head, got %v", vs)
	}
}

func TestVariantsNameSuppressesPluralization(t *testing.T) {
	vs := Variants("Joseph", Options{IsName: true})
	for _, v := range vs {
		if v.Text == "Josephs" {
			t.Errorf("expected no pluralization for a name, got %v", vs)
		}
	}
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
