package schema

import "testing"

var clientTemplate = Template{
	"id":      String,
	"name":    String,
	"phone":   String,
	"email":   String,
	"address": String,
}

func TestValidate_StrictExactMatch(t *testing.T) {
	doc := map[string]any{
		"id":      "c-1",
		"name":    "Acme",
		"phone":   "000000",
		"email":   "acme@mail.com",
		"address": "Main St 1",
	}
	if !Validate(doc, clientTemplate, true) {
		t.Fatalf("expected exact document to validate strictly")
	}
}

func TestValidate_StrictMissingKey(t *testing.T) {
	doc := map[string]any{
		"id":    "c-1",
		"name":  "Acme",
		"phone": "000000",
	}
	if Validate(doc, clientTemplate, true) {
		t.Fatalf("expected missing keys to fail strict validation")
	}
}

func TestValidate_StrictExtraKey(t *testing.T) {
	doc := map[string]any{
		"id":      "c-1",
		"name":    "Acme",
		"phone":   "000000",
		"email":   "acme@mail.com",
		"address": "Main St 1",
		"extra":   "nope",
	}
	if Validate(doc, clientTemplate, true) {
		t.Fatalf("expected extra key to fail strict validation")
	}
}

func TestValidate_StrictSameSizeDifferentKeys(t *testing.T) {
	// Same key count as the template but one key swapped: size alone must
	// not satisfy strict mode.
	doc := map[string]any{
		"id":      "c-1",
		"name":    "Acme",
		"phone":   "000000",
		"email":   "acme@mail.com",
		"country": "ES",
	}
	if Validate(doc, clientTemplate, true) {
		t.Fatalf("expected swapped key to fail strict validation")
	}
}

func TestValidate_StrictKindMismatch(t *testing.T) {
	doc := map[string]any{
		"id":      "c-1",
		"name":    "Acme",
		"phone":   float64(42),
		"email":   "acme@mail.com",
		"address": "Main St 1",
	}
	if Validate(doc, clientTemplate, true) {
		t.Fatalf("expected kind mismatch to fail strict validation")
	}
}

func TestValidate_LenientMissingKeys(t *testing.T) {
	doc := map[string]any{"phone": "111111"}
	if !Validate(doc, clientTemplate, false) {
		t.Fatalf("expected missing keys to be tolerated leniently")
	}
}

func TestValidate_LenientUnknownKey(t *testing.T) {
	doc := map[string]any{"phone": "111111", "extra": "nope"}
	if Validate(doc, clientTemplate, false) {
		t.Fatalf("expected unknown key to fail lenient validation")
	}
}

func TestValidate_LenientKindMismatch(t *testing.T) {
	doc := map[string]any{"phone": true}
	if Validate(doc, clientTemplate, false) {
		t.Fatalf("expected kind mismatch to fail lenient validation")
	}
}

func TestValidate_EmptyDocument(t *testing.T) {
	if Validate(map[string]any{}, clientTemplate, true) {
		t.Fatalf("expected empty document to fail strict validation")
	}
	if !Validate(map[string]any{}, clientTemplate, false) {
		t.Fatalf("expected empty document to pass lenient validation")
	}
	if !Validate(map[string]any{}, Template{}, true) {
		t.Fatalf("expected empty document to match empty template strictly")
	}
}

func TestValidate_AllKinds(t *testing.T) {
	tpl := Template{
		"name":    String,
		"size":    Number,
		"active":  Bool,
		"tags":    List,
		"details": Map,
	}
	doc := map[string]any{
		"name":    "x",
		"size":    float64(12),
		"active":  true,
		"tags":    []any{"a"},
		"details": map[string]any{"k": "v"},
	}
	if !Validate(doc, tpl, true) {
		t.Fatalf("expected all kinds to match")
	}

	doc["tags"] = "not-a-list"
	if Validate(doc, tpl, true) {
		t.Fatalf("expected list kind mismatch to fail")
	}
}
