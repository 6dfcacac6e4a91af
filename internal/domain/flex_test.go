package domain

import (
	"encoding/json"
	"testing"
)

func TestFlexKeepsLiteralForms(t *testing.T) {
	var doc struct {
		Num  Flex `json:"num"`
		Str  Flex `json:"str"`
		Yes  Flex `json:"yes"`
		No   Flex `json:"no"`
		Null Flex `json:"null"`
	}
	raw := `{"num": 12345678901, "str": "hello", "yes": true, "no": false, "null": null}`
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if doc.Num.String() != "12345678901" {
		t.Fatalf("expected numeric literal preserved, got %q", doc.Num.String())
	}
	if doc.Str.String() != "hello" {
		t.Fatalf("unexpected string value: %q", doc.Str.String())
	}
	if doc.Yes.String() != "True" || doc.No.String() != "False" {
		t.Fatalf("expected True/False rendering, got %q / %q", doc.Yes.String(), doc.No.String())
	}
	if doc.Null.Present() {
		t.Fatalf("null must count as absent")
	}
}

func TestFlexDefaults(t *testing.T) {
	var f Flex
	if f.Present() {
		t.Fatalf("zero Flex must be absent")
	}
	if f.String() != NotFound {
		t.Fatalf("expected sentinel, got %q", f.String())
	}
	if f.Or("False") != "False" {
		t.Fatalf("expected supplied default, got %q", f.Or("False"))
	}
	if NewFlex("").Or("False") != "" {
		t.Fatalf("present empty string must not be defaulted")
	}
}

func TestFlexListRendering(t *testing.T) {
	var doc struct {
		Items  FlexList `json:"items"`
		Empty  FlexList `json:"empty"`
		Absent FlexList `json:"absent"`
	}
	raw := `{"items": [907102816, "907102817"], "empty": []}`
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if doc.Items.String() != "[907102816, 907102817]" {
		t.Fatalf("unexpected rendering: %q", doc.Items.String())
	}
	if len(doc.Items.Values()) != 2 {
		t.Fatalf("unexpected values: %v", doc.Items.Values())
	}
	if doc.Empty.String() != "[]" {
		t.Fatalf("expected empty brackets, got %q", doc.Empty.String())
	}
	if doc.Absent.String() != NotFound {
		t.Fatalf("expected sentinel for absent list, got %q", doc.Absent.String())
	}
}

func TestPlayerRecordValidity(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"empty body", `{}`, false},
		{"missing name", `{"AccountInfo": {"AccountLevel": 10}}`, false},
		{"explicit not found", `{"AccountInfo": {"AccountName": "Not Found"}}`, false},
		{"real account", `{"AccountInfo": {"AccountName": "Player1"}}`, true},
	}
	for _, tc := range cases {
		var record PlayerRecord
		if err := json.Unmarshal([]byte(tc.raw), &record); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", tc.name, err)
		}
		if record.Valid() != tc.valid {
			t.Fatalf("%s: expected valid=%v", tc.name, tc.valid)
		}
	}

	var nilRecord *PlayerRecord
	if nilRecord.Valid() {
		t.Fatalf("nil record must be invalid")
	}
}
