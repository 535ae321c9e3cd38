package form

import (
	"errors"
	"net/url"
	"testing"
)

var testSchema = Schema{
	{Name: "text", Kind: Text, Required: true},
	{Name: "mode", Kind: Choice, Default: "encode", Choices: []string{"encode", "decode"}},
	{Name: "count", Kind: Int, Default: 1, Min: 1, Max: 200},
	{Name: "verbose", Kind: Bool, Default: true},
	{Name: "upload", Kind: File},
}

func TestValidateHappyPath(t *testing.T) {
	values, err := testSchema.Validate(url.Values{
		"text":    {"hello"},
		"mode":    {"decode"},
		"count":   {"5"},
		"verbose": {"1"},
	}, nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if values["text"] != "hello" || values["mode"] != "decode" {
		t.Errorf("unexpected string values: %v", values)
	}
	if values["count"] != 5 {
		t.Errorf("expected typed int 5, got %v (%T)", values["count"], values["count"])
	}
	if values["verbose"] != true {
		t.Errorf("expected bool true, got %v", values["verbose"])
	}
}

func TestValidateRequiredText(t *testing.T) {
	_, err := testSchema.Validate(url.Values{}, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "text" {
		t.Errorf("expected failure on text, got %q", verr.Field)
	}
}

func TestValidateChoiceDefaultAndRejection(t *testing.T) {
	values, err := testSchema.Validate(url.Values{"text": {"x"}}, nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if values["mode"] != "encode" {
		t.Errorf("expected default choice, got %v", values["mode"])
	}

	if _, err := testSchema.Validate(url.Values{"text": {"x"}, "mode": {"shout"}}, nil); err == nil {
		t.Fatal("expected unknown choice to be rejected")
	}
}

func TestValidateIntBounds(t *testing.T) {
	for _, bad := range []string{"0", "201", "-3"} {
		if _, err := testSchema.Validate(url.Values{"text": {"x"}, "count": {bad}}, nil); err == nil {
			t.Errorf("expected count %s to be rejected", bad)
		}
	}
	values, err := testSchema.Validate(url.Values{"text": {"x"}, "count": {"200"}}, nil)
	if err != nil {
		t.Fatalf("expected boundary value to pass: %v", err)
	}
	if values["count"] != 200 {
		t.Errorf("got %v", values["count"])
	}

	if _, err := testSchema.Validate(url.Values{"text": {"x"}, "count": {"many"}}, nil); err == nil {
		t.Error("expected non-numeric count to be rejected")
	}
}

func TestValidateBoolCheckboxSemantics(t *testing.T) {
	// An absent checkbox means unchecked regardless of its page default.
	values, err := testSchema.Validate(url.Values{"text": {"x"}}, nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if values["verbose"] != false {
		t.Errorf("expected absent checkbox to be false, got %v", values["verbose"])
	}

	for raw, want := range map[string]bool{"1": true, "on": true, "true": true, "0": false, "off": false, "false": false} {
		values, err := testSchema.Validate(url.Values{"text": {"x"}, "verbose": {raw}}, nil)
		if err != nil {
			t.Fatalf("Validate failed for %q: %v", raw, err)
		}
		if values["verbose"] != want {
			t.Errorf("raw %q: expected %v, got %v", raw, want, values["verbose"])
		}
	}
}

func TestValidateFileBytes(t *testing.T) {
	values, err := testSchema.Validate(url.Values{"text": {"x"}}, map[string][]byte{"upload": []byte("data")})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if string(values["upload"].([]byte)) != "data" {
		t.Errorf("unexpected file bytes: %v", values["upload"])
	}

	// Absent optional file simply stays out of the record.
	values, err = testSchema.Validate(url.Values{"text": {"x"}}, nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if _, present := values["upload"]; present {
		t.Error("expected absent file to be omitted")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "count", Reason: "must be between 1 and 200"}
	want := `invalid parameters: field "count" must be between 1 and 200`
	if err.Error() != want {
		t.Errorf("got %q", err.Error())
	}
}
