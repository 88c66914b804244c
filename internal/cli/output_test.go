package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(mockDataWithID{ID: "card-1", Name: "Test"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["Name"] != "Test" {
		t.Errorf("Expected data.Name to be 'Test', got %v", data["Name"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data interface{}
		want string
	}{
		{"with ID", mockDataWithID{ID: "card-7"}, "card-7\n"},
		{"without ID", mockDataWithoutID{Name: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			if err := f.Success(tt.data); err != nil {
				t.Fatalf("Success() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("quiet output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	if err := f.Success(mockDataWithoutID{Name: "Board", Value: 4}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if !strings.Contains(out.String(), "Board") {
		t.Errorf("human output missing data: %q", out.String())
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	if err := f.ErrorWithSuggestion(CodeNotFound, `card "x" not found`, "try board show"); err != nil {
		t.Fatalf("ErrorWithSuggestion() error = %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON mode should not write to stderr, got %q", errOut.String())
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != CodeNotFound {
		t.Errorf("code = %v, want %s", errData["code"], CodeNotFound)
	}
	if errData["suggestion"] != "try board show" {
		t.Errorf("suggestion = %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	if err := f.Error(CodeValidation, "invalid title: cannot be empty"); err != nil {
		t.Fatalf("Error() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("human errors go to stderr, stdout got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "invalid title") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "Suggestion") {
		t.Error("no suggestion expected")
	}
}

func TestOutputFormatter_Printf_QuietSuppresses(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)
	f.Printf("hello %s\n", "world")
	if out.Len() != 0 {
		t.Errorf("quiet Printf wrote %q", out.String())
	}
}
