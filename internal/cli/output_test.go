package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thenoetrevino/listo/internal/models"
)

func TestOutputFormatterSuccessJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		validate func(t *testing.T, result map[string]interface{})
	}{
		{
			name: "map data",
			data: map[string]interface{}{"deleted": 4},
			validate: func(t *testing.T, result map[string]interface{}) {
				if !result["success"].(bool) {
					t.Error("expected success to be true")
				}
				dataMap := result["data"].(map[string]interface{})
				if dataMap["deleted"] != float64(4) {
					t.Errorf("expected data.deleted to be 4, got %v", dataMap["deleted"])
				}
			},
		},
		{
			name: "label",
			data: &models.Label{ID: 7, Name: "urgent"},
			validate: func(t *testing.T, result map[string]interface{}) {
				dataMap := result["data"].(map[string]interface{})
				if dataMap["name"] != "urgent" {
					t.Errorf("expected data.name to be 'urgent', got %v", dataMap["name"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := &OutputFormatter{JSON: true, Out: &buf}
			if err := f.Success(tt.data); err != nil {
				t.Fatalf("Success returned error: %v", err)
			}

			var result map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatterSuccessQuiet(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Quiet: true, Out: &buf}

	if err := f.Success(&models.Label{ID: 12, Name: "urgent"}); err != nil {
		t.Fatalf("Success returned error: %v", err)
	}
	if got := buf.String(); got != "12\n" {
		t.Errorf("expected quiet output '12\\n', got %q", got)
	}
}

func TestOutputFormatterErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{JSON: true, Out: &buf}

	if err := f.ErrorWithSuggestion("LABEL_NOT_FOUND", "label 9 not found", "run 'listo label list'"); err != nil {
		t.Fatalf("ErrorWithSuggestion returned error: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result["success"].(bool) {
		t.Error("expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "LABEL_NOT_FOUND" {
		t.Errorf("expected error code LABEL_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "run 'listo label list'" {
		t.Errorf("unexpected suggestion: %v", errData["suggestion"])
	}
}

func TestOutputFormatterErrorHuman(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Out: &out, ErrOut: &errOut}

	if err := f.Error("TODO_NOT_FOUND", "todo 3 not found"); err != nil {
		t.Fatalf("Error returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "todo 3 not found") {
		t.Errorf("expected message on stderr, got %q", errOut.String())
	}
}
