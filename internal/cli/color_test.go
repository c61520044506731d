package cli

import (
	"strings"
	"testing"
)

func styledFuncs() []struct {
	name  string
	fn    func(string) string
	input string
} {
	return []struct {
		name  string
		fn    func(string) string
		input string
	}{
		{"Error", Error, "error"},
		{"Warning", Warning, "breaking change"},
		{"Success", Success, "done"},
		{"Info", Info, "tables"},
		{"Header", Header, "KIND"},
		{"Dim", Dim, "-- no changes"},
		{"Highlight", Highlight, "users"},
		{"FilePath", FilePath, "tenant_policy.yaml"},
		{"Done", Done, "✓"},
		{"Failed", Failed, "✗"},
	}
}

func TestStyledFuncsPlainMode(t *testing.T) {
	original := defaultCfg
	defer func() { defaultCfg = original }()
	SetDefault(&Config{Mode: ModePlain})

	for _, tt := range styledFuncs() {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.input {
				t.Errorf("%s(%q) = %q, want unstyled input", tt.name, tt.input, got)
			}
		})
	}
}

func TestStyledFuncsTTYMode(t *testing.T) {
	original := defaultCfg
	defer func() { defaultCfg = original }()
	SetDefault(&Config{Mode: ModeTTY})

	// lipgloss may strip colors when the test runner has no TTY, so only
	// check the text survives styling.
	for _, tt := range styledFuncs() {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); !strings.Contains(got, tt.input) {
				t.Errorf("%s(%q) = %q, should contain input", tt.name, tt.input, got)
			}
		})
	}
}

func TestStyledFuncsEmptyInput(t *testing.T) {
	original := defaultCfg
	defer func() { defaultCfg = original }()
	SetDefault(&Config{Mode: ModePlain})

	if got := Error(""); got != "" {
		t.Errorf("Error(\"\") = %q, want \"\"", got)
	}
	if got := Warning(""); got != "" {
		t.Errorf("Warning(\"\") = %q, want \"\"", got)
	}
}

func TestStyledFuncsPreserveSQL(t *testing.T) {
	original := defaultCfg
	defer func() { defaultCfg = original }()
	SetDefault(&Config{Mode: ModePlain})

	stmt := `CREATE POLICY "tenant_isolation" ON "app"."orders";`
	if got := Highlight(stmt); got != stmt {
		t.Errorf("Highlight(%q) = %q, want input unchanged", stmt, got)
	}
}
