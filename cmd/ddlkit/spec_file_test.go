package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zqlz/ddlkit/internal/dialect"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const policyEnvelope = `kind: policy
dialect: postgres
policy:
  name: tenant_isolation
  table: orders
  command: select
  using: tenant_id = current_setting('app.tenant_id')::int
`

const tableEnvelope = `kind: table
table:
  name: users
  dialect: sqlite
  columns:
    - name: id
      data_type: INTEGER
      primary_key: true
    - name: email
      data_type: TEXT
`

func TestRenderPolicyEnvelope(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "policy.yaml", policyEnvelope)

	spec, err := LoadSpecFile(path)
	if err != nil {
		t.Fatalf("LoadSpecFile: %v", err)
	}
	sql, err := spec.Render("")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(sql, "CREATE POLICY") {
		t.Errorf("Render = %q, want CREATE POLICY statement", sql)
	}
	if !strings.Contains(sql, "tenant_isolation") {
		t.Errorf("Render = %q, want policy name in output", sql)
	}
}

func TestRenderTableEnvelopeKeepsFileDialect(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "users.yaml", tableEnvelope)

	spec, err := LoadSpecFile(path)
	if err != nil {
		t.Fatalf("LoadSpecFile: %v", err)
	}
	sql, err := spec.Render("")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(sql, "CREATE TABLE") {
		t.Errorf("Render = %q, want CREATE TABLE statement", sql)
	}
}

func TestRenderRejectsMissingSection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "kind: trigger\n")

	spec, err := LoadSpecFile(path)
	if err != nil {
		t.Fatalf("LoadSpecFile: %v", err)
	}
	if _, err := spec.Render(dialect.Postgres); err == nil {
		t.Error("Render should fail when the kind's section is missing")
	}
}

func TestRenderRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "kind: widget\n")

	spec, err := LoadSpecFile(path)
	if err != nil {
		t.Fatalf("LoadSpecFile: %v", err)
	}
	if _, err := spec.Render(dialect.Postgres); err == nil {
		t.Error("Render should fail for an unknown kind")
	}
}

func TestLoadBareSpecFallback(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bare.yaml", `name: audit_users
table: users
timing: after
events: [insert]
function: log_change
`)

	spec, _, err := loadTriggerSpec(path)
	if err != nil {
		t.Fatalf("loadTriggerSpec: %v", err)
	}
	if spec.Name != "audit_users" || spec.Table != "users" {
		t.Errorf("bare spec decoded as %+v", spec)
	}
}

func TestLoadEnvelopeSpec(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "env.yaml", policyEnvelope)

	spec, fileDialect, err := loadPolicySpec(path)
	if err != nil {
		t.Fatalf("loadPolicySpec: %v", err)
	}
	if spec.Name != "tenant_isolation" {
		t.Errorf("Name = %q, want tenant_isolation", spec.Name)
	}
	if fileDialect != dialect.Postgres {
		t.Errorf("fileDialect = %q, want postgres", fileDialect)
	}
}

func TestGenerateDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policy.yaml", policyEnvelope)
	writeFile(t, dir, "users.yml", tableEnvelope)
	writeFile(t, dir, "notes.txt", "not a spec")

	if err := generateDir(dir, "", dialect.Postgres); err != nil {
		t.Fatalf("generateDir: %v", err)
	}

	for _, want := range []string{"policy.sql", "users.sql"} {
		data, err := os.ReadFile(filepath.Join(dir, want))
		if err != nil {
			t.Fatalf("expected %s to be generated: %v", want, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.sql")); err == nil {
		t.Error("non-spec file should not produce output")
	}
}

func TestGenerateDirOutputDir(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sql")
	writeFile(t, dir, "users.yaml", tableEnvelope)

	if err := generateDir(dir, out, dialect.Postgres); err != nil {
		t.Fatalf("generateDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "users.sql")); err != nil {
		t.Errorf("expected output in %s: %v", out, err)
	}
}

func TestGenerateDirReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "kind: widget\n")

	if err := generateDir(dir, "", dialect.Postgres); err == nil {
		t.Error("generateDir should fail when a spec cannot render")
	}
}

func TestSQLPath(t *testing.T) {
	tests := []struct {
		spec   string
		outDir string
		want   string
	}{
		{filepath.Join("specs", "users.yaml"), "", filepath.Join("specs", "users.sql")},
		{filepath.Join("specs", "users.yml"), "out", filepath.Join("out", "users.sql")},
	}
	for _, tt := range tests {
		if got := sqlPath(tt.spec, tt.outDir); got != tt.want {
			t.Errorf("sqlPath(%q, %q) = %q, want %q", tt.spec, tt.outDir, got, tt.want)
		}
	}
}
