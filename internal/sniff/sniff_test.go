package sniff

import (
	"strings"
	"testing"

	"tint/internal/lang"
)

func TestDetectJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"object", `{"key": "value"}`},
		{"array", `["item1", "item2"]`},
		{"leading whitespace", "  \n  {\"key\": \"value\"}"},
		{"nested", "{\n  \"name\": \"test\",\n  \"nested\": {\"value\": 123, \"array\": [1, 2, 3]}\n}"},
	}
	for _, tc := range cases {
		if got := Detect([]byte(tc.in)); got != lang.JSON {
			t.Fatalf("%s: Detect = %q, want json", tc.name, got)
		}
	}
}

func TestDetectJSONInvalidFallsThrough(t *testing.T) {
	got := Detect([]byte(`{"key": invalid}`))
	if got == lang.JSON {
		t.Fatalf("invalid JSON must not classify as json")
	}
	if got != lang.Text {
		t.Fatalf("Detect = %q, want text", got)
	}
}

func TestDetectTOML(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"bare key value", `key = "value"`},
		{"table header", "[package]\nname = \"test\""},
		{"array of tables", "[[packages]]\nname = \"test\""},
		{"dotted keys", "package.name = \"test\"\npackage.version = \"1.0\""},
		{"comments", "# top comment\n[package]\nname = \"test\"  # inline\nversion = \"1.0\""},
		{"triple quotes", "description = \"\"\"\nMulti-line\nstring\n\"\"\""},
		{"section plus key", "[section]\nkey = value"},
	}
	for _, tc := range cases {
		if got := Detect([]byte(tc.in)); got != lang.TOML {
			t.Fatalf("%s: Detect = %q, want toml", tc.name, got)
		}
	}
}

func TestDetectYAML(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"document start", "---\nkey: value"},
		{"key values", "key: value\nanother: thing"},
		{"list under key", "items:\n  - first\n  - second\n  - third"},
		{"nested", "parent:\n  child:\n    grandchild: value"},
		{"comments", "# comment\nkey: value\nanother: thing"},
		{"document end", "a: 1\n\n\n\n\n..."},
		{"bare document marker", "---"},
	}
	for _, tc := range cases {
		if got := Detect([]byte(tc.in)); got != lang.YAML {
			t.Fatalf("%s: Detect = %q, want yaml", tc.name, got)
		}
	}
}

func TestDetectShellShebang(t *testing.T) {
	cases := []string{
		"#!/bin/bash\necho \"hello\"",
		"#!/bin/sh\nls -la",
		"#!/usr/bin/env zsh\necho $PATH",
		"#!/usr/bin/env bash\nset -e",
		"#!/usr/bin/fish\nset x 1",
	}
	for _, in := range cases {
		if got := Detect([]byte(in)); got != lang.Shell {
			t.Fatalf("Detect(%q) = %q, want shell", in, got)
		}
	}
}

func TestShebangPrecedenceOverMarkdown(t *testing.T) {
	// The shebang line starts with '#', which later rules treat as a
	// comment or heading marker; the shell rule must win outright.
	if got := Detect([]byte("#!/bin/bash\n# comment\necho hi")); got != lang.Shell {
		t.Fatalf("Detect = %q, want shell", got)
	}
}

func TestNonShellShebangFallsThrough(t *testing.T) {
	if got := Detect([]byte("#!/usr/bin/env python\nprint(\"hi\")")); got != lang.Text {
		t.Fatalf("Detect = %q, want text", got)
	}
}

func TestDetectHTML(t *testing.T) {
	cases := []string{
		"<!DOCTYPE html>\n<html>",
		"<html><head><title>Test</title></head></html>",
		"<div>content</div>",
		"<HTML><BODY>test</BODY></HTML>",
		`<div class="container">content</div>`,
	}
	for _, in := range cases {
		if got := Detect([]byte(in)); got != lang.HTML {
			t.Fatalf("Detect(%q) = %q, want html", in, got)
		}
	}
}

func TestDetectMarkdown(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"heading", "# Header 1\n\nParagraph"},
		{"headings", "# Main\n## Sub\n### Deeper"},
		{"list", "- Item 1\n- Item 2\n- Item 3"},
		{"code fence", "```python\ndef hello():\n    print(\"world\")\n```"},
		{"blockquote", "> This is a quote\n> spanning two lines"},
		{"heading with link", "# Title\n\nCheck out [this link](https://example.com)"},
	}
	for _, tc := range cases {
		if got := Detect([]byte(tc.in)); got != lang.Markdown {
			t.Fatalf("%s: Detect = %q, want markdown", tc.name, got)
		}
	}
}

func TestMarkdownDefersToYAML(t *testing.T) {
	// A heading plus a bare key: line; the key wins.
	in := "# Deploy\nname: deploy\non: push"
	if got := Detect([]byte(in)); got != lang.YAML {
		t.Fatalf("Detect = %q, want yaml", got)
	}
	if got := Detect([]byte("key: value")); got != lang.YAML {
		t.Fatalf("Detect = %q, want yaml", got)
	}
	if got := Detect([]byte("# Title\n\nbody text")); got != lang.Markdown {
		t.Fatalf("Detect = %q, want markdown", got)
	}
}

func TestDetectLog(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"iso timestamp", "2024-01-15 10:30:45 INFO Starting application"},
		{"iso with T", "2024-01-15T10:30:45 [INFO] Message"},
		{"bracketed levels", "Some message\n[INFO] Application started\n[ERROR] Something went wrong"},
		{"spaced levels", "2024-01-15 10:30:00 INFO Application started\n2024-01-15 10:30:01 ERROR Connection failed"},
		{"bracketed date colon level", "[2024-01-15] INFO: Starting"},
		{"slashed date", "2024/01/15 oops\nnothing level-like here"},
	}
	for _, tc := range cases {
		if got := Detect([]byte(tc.in)); got != lang.Log {
			t.Fatalf("%s: Detect = %q, want log", tc.name, got)
		}
	}
}

func TestDetectText(t *testing.T) {
	cases := []string{
		"This is just plain text without any structure",
		"Random words\nNo specific format\nJust text",
		"   \n  \n  ",
	}
	for _, in := range cases {
		if got := Detect([]byte(in)); got != lang.Text {
			t.Fatalf("Detect(%q) = %q, want text", in, got)
		}
	}
}

func TestDetectBinary(t *testing.T) {
	if got := Detect([]byte{0x80, 0x81, 0x82, 0x83}); got != lang.Unknown {
		t.Fatalf("Detect = %q, want unknown", got)
	}
	if got := Detect([]byte("Hello\x00\xff\xfe")); got != lang.Unknown {
		t.Fatalf("Detect = %q, want unknown for mixed binary", got)
	}
}

func TestDetectEmpty(t *testing.T) {
	if got := Detect(nil); got != lang.Unknown {
		t.Fatalf("Detect(nil) = %q, want unknown", got)
	}
	if got := Detect([]byte{}); got != lang.Unknown {
		t.Fatalf("Detect(empty) = %q, want unknown", got)
	}
}

func TestDetectDeterministic(t *testing.T) {
	inputs := [][]byte{
		[]byte(`{"a": 1}`),
		[]byte("[package]\nname = \"x\""),
		[]byte("random prose"),
		{0xff, 0xfe},
	}
	for _, in := range inputs {
		first := DetectProbe(in, 64)
		for i := 0; i < 3; i++ {
			if got := DetectProbe(in, 64); got != first {
				t.Fatalf("DetectProbe(%q) unstable: %q then %q", in, first, got)
			}
		}
	}
}

func TestProbeWindowBoundary(t *testing.T) {
	// Structural signals past the probe window must not be seen.
	filler := strings.Repeat("just some plain filler prose\n", 80)
	if len(filler) <= DefaultMaxProbe {
		t.Fatalf("filler too short for the test")
	}
	data := []byte(filler + "[section]\nkey = value\n")
	if got := Detect(data); got != lang.Text {
		t.Fatalf("Detect = %q, want text (TOML header lies beyond the probe)", got)
	}

	// The JSON rule alone re-parses the entire buffer.
	large := []byte(`{"key": "` + strings.Repeat("x", 3000) + `"}`)
	if got := Detect(large); got != lang.JSON {
		t.Fatalf("Detect = %q, want json for oversized document", got)
	}
}

func TestProbeWindowTruncatedRune(t *testing.T) {
	// The probe cut can land inside a multi-byte rune; that reads as
	// binary even though the full buffer is valid UTF-8.
	data := []byte(strings.Repeat("a", DefaultMaxProbe-1) + "é more text")
	if got := Detect(data); got != lang.Unknown {
		t.Fatalf("Detect = %q, want unknown", got)
	}
}

func TestDetectProbeCustomSize(t *testing.T) {
	data := []byte("[section]\nkey = value\n")
	if got := DetectProbe(data, 9); got != lang.TOML {
		t.Fatalf("DetectProbe(9) = %q, want toml", got)
	}
	if got := DetectProbe(data, 0); got != lang.TOML {
		t.Fatalf("DetectProbe(0) = %q, want toml (default probe)", got)
	}
}

func TestDetectRealWorldSamples(t *testing.T) {
	cargo := "[package]\nname = \"my-crate\"\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\nserde = \"1.0\"\n"
	if got := Detect([]byte(cargo)); got != lang.TOML {
		t.Fatalf("cargo manifest: Detect = %q, want toml", got)
	}

	workflow := "---\nname: CI\n\non:\n  push:\n    branches: [main]\n\njobs:\n  test:\n    runs-on: ubuntu-latest\n"
	if got := Detect([]byte(workflow)); got != lang.YAML {
		t.Fatalf("workflow: Detect = %q, want yaml", got)
	}

	readme := "# Project Name\n\n## Installation\n\n```bash\npip install myproject\n```\n\n## Usage\n\n- First step\n- Second step\n"
	if got := Detect([]byte(readme)); got != lang.Markdown {
		t.Fatalf("readme: Detect = %q, want markdown", got)
	}

	pkg := "{\n  \"name\": \"my-package\",\n  \"version\": \"1.0.0\",\n  \"dependencies\": {\"express\": \"^4.17.1\"}\n}"
	if got := Detect([]byte(pkg)); got != lang.JSON {
		t.Fatalf("package.json: Detect = %q, want json", got)
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\r\nb\rc\n", 3},
		{"\n\n", 2},
	}
	for _, tc := range cases {
		if got := splitLines(tc.in); len(got) != tc.want {
			t.Fatalf("splitLines(%q) = %d lines %q, want %d", tc.in, len(got), got, tc.want)
		}
	}
}
