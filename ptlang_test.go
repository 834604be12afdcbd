package ptlang_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/ptlang"
)

const sample = `int add(a, b) {
    return a + b;
}
c = add(1, 2);
if (c > 2) {
    print("big");
}
`

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantItems int
		wantFuncs []string
	}{
		{name: "empty", src: ""},
		{name: "separators only", src: " ; ;\n"},
		{name: "assignment", src: "x = 1;", wantItems: 1},
		{name: "sample", src: sample, wantItems: 3, wantFuncs: []string{"add"}},
		{
			name:      "two functions",
			src:       "void a() { } int b(x) { return x; }",
			wantItems: 2,
			wantFuncs: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := ptlang.Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if prog.Len() != tt.wantItems {
				t.Errorf("Len() = %d, want %d", prog.Len(), tt.wantItems)
			}
			if got := prog.Functions(); !slices.Equal(got, tt.wantFuncs) {
				t.Errorf("Functions() = %v, want %v", got, tt.wantFuncs)
			}
			if prog.Source() != tt.src {
				t.Errorf("Source() = %q, want %q", prog.Source(), tt.src)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		lexical bool
		kind    ptlang.ErrorKind
		want    string
	}{
		{
			name: "missing semicolon",
			src:  "int add(a, b) { return a + b }",
			kind: ptlang.SyntaxError,
			want: "parse error at 1:30: incorrect syntax: expected ;, found: }",
		},
		{
			name: "unknown type",
			src:  "String concat(x, y) { return x + y; }",
			kind: ptlang.UnexpectedTokenAfterIdentifier,
			want: "parse error at 1:8: unexpected token concat after identifier",
		},
		{
			name: "end of input",
			src:  "return 1",
			kind: ptlang.SyntaxError,
			want: "parse error at end of input: incorrect syntax: expected ;, found: null",
		},
		{
			name: "statement expected",
			src:  `"text";`,
			kind: ptlang.ExpectedStatement,
			want: `parse error at 1:1: expected identifier for sentence but got STRING "text"`,
		},
		{
			name:    "bang without equals",
			src:     "a = !b;",
			lexical: true,
			kind:    ptlang.UnknownCharacter,
			want:    "lex error at 1:5: unknown character '!'",
		},
		{
			name:    "bad escape",
			src:     `s = "a\qb";`,
			lexical: true,
			kind:    ptlang.InvalidEscape,
			want:    `lex error at 1:8: incorrect escaped symbol: \q`,
		},
		{
			name:    "unterminated string",
			src:     "\n  s = \"abc",
			lexical: true,
			kind:    ptlang.UnterminatedString,
			want:    "lex error at 2:7: unterminated string literal",
		},
		{
			name:    "invalid token",
			src:     "x = 1 # comment",
			lexical: true,
			kind:    ptlang.InvalidToken,
			want:    `lex error at 1:7: incorrect token '#'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ptlang.Parse(tt.src)
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}

			var kind ptlang.ErrorKind
			var lexErr *ptlang.LexError
			var parseErr *ptlang.ParseError
			switch {
			case errors.As(err, &lexErr):
				if !tt.lexical {
					t.Errorf("got LexError, want ParseError")
				}
				kind = lexErr.Kind
			case errors.As(err, &parseErr):
				if tt.lexical {
					t.Errorf("got ParseError, want LexError")
				}
				kind = parseErr.Kind
			default:
				t.Fatalf("error type = %T", err)
			}
			if kind != tt.kind {
				t.Errorf("Kind = %s, want %s", kind, tt.kind)
			}
		})
	}
}

func TestParseNamed(t *testing.T) {
	_, err := ptlang.ParseNamed("main.pt", "x = ;\n5;")
	var parseErr *ptlang.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Line != 2 || parseErr.Column != 1 {
		t.Errorf("position = %d:%d, want 2:1", parseErr.Line, parseErr.Column)
	}
	if want := "parse error at main.pt:2:1: expected identifier for sentence but got INT 5"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	_, err = ptlang.ParseNamed("main.pt", "return 1")
	if want := "parse error at main.pt: end of input: incorrect syntax: expected ;, found: null"; err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.pt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	prog, err := ptlang.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if prog.Len() != 3 {
		t.Errorf("Len() = %d, want 3", prog.Len())
	}

	if _, err := ptlang.ParseFile(filepath.Join(dir, "missing.pt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile(missing) error = %v, want ErrNotExist", err)
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid program")
		}
	}()
	ptlang.MustParse("x = ")
}

func TestMustParseValid(t *testing.T) {
	prog := ptlang.MustParse("x = 1;")
	if prog == nil {
		t.Error("MustParse() returned nil")
	}
}

func TestTokenize(t *testing.T) {
	toks, err := ptlang.Tokenize("print(x, 5);")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	want := []ptlang.Token{
		{Kind: "IDENTIFIER", Text: "print", Line: 1, Column: 1},
		{Kind: "SPECIAL", Text: "(", Line: 1, Column: 6},
		{Kind: "IDENTIFIER", Text: "x", Line: 1, Column: 7},
		{Kind: "SPECIAL", Text: ",", Line: 1, Column: 8},
		{Kind: "INT", Text: "5", Line: 1, Column: 10},
		{Kind: "SPECIAL", Text: ")", Line: 1, Column: 11},
		{Kind: "SPECIAL", Text: ";", Line: 1, Column: 12},
	}
	if !slices.Equal(toks, want) {
		t.Errorf("Tokenize() =\n%v\nwant:\n%v", toks, want)
	}

	if toks, err := ptlang.Tokenize(" \t\r\n"); err != nil || len(toks) != 0 {
		t.Errorf("Tokenize(whitespace) = %v, %v", toks, err)
	}

	_, err = ptlang.Tokenize(`"open`)
	var lexErr *ptlang.LexError
	if !errors.As(err, &lexErr) || lexErr.Kind != ptlang.UnterminatedString {
		t.Errorf("Tokenize(unterminated) error = %v", err)
	}
}

func TestTokenizeNamed(t *testing.T) {
	toks, err := ptlang.TokenizeNamed("main.pt", "x = 1;")
	if err != nil || len(toks) != 4 {
		t.Fatalf("TokenizeNamed() = %v, %v", toks, err)
	}

	_, err = ptlang.TokenizeNamed("main.pt", "x = 1;\ny = a ! b;")
	var lexErr *ptlang.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error = %v, want *LexError", err)
	}
	if lexErr.File != "main.pt" {
		t.Errorf("File = %q, want main.pt", lexErr.File)
	}
	if want := "lex error at main.pt:2:7: unknown character '!'"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEncode(t *testing.T) {
	prog := ptlang.MustParse(sample)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := prog.Encode(&buf, ptlang.FormatText); err != nil {
			t.Fatal(err)
		}
		if buf.String() != prog.String() {
			t.Error("text encoding differs from String()")
		}
		if !strings.HasPrefix(buf.String(), "Program:\n  FuncDeclaration:\n    Type: int\n") {
			t.Errorf("unexpected text output:\n%s", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := prog.Encode(&buf, ptlang.FormatJSON); err != nil {
			t.Fatal(err)
		}
		var tree struct {
			Type  string           `json:"type"`
			Items []map[string]any `json:"items"`
		}
		if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if tree.Type != "Program" || len(tree.Items) != 3 {
			t.Errorf("tree = %+v", tree)
		}
		if tree.Items[1]["type"] != "Assignment" {
			t.Errorf("second item = %v", tree.Items[1]["type"])
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := prog.Encode(&buf, ptlang.FormatYAML); err != nil {
			t.Fatal(err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if tree["type"] != "Program" {
			t.Errorf("type = %v", tree["type"])
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := prog.Encode(&bytes.Buffer{}, "xml"); err == nil {
			t.Error("Encode(xml) error = nil")
		}
	})
}

func TestEmptyProgramString(t *testing.T) {
	if got := ptlang.MustParse("").String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ptlang.Format
		wantErr bool
	}{
		{"", ptlang.FormatText, false},
		{"text", ptlang.FormatText, false},
		{"json", ptlang.FormatJSON, false},
		{"yaml", ptlang.FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ptlang.ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("full", func(t *testing.T) {
		cfg, err := ptlang.LoadConfig(write("full.toml", "format = \"yaml\"\nfilename = \"main.pt\"\n"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Format != ptlang.FormatYAML || cfg.Filename != "main.pt" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := ptlang.LoadConfig(write("empty.toml", ""))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Format != ptlang.FormatText {
			t.Errorf("Format = %q, want text", cfg.Format)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		if _, err := ptlang.LoadConfig(write("bad.toml", "format = \"xml\"\n")); err == nil {
			t.Error("LoadConfig() error = nil")
		}
	})

	t.Run("bad syntax", func(t *testing.T) {
		if _, err := ptlang.LoadConfig(write("broken.toml", "format = \n")); err == nil {
			t.Error("LoadConfig() error = nil")
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := ptlang.LoadConfig(filepath.Join(dir, "none.toml")); err == nil {
			t.Error("LoadConfig() error = nil")
		}
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv(ptlang.ConfigEnv, write("env.toml", "format = \"json\"\n"))
		cfg, err := ptlang.LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() error = %v", err)
		}
		if cfg.Format != ptlang.FormatJSON {
			t.Errorf("Format = %q, want json", cfg.Format)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := ptlang.DefaultConfig()
	if cfg.Format != ptlang.FormatText || cfg.Filename != "" {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func BenchmarkParse(b *testing.B) {
	src := strings.Repeat(sample, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ptlang.Parse(src)
	}
}

func ExampleParse() {
	prog, err := ptlang.Parse("x = (a + b) * 2;")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(prog)
	// Output:
	// Program:
	//   Assignment:
	//     Identifier: x
	//     BinaryOp: *
	//       BinaryOp: +
	//         Identifier: a
	//         Identifier: b
	//       IntLiteral: 2
}

func ExampleTokenize() {
	toks, _ := ptlang.Tokenize(`if (x >= 10) { say("hi"); }`)
	for _, tok := range toks[:6] {
		fmt.Println(tok)
	}
	// Output:
	// 1:1 KEYWORD "if"
	// 1:4 SPECIAL "("
	// 1:5 IDENTIFIER "x"
	// 1:7 COMPARISON ">="
	// 1:10 INT "10"
	// 1:12 SPECIAL ")"
}
