package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"good.example, , bad.example", []string{"good.example", "bad.example"}},
		{"a.example\n  b.example ,c.example  \n\n", []string{"a.example", "b.example", "c.example"}},
		{"a.example,a.example", []string{"a.example", "a.example"}},
		{" , ,\n\t\n", nil},
		{"", nil},
	}
	for _, c := range cases {
		got, err := Parse(strings.NewReader(c.in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if strings.Join(got, "|") != strings.Join(c.want, "|") || len(got) != len(c.want) {
			t.Fatalf("Parse(%q)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "url.txt")
	if err := os.WriteFile(path, []byte("x.example, y.example\r\nz.example"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if strings.Join(got, ",") != "x.example,y.example,z.example" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("want ErrNoInput, got %v", err)
	}
}
