package export

import (
	"archive/zip"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/note-digest/internal/models"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single", "Buy milk.", []string{"Buy milk."}},
		{"blank lines", "one\n\n\ntwo\r\n\r\nthree", []string{"one", "two", "three"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitParagraphs(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitParagraphs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestWriteDocx(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reports", "note.docx")
	report := Report{
		Title:       "Standup",
		Source:      "note.webm",
		GeneratedAt: time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC),
		Result: models.Result{
			Transcript: "Buy milk. Call Bob.",
			Summary: models.Summary{
				KeyPoints:   []string{"Groceries needed"},
				ActionItems: []string{"Call Bob"},
			},
		},
	}

	if err := WriteDocx(report, out); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("output is not a docx archive: %v", err)
	}
	defer zr.Close()

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		body = string(data)
	}
	for _, want := range []string{"Standup", "Groceries needed", "Call Bob", "Buy milk. Call Bob."} {
		if !strings.Contains(body, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}
