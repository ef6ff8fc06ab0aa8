package utils

import (
	"strings"
	"testing"
)

func TestCSVField_QuotesEveryField(t *testing.T) {
	if got := CSVField("plain"); got != `"plain"` {
		t.Errorf("Expected %q, got %q", `"plain"`, got)
	}
	if got := CSVField(""); got != `""` {
		t.Errorf("Expected %q, got %q", `""`, got)
	}
}

func TestCSVField_DoublesInternalQuotes(t *testing.T) {
	got := CSVField(`Pipe 6" dia`)
	if got != `"Pipe 6"" dia"` {
		t.Errorf("Expected %q, got %q", `"Pipe 6"" dia"`, got)
	}
}

func TestBuildCSV_StartsWithBOM(t *testing.T) {
	out := BuildCSV([][]string{{"a"}})
	if !strings.HasPrefix(out, UTF8BOM) {
		t.Error("Expected output to start with the UTF-8 BOM")
	}
}

func TestBuildCSV_CRLFLineEndings(t *testing.T) {
	out := BuildCSV([][]string{{"a", "b"}, {"c", "d"}})

	body := strings.TrimPrefix(out, UTF8BOM)
	if body != "\"a\",\"b\"\r\n\"c\",\"d\"\r\n" {
		t.Errorf("Unexpected CSV body %q", body)
	}
}

func TestBuildCSV_CommasAndNewlinesStayInsideQuotes(t *testing.T) {
	out := BuildCSV([][]string{{"supply, place and cure", "line1\nline2"}})

	body := strings.TrimPrefix(out, UTF8BOM)
	if body != "\"supply, place and cure\",\"line1\nline2\"\r\n" {
		t.Errorf("Unexpected CSV body %q", body)
	}
}
