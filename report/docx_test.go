package report

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestBuildDocxPackage(t *testing.T) {
	html := "<html><body><p>Acta de prueba</p></body></html>"
	data, err := BuildDocx(html)
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("el resultado no es un zip válido: %v", err)
	}

	want := map[string]bool{
		"[Content_Types].xml":          false,
		"_rels/.rels":                  false,
		"word/_rels/document.xml.rels": false,
		"word/document.xml":            false,
		"word/afchunk.htm":             false,
	}
	for _, f := range zr.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("falta la parte %s", name)
		}
	}

	rc, err := zr.Open("word/afchunk.htm")
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != html {
		t.Fatal("el HTML embebido no coincide con el de entrada")
	}

	rc2, err := zr.Open("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	defer rc2.Close()
	doc, _ := io.ReadAll(rc2)
	if !strings.Contains(string(doc), "altChunk") {
		t.Fatal("document.xml no referencia el altChunk")
	}
}
