package sheetcsv

import (
	"reflect"
	"testing"
)

func TestParse_BasicRows(t *testing.T) {
	raw := "paper_id,status,reviewer,notes\nP1,pending,John,wait\n\nP2,,,"
	got := Parse(raw)
	want := []Row{
		{PaperID: "P1", Status: "pending", Reviewer: "John", Notes: "wait"},
		{PaperID: "P2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_HeaderOnlyAndEmpty(t *testing.T) {
	if got := Parse("paper_id,status,reviewer,notes"); len(got) != 0 {
		t.Fatalf("header only = %+v", got)
	}
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("empty input = %+v", got)
	}
}

func TestParse_QuoteStripAndTrim(t *testing.T) {
	raw := "h\n\"P3\" , \"In Progress\" ,  Ada , \"looks good\"\n"
	got := Parse(raw)
	want := []Row{{PaperID: "P3", Status: "In Progress", Reviewer: "Ada", Notes: "looks good"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_DropsEmptyPaperID(t *testing.T) {
	raw := "h\n,pending,John,\n\"\",x,y,z\nP9,done,,\n"
	got := Parse(raw)
	if len(got) != 1 || got[0].PaperID != "P9" {
		t.Fatalf("Parse = %+v", got)
	}
}

func TestParse_MissingTrailingColumns(t *testing.T) {
	raw := "h\nP5\nP6,active\n"
	got := Parse(raw)
	want := []Row{
		{PaperID: "P5"},
		{PaperID: "P6", Status: "active"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_CRLFLines(t *testing.T) {
	raw := "h\r\nP7,queued,Bo,\r\n"
	got := Parse(raw)
	if len(got) != 1 || got[0].PaperID != "P7" || got[0].Status != "queued" || got[0].Reviewer != "Bo" {
		t.Fatalf("Parse = %+v", got)
	}
}

func TestTuple(t *testing.T) {
	r := Row{PaperID: "P1", Status: "a", Reviewer: "b", Notes: "c"}
	if r.Tuple() != [3]string{"a", "b", "c"} {
		t.Fatalf("Tuple = %v", r.Tuple())
	}
}
