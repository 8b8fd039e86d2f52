package cmd

import (
	"reflect"
	"testing"

	"github.com/ilyakooo0/parseable-macos-sub000/sqltext"
)

func TestParseSchemaFields(t *testing.T) {
	got := parseSchemaFields([]string{"status:Int64", "severity_text:Utf8", "bare", "", ":Utf8"})
	want := []sqltext.SchemaField{
		{Name: "status", Type: "Int64"},
		{Name: "severity_text", Type: "Utf8"},
		{Name: "bare"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseSchemaFields_Empty(t *testing.T) {
	if got := parseSchemaFields(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
