package preset

import (
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/justyntemme/clapgo/pkg/framework/param"
)

func testRegistry(t *testing.T) *param.Registry {
	t.Helper()
	r := param.NewRegistry()
	err := r.Add(
		param.New(1, "Gain").Range(-60, 12).Default(0).Build(),
		param.New(2, "Cutoff").Range(20, 20000).Default(1000).Build(),
	)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return r
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := testRegistry(t)
	src.Get(1).SetValue(-6)
	src.Get(2).SetValue(8000)

	doc, err := Save(src, Info{Name: "Bright Lead", PluginID: "com.example.synth", Author: "tests"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := testRegistry(t)
	info, err := Load(dst, doc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if info.Name != "Bright Lead" || info.PluginID != "com.example.synth" || info.Author != "tests" {
		t.Errorf("Info = %+v", info)
	}
	if got := dst.Get(1).Value(); got != -6 {
		t.Errorf("Gain = %v, want -6", got)
	}
	if got := dst.Get(2).Value(); got != 8000 {
		t.Errorf("Cutoff = %v, want 8000", got)
	}
}

func TestDocumentShape(t *testing.T) {
	reg := testRegistry(t)
	doc, err := Save(reg, Info{Name: "Init", PluginID: "com.example.synth"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	root := gjson.ParseBytes(doc)
	if root.Get("version").Int() != 1 {
		t.Errorf("version = %v", root.Get("version"))
	}
	if got := root.Get("params.1.name").String(); got != "Gain" {
		t.Errorf("params.1.name = %q", got)
	}
	if got := root.Get("params.2.value").Float(); got != 1000 {
		t.Errorf("params.2.value = %v", got)
	}
	if root.Get("author").Exists() {
		t.Error("empty author was written")
	}
}

func TestLoadSkipsUnknownParameters(t *testing.T) {
	doc := []byte(`{
		"version": 1,
		"name": "Old",
		"plugin_id": "com.example.synth",
		"params": {
			"1": {"name": "Gain", "value": 3},
			"777": {"name": "Removed", "value": 0.5}
		}
	}`)

	reg := testRegistry(t)
	if _, err := Load(reg, doc); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := reg.Get(1).Value(); got != 3 {
		t.Errorf("Gain = %v, want 3", got)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	reg := testRegistry(t)

	if _, err := Load(reg, []byte(`{not json`)); err == nil {
		t.Error("invalid JSON accepted")
	}
	if _, err := Load(reg, []byte(`{"name": "versionless"}`)); err == nil {
		t.Error("document without version accepted")
	}
	if _, err := Load(reg, []byte(`{"version": 99}`)); err == nil {
		t.Error("newer version accepted")
	}
	if _, err := Load(reg, []byte(`{"version": 1, "params": {"abc": {"value": 1}}}`)); err == nil {
		t.Error("non-numeric parameter key accepted")
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	doc := []byte(`{"version": 1, "params": {"1": {"value": 500}}}`)
	reg := testRegistry(t)
	if _, err := Load(reg, doc); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := reg.Get(1).Value(); got != 12 {
		t.Errorf("out-of-range value = %v, want clamp to 12", got)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lead.json")

	src := testRegistry(t)
	src.Get(1).SetValue(6)
	if err := SaveFile(path, src, Info{Name: "Lead", PluginID: "com.example.synth"}); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	dst := testRegistry(t)
	info, err := LoadFile(path, dst)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if info.Name != "Lead" {
		t.Errorf("Info = %+v", info)
	}
	if got := dst.Get(1).Value(); got != 6 {
		t.Errorf("Gain = %v, want 6", got)
	}
}
