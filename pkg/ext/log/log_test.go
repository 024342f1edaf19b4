package log_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/justyntemme/clapgo/pkg/clap"
	extlog "github.com/justyntemme/clapgo/pkg/ext/log"
	"github.com/justyntemme/clapgo/pkg/framework/debug"
	"github.com/justyntemme/clapgo/pkg/host"
	"github.com/justyntemme/clapgo/pkg/plugin"
)

type nopHandler struct{}

func (nopHandler) RequestRestart()  {}
func (nopHandler) RequestProcess()  {}
func (nopHandler) RequestCallback() {}

// logPlugin only needs its host handle; it declares no extensions.
type logPlugin struct {
	host plugin.HostHandle
}

func (p *logPlugin) Init(host plugin.HostMainThread) error { return nil }
func (p *logPlugin) Destroy(host plugin.HostMainThread)    {}
func (p *logPlugin) Activate(host plugin.HostMainThread, cfg plugin.AudioConfig) error {
	return nil
}
func (p *logPlugin) Deactivate(host plugin.HostMainThread)             {}
func (p *logPlugin) StartProcessing(host plugin.HostAudioThread) error { return nil }
func (p *logPlugin) StopProcessing(host plugin.HostAudioThread)        {}
func (p *logPlugin) Reset(host plugin.HostAudioThread)                 {}
func (p *logPlugin) Process(host plugin.HostAudioThread, proc *plugin.Process) clap.ProcessStatus {
	return clap.ProcessContinue
}
func (p *logPlugin) OnMainThread(host plugin.HostMainThread) {}

type logFactory struct {
	last *logPlugin
}

func (f *logFactory) Descriptor() plugin.Descriptor {
	return plugin.Descriptor{ID: "test.log", Name: "Log Test", Vendor: "test", Version: "1.0"}
}

func (f *logFactory) Create(h plugin.HostHandle) (plugin.Instance, error) {
	f.last = &logPlugin{host: h}
	return f.last, nil
}

type record struct {
	severity clap.LogSeverity
	msg      string
}

type recorder struct {
	records []record
}

func (r *recorder) Log(severity clap.LogSeverity, msg string) {
	r.records = append(r.records, record{severity, msg})
}

func newLogInstance(t *testing.T, opts ...host.InstanceOption) *logFactory {
	t.Helper()
	f := &logFactory{}
	reg := plugin.NewRegistry()
	if err := reg.Register(f); err != nil {
		t.Fatalf("Register: %v", err)
	}
	info := host.Info{Name: "logtest", Vendor: "test", URL: "", Version: "1.0"}
	inst, err := host.NewInstance(reg.Factory(), "test.log", info, nopHandler{}, opts...)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	t.Cleanup(inst.Destroy)
	return f
}

func TestLogRoundTrip(t *testing.T) {
	rec := &recorder{}
	f := newLogInstance(t,
		host.WithHostExtension(clap.ExtLog, unsafe.Pointer(extlog.HostTable(rec))))

	hl, ok := extlog.FromHost(f.last.host)
	if !ok {
		t.Fatal("FromHost: host extension not found")
	}

	if err := hl.Log(f.last.host, clap.LogWarning, "voice pool exhausted"); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := hl.Logf(f.last.host, clap.LogInfo, "loaded %d presets", 12); err != nil {
		t.Fatalf("Logf: %v", err)
	}

	want := []record{
		{clap.LogWarning, "voice pool exhausted"},
		{clap.LogInfo, "loaded 12 presets"},
	}
	if len(rec.records) != len(want) {
		t.Fatalf("host received %d messages, want %d", len(rec.records), len(want))
	}
	for i, w := range want {
		if rec.records[i] != w {
			t.Errorf("record %d = %+v, want %+v", i, rec.records[i], w)
		}
	}
}

func TestLogInteriorNul(t *testing.T) {
	rec := &recorder{}
	f := newLogInstance(t,
		host.WithHostExtension(clap.ExtLog, unsafe.Pointer(extlog.HostTable(rec))))

	hl, ok := extlog.FromHost(f.last.host)
	if !ok {
		t.Fatal("FromHost: host extension not found")
	}

	err := hl.Log(f.last.host, clap.LogError, "bad\x00message")
	var encErr *clap.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("Log with interior NUL: got %v, want *clap.EncodingError", err)
	}
	if len(rec.records) != 0 {
		t.Errorf("message with interior NUL reached the host: %+v", rec.records)
	}
}

func TestFromHostUnsupported(t *testing.T) {
	f := newLogInstance(t)
	if _, ok := extlog.FromHost(f.last.host); ok {
		t.Error("FromHost reported support for a host without the extension")
	}
}

func TestHostTableDefensive(t *testing.T) {
	table := extlog.HostTable(extlog.HandlerFunc(func(clap.LogSeverity, string) {
		panic("sink bug")
	}))

	// Neither a panicking sink nor a nil message may unwind into the caller.
	msg := clap.StaticCStr("hello\x00")
	table.Log(nil, clap.LogInfo, msg)
	table.Log(nil, clap.LogInfo, nil)
}

func TestDebugHandlerSeverityMapping(t *testing.T) {
	var buf bytes.Buffer
	l := debug.New(&buf, "")
	l.SetLevel(debug.LogLevelDebug)
	h := extlog.DebugHandler(l)

	h.Log(clap.LogDebug, "probe")
	h.Log(clap.LogWarning, "running hot")
	h.Log(clap.LogPluginMisbehaving, "event out of order")

	out := buf.String()
	for _, want := range []string{
		"[DEBUG] probe",
		"[WARN] running hot",
		"[ERROR] contract violation: event out of order",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSeverityString(t *testing.T) {
	cases := []struct {
		severity clap.LogSeverity
		want     string
	}{
		{clap.LogDebug, "debug"},
		{clap.LogFatal, "fatal"},
		{clap.LogHostMisbehaving, "host-misbehaving"},
		{clap.LogSeverity(99), "unknown"},
	}
	for _, c := range cases {
		if got := extlog.SeverityString(c.severity); got != c.want {
			t.Errorf("SeverityString(%d) = %q, want %q", c.severity, got, c.want)
		}
	}
}
