package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/pflag"

	"github.com/matzehuels/carquery/pkg/errors"
	"github.com/matzehuels/carquery/pkg/integrations/carquery"
	"github.com/matzehuels/carquery/pkg/observability"
)

// fakeAPI answers every cmd with a canned body and records the last query.
type fakeAPI struct {
	mu     sync.Mutex
	bodies map[string]string
	last   url.Values
	calls  int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = r.URL.Query()
	body, ok := f.bodies[f.last.Get("cmd")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, body)
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeAPI) query() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

var fakeBodies = map[string]string{
	"getYears":  `{"Years":{"min_year":"1941","max_year":"2022"}}`,
	"getMakes":  `{"Makes":[{"make_id":"ford","make_display":"Ford","make_is_common":"1","make_country":"USA"}]}`,
	"getModels": `{"Models":[{"model_name":"Escape","model_make_id":"ford"}]}`,
	"getTrims":  `{"Trims":[{"model_id":"42","model_make_id":"ford","model_name":"Mustang","model_trim":"GT","model_year":"2011","model_engine_cc":"4951","model_engine_cyl":"8","make_display":"Ford"}]}`,
	"getModel":  `[{"model_id":"11459","model_make_id":"ford","model_name":"Mustang","model_year":"2000","model_weight_kg":"1500","model_weight_lbs":"3307","make_display":"Ford","model_engine_compression":null}]`,
}

// run executes the CLI against a fake API with an isolated environment.
func run(t *testing.T, api *fakeAPI, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--base-url", server.URL, "--no-cache"}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestYearsCommand(t *testing.T) {
	api := &fakeAPI{bodies: fakeBodies}

	out, err := run(t, api, "years", "--json")
	if err != nil {
		t.Fatalf("years: %v", err)
	}
	var yr carquery.YearRange
	if err := json.Unmarshal([]byte(out), &yr); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if yr.MinYear != 1941 || yr.MaxYear != 2022 {
		t.Errorf("years = %+v", yr)
	}
}

func TestMakesCommand(t *testing.T) {
	api := &fakeAPI{bodies: fakeBodies}

	out, err := run(t, api, "makes", "2011", "--us")
	if err != nil {
		t.Fatalf("makes: %v", err)
	}
	if !strings.Contains(out, "Ford") {
		t.Errorf("output missing make:\n%s", out)
	}
	q := api.query()
	if q.Get("year") != "2011" || q.Get("sold_in_us") != "1" {
		t.Errorf("query = %v", q)
	}
}

func TestMakesCommand_InvalidYear(t *testing.T) {
	api := &fakeAPI{bodies: fakeBodies}

	_, err := run(t, api, "makes", "twenty")
	if !errors.Is(err, errors.ErrCodeInvalidYear) {
		t.Errorf("error = %v, want INVALID_YEAR", err)
	}
	if api.count() != 0 {
		t.Error("no request should be sent for invalid input")
	}
}

func TestModelsCommand(t *testing.T) {
	api := &fakeAPI{bodies: fakeBodies}

	out, err := run(t, api, "models", "2000", "ford", "--body", "suv", "--json")
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if !strings.Contains(out, `"makeId": "ford"`) {
		t.Errorf("output = %s", out)
	}
	q := api.query()
	if q.Get("body") != "SUV" || q.Get("make") != "ford" || q.Has("sold_in_us") {
		t.Errorf("query = %v", q)
	}
}

func TestModelsCommand_InvalidBody(t *testing.T) {
	_, err := run(t, &fakeAPI{bodies: fakeBodies}, "models", "2000", "ford", "--body", "boat")
	if !errors.Is(err, errors.ErrCodeInvalidBody) {
		t.Errorf("error = %v, want INVALID_BODY", err)
	}
}

func TestTrimsCommand(t *testing.T) {
	api := &fakeAPI{bodies: fakeBodies}

	out, err := run(t, api, "trims", "--make", "ford", "--year", "2011",
		"--min-cylinders", "6", "--min-power", "0", "--max-lkm-hwy", "9.5", "--full-results")
	if err != nil {
		t.Fatalf("trims: %v", err)
	}
	if !strings.Contains(out, "Mustang") || !strings.Contains(out, "4951 cc") {
		t.Errorf("output missing trim:\n%s", out)
	}

	q := api.query()
	want := map[string]string{
		"cmd": "getTrims", "make": "ford", "year": "2011",
		"min_cylinders": "6", "max_lkm_hwy": "9.5", "full_results": "1",
	}
	for k, v := range want {
		if q.Get(k) != v {
			t.Errorf("%s = %q, want %q", k, q.Get(k), v)
		}
	}
	if q.Has("min_power") {
		t.Error("min_power=0 should be omitted")
	}
}

func TestTrimsFlags(t *testing.T) {
	var f trimsFlags
	fs := pflag.NewFlagSet("trims", pflag.ContinueOnError)
	f.register(fs)
	if err := fs.Parse([]string{"--body", "hatchback", "--seats", "5", "--us", "--engine-type", "V"}); err != nil {
		t.Fatal(err)
	}

	p, err := f.build()
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}
	want := carquery.GetTrimsParams{BodyStyle: carquery.BodyHatchback, Seats: 5, SoldInUSA: true, EngineType: "V"}
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
}

func TestModelCommand(t *testing.T) {
	api := &fakeAPI{bodies: fakeBodies}

	out, err := run(t, api, "model", "11459", "--json")
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	var d carquery.ModelDetail
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.WeightKilograms != 1500 || d.WeightPounds != 3307 || d.EngineCompression != nil {
		t.Errorf("detail = %+v", d)
	}
	if api.query().Get("model") != "11459" {
		t.Errorf("query = %v", api.query())
	}

	out, err = run(t, api, "model", "11459")
	if err != nil {
		t.Fatalf("model (table): %v", err)
	}
	if !strings.Contains(out, "3307 lbs") {
		t.Errorf("output missing weight:\n%s", out)
	}
}

func TestModelCommand_NotFound(t *testing.T) {
	bodies := map[string]string{"getModel": `[]`}
	if _, err := run(t, &fakeAPI{bodies: bodies}, "model", "1"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestCacheCommands(t *testing.T) {
	api := &fakeAPI{bodies: fakeBodies}
	cacheHome := t.TempDir()

	exec := func(args ...string) string {
		t.Helper()
		server := httptest.NewServer(api)
		defer server.Close()
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("XDG_CACHE_HOME", cacheHome)

		c := New(io.Discard, LogInfo)
		root := c.RootCommand()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(append([]string{"--base-url", server.URL}, args...))
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}
	t.Cleanup(observability.Reset)

	exec("years")
	exec("years")
	if n := api.count(); n != 1 {
		t.Errorf("API called %d times, want 1 (second run cached)", n)
	}

	path := strings.TrimSpace(exec("cache", "path"))
	if path != filepath.Join(cacheHome, appName) {
		t.Errorf("cache path = %q", path)
	}

	out := exec("cache", "clear")
	if !strings.Contains(out, "Cleared 1") {
		t.Errorf("cache clear output = %q", out)
	}

	exec("years", "--refresh")
	if n := api.count(); n != 2 {
		t.Errorf("API called %d times, want 2", n)
	}
}

func TestConfigInit(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	initCmd := func(args ...string) error {
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		root.SetArgs(args)
		return root.Execute()
	}

	if err := initCmd("config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	dir, _ := configDir()
	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `backend = "file"`) {
		t.Errorf("config file:\n%s", data)
	}

	// A second init without --force refuses to overwrite.
	if err := initCmd("config", "init"); err == nil {
		t.Error("expected error when config already exists")
	}
	if err := initCmd("config", "init", "--force"); err != nil {
		t.Errorf("config init --force: %v", err)
	}

	// An explicit path that does not exist yet is created, not read.
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := initCmd("--config", path, "config", "init"); err != nil {
		t.Fatalf("config init --config: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("explicit config not written: %v", err)
	}

	// The written file loads back.
	if _, cfg, err := loadConfig(path, nil); err != nil || cfg.Cache.TTL == 0 {
		t.Errorf("loadConfig(%s) = %+v, %v", path, cfg, err)
	}
}

func TestUnknownCacheBackend(t *testing.T) {
	t.Setenv("CARQUERY_CACHE_BACKEND", "memcached")
	api := &fakeAPI{bodies: fakeBodies}

	server := httptest.NewServer(api)
	defer server.Close()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--base-url", server.URL, "years"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "memcached") {
		t.Errorf("error = %v, want unknown backend", err)
	}
}

func TestTrimRowEngine(t *testing.T) {
	tests := []struct {
		name string
		trim carquery.Trim
		want string
	}{
		{"full", carquery.Trim{EngineCC: 4951, EngineType: "V", EngineCylinders: 8}, "4951 cc V 8 cyl"},
		{"type and cylinders", carquery.Trim{EngineType: "in-line", EngineCylinders: 4}, "in-line 4 cyl"},
		{"no type", carquery.Trim{EngineCC: 1998, EngineCylinders: 4}, "1998 cc 4 cyl"},
		{"nothing", carquery.Trim{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimRow(tt.trim)[6]; got != tt.want {
				t.Errorf("engine cell = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintModelDetailColors(t *testing.T) {
	var buf bytes.Buffer
	printModelDetail(&buf, &carquery.ModelDetail{
		ExteriorColors: []carquery.Color{{Name: "Red", RGB: "255,0,0"}, {Name: "Black"}},
		InteriorColors: []carquery.Color{{Name: "Tan"}},
	})
	out := buf.String()
	for _, want := range []string{"Exterior colors", "Red, Black", "Interior colors", "Tan"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
