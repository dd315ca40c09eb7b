package analyze

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dtnitsch/qa-stats/internal/corpus"
	"github.com/dtnitsch/qa-stats/models"
	"github.com/dtnitsch/qa-stats/pkg/stats"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writePartition drops a .jsonl fixture into dir.
func writePartition(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write partition %s: %v", name, err)
	}
}

// analyzeDir runs the full scan/reduce/rank pipeline over dir.
func analyzeDir(t *testing.T, dir string, workers int) (*stats.Report, error) {
	t.Helper()
	partitions, err := corpus.Discover(dir)
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	config := &models.Config{Workers: workers, ReportID: "test"}
	return run(discardLogger(), config, partitions)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writePartition(t, dir, "siteA.jsonl", `{"texts":["hello world"],"tags":["t1"]}`+"\n")
	writePartition(t, dir, "siteB.jsonl", `{"texts":["a"],"tags":["t1","t2"]}`+"\n")

	report, err := analyzeDir(t, dir, 2)
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	siteA := report.Sites["siteA"]
	if siteA == nil {
		t.Fatal("siteA missing from report")
	}
	if siteA.Questions != 1 || siteA.Words != 2 {
		t.Errorf("siteA = %d/%d, want 1/2", siteA.Questions, siteA.Words)
	}
	if got := siteA.Tags["t1"]; got != (stats.UsageStat{Questions: 1, Words: 2}) {
		t.Errorf("siteA t1 = %+v, want {1 2}", got)
	}

	siteB := report.Sites["siteB"]
	if siteB == nil {
		t.Fatal("siteB missing from report")
	}
	if siteB.Questions != 1 || siteB.Words != 1 {
		t.Errorf("siteB = %d/%d, want 1/1", siteB.Questions, siteB.Words)
	}
	if got := siteB.Tags["t1"]; got != (stats.UsageStat{Questions: 1, Words: 1}) {
		t.Errorf("siteB t1 = %+v, want {1 1}", got)
	}
	if got := siteB.Tags["t2"]; got != (stats.UsageStat{Questions: 1, Words: 1}) {
		t.Errorf("siteB t2 = %+v, want {1 1}", got)
	}

	if got := report.Tags["t1"]; got != (stats.UsageStat{Questions: 2, Words: 3}) {
		t.Errorf("global t1 = %+v, want {2 3}", got)
	}
	if got := report.Tags["t2"]; got != (stats.UsageStat{Questions: 1, Words: 1}) {
		t.Errorf("global t2 = %+v, want {1 1}", got)
	}

	// siteA ratio 2.0 beats siteB ratio 1.0.
	wantSites := []string{"siteA", "siteB"}
	if !reflect.DeepEqual(report.Totals["chatty_sites"], wantSites) {
		t.Errorf("chatty_sites = %v, want %v", report.Totals["chatty_sites"], wantSites)
	}
}

func TestRunSameResultForAnyWorkerCount(t *testing.T) {
	dir := t.TempDir()
	writePartition(t, dir, "alpha.jsonl",
		`{"texts":["one two three"],"tags":["go","concurrency"]}`+"\n"+
			`{"texts":["four five"],"tags":["go"]}`+"\n"+
			`{"texts":["six"],"tags":["testing"]}`+"\n")
	writePartition(t, dir, "beta.jsonl",
		`{"texts":["seven eight nine ten"],"tags":["concurrency"]}`+"\n"+
			`{"texts":["eleven","twelve thirteen"],"tags":["go","testing"]}`+"\n")
	writePartition(t, dir, "gamma.jsonl",
		`{"texts":["fourteen"],"tags":["testing"]}`+"\n")

	baseline, err := analyzeDir(t, dir, 1)
	if err != nil {
		t.Fatalf("run() with 1 worker failed: %v", err)
	}

	for _, workers := range []int{4, 8} {
		report, err := analyzeDir(t, dir, workers)
		if err != nil {
			t.Fatalf("run() with %d workers failed: %v", workers, err)
		}
		if !reflect.DeepEqual(report.Tags, baseline.Tags) {
			t.Errorf("%d workers: tags = %+v, want %+v", workers, report.Tags, baseline.Tags)
		}
		if !reflect.DeepEqual(report.Sites, baseline.Sites) {
			t.Errorf("%d workers: sites differ from single-worker result", workers)
		}
		if !reflect.DeepEqual(report.Totals, baseline.Totals) {
			t.Errorf("%d workers: rankings = %v, want %v", workers, report.Totals, baseline.Totals)
		}
	}
}

func TestRunSharedSiteName(t *testing.T) {
	// Two directories can't hold two files with one name, but partitions
	// are just (site, path) pairs; feed run() two of them for one site.
	dir := t.TempDir()
	writePartition(t, dir, "part1.jsonl", `{"texts":["a b"],"tags":["t"]}`+"\n")
	writePartition(t, dir, "part2.jsonl", `{"texts":["c"],"tags":["t"]}`+"\n")

	partitions := []corpus.Partition{
		{Site: "shared", Path: filepath.Join(dir, "part1.jsonl")},
		{Site: "shared", Path: filepath.Join(dir, "part2.jsonl")},
	}
	config := &models.Config{Workers: 2, ReportID: "test"}
	report, err := run(discardLogger(), config, partitions)
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	if len(report.Sites) != 1 {
		t.Fatalf("got %d sites, want 1", len(report.Sites))
	}
	site := report.Sites["shared"]
	if site.Questions != 2 || site.Words != 3 {
		t.Errorf("shared site = %d/%d, want 2/3", site.Questions, site.Words)
	}
	if got := report.Tags["t"]; got != (stats.UsageStat{Questions: 2, Words: 3}) {
		t.Errorf("global tag = %+v, want {2 3}", got)
	}
}

func TestRunMalformedLineFailsWholeRun(t *testing.T) {
	dir := t.TempDir()
	writePartition(t, dir, "good.jsonl", `{"texts":["fine"],"tags":["t"]}`+"\n")
	writePartition(t, dir, "bad.jsonl",
		`{"texts":["ok"],"tags":["t"]}`+"\n"+
			`{"texts":"not an array","tags":[]}`+"\n")

	report, err := analyzeDir(t, dir, 2)
	if err == nil {
		t.Fatal("run() succeeded over a malformed partition, want error")
	}
	if report != nil {
		t.Errorf("run() returned a partial report alongside the error")
	}
}

func TestRunUnreadablePartitionFailsWholeRun(t *testing.T) {
	dir := t.TempDir()
	writePartition(t, dir, "good.jsonl", `{"texts":["fine"],"tags":["t"]}`+"\n")

	partitions := []corpus.Partition{
		{Site: "good", Path: filepath.Join(dir, "good.jsonl")},
		{Site: "gone", Path: filepath.Join(dir, "gone.jsonl")},
	}
	config := &models.Config{Workers: 2, ReportID: "test"}
	if _, err := run(discardLogger(), config, partitions); err == nil {
		t.Fatal("run() succeeded with an unreadable partition, want error")
	}
}

func TestRunEmptyCorpus(t *testing.T) {
	report, err := analyzeDir(t, t.TempDir(), 2)
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if len(report.Sites) != 0 || len(report.Tags) != 0 {
		t.Errorf("empty corpus produced non-empty report: %+v", report)
	}
	if len(report.Totals["chatty_sites"]) != 0 || len(report.Totals["chatty_tags"]) != 0 {
		t.Errorf("empty corpus produced rankings: %v", report.Totals)
	}
}

func TestRunEmptyPartitionYieldsZeroSite(t *testing.T) {
	dir := t.TempDir()
	writePartition(t, dir, "empty.jsonl", "")

	report, err := analyzeDir(t, dir, 1)
	if err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	site := report.Sites["empty"]
	if site == nil {
		t.Fatal("empty partition missing from report")
	}
	if site.Questions != 0 || site.Words != 0 || len(site.Tags) != 0 {
		t.Errorf("empty partition aggregate = %+v, want zero", site)
	}
}
