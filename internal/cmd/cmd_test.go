package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(t *testing.T, root *cobra.Command, args ...string) (output string, err error) {
	t.Helper()

	// Flag values and viper state outlive a single Execute; start clean.
	viper.Reset()
	runCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	cfgFile = ""
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "triad" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "triad")
	}

	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "run" {
			found = true
		}
	}
	if !found {
		t.Error("expected subcommand \"run\" not found")
	}
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "triad.json")
	promFile := filepath.Join(dir, "triad.prom")

	output, err := executeCommand(t, rootCmd, "run",
		"--population", "6",
		"--seed", "3",
		"--no-color",
		"--verify",
		"--log-level", "info",
		"--log-file", logFile,
		"--metrics-textfile", promFile,
	)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, output)
	}

	for _, want := range []string{"Players:", "Matched Teams:", "\tTeam 1: ", "Total Iterations: ", "Seed: 3\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "is sending proposals") {
		t.Error("trace printed without --trace")
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("escape codes printed with --no-color")
	}

	logs, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(logs), `"msg":"run finished"`) || !strings.Contains(string(logs), `"seed":3`) {
		t.Errorf("unexpected log content:\n%s", logs)
	}

	metrics, err := os.ReadFile(promFile)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(metrics), "triad_matcher_teams_formed_total") {
		t.Errorf("unexpected metrics content:\n%s", metrics)
	}
}

func TestRunCommand_NoColorDoesNotLeak(t *testing.T) {
	_, err := executeCommand(t, rootCmd, "run", "-n", "3", "-s", "1", "--no-color", "--log-level", "error")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !viper.GetBool("output.color") {
		t.Error("--no-color should not change output.color in the shared config")
	}
}

func TestRunCommand_Trace(t *testing.T) {
	output, err := executeCommand(t, rootCmd, "run", "-n", "6", "-s", "11", "--trace", "--no-color", "--log-level", "error")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(output, "Player 0 is sending proposals to:\n\t Players ") {
		t.Errorf("trace should open with the first proposer:\n%s", output)
	}
	if !strings.Contains(output, "| Accepted.") {
		t.Errorf("trace has no accepted proposal:\n%s", output)
	}
}

func TestRunCommand_MaxProposals(t *testing.T) {
	output, err := executeCommand(t, rootCmd, "run", "-n", "6", "-s", "5", "--max-proposals", "1", "--no-color", "--log-level", "error")
	if err != nil {
		t.Fatalf("a capped run should still succeed: %v", err)
	}
	// The first proposal always seats three free individuals.
	if !strings.Contains(output, "Total Iterations: 1\n") {
		t.Errorf("expected one iteration:\n%s", output)
	}
	if !strings.Contains(output, "Unmatched: 3 of 6 individuals") {
		t.Errorf("expected a partial result:\n%s", output)
	}
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	_, err := executeCommand(t, rootCmd, "run", "--population", "10", "--log-level", "error")
	if err == nil {
		t.Fatal("expected an error for a population that is not a multiple of 3")
	}
	if !strings.Contains(err.Error(), "run.population") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestRunCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "run:\n  population: 9\n  seed: 2\noutput:\n  color: false\nlogging:\n  level: error\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	output, err := executeCommand(t, rootCmd, "--config", path, "run")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(output, "\tTeam 2: ") || !strings.Contains(output, "Seed: 2\n") {
		t.Errorf("config file values not applied:\n%s", output)
	}
}
