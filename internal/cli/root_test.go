package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_Exists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
}

func TestRootCmd_Use(t *testing.T) {
	if rootCmd.Use != "seima" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "seima")
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	want := map[string]bool{"assets": false, "serve": false, "init": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestRootCmd_VersionTemplate(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--version"})
	defer rootCmd.SetArgs([]string{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "seima v") {
		t.Errorf("version output = %q, want seima v prefix", buf.String())
	}
}
