package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "tend" {
		t.Fatalf("expected root command name tend, got %q", rootCmd.Use)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"add", "modify", "start", "stop", "done", "remove", "clear", "list", "show", "sub"}
	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("expected command %q to be registered", name)
		}
	}
}
