package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainCommand(t *testing.T) {
	if os.Getenv("BE_AZWIRE_MAIN") == "1" {
		main()
		return
	}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "help", args: []string{"--help"}},
		{name: "models", args: []string{"models"}},
		{name: "invalid flag", args: []string{"--invalid-flag"}, wantErr: true},
		{name: "unknown model", args: []string{"models", "nope.Nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestMainCommand$")
			cmd.Env = append(os.Environ(), "BE_AZWIRE_MAIN=1")
			cmd.Args = append([]string{os.Args[0]}, tt.args...)

			err := cmd.Run()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
