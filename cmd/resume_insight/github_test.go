package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitHubCommand_MissingAPIKey(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "github", "octocat")
	cmd.Dir = t.TempDir()
	cmd.Env = envWithout("GOOGLE_API_KEY")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "GOOGLE_API_KEY environment variable is required")
}

func TestGitHubCommand_MissingUsernameArg(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "github")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "accepts 1 arg")
}
