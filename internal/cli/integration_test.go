package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/anyval/internal/cbordoc"
	"github.com/mcncl/anyval/internal/value"
)

// TestCLI_FileInputOutput tests the CLI converting a file to CBOR
func TestCLI_FileInputOutput(t *testing.T) {
	// Create a temporary directory for test files
	tempDir, err := os.MkdirTemp("", "anyval-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Create a test JSON file
	jsonContent := `{
		"key": 123,
		"nested": [1, 2, 3],
		"title": "sample"
	}`
	jsonFile := filepath.Join(tempDir, "test.json")
	err = os.WriteFile(jsonFile, []byte(jsonContent), 0644)
	require.NoError(t, err)

	// Define output file path
	outputFile := filepath.Join(tempDir, "output.cbor")

	// Run the CLI command
	cmd := exec.Command("go", "run", "../../main.go", "-i", jsonFile, "-o", outputFile, "--to", "cbor")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	// Decode the CBOR output and compare against the expected variants
	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	decoded, err := cbordoc.Unmarshal(data)
	require.NoError(t, err)

	want := value.Map(map[value.Key]value.Value{
		value.KeyFromString("key"): value.Uint8(123),
		value.KeyFromString("nested"): value.Seq(
			value.Uint8(1), value.Uint8(2), value.Uint8(3),
		),
		value.KeyFromString("title"): value.String("sample"),
	})
	assert.True(t, decoded.Equal(want), "got %s", decoded)
}

// TestCLI_StdinStdout tests the CLI with stdin input and stdout output
func TestCLI_StdinStdout(t *testing.T) {
	jsonContent := `{"name": "Jane Smith", "age": 25, "active": true}`

	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader(jsonContent)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	require.NoError(t, err, "CLI command failed: %s", stderr.String())

	// Default in/out format is JSON, so the document survives unchanged.
	assert.JSONEq(t, jsonContent, stdout.String())
}

// TestCLI_DebugRendering tests the variant rendering output
func TestCLI_DebugRendering(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--to", "debug")
	cmd.Stdin = strings.NewReader(`{"n": 255, "f": 1.5}`)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, ".uint8(255)")
	assert.Contains(t, output, ".float32(1.5)")
}

// TestCLI_Describe tests the Go type sketch output
func TestCLI_Describe(t *testing.T) {
	jsonContent := `{"number": 1, "title": "first"}`

	cmd := exec.Command("go", "run", "../../main.go", "-D", "-r", "Record", "-p", "models")
	cmd.Stdin = strings.NewReader(jsonContent)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "package models")
	assert.Contains(t, output, "type Record struct")
	assert.Regexp(t, `Number\s+uint8\s+\x60json:"number"\x60`, output)
	assert.Regexp(t, `Title\s+string\s+\x60json:"title"\x60`, output)
}

// TestCLI_InvalidJSON tests the CLI with invalid JSON input
func TestCLI_InvalidJSON(t *testing.T) {
	jsonContent := `{"name": "Invalid JSON, "age": 30}`

	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader(jsonContent)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err, "CLI should fail with invalid JSON")
	assert.Contains(t, stderr.String(), "Parsing error")
}

// TestCLI_EmptyInput tests the CLI with empty input
func TestCLI_EmptyInput(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader("")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	assert.Error(t, err, "CLI should fail with empty input")
	assert.Contains(t, stderr.String(), "Input error")
}

// TestCLI_Version tests the version flag
func TestCLI_Version(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "-v")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "anyval version")
}
