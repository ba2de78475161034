package move2miden_test

import (
	"bufio"
	"bytes"
	"os/exec"
	"testing"
)

// TestGovet runs `go vet` across every package in the module, the way the
// project's CI does before a test run is allowed to proceed.
func TestGovet(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := exec.Command("go", "list", "./...")
	cmd.Stdout = buf
	cmd.Stderr = buf
	if err := cmd.Run(); err != nil {
		t.Fatalf("error getting package list: %v\n%s", err, buf.String())
	}

	var pkgs []string
	s := bufio.NewScanner(buf)
	for s.Scan() {
		pkgs = append(pkgs, s.Text())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("error parsing package list: %v", err)
	}

	buf = new(bytes.Buffer)
	cmd = exec.Command("go", append([]string{"vet"}, pkgs...)...)
	cmd.Stdout = buf
	cmd.Stderr = buf
	if err := cmd.Run(); err != nil {
		t.Fatalf("error running go vet:\n%s\n%v", buf.String(), err)
	}
}

// TestGofmt fails if any tracked file has not been run through gofmt.
func TestGofmt(t *testing.T) {
	exe, err := exec.LookPath("goimports")
	if err != nil {
		exe, err = exec.LookPath("gofmt")
	}
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	cmd := exec.Command(exe, "-l", ".")
	cmd.Stdout = buf
	cmd.Stderr = buf
	if err := cmd.Run(); err != nil {
		t.Fatalf("error running %s:\n%s\n%v", exe, buf.String(), err)
	}
	if buf.Len() != 0 {
		t.Errorf("some files were not gofmt'ed:\n%s\n", buf.String())
	}
}
