package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Run from the repository root: go run ./test
const (
	goodDir        = "internal/engine/testdata/good"
	badDir         = "internal/engine/testdata/bad"
	expectedDir    = "internal/engine/testdata/good/expected"
	outDir         = "out"
	convertTimeout = 30 * time.Second
)

type testResult struct {
	fileName string
	passed   bool
	output   string // failure reason, empty on pass
	isGood   bool
}

func main() {
	fmt.Println("🧹 Cleaning output directory...")
	_ = os.RemoveAll(outDir)
	_ = os.Mkdir(outDir, 0o755)

	// --- Good fixtures: convert cleanly, match expected Python ---
	fmt.Println("\n🔍 Running good tests:")
	goodFiles, _ := filepath.Glob(filepath.Join(goodDir, "*.pseudo"))
	fmt.Printf("Found %d good test files...\n", len(goodFiles))

	goodPassed, goodFailed := 0, 0
	badPassed, badFailed := 0, 0
	failedTests := []testResult{}

	for _, file := range goodFiles {
		res := runGoodTest(file)
		if res.passed {
			fmt.Printf("  ✅ %s\n", res.fileName)
			goodPassed++
		} else {
			fmt.Printf("  ❌ %s\n", res.fileName)
			goodFailed++
			failedTests = append(failedTests, res)
		}
	}

	// --- Bad fixtures: diagnose but still convert ---
	fmt.Println("\n💥 Running bad tests:")
	badFiles, _ := filepath.Glob(filepath.Join(badDir, "*.pseudo"))
	fmt.Printf("Found %d bad test files...\n", len(badFiles))

	for _, file := range badFiles {
		res := runBadTest(file)
		if res.passed {
			fmt.Printf("  ✅ %s (diagnosed as expected)\n", res.fileName)
			badPassed++
		} else {
			fmt.Printf("  ❌ %s (unexpected result)\n", res.fileName)
			badFailed++
			failedTests = append(failedTests, res)
		}
	}

	if len(failedTests) > 0 {
		fmt.Println("\n--- Detailed Failures ---")
		for _, failure := range failedTests {
			kind := "Bad Test"
			if failure.isGood {
				kind = "Good Test"
			}
			fmt.Printf("\n❌ Test: %s (%s)\n", failure.fileName, kind)
			fmt.Println("Reason:")
			fmt.Println(failure.output)
			fmt.Println("---")
		}
	}

	fmt.Println("\n--------------------")
	fmt.Printf("Good Tests Summary: ✅ Passed: %d | ❌ Failed: %d\n", goodPassed, goodFailed)
	fmt.Printf("Bad Tests Summary:  ✅ Passed: %d | ❌ Failed: %d\n", badPassed, badFailed)
	fmt.Println("--------------------")

	if goodFailed > 0 || badFailed > 0 {
		fmt.Println("\n🚨 Some tests failed!")
		os.Exit(1)
	}
	fmt.Println("\n🎉 All tests passed!")
}

// runGoodTest converts one well-formed fixture. It must exit cleanly, report
// no diagnostics, and produce Python that matches the expected file.
func runGoodTest(file string) testResult {
	fileName := filepath.Base(file)
	name := strings.TrimSuffix(fileName, ".pseudo")
	res := testResult{fileName: fileName, isGood: true}

	out, err := convert(file)
	if err != nil {
		res.output = fmt.Sprintf("convert failed: %v\nOutput:\n%s", err, out)
		return res
	}
	if strings.Contains(out, "warning:") {
		res.output = fmt.Sprintf("convert reported unexpected diagnostics:\n%s", out)
		return res
	}

	expectedPath := filepath.Join(expectedDir, name+".py")
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		res.output = fmt.Sprintf("missing expected Python output: %s", expectedPath)
		return res
	}

	actualPath := filepath.Join(outDir, name+".py")
	actual, err := os.ReadFile(actualPath)
	if err != nil {
		res.output = fmt.Sprintf("missing generated Python: %s\nConverter output:\n%s", actualPath, out)
		return res
	}

	expected = bytes.ReplaceAll(expected, []byte("\r\n"), []byte("\n"))
	actual = bytes.ReplaceAll(actual, []byte("\r\n"), []byte("\n"))
	if !bytes.Equal(expected, actual) {
		res.output = fmt.Sprintf("Python mismatch\nExpected (%s):\n%s\nActual (%s):\n%s",
			expectedPath, expected, actualPath, actual)
		return res
	}

	res.passed = true
	return res
}

// runBadTest converts one malformed fixture. The converter must still exit
// cleanly and still generate code, but it has to report at least one
// diagnostic along the way.
func runBadTest(file string) testResult {
	fileName := filepath.Base(file)
	name := strings.TrimSuffix(fileName, ".pseudo")
	res := testResult{fileName: fileName, isGood: false}

	out, err := convert(file)
	if err != nil {
		res.output = fmt.Sprintf("expected tolerant conversion but the command failed: %v\nOutput:\n%s", err, out)
		return res
	}
	if !strings.Contains(out, "warning:") {
		res.output = fmt.Sprintf("expected at least one diagnostic, saw none.\nOutput:\n%s", out)
		return res
	}
	if _, statErr := os.Stat(filepath.Join(outDir, name+".py")); statErr != nil {
		res.output = fmt.Sprintf("diagnostics were reported but no code was generated:\n%s", out)
		return res
	}

	res.passed = true
	return res
}

func convert(file string) (string, error) {
	out, err := runCommandWithTimeout(convertTimeout,
		"go", "run", "./cmd/p2c", "convert", file, "-t", "python", "-o", outDir, "--color", "never")
	return string(out), err
}

func runCommandWithTimeout(timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out // capture both streams, diagnostics go to stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return out.Bytes(), fmt.Errorf("command timed out after %v", timeout)
	}
	return out.Bytes(), err
}
