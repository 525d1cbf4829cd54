package test

import (
	"os"
	"path"
)

var (
	// TestKeys - test data
	TestKeys []string = []string{"Key1", "Key2", "Key3", "Key4", "Key5"}

	// TestValues - test data
	TestValues []string = []string{"Value1", "Value2", "Value3", "Value4", "Value5"}
)

// CreateTestDirectory creates a test directory for running tests.
func CreateTestDirectory(testDirectory string) {
	os.MkdirAll(testDirectory, os.ModePerm)
}

// CleanupTestDirectory cleans up the test directory.
func CleanupTestDirectory(testDirectory string) error {
	dir, err := os.ReadDir(testDirectory)
	if err != nil {
		return err
	}
	for _, d := range dir {
		os.RemoveAll(path.Join(testDirectory, d.Name()))
	}
	return nil
}
