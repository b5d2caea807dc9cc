package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFileReader is a mock implementation of domain.FileReader
type MockFileReader struct {
	mock.Mock
}

func (m *MockFileReader) FileExists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileReader) IsValidJavaFile(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockFileReader) CollectJavaFiles(paths []string, recursive bool, includePatterns []string, excludePatterns []string) ([]string, error) {
	args := m.Called(paths, recursive, includePatterns, excludePatterns)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileReader) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestResolveFilePaths_AllPathsAreFiles(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"file1.java", "file2.java", "file3.java"}

	// Mock: All paths exist as files
	for _, path := range paths {
		mockReader.On("FileExists", path).Return(true, nil)
	}

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		false,
		[]string{"*.java"},
		[]string{},
		false,
	)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, paths, result, "Should return paths directly when all are files")
	mockReader.AssertExpectations(t)
	mockReader.AssertNotCalled(t, "CollectJavaFiles") // Should not call CollectJavaFiles
}

func TestResolveFilePaths_AllPathsAreFilesWithValidation(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"file1.java", "file2.java"}

	// Mock: All paths are valid Java files and exist
	for _, path := range paths {
		mockReader.On("IsValidJavaFile", path).Return(true)
		mockReader.On("FileExists", path).Return(true, nil)
	}

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		false,
		[]string{"*.java"},
		[]string{},
		true, // validateJavaFile enabled
	)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, paths, result, "Should return paths directly when all are valid Java files")
	mockReader.AssertExpectations(t)
	mockReader.AssertNotCalled(t, "CollectJavaFiles")
}

func TestResolveFilePaths_InvalidJavaFileWithValidation(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"file1.java", "file2.txt"} // file2.txt is not a Java file

	// Mock: First file is valid Java and exists, second is not valid Java
	mockReader.On("IsValidJavaFile", "file1.java").Return(true)
	mockReader.On("FileExists", "file1.java").Return(true, nil) // After IsValidJavaFile check, FileExists is called
	mockReader.On("IsValidJavaFile", "file2.txt").Return(false)

	// Mock: Should fall back to CollectJavaFiles
	collectedFiles := []string{"file1.java"}
	mockReader.On("CollectJavaFiles", paths, false, []string{"*.java"}, []string{}).Return(collectedFiles, nil)

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		false,
		[]string{"*.java"},
		[]string{},
		true, // validateJavaFile enabled
	)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, collectedFiles, result, "Should collect files when validation fails")
	mockReader.AssertExpectations(t)
}

func TestResolveFilePaths_MixedFilesAndDirectories(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"file1.java", "directory"}

	// Mock: First path is a file, second doesn't exist as a file (is a directory)
	mockReader.On("FileExists", "file1.java").Return(true, nil)
	mockReader.On("FileExists", "directory").Return(false, nil)

	// Mock: Should call CollectJavaFiles
	collectedFiles := []string{"file1.java", "directory/file2.java", "directory/file3.java"}
	mockReader.On("CollectJavaFiles", paths, true, []string{"*.java"}, []string{"*_test.java"}).Return(collectedFiles, nil)

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		true,
		[]string{"*.java"},
		[]string{"*_test.java"},
		false,
	)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, collectedFiles, result, "Should collect files when paths include directories")
	mockReader.AssertExpectations(t)
}

func TestResolveFilePaths_FileExistsError(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"file1.java", "file2.java"}

	// Mock: First file exists, second returns an error
	mockReader.On("FileExists", "file1.java").Return(true, nil)
	mockReader.On("FileExists", "file2.java").Return(false, errors.New("permission denied"))

	// Mock: Should fall back to CollectJavaFiles
	collectedFiles := []string{"file1.java"}
	mockReader.On("CollectJavaFiles", paths, false, []string{"*.java"}, []string{}).Return(collectedFiles, nil)

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		false,
		[]string{"*.java"},
		[]string{},
		false,
	)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, collectedFiles, result, "Should collect files when FileExists returns error")
	mockReader.AssertExpectations(t)
}

func TestResolveFilePaths_CollectFilesError(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"directory"}

	// Mock: Path doesn't exist as a file
	mockReader.On("FileExists", "directory").Return(false, nil)

	// Mock: CollectJavaFiles returns an error
	collectError := errors.New("failed to collect files")
	mockReader.On("CollectJavaFiles", paths, true, []string{"*.java"}, []string{}).Return([]string(nil), collectError)

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		true,
		[]string{"*.java"},
		[]string{},
		false,
	)

	// Assert
	assert.Error(t, err)
	assert.Equal(t, collectError, err, "Should return the CollectJavaFiles error")
	assert.Nil(t, result)
	mockReader.AssertExpectations(t)
}

func TestResolveFilePaths_EmptyPaths(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{}

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		false,
		[]string{"*.java"},
		[]string{},
		false,
	)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, []string{}, result, "Should return empty slice for empty paths")
}

func TestResolveFilePaths_RecursiveWithPatterns(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"src"}

	// Mock: Path is not a file (is a directory)
	mockReader.On("FileExists", "src").Return(false, nil)

	// Mock: Should call CollectJavaFiles with correct parameters
	includePatterns := []string{"**/*.java", "!test_*.java"}
	excludePatterns := []string{"**/migrations/*.java"}
	collectedFiles := []string{"src/main.java", "src/utils/helper.java"}
	mockReader.On("CollectJavaFiles", paths, true, includePatterns, excludePatterns).Return(collectedFiles, nil)

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		true,
		includePatterns,
		excludePatterns,
		false,
	)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, collectedFiles, result)
	mockReader.AssertExpectations(t)
	mockReader.AssertCalled(t, "CollectJavaFiles", paths, true, includePatterns, excludePatterns)
}

func TestResolveFilePaths_NoFilesCollected(t *testing.T) {
	// Setup
	mockReader := new(MockFileReader)
	paths := []string{"empty_directory"}

	// Mock: Path is not a file
	mockReader.On("FileExists", "empty_directory").Return(false, nil)

	// Mock: CollectJavaFiles returns empty slice
	mockReader.On("CollectJavaFiles", paths, false, []string{"*.java"}, []string{}).Return([]string{}, nil)

	// Execute
	result, err := ResolveFilePaths(
		mockReader,
		paths,
		false,
		[]string{"*.java"},
		[]string{},
		false,
	)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, result, "Should return empty slice when no files are collected")
	mockReader.AssertExpectations(t)
}
