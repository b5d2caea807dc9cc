package app

import "github.com/go-pdg/jpdg/domain"

// ResolveFilePaths resolves file paths for analysis.
// If all paths are already files (not directories), returns them directly.
// Otherwise, collects Java files from the provided paths using the specified filters.
//
// Parameters:
//   - fileReader: The file reader abstraction for file operations
//   - paths: The input paths to resolve (can be files or directories)
//   - recursive: Whether to recursively collect files from subdirectories
//   - includePatterns: Glob patterns for files to include
//   - excludePatterns: Glob patterns for files to exclude
//   - validateJavaFile: If true, also validates paths are Java files (stricter check)
//
// Returns:
//   - []string: List of resolved Java file paths
//   - error: Any error encountered during resolution
//
// When every path is an existing file, the paths are returned as given and
// no directory collection is run.
func ResolveFilePaths(
	fileReader domain.FileReader,
	paths []string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
	validateJavaFile bool,
) ([]string, error) {
	// Check if all paths are already files (not directories), as when the
	// caller was given .java files directly
	allFiles := true
	for _, path := range paths {
		// Optional: validate that path is a Java file before treating it as pre-resolved.
		if validateJavaFile && !fileReader.IsValidJavaFile(path) {
			allFiles = false
			break
		}

		// Check if file exists (FileExists returns true only for files, not directories)
		exists, err := fileReader.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}

	// If all paths are already files, no need to collect again
	if allFiles {
		return paths, nil
	}

	// Collect Java files from directories
	files, err := fileReader.CollectJavaFiles(
		paths,
		recursive,
		includePatterns,
		excludePatterns,
	)
	if err != nil {
		return nil, err
	}

	return files, nil
}
