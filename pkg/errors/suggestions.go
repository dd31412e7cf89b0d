package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryMetadata:
		return g.generateMetadataSuggestions(affectedPath)
	case CategoryConsistency:
		return g.generateConsistencySuggestions(affectedPath)
	case CategoryOrdering:
		return g.generateOrderingSuggestions(affectedPath)
	case CategoryClock:
		return g.generateClockSuggestions(affectedPath)
	case CategoryRemote:
		return g.generateRemoteSuggestions()
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryOutput:
		return g.generateOutputSuggestions()
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateClockSuggestions(path string) []string {
	suggestions := []string{
		"Check that the system clock is correct (e.g. 'timedatectl status')",
		"Files copied from another machine may carry future timestamps",
	}

	if path != "" {
		suggestions = append(suggestions, "Inspect the recorded times with 'stat "+path+"'")
	}

	return suggestions
}

func (g *suggestionGenerator) generateConsistencySuggestions(path string) []string {
	suggestions := []string{
		"The file may have been modified while it was being read; run again",
	}

	if path != "" {
		suggestions = append(suggestions, "Compare the times reported by 'stat "+path+"'")
	}

	return suggestions
}

func (g *suggestionGenerator) generateMetadataSuggestions(path string) []string {
	suggestions := []string{
		"Creation (birth) time needs statx on Linux 4.11+ or a BSD/macOS filesystem that records it",
		"Filesystems such as older NFS or FAT mounts do not record creation time",
	}

	if path != "" {
		suggestions = append(suggestions, "Check the 'Birth:' line of 'stat "+path+"'")
	}

	return suggestions
}

func (g *suggestionGenerator) generateOrderingSuggestions(path string) []string {
	suggestions := []string{
		"The file reports a modification time that is not after its creation time",
		"Tools that restore timestamps (cp -p, rsync -t, tar) can produce this",
	}

	if path != "" {
		suggestions = append(suggestions, "Touch the file to refresh its modification time: 'touch "+path+"'")
	}

	return suggestions
}

func (g *suggestionGenerator) generateOutputSuggestions() []string {
	return []string{
		"Standard output was closed or could not be written",
		"Check the command the output is piped into",
	}
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
	} else {
		suggestions = append(suggestions, "Timestamp mode reads the 'src' directory unless --stamp-root is given")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read permission for the files and search permission for their directories",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	return suggestions
}

func (g *suggestionGenerator) generateRemoteSuggestions() []string {
	return []string{
		"Verify the host is reachable and accepts SSH connections",
		"Load a key into ssh-agent or place an unencrypted key in ~/.ssh",
		"Use the form sftp://user@host:port/path",
	}
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Run again with --log-file to record what was walked",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
