package library

// LocalFile is one video file discovered on disk. Title is the filename
// without its extension; DurationSeconds is best-effort and nil when the
// probe could not determine it.
type LocalFile struct {
	Filename        string
	Title           string
	Path            string
	DurationSeconds *float64
}

// ChannelLibrary groups the local files of a single channel folder.
type ChannelLibrary struct {
	ChannelID   string
	ChannelName string
	Videos      []LocalFile
}

// TotalFiles counts the files across all channel libraries.
func TotalFiles(libraries map[string]*ChannelLibrary) int {
	total := 0
	for _, lib := range libraries {
		total += len(lib.Videos)
	}
	return total
}
