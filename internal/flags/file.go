package flags

import "os"

// FileContents is a flag.Value holding the contents of the file path it was set to
type FileContents struct {
	path     string
	contents []byte
}

// Contents returns the file's contents, or nil if the flag wasn't set
func (f *FileContents) Contents() []byte {
	return f.contents
}

// String returns the file's path
func (f *FileContents) String() string {
	if f == nil {
		return ""
	}
	return f.path
}

func (f *FileContents) Set(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f.path = path
	f.contents = contents
	return nil
}
