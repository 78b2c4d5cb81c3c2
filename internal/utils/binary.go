package utils

import (
	"bytes"
	"io"
	"os"
)

// sniffLength defines the maximum number of bytes read when detecting binary content.
const sniffLength = 8192

// IsBinary reports whether the provided byte slice appears to contain binary data.
func IsBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0
}

// IsFileBinary reads up to sniffLength bytes from the file at path and determines
// if the content appears to be binary. Unreadable files are treated as binary.
func IsFileBinary(path string) bool {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return true
	}
	defer fileHandle.Close()

	buffer := make([]byte, sniffLength)
	bytesRead, readError := fileHandle.Read(buffer)
	if readError != nil && readError != io.EOF {
		return true
	}
	return IsBinary(buffer[:bytesRead])
}
